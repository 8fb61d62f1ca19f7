package robber

import (
	"time"

	"github.com/corvusgraph/pursuit/deadline"
	"github.com/corvusgraph/pursuit/graph"
)

// newLiteralDistances computes all-pairs shortest-path distances over g,
// deadline-gated one BFS source at a time. Returns (nil, false) if it
// doesn't finish before finish.
func newLiteralDistances(g *graph.Graph, finish time.Time) (map[string]map[string]int, bool) {
	out := make(map[string]map[string]int, g.VertexCount())
	loop := deadline.NewLoop(finish, deadline.DefaultTolerance)
	for _, v := range g.Vertices() {
		ran := loop.Try(func() {
			d, err := g.ShortestPaths(v)
			if err == nil {
				out[v] = d.Dist
			}
		})
		if !ran {
			return nil, false
		}
	}
	return out, true
}
