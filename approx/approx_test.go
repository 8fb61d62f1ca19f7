package approx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/approx"
	"github.com/corvusgraph/pursuit/graph"
)

func path(edges [][2]string) *graph.Graph {
	g := graph.New()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			panic(err)
		}
	}
	return g
}

func TestGonzalezKCenterCoversGraph(t *testing.T) {
	g := path([][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}})
	centers := approx.GonzalezKCenter(g, 2)
	assert.Len(t, centers, 2)
}

func TestGonzalezKCenterClampsK(t *testing.T) {
	g := path([][2]string{{"a", "b"}})
	centers := approx.GonzalezKCenter(g, 10)
	assert.Len(t, centers, 2)
}

func TestFarthestNode(t *testing.T) {
	g := path([][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}})
	far := approx.FarthestNode(g, []string{"a"})
	assert.Equal(t, "d", far)
}

func TestMultiTargetShortestPath(t *testing.T) {
	g := path([][2]string{{"a", "b"}, {"b", "c"}, {"a", "d"}, {"d", "e"}})
	p := approx.MultiTargetShortestPath(g, "a", map[string]bool{"c": true, "e": true})
	require.NotEmpty(t, p)
	assert.Equal(t, "a", p[0])
	assert.Contains(t, []string{"c", "e"}, p[len(p)-1])
}

func TestMultiTargetShortestPathSourceIsTarget(t *testing.T) {
	g := path([][2]string{{"a", "b"}})
	p := approx.MultiTargetShortestPath(g, "a", map[string]bool{"a": true})
	assert.Equal(t, []string{"a"}, p)
}

func TestFirstStepOnPath(t *testing.T) {
	assert.Equal(t, "b", approx.FirstStepOnPath([]string{"a", "b", "c"}))
	assert.Equal(t, "a", approx.FirstStepOnPath([]string{"a"}))
}

func TestDisjointPursuitStepsAlwaysLegal(t *testing.T) {
	g := path([][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}})
	moves := approx.DisjointPursuitSteps(g, []string{"a", "d"}, "b")
	require.Len(t, moves, 2)
	for _, m := range moves {
		assert.True(t, g.HasVertex(m))
	}
}

func TestWangChengWeightedKCenter(t *testing.T) {
	g := path([][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}})
	dist := make(map[string]map[string]int)
	weights := make(map[string]float64)
	for _, v := range g.Vertices() {
		d, err := g.ShortestPaths(v)
		require.NoError(t, err)
		dist[v] = d.Dist
		weights[v] = 1.0
	}
	centers := approx.WangChengWeightedKCenter(dist, weights, 2)
	assert.Len(t, centers, 2)
}
