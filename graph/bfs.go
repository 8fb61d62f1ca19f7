package graph

import "sort"

// Distances holds unweighted BFS results rooted at a single source.
type Distances struct {
	// Dist maps a reachable vertex ID to its hop distance from the source
	// (the source itself maps to 0).
	Dist map[string]int
	// Parent maps a reachable non-source vertex to its BFS parent.
	Parent map[string]string
	// Order lists visited vertices in BFS visitation order.
	Order []string
}

// ShortestPaths runs breadth-first search from source, returning hop
// distances, parent links, and visitation order across source's
// connected component. Returns ErrVertexNotFound if source is absent.
func (g *Graph) ShortestPaths(source string) (*Distances, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[source]; !ok {
		return nil, ErrVertexNotFound
	}

	res := &Distances{
		Dist:   map[string]int{source: 0},
		Parent: make(map[string]string),
		Order:  make([]string, 0, len(g.vertices)),
	}
	queue := []string{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)

		nbrs := make([]string, 0, len(g.adj[cur]))
		for n := range g.adj[cur] {
			nbrs = append(nbrs, n)
		}
		sort.Strings(nbrs)
		for _, n := range nbrs {
			if _, seen := res.Dist[n]; !seen {
				res.Dist[n] = res.Dist[cur] + 1
				res.Parent[n] = cur
				queue = append(queue, n)
			}
		}
	}
	return res, nil
}

// PathTo reconstructs the shortest path from the Distances' source to
// target, inclusive of both endpoints. Returns nil if target was
// unreached.
func (d *Distances) PathTo(target string) []string {
	if _, ok := d.Dist[target]; !ok {
		return nil
	}
	var path []string
	cur := target
	for {
		path = append(path, cur)
		parent, ok := d.Parent[cur]
		if !ok {
			break
		}
		cur = parent
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Distance returns the hop distance between u and v, or -1 if v is
// unreachable from u. Returns ErrVertexNotFound if u is absent.
func (g *Graph) Distance(u, v string) (int, error) {
	d, err := g.ShortestPaths(u)
	if err != nil {
		return 0, err
	}
	dist, ok := d.Dist[v]
	if !ok {
		return -1, nil
	}
	return dist, nil
}
