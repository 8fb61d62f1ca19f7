package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/graph"
)

func TestAddVertexAndEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, 1, g.VertexCount())

	require.NoError(t, g.AddEdge("a", "b"))
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdgeRejectsLoopsAndEmptyIDs(t *testing.T) {
	g := graph.New()
	require.ErrorIs(t, g.AddEdge("a", "a"), graph.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge("", "a"), graph.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddVertex(""), graph.ErrEmptyVertexID)
}

func TestNeighborsSortedAndMissing(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("a", "b"))
	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nbrs)

	_, err = g.Neighbors("zzz")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestComponents(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddVertex("isolated"))

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []string{"a", "b", "c"}, comps[0])
	assert.Equal(t, []string{"isolated"}, comps[1])

	assert.Equal(t, 0, g.ComponentOf("a"))
	assert.Equal(t, 1, g.ComponentOf("isolated"))
	assert.Equal(t, -1, g.ComponentOf("nope"))
}

func TestComponentsInvalidatedOnMutation(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.Len(t, g.Components(), 2)

	require.NoError(t, g.AddEdge("a", "b"))
	require.Len(t, g.Components(), 1)
}

func TestShortestPaths(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "d"))
	require.NoError(t, g.AddEdge("d", "c"))

	d, err := g.ShortestPaths("a")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Dist["a"])
	assert.Equal(t, 1, d.Dist["b"])
	assert.Equal(t, 2, d.Dist["c"])

	path := d.PathTo("c")
	assert.Equal(t, "a", path[0])
	assert.Equal(t, "c", path[len(path)-1])
	assert.Len(t, path, 3)

	dist, err := g.Distance("a", "c")
	require.NoError(t, err)
	assert.Equal(t, 2, dist)
}

func TestDistanceUnreachable(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddVertex("z"))
	dist, err := g.Distance("a", "z")
	require.NoError(t, err)
	assert.Equal(t, -1, dist)
}

func TestClone(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	clone := g.Clone()
	require.NoError(t, clone.AddEdge("b", "c"))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, clone.EdgeCount())
}

func TestSubgraphDropsExternalEdges(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "d"))

	sub := g.Subgraph([]string{"a", "b", "c"})
	assert.Equal(t, 3, sub.VertexCount())
	assert.True(t, sub.HasEdge("a", "b"))
	assert.True(t, sub.HasEdge("b", "c"))
	assert.False(t, sub.HasVertex("d"))
}
