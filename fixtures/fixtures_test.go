package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/fixtures"
)

func TestCycleHasExpectedShape(t *testing.T) {
	g := fixtures.Cycle(6)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 2, d)
	}
}

func TestGridHasExpectedShape(t *testing.T) {
	g := fixtures.Grid(4, 4)
	assert.Equal(t, 16, g.VertexCount())
	assert.Equal(t, 24, g.EdgeCount())
	assert.True(t, g.HasEdge("0,0", "0,1"))
	assert.True(t, g.HasEdge("0,0", "1,0"))
	assert.False(t, g.HasEdge("0,0", "1,1"))
}

func TestPetersenHasExpectedShape(t *testing.T) {
	g := fixtures.Petersen()
	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 3, d)
	}
}

func TestGNMProducesExactEdgeCount(t *testing.T) {
	g := fixtures.GNM(40, 120, fixtures.WithSeed(7))
	assert.Equal(t, 40, g.VertexCount())
	assert.Equal(t, 120, g.EdgeCount())
}

func TestRandomRegularRejectsOddProduct(t *testing.T) {
	_, err := fixtures.RandomRegular(5, 3, fixtures.WithSeed(1))
	assert.ErrorIs(t, err, fixtures.ErrOddDegreeProduct)
}

func TestRandomRegularProducesRegularGraph(t *testing.T) {
	g, err := fixtures.RandomRegular(6, 3, fixtures.WithSeed(2))
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		d, derr := g.Degree(v)
		require.NoError(t, derr)
		assert.Equal(t, 3, d)
	}
}
