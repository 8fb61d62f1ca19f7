package abstraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/graph"
)

func cycleGraph(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		a := string(rune('a' + i))
		b := string(rune('a' + (i+1)%n))
		if err := g.AddEdge(a, b); err != nil {
			panic(err)
		}
	}
	return g
}

func TestPoolVerticesRoughlyHalves(t *testing.T) {
	g := cycleGraph(12)
	lg, _, _ := literalLevelGraph(g)
	mapping := poolVertices(lg)

	abstractNodes := make(map[int]bool)
	for _, a := range mapping {
		abstractNodes[a] = true
	}
	assert.LessOrEqual(t, len(abstractNodes), 6)
	assert.GreaterOrEqual(t, len(abstractNodes), 5)
}

func TestHierarchyStopsAtThreshold(t *testing.T) {
	g := cycleGraph(40)
	h := NewHierarchy(g)
	require.NotEmpty(t, h.Levels())
	assert.LessOrEqual(t, h.Highest().NNodes, SizeThreshold)
	for i := 1; i < len(h.levels); i++ {
		assert.Less(t, h.levels[i].NNodes, h.levels[i-1].NNodes)
	}
}

func TestHierarchySmallGraphSingleLevel(t *testing.T) {
	g := cycleGraph(4)
	h := NewHierarchy(g)
	assert.Len(t, h.Levels(), 1)
	assert.LessOrEqual(t, h.Highest().NNodes, SizeThreshold)
}

func TestShortestPathLengthStorePopulates(t *testing.T) {
	g := cycleGraph(8)
	h := NewHierarchy(g)
	h.PopulateShortestPathLengths(time.Now().Add(time.Second))
	assert.True(t, h.Lowest().ShortestPathLengths.IsPopulated())
}

func TestHighestUndecidedAbstraction(t *testing.T) {
	g := cycleGraph(20)
	h := NewHierarchy(g)
	cop := h.LiteralIndex("a")
	robber := h.LiteralIndex("a")
	// cop and robber coincide literally, so even the lowest level is decided.
	level := h.HighestUndecidedAbstraction([]int{cop}, robber)
	assert.Nil(t, level)
}

func TestDecreasingAbstractionsFrom(t *testing.T) {
	g := cycleGraph(30)
	h := NewHierarchy(g)
	chain := h.DecreasingAbstractionsFrom(h.Highest())
	require.Len(t, chain, 1)
	assert.Equal(t, h.Highest(), chain[0])

	full := h.DecreasingAbstractionsFrom(h.Lowest())
	assert.Equal(t, len(h.Levels()), len(full))
}
