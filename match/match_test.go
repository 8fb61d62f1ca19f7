package match_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusgraph/pursuit/graph"
	"github.com/corvusgraph/pursuit/match"
	"github.com/corvusgraph/pursuit/player"
)

func cycleGraph(n int) *graph.Graph {
	g := graph.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = string(rune('a' + i))
		_ = g.AddVertex(ids[i])
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(ids[i], ids[(i+1)%n])
	}
	return g
}

func TestRunEndsWithRobberCaughtOnSmallCycle(t *testing.T) {
	g := cycleGraph(6)
	cops := player.NewCops(g,
		player.WithCopsCount(3),
		player.WithCopsTimeouts(2*time.Second, 500*time.Millisecond),
		player.WithCopsSeed(1),
	)
	robber := player.NewRobber(g,
		player.WithRobberTimeouts(2*time.Second, 500*time.Millisecond),
		player.WithRobberSeed(2),
	)

	m := match.New(g, cops, robber, match.WithMaxRounds(50))
	m.Run()

	assert.True(t, m.Status().CopsWin(), "3 cops on a 6-cycle should always catch the robber, got status %v", m.Status())
	assert.Contains(t, m.Status().String(), "caught")
}

func TestRunEndsWithCopsOutOfStepsWhenOutnumbered(t *testing.T) {
	g := cycleGraph(20)
	cops := player.NewCops(g,
		player.WithCopsCount(1),
		player.WithCopsTimeouts(time.Second, 100*time.Millisecond),
		player.WithCopsSeed(3),
	)
	robber := player.NewRobber(g,
		player.WithRobberTimeouts(time.Second, 100*time.Millisecond),
		player.WithRobberSeed(4),
	)

	m := match.New(g, cops, robber, match.WithMaxRounds(5))
	m.Run()

	assert.Equal(t, match.StatusCopsOutOfSteps, m.Status())
	assert.True(t, m.Status().RobberWin())
	assert.LessOrEqual(t, m.Round(), 5)
}

type stubCops struct {
	positions []string
}

func (s *stubCops) MaxRounds() int                 { return 0 }
func (s *stubCops) InitPositions() []string        { return s.positions }
func (s *stubCops) Step(string) []string           { return []string{"not-a-real-node"} }
func (s *stubCops) LastMove() ([]string, bool)     { return s.positions, true }

func TestCommitCopPositionsRejectsOffGraphMove(t *testing.T) {
	g := cycleGraph(4)
	cops := &stubCops{positions: []string{"a"}}
	robber := player.NewRobber(g, player.WithRobberSeed(5))

	m := match.New(g, cops, robber)
	m.Init()
	require.Equal(t, match.StatusContinues, m.Status())

	m.Step()
	assert.Equal(t, match.StatusCopsInvalidStep, m.Status())
}

func TestLoadNodeLinkBuildsGraph(t *testing.T) {
	doc := `{"nodes":[{"id":"a"},{"id":"b"},{"id":"c"}],"links":[{"source":"a","target":"b"},{"source":"b","target":"c"}]}`
	g, err := match.LoadNodeLink(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 3, g.VertexCount())
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "c"))
	assert.False(t, g.HasEdge("a", "c"))
}
