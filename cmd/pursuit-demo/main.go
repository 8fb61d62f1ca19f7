// Command pursuit-demo plays one cops-and-robbers match on the Petersen
// graph and prints the round-by-round positions, mirroring the
// teacher's examples/ directory style of a small, narrated main().
//
// Scenario (spec.md Scenario A): Petersen graph, 3 cops — the cops
// strategy engine should catch the robber within a small bounded number
// of rounds.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/corvusgraph/pursuit/fixtures"
	"github.com/corvusgraph/pursuit/match"
	"github.com/corvusgraph/pursuit/player"
)

func main() {
	cops := flag.Int("cops", 3, "number of cops")
	maxRounds := flag.Int("max-rounds", 15, "round cap before the cops lose by default")
	seed := flag.Int64("seed", 1, "random seed for reproducible play")
	verbose := flag.Bool("verbose", false, "print structured engine diagnostics")
	flag.Parse()

	log := zerolog.Nop()
	if *verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	g := fixtures.Petersen()
	fmt.Printf("Playing on the Petersen graph: %d vertices, %d edges, %d cops\n",
		g.VertexCount(), g.EdgeCount(), *cops)

	copsPlayer := player.NewCops(g,
		player.WithCopsCount(*cops),
		player.WithCopsTimeouts(10*time.Second, 2*time.Second),
		player.WithCopsSeed(*seed),
		player.WithCopsLogger(log),
	)
	robberPlayer := player.NewRobber(g,
		player.WithRobberTimeouts(10*time.Second, 2*time.Second),
		player.WithRobberSeed(*seed+1),
		player.WithRobberLogger(log),
	)

	m := match.New(g, copsPlayer, robberPlayer,
		match.WithMaxRounds(*maxRounds),
		match.WithSupervisionTimeout(5*time.Second),
		match.WithLogger(log),
	)

	m.Init()
	fmt.Printf("round %2d: cops=%v robber=%s\n", m.Round(), m.CopPositions(), m.RobberPosition())
	for m.Status() == match.StatusContinues {
		m.Step()
		fmt.Printf("round %2d: cops=%v robber=%s\n", m.Round(), m.CopPositions(), m.RobberPosition())
	}

	fmt.Printf("\nresult: %s\n", m.Status())
	if m.Status().RobberWin() {
		os.Exit(1)
	}
}
