// Package pursuit is a Cops and Robbers pursuit-evasion engine: given an
// undirected graph and a number of cops, it plays the cops' side of the
// game against a robber, deciding where to place the cops and how to
// move them each round. Play is best-effort within per-move deadlines:
// a capture is not guaranteed, and disjoint-path pursuit supplies the
// move whenever search does not find a win.
//
// The engine is built from three interlocking subsystems:
//
//	abstraction/ — a hierarchy of coarser graphs built by iteratively
//	               pooling adjacent vertex pairs, letting search reason about
//	               a small abstract graph before committing to an
//	               expensive literal move
//	minimax/     — iterative-deepening alpha-beta search over cop/robber
//	               positions with Zobrist-hashed transposition tables
//	strategy/    — the per-component decision procedure tying the two
//	               together: descend the abstraction hierarchy with
//	               minimax, refine a winning abstract move down to a
//	               literal one, and fall back to disjoint-shortest-path
//	               pursuit when no level of abstraction yields a win
//
// islands/ orchestrates strategy/ across a possibly-disconnected graph's
// connected components, robber/ implements the opposing agent's
// contour-relaxation strategy, and player/ wraps both sides behind a
// stateful init/step interface a match driver can run. match/ is a
// reference driver: it supervises player calls under a deadline,
// validates every move, and decides the outcome; fixtures/ builds the
// small graphs tests and the demo exercise it against.
//
//	go get github.com/corvusgraph/pursuit
package pursuit
