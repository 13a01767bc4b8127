// Package solver finds shortest move sequences with a bounded-depth
// breadth-first search over the cube state graph.
package solver

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/seamusw/pocketcube/internal/cube"
	"github.com/seamusw/pocketcube/pkg/types"
)

// ErrNoSolution is returned when no solution exists within the depth
// bound. It says nothing about deeper solutions.
var ErrNoSolution = errors.New("solver: no solution within depth bound")

// DefaultMaxDepth is fast on typical scrambles; the optimal bound for
// the pocket cube is 11 half-turn-metric moves but searching that deep
// can visit millions of states.
const DefaultMaxDepth = 8

// Solver runs bounded breadth-first searches. Each Solve call owns its
// own frontier and visited set; a Solver is cheap and stateless apart
// from its logger.
type Solver struct {
	log zerolog.Logger
}

// New creates a solver that reports search progress to the given logger
// at debug level.
func New(log zerolog.Logger) *Solver {
	return &Solver{log: log}
}

type node struct {
	state cube.State
	moves []types.Move
}

// Solve searches for a shortest move sequence from start to the solved
// state, considering sequences of at most maxDepth moves. It returns
// the empty sequence if start is already solved, and ErrNoSolution if
// the bounded search exhausts without reaching the solved state.
//
// Expansion follows the fixed order of cube.AllMoves, so the result is
// deterministic; among equally short solutions the first one discovered
// under that order wins.
func (s *Solver) Solve(start cube.State, maxDepth int) ([]types.Move, error) {
	if start.IsSolved() {
		return []types.Move{}, nil
	}

	started := time.Now()
	queue := []node{{state: start}}
	visited := map[cube.State]struct{}{start: {}}
	depth := 0

	for head := 0; head < len(queue); head++ {
		n := queue[head]

		if len(n.moves) > depth {
			depth = len(n.moves)
			s.log.Debug().
				Int("depth", depth).
				Int("visited", len(visited)).
				Dur("elapsed", time.Since(started)).
				Msg("search depth advanced")
		}

		// Nodes at the bound are not expanded; this caps both time
		// and memory.
		if len(n.moves) >= maxDepth {
			continue
		}

		for _, m := range cube.AllMoves() {
			next := n.state.Apply(m)

			if next.IsSolved() {
				solution := append(append([]types.Move{}, n.moves...), m)
				s.log.Debug().
					Int("moves", len(solution)).
					Int("visited", len(visited)).
					Dur("elapsed", time.Since(started)).
					Msg("solution found")
				return solution, nil
			}

			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, node{
				state: next,
				moves: append(append([]types.Move{}, n.moves...), m),
			})
		}
	}

	s.log.Debug().
		Int("max_depth", maxDepth).
		Int("visited", len(visited)).
		Dur("elapsed", time.Since(started)).
		Msg("search exhausted")
	return nil, ErrNoSolution
}
