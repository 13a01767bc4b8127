// Package scramble generates random scrambles by sampling moves
// uniformly from the full move set.
package scramble

import (
	"math/rand/v2"

	"github.com/seamusw/pocketcube/internal/cube"
	"github.com/seamusw/pocketcube/pkg/types"
)

// Generate applies n uniformly random moves to the solved state and
// returns the resulting state along with the moves applied. Passing a
// nil rng uses the shared global source; supply a seeded *rand.Rand for
// reproducible scrambles.
func Generate(rng *rand.Rand, n int) (cube.State, []types.Move) {
	pick := rand.IntN
	if rng != nil {
		pick = rng.IntN
	}

	all := cube.AllMoves()
	state := cube.Solved()
	moves := make([]types.Move, 0, n)
	for i := 0; i < n; i++ {
		m := all[pick(len(all))]
		state = state.Apply(m)
		moves = append(moves, m)
	}
	return state, moves
}
