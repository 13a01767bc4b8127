package solver

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/seamusw/pocketcube/internal/cube"
	"github.com/seamusw/pocketcube/pkg/types"
)

func newTestSolver() *Solver {
	return New(zerolog.Nop())
}

func TestSolveSolvedReturnsEmptySequence(t *testing.T) {
	for _, depth := range []int{0, 1, 8} {
		moves, err := newTestSolver().Solve(cube.Solved(), depth)
		if err != nil {
			t.Fatalf("Solve(solved, %d) returned error: %v", depth, err)
		}
		if len(moves) != 0 {
			t.Errorf("Solve(solved, %d) should return empty sequence, got %v", depth, moves)
		}
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	scrambledState := cube.Solved().Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW})

	moves, err := newTestSolver().Solve(scrambledState, 1)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if len(moves) != 1 {
		t.Fatalf("Expected a one-move solution, got %d moves", len(moves))
	}

	want := types.Move{Face: types.FaceR, Turn: types.TurnCCW}
	if moves[0] != want {
		t.Errorf("Expected R', got %s", moves[0].Notation())
	}
}

func TestSolveTwoMoveScramble(t *testing.T) {
	scrambledState := cube.Solved().ApplyAll([]types.Move{
		{Face: types.FaceF, Turn: types.TurnCW},
		{Face: types.FaceR, Turn: types.TurnCW},
	})

	moves, err := newTestSolver().Solve(scrambledState, 4)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if len(moves) != 2 {
		t.Errorf("Expected a two-move solution, got %d moves", len(moves))
	}
	if !scrambledState.ApplyAll(moves).IsSolved() {
		t.Error("Applying the returned solution should solve the cube")
	}
}

func TestSolveMediumScramble(t *testing.T) {
	// R U' F R2
	scrambledState := cube.Solved().ApplyAll([]types.Move{
		{Face: types.FaceR, Turn: types.TurnCW},
		{Face: types.FaceU, Turn: types.TurnCCW},
		{Face: types.FaceF, Turn: types.TurnCW},
		{Face: types.FaceR, Turn: types.Turn180},
	})

	moves, err := newTestSolver().Solve(scrambledState, 7)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if len(moves) == 0 || len(moves) > 4 {
		t.Errorf("A 4-move scramble should solve in 1-4 moves, got %d", len(moves))
	}
	if !scrambledState.ApplyAll(moves).IsSolved() {
		t.Error("Applying the returned solution should solve the cube")
	}
}

func TestSolveDepthExhausted(t *testing.T) {
	// Two moves from solved, searched with bound 1.
	scrambledState := cube.Solved().ApplyAll([]types.Move{
		{Face: types.FaceF, Turn: types.TurnCW},
		{Face: types.FaceR, Turn: types.TurnCW},
	})

	moves, err := newTestSolver().Solve(scrambledState, 1)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Expected ErrNoSolution, got moves=%v err=%v", moves, err)
	}
	if moves != nil {
		t.Error("No solution should mean a nil sequence")
	}
}

func TestSolveDepthZeroOnUnsolvedState(t *testing.T) {
	scrambledState := cube.Solved().Apply(types.Move{Face: types.FaceU, Turn: types.TurnCW})

	_, err := newTestSolver().Solve(scrambledState, 0)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Expected ErrNoSolution at depth 0, got %v", err)
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	scrambledState := cube.Solved().ApplyAll([]types.Move{
		{Face: types.FaceR, Turn: types.TurnCW},
		{Face: types.FaceU, Turn: types.TurnCW},
		{Face: types.FaceF, Turn: types.TurnCCW},
	})

	first, err := newTestSolver().Solve(scrambledState, 5)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	second, err := newTestSolver().Solve(scrambledState, 5)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Two identical searches returned different lengths: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Move %d differs between identical searches: %s vs %s",
				i, first[i].Notation(), second[i].Notation())
		}
	}
}
