package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/pocketcube/internal/notation"
	"github.com/seamusw/pocketcube/internal/solver"
	"github.com/seamusw/pocketcube/internal/storage"
)

var solveMaxDepth int

var solveCmd = &cobra.Command{
	Use:   "solve <cube>",
	Short: "Solve a scrambled cube",
	Long: `Find a shortest move sequence (up to the depth bound) that solves the
given cube layout.

The search is a breadth-first search over all 18 face turns. The default
depth of 8 is fast; depth 11 always finds an optimal solution but can
take much longer on heavy scrambles.

Example:
  pocketcube solve '[w,y,w,y],[o,b,o,b],[g,y,r,y],[r,r,o,o],[r,w,g,w],[b,b,g,g]'`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", 0, "Maximum search depth (default from config, 8)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	state, err := notation.ParseState(args[0])
	if err != nil {
		return err
	}

	maxDepth := solveMaxDepth
	if maxDepth <= 0 {
		maxDepth = cfg.MaxDepth
	}

	log := newLogger()
	log.Debug().Int("max_depth", maxDepth).Msg("starting search")

	start := time.Now()
	moves, err := solver.New(log).Solve(state, maxDepth)
	elapsed := time.Since(start)

	attempt := storage.Attempt{
		Kind:     storage.KindSolve,
		CubeText: notation.FormatState(state),
	}
	depth := maxDepth
	attempt.MaxDepth = &depth
	durationMs := elapsed.Milliseconds()
	attempt.DurationMs = &durationMs

	switch {
	case errors.Is(err, solver.ErrNoSolution):
		fmt.Printf("No solution found within depth %d\n", maxDepth)
		fmt.Println("Try increasing --max-depth (11 always finds an optimal solution)")
	case err != nil:
		return err
	case len(moves) == 0:
		fmt.Println("Already solved!")
		attempt.Solved = true
	default:
		seq := notation.FormatSequence(moves)
		fmt.Printf("Solution: %s\n", seq)
		fmt.Printf("Moves:    %d (%s)\n", len(moves), formatDuration(elapsed))
		attempt.Solved = true
		attempt.MovesText = &seq
		count := len(moves)
		attempt.MoveCount = &count
	}

	recordAttempt(cfg, &attempt)
	return nil
}
