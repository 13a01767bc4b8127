package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/pocketcube/internal/notation"
	"github.com/seamusw/pocketcube/internal/storage"
)

var applyCmd = &cobra.Command{
	Use:   "apply <cube> <moves>",
	Short: "Apply a move sequence to a cube",
	Long: `Apply a sequence of moves to the given cube layout and print the result.

Moves use standard notation: F R B L U D for clockwise quarter turns,
a trailing ' for counter-clockwise and a trailing 2 for half turns.

Example:
  pocketcube apply '[w,w,w,w],[o,o,o,o],[y,y,y,y],[r,r,r,r],[b,b,b,b],[g,g,g,g]' "R U R' U'"`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	state, err := notation.ParseState(args[0])
	if err != nil {
		return err
	}

	moves, err := notation.ParseSequence(args[1])
	if err != nil {
		return err
	}

	result := state.ApplyAll(moves)

	fmt.Printf("Starting: %s\n", notation.FormatState(state))
	fmt.Printf("Moves:    %s\n", notation.FormatSequence(moves))
	fmt.Printf("Result:   %s\n", notation.FormatState(result))
	fmt.Println()
	fmt.Println(renderNet(result))

	if result.IsSolved() {
		fmt.Println("Cube is SOLVED!")
	} else {
		fmt.Println("Cube is not solved")
	}

	seq := notation.FormatSequence(moves)
	count := len(moves)
	recordAttempt(cfg, &storage.Attempt{
		Kind:      storage.KindApply,
		CubeText:  notation.FormatState(state),
		MovesText: &seq,
		MoveCount: &count,
		Solved:    result.IsSolved(),
	})
	return nil
}
