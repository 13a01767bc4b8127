package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/pocketcube/internal/notation"
	"github.com/seamusw/pocketcube/internal/scramble"
	"github.com/seamusw/pocketcube/internal/storage"
)

var scrambleMoves int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Apply random moves to a solved cube and print the scramble sequence
along with the resulting layout, ready to paste into 'pocketcube solve'.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 0, "Number of scramble moves (default from config, 5)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	n := scrambleMoves
	if n <= 0 {
		n = cfg.ScrambleMoves
	}

	state, moves := scramble.Generate(nil, n)

	fmt.Printf("Scramble: %s\n", notation.FormatSequence(moves))
	fmt.Printf("Result:   %s\n", notation.FormatState(state))
	fmt.Println()
	fmt.Println(renderNet(state))
	fmt.Println("Solve it with:")
	fmt.Printf("  pocketcube solve '%s'\n", notation.FormatState(state))

	seq := notation.FormatSequence(moves)
	count := len(moves)
	recordAttempt(cfg, &storage.Attempt{
		Kind:      storage.KindScramble,
		CubeText:  notation.FormatState(state),
		MovesText: &seq,
		MoveCount: &count,
	})
	return nil
}
