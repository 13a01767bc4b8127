package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/pocketcube/internal/storage"
)

var (
	historyLimit int
	showLast     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded attempts",
	Long:  `Commands for listing and inspecting recorded solve, apply and scramble runs.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent attempts",
	Long:  `Display a list of recent attempts with basic statistics.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [attempt-id]",
	Short: "Show details of an attempt",
	Long: `Display detailed information about a recorded attempt: the cube
layout, the move sequence and timing.

Use --last to show the most recent attempt.`,
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of attempts to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent attempt")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewAttemptRepository(db)
	attempts, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list attempts: %w", err)
	}

	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet")
		fmt.Println("Run a solve with: pocketcube solve '<cube>'")
		return nil
	}

	fmt.Printf("Recent attempts (showing %d):\n", len(attempts))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-8s  %-6s  %-8s  %s\n", "ID", "Created", "Kind", "Moves", "Time", "Solved")
	fmt.Println("------------------------------------  --------------------  --------  ------  --------  ------")

	for _, a := range attempts {
		moves := "-"
		if a.MoveCount != nil {
			moves = fmt.Sprintf("%d", *a.MoveCount)
		}

		elapsed := "-"
		if a.DurationMs != nil {
			elapsed = formatDuration(time.Duration(*a.DurationMs) * time.Millisecond)
		}

		solved := ""
		if a.Solved {
			solved = "yes"
		}

		fmt.Printf("%-36s  %-20s  %-8s  %-6s  %-8s  %s\n",
			a.AttemptID,
			a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			a.Kind,
			moves,
			elapsed,
			solved,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewAttemptRepository(db)

	var attempt *storage.Attempt
	if showLast {
		attempt, err = repo.GetLast()
		if err != nil {
			return fmt.Errorf("failed to get latest attempt: %w", err)
		}
		if attempt == nil {
			return fmt.Errorf("no attempts found")
		}
	} else if len(args) > 0 {
		attempt, err = repo.Get(args[0])
		if err != nil {
			return fmt.Errorf("failed to get attempt: %w", err)
		}
		if attempt == nil {
			return fmt.Errorf("attempt not found: %s", args[0])
		}
	} else {
		return fmt.Errorf("please provide an attempt ID or use --last")
	}

	fmt.Println("Attempt Details")
	fmt.Println("===============")
	fmt.Println()
	fmt.Printf("ID:      %s\n", attempt.AttemptID)
	fmt.Printf("Created: %s\n", attempt.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Kind:    %s\n", attempt.Kind)
	fmt.Printf("Cube:    %s\n", attempt.CubeText)
	if attempt.MovesText != nil {
		fmt.Printf("Moves:   %s\n", *attempt.MovesText)
	}
	if attempt.MaxDepth != nil {
		fmt.Printf("Depth:   %d\n", *attempt.MaxDepth)
	}
	if attempt.DurationMs != nil {
		fmt.Printf("Time:    %s\n", formatDuration(time.Duration(*attempt.DurationMs)*time.Millisecond))
	}
	if attempt.Solved {
		fmt.Println("Solved:  yes")
	} else {
		fmt.Println("Solved:  no")
	}

	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
