package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jump-runner/internal/levels"
	"github.com/vovakirdan/jump-runner/internal/storage"
)

var flagMarksLimit int

var marksCmd = &cobra.Command{
	Use:   "marks <stage>",
	Short: "Show recorded attempt marks for a stage",
	Long: `Displays where recent attempts ended: death positions and causes,
plus cleared attempts with their scores.

Examples:
  runner marks stage1
  runner marks stage2 --limit 50`,
	Args: cobra.ExactArgs(1),
	Run:  runMarks,
}

func init() {
	marksCmd.Flags().IntVar(&flagMarksLimit, "limit", 20, "Maximum number of marks to show")
}

func runMarks(cmd *cobra.Command, args []string) {
	stageID := args[0]

	if !levels.Exists(stageID) {
		fmt.Fprintf(os.Stderr, "Error: unknown stage %q\n", stageID)
		fmt.Fprintln(os.Stderr, "Run 'runner stages' to see built-in stages.")
		os.Exit(1)
	}

	lv, err := levels.Create(stageID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating stage: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening attempt history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	marks, err := store.MarksForStage(stageID, flagMarksLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving marks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Attempt Marks - %s\n", lv.Name)
	fmt.Println()

	if len(marks) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'runner simulate %s' to record the first attempt!\n", stageID)
		return
	}

	fmt.Printf("  %-8s  %-13s  %-7s  %-7s  %-6s  %s\n", "Outcome", "Cause", "X", "Y", "Score", "Date")
	fmt.Printf("  %-8s  %-13s  %-7s  %-7s  %-6s  %s\n", "-------", "-----", "-", "-", "-----", "----")

	for _, m := range marks {
		cause := m.Cause
		if cause == "" {
			cause = "-"
		}
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-13s  %-7.1f  %-7.1f  %-6d  %s\n", m.Outcome, cause, m.X, m.Y, m.Score, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(stageID); err == nil && best > 0 {
		fmt.Printf("Best clear: %d\n", best)
	}
}
