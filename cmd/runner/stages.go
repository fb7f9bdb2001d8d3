package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jump-runner/internal/levels"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List all built-in stages",
	Long:  `Shows a list of all stages registered in the simulation.`,
	Run:   runStages,
}

func runStages(cmd *cobra.Command, args []string) {
	stages := levels.List()

	if len(stages) == 0 {
		fmt.Println("No stages available.")
		return
	}

	fmt.Println("Built-in stages:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range stages {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	for _, s := range stages {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Name)
	}

	fmt.Println()
	fmt.Println("Run 'runner simulate <id>' to run a headless attempt.")
}
