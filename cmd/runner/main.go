// runner is a headless driver for the auto-jumping platformer simulation.
// It exists for tooling: running attempts without a renderer, checking
// determinism, and inspecting recorded death marks. The playable front end
// lives outside this repository and consumes the engine the same way these
// commands do.
//
// Usage:
//
//	runner stages                  - List built-in stages
//	runner simulate <stage>        - Run a headless attempt
//	runner soak <stage>            - Verify deterministic replay
//	runner marks <stage>           - Show recorded attempt marks
//
// Global flags:
//
//	--fps <rate>      - Simulated tick rate (default: 60)
//	--config <path>   - Physics tuning file (default: search path)
//	--db <path>       - Attempt history database (default: ~/.jumprunner/marks.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Headless driver for the auto-jump platformer simulation",
	Long: `runner drives the platformer physics core without a renderer.

Available commands:
  stages    - Show all built-in stages
  simulate  - Run a headless attempt with a scripted autopilot
  soak      - Replay identical inputs twice and compare state
  marks     - View attempt history for a stage

Examples:
  runner stages
  runner simulate stage2
  runner simulate stage2 --hold right --attempts 5
  runner soak stage3 --ticks 5000
  runner marks stage2`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Simulated tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumprunner/marks.db", "Path to the attempt history database")

	// Add subcommands
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(soakCmd)
	rootCmd.AddCommand(marksCmd)
}
