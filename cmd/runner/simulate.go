package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jump-runner/internal/config"
	"github.com/vovakirdan/jump-runner/internal/core"
	"github.com/vovakirdan/jump-runner/internal/engine"
	"github.com/vovakirdan/jump-runner/internal/levels"
	"github.com/vovakirdan/jump-runner/internal/storage"
)

var (
	flagHold     string
	flagAttempts int
	flagMaxTicks int
	flagWatch    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <stage>",
	Short: "Run headless attempts with a scripted autopilot",
	Long: `Runs one or more attempts of a stage without a renderer, driven by a
fixed held-input policy, and records each outcome as an attempt mark.

With --watch, the tuning file is reloaded between attempts when it changes
on disk; tuning never changes mid-attempt.

Examples:
  runner simulate stage1
  runner simulate stage2 --hold right --attempts 5
  runner simulate stage2 --config configs/tuning.yaml --watch --attempts 100`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagHold, "hold", "right", "Held movement intent: left, right, or none")
	simulateCmd.Flags().IntVar(&flagAttempts, "attempts", 1, "Number of attempts to run")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 100000, "Tick budget per attempt before giving up")
	simulateCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file between attempts when it changes")
}

func holdFrame(hold string) (core.InputFrame, error) {
	in := core.NewInputFrame()
	switch hold {
	case "left":
		in.Set(core.ActionMoveLeft)
	case "right":
		in.Set(core.ActionMoveRight)
	case "none":
	default:
		return in, fmt.Errorf("unknown hold policy %q (want left, right, or none)", hold)
	}
	return in, nil
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})

	stageID := args[0]
	if !levels.Exists(stageID) {
		logger.Error("unknown stage", "stage", stageID)
		fmt.Fprintln(os.Stderr, "Run 'runner stages' to see built-in stages.")
		os.Exit(1)
	}

	in, err := holdFrame(flagHold)
	if err != nil {
		logger.Error("bad flag", "error", err)
		os.Exit(1)
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("could not load tuning", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open attempt history database", "error", err)
		// Continue without storage
		store = nil
	} else {
		defer store.Close()
	}

	var watcher *config.Watcher
	if flagWatch && flagConfig != "" {
		watcher, err = config.NewWatcher(flagConfig)
		if err != nil {
			logger.Warn("could not watch tuning file", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	deltaMs := 1000.0 / float64(flagFPS)
	e := engine.New()

	for attempt := 1; attempt <= flagAttempts; attempt++ {
		// Apply pending tuning changes at the attempt boundary only.
		if watcher != nil {
			tuning = drainTuningEvents(watcher, tuning, logger)
		}

		lv, err := levels.Create(stageID)
		if err != nil {
			logger.Error("could not create stage", "error", err)
			os.Exit(1)
		}
		if err := e.StartAttempt(lv, tuning); err != nil {
			logger.Error("attempt rejected", "error", err)
			os.Exit(1)
		}

		var res engine.StepResult
		ticks := 0
		for ; ticks < flagMaxTicks; ticks++ {
			res = e.Tick(deltaMs, in)
			if res.State == engine.StateDead || res.State == engine.StateCleared {
				break
			}
		}

		snap := e.Snapshot()
		switch res.State {
		case engine.StateCleared:
			logger.Info("attempt cleared",
				"attempt", attempt,
				"stage", stageID,
				"score", res.Score,
				"ticks", snap.Tick,
				"elapsed_s", fmt.Sprintf("%.2f", snap.ElapsedS))
		case engine.StateDead:
			logger.Info("attempt died",
				"attempt", attempt,
				"stage", stageID,
				"cause", res.Death.Cause,
				"x", fmt.Sprintf("%.1f", res.Death.X),
				"y", fmt.Sprintf("%.1f", res.Death.Y),
				"elapsed_s", fmt.Sprintf("%.2f", snap.ElapsedS))
		default:
			logger.Warn("attempt hit the tick budget without a terminal state",
				"attempt", attempt, "stage", stageID, "ticks", ticks)
			continue
		}

		if store != nil {
			saveMark(store, stageID, snap, res, logger)
		}
	}
}

func drainTuningEvents(watcher *config.Watcher, current config.Tuning, logger *log.Logger) config.Tuning {
	changed := false
	for {
		select {
		case _, ok := <-watcher.Events:
			if !ok {
				return current
			}
			changed = true
		case err, ok := <-watcher.Errors:
			if ok {
				logger.Warn("tuning watcher error", "error", err)
			}
			return current
		default:
			if changed {
				fresh, err := config.Load(flagConfig)
				if err != nil {
					logger.Warn("ignoring broken tuning update", "error", err)
					return current
				}
				logger.Info("tuning reloaded", "path", flagConfig)
				return fresh
			}
			return current
		}
	}
}

func saveMark(store *storage.Store, stageID string, snap engine.Snapshot, res engine.StepResult, logger *log.Logger) {
	mark := storage.MarkEntry{
		StageID:  stageID,
		X:        snap.RunnerX,
		Y:        snap.RunnerY,
		Score:    res.Score,
		Duration: snap.ElapsedS,
	}
	if res.State == engine.StateCleared {
		mark.Outcome = "cleared"
	} else {
		mark.Outcome = "dead"
		mark.Cause = string(res.Death.Cause)
		mark.X = res.Death.X
		mark.Y = res.Death.Y
	}

	if _, err := store.SaveMark(mark); err != nil {
		logger.Warn("could not record attempt mark", "error", err)
	}
}
