package engine

import "math"

// AttemptState is the lifecycle state of one attempt. Dead and Cleared are
// terminal; NotStarted and Paused sit outside the simulated hot loop.
type AttemptState string

const (
	StateNotStarted AttemptState = "not_started"
	StateRunning    AttemptState = "running"
	StatePaused     AttemptState = "paused"
	StateDead       AttemptState = "dead"
	StateCleared    AttemptState = "cleared"
)

// DeathMark records where and why an attempt ended fatally. Determinism of
// the simulation makes these marks reproducible, which is what lets the
// rendering layer show the history of previous attempts honestly.
type DeathMark struct {
	X, Y  float64
	Cause DeathCause
}

// StepResult is returned by Engine.Tick after each simulation tick.
type StepResult struct {
	State         AttemptState
	Score         int
	TimeRemaining float64
	// Death is set on the tick the attempt ends fatally, nil otherwise.
	Death *DeathMark
}

// outcome is the evaluator's verdict for one tick.
type outcome struct {
	state     AttemptState
	cause     DeathCause
	remaining float64
	score     int
}

// evaluateOutcome turns the tick's collision flags plus elapsed time into a
// terminal transition, or leaves the attempt running. This is the single
// authority for attempt outcome; no other component sets terminal states.
// Transitions are evaluated in fixed order, first match wins:
// boundary/hole death, time-up death, hazard death, then goal clear.
func evaluateOutcome(res contactResult, elapsed, timeLimit float64) outcome {
	remaining := timeLimit - elapsed
	if remaining < 0 {
		remaining = 0
	}

	switch {
	case res.boundaryCrossed:
		return outcome{state: StateDead, cause: CauseBoundary, remaining: remaining}
	case res.holeCrossed:
		return outcome{state: StateDead, cause: CauseHole, remaining: remaining}
	case elapsed >= timeLimit:
		return outcome{state: StateDead, cause: CauseTimeUp, remaining: 0}
	case res.hazardFatal:
		return outcome{state: StateDead, cause: res.hazardCause, remaining: remaining}
	case res.goalTouched:
		return outcome{state: StateCleared, remaining: remaining, score: int(math.Ceil(remaining))}
	default:
		return outcome{state: StateRunning, remaining: remaining}
	}
}
