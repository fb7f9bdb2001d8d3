package engine

import (
	"fmt"

	"github.com/vovakirdan/jump-runner/internal/config"
	"github.com/vovakirdan/jump-runner/internal/core"
	"github.com/vovakirdan/jump-runner/internal/level"
)

// Engine owns one attempt: the runner, the hazard runtime state, the clocks,
// and the outcome. It is single-threaded and frame-driven; the external
// platform invokes Tick once per animation frame and reads snapshots back.
type Engine struct {
	lv     *level.Level
	tuning config.Tuning

	runner     Runner
	hazards    *hazardState
	gravityDir float64

	state AttemptState
	death *DeathMark
	score int

	tick       uint64
	clockMs    float64 // simulated clock, accumulated from deltaMs
	lastLandMs float64 // simulated time of the last grounding transition
	elapsed    float64 // attempt time in seconds, for the time limit
}

// New creates an engine with no attempt loaded.
func New() *Engine {
	return &Engine{state: StateNotStarted}
}

// StartAttempt validates the geometry bundle and tuning, then initializes a
// fresh attempt. Configuration errors are rejected here, before any tick
// runs; the simulation itself never errors mid-tick.
func (e *Engine) StartAttempt(lv *level.Level, tuning config.Tuning) error {
	if lv == nil {
		return fmt.Errorf("engine: no level provided")
	}
	if err := lv.Validate(); err != nil {
		return fmt.Errorf("engine: rejecting level %q: %w", lv.ID, err)
	}
	if err := tuning.Validate(); err != nil {
		return fmt.Errorf("engine: rejecting tuning: %w", err)
	}

	e.lv = lv
	e.tuning = tuning
	e.reset()
	return nil
}

// RestartAttempt discards all attempt state and re-derives it from the
// geometry bundle. Calling it twice with no ticks between is identical to a
// single fresh StartAttempt; partial resets are exactly the bug class this
// full re-derivation avoids.
func (e *Engine) RestartAttempt() error {
	if e.lv == nil {
		return fmt.Errorf("engine: no attempt to restart")
	}
	e.reset()
	return nil
}

func (e *Engine) reset() {
	e.runner = Runner{
		X:      e.lv.SpawnX,
		Y:      e.lv.SpawnY,
		Radius: e.tuning.Runner.Radius,
	}
	e.hazards = newHazardState(e.lv)
	e.gravityDir = 1
	e.state = StateRunning
	e.death = nil
	e.score = 0
	e.tick = 0
	e.clockMs = 0
	e.lastLandMs = 0
	e.elapsed = 0
}

// Pause suspends the simulation. A paused engine advances no clocks.
func (e *Engine) Pause() {
	if e.state == StateRunning {
		e.state = StatePaused
	}
}

// Resume returns a paused attempt to the hot loop.
func (e *Engine) Resume() {
	if e.state == StatePaused {
		e.state = StateRunning
	}
}

// State returns the current attempt state.
func (e *Engine) State() AttemptState {
	return e.state
}

// Tick advances the simulation by deltaMs simulated milliseconds under the
// given held input. Control flow per tick: hazard motion → kinematics →
// contact resolution → outcome evaluation. On a terminal tick the result
// carries the final score or death mark; further ticks are no-ops until the
// attempt is restarted.
func (e *Engine) Tick(deltaMs float64, in core.InputFrame) StepResult {
	if in.Has(core.ActionPause) {
		switch e.state {
		case StateRunning:
			e.state = StatePaused
		case StatePaused:
			e.state = StateRunning
		}
	}

	if e.state != StateRunning {
		return e.result()
	}

	e.tick++
	e.clockMs += deltaMs
	e.elapsed += deltaMs / 1000

	factor := normalizeDelta(deltaMs, e.tuning.Physics)

	// Dynamic geometry advances first, using the runner's pre-move position
	// for trigger checks.
	driveHazards(e.hazards, e.lv, e.runner.X, factor)

	// Held movement intents set horizontal velocity directly.
	switch {
	case in.Has(core.ActionMoveLeft) && !in.Has(core.ActionMoveRight):
		e.runner.VX = -e.tuning.Physics.MoveSpeed
	case in.Has(core.ActionMoveRight) && !in.Has(core.ActionMoveLeft):
		e.runner.VX = e.tuning.Physics.MoveSpeed
	default:
		e.runner.VX = 0
	}

	// Auto-jump fires on its own schedule, relative to the last landing.
	if e.runner.Grounded && e.clockMs-e.lastLandMs > e.tuning.AutoJump.IntervalMs {
		e.runner.VY = e.tuning.Physics.JumpForce
		e.runner.Grounded = false
		e.lastLandMs = e.clockMs
	}

	prevFootY := e.runner.FootY()
	wasGrounded := e.runner.Grounded

	advanceRunner(&e.runner, e.tuning.Physics, e.gravityDir, factor)

	// Grounding must be re-confirmed by a contact every tick.
	e.runner.Grounded = false

	res := resolveContacts(&e.runner, prevFootY, wasGrounded, e.lv, e.hazards, factor)
	if res.flipGravity {
		e.gravityDir = -e.gravityDir
	}
	if !wasGrounded && e.runner.Grounded {
		// Landing transition: the next jump is scheduled relative to the new
		// stand time.
		e.lastLandMs = e.clockMs
	}

	out := evaluateOutcome(res, e.elapsed, e.lv.TimeLimit)
	switch out.state {
	case StateDead:
		e.state = StateDead
		e.death = &DeathMark{X: e.runner.X, Y: e.runner.Y, Cause: out.cause}
	case StateCleared:
		e.state = StateCleared
		e.score = out.score
	}

	return e.result()
}

func (e *Engine) result() StepResult {
	remaining := 0.0
	if e.lv != nil {
		remaining = e.lv.TimeLimit - e.elapsed
		if remaining < 0 {
			remaining = 0
		}
	}
	return StepResult{
		State:         e.state,
		Score:         e.score,
		TimeRemaining: remaining,
		Death:         e.death,
	}
}
