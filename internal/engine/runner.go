// Package engine implements the physics-and-collision core of the runner
// game: a continuous-motion simulation that advances a single controlled
// entity through a stage and resolves contact with its hazards every tick.
// The package is pure and deterministic; given identical deltaMs sequences
// and inputs, two runs produce identical trajectories.
package engine

import (
	"github.com/vovakirdan/jump-runner/internal/config"
	"github.com/vovakirdan/jump-runner/internal/core"
)

// Runner is the controlled entity. It is owned exclusively by the simulation
// tick: only the integrator and the contact resolver mutate it. Radius is
// constant post-spawn; Grounded is recomputed every tick, never carried over
// without re-confirmation by a contact.
type Runner struct {
	X, Y     float64
	VX, VY   float64
	Radius   float64
	Grounded bool
}

// FootY returns the y-coordinate of the runner's lowest point, the sample
// used by crossing detection.
func (r *Runner) FootY() float64 {
	return r.Y + r.Radius
}

// normalizeDelta converts an elapsed wall interval into the dimensionless
// motion factor. All per-tick constants are expressed relative to a 60 Hz
// frame, so motion is frame-rate independent.
func normalizeDelta(deltaMs float64, phys config.PhysicsTuning) float64 {
	return (deltaMs / (1000.0 / 60.0)) * phys.GameSpeed
}

// advanceRunner applies gravity and velocity to the runner over one
// normalized tick. gravityDir is the signed gravity multiplier the contact
// resolver may flip. Pure numeric transform; mutates the runner in place.
func advanceRunner(r *Runner, phys config.PhysicsTuning, gravityDir, factor float64) {
	if !r.Grounded {
		r.VY += phys.Gravity * gravityDir * factor
	}

	r.X += r.VX * factor
	r.Y += r.VY * factor

	// Sign-preserving horizontal speed cap.
	r.VX = core.Clamp(r.VX, -phys.MoveSpeed, phys.MoveSpeed)
}
