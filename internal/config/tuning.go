// Package config provides YAML-based physics tuning for the runner
// simulation. A Tuning bundle is immutable for the duration of an attempt
// and may be swapped wholesale between attempts (per-stage tuning).
package config

import "fmt"

// Tuning contains all physics constants for one attempt.
type Tuning struct {
	Physics  PhysicsTuning  `yaml:"physics"`
	AutoJump AutoJumpTuning `yaml:"auto_jump"`
	Runner   RunnerTuning   `yaml:"runner"`
}

// PhysicsTuning defines the integrator constants.
type PhysicsTuning struct {
	// Gravity is vertical acceleration per normalized tick (positive = down).
	Gravity float64 `yaml:"gravity"`
	// JumpForce is the vertical velocity applied on an auto-jump (negative = up).
	JumpForce float64 `yaml:"jump_force"`
	// MoveSpeed is the horizontal speed cap.
	MoveSpeed float64 `yaml:"move_speed"`
	// GameSpeed is the global time-scale multiplier.
	GameSpeed float64 `yaml:"game_speed"`
}

// AutoJumpTuning defines the autonomous jump schedule.
type AutoJumpTuning struct {
	// IntervalMs is the grounded time after landing before the next jump
	// fires, in simulated milliseconds.
	IntervalMs float64 `yaml:"interval_ms"`
}

// RunnerTuning defines the controlled entity's shape.
type RunnerTuning struct {
	Radius float64 `yaml:"radius"`
}

// Default returns the stock tuning the built-in stages are balanced for.
func Default() Tuning {
	return Tuning{
		Physics: PhysicsTuning{
			Gravity:   0.6,
			JumpForce: -12,
			MoveSpeed: 4,
			GameSpeed: 2.0,
		},
		AutoJump: AutoJumpTuning{
			IntervalMs: 500,
		},
		Runner: RunnerTuning{
			Radius: 15,
		},
	}
}

// Validate rejects tuning bundles that would break the simulation math.
func (t Tuning) Validate() error {
	if t.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", t.Physics.Gravity)
	}
	if t.Physics.JumpForce >= 0 {
		return fmt.Errorf("config: jump force must be negative (upward), got %g", t.Physics.JumpForce)
	}
	if t.Physics.MoveSpeed <= 0 {
		return fmt.Errorf("config: move speed must be positive, got %g", t.Physics.MoveSpeed)
	}
	if t.Physics.GameSpeed <= 0 {
		return fmt.Errorf("config: game speed must be positive, got %g", t.Physics.GameSpeed)
	}
	if t.AutoJump.IntervalMs <= 0 {
		return fmt.Errorf("config: auto-jump interval must be positive, got %g", t.AutoJump.IntervalMs)
	}
	if t.Runner.Radius <= 0 {
		return fmt.Errorf("config: runner radius must be positive, got %g", t.Runner.Radius)
	}
	return nil
}
