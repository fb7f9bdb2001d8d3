package engine

import (
	"github.com/vovakirdan/jump-runner/internal/level"
)

// DeathCause identifies what killed the runner.
type DeathCause string

const (
	CauseSpike       DeathCause = "spike"
	CausePatrolSpike DeathCause = "patrol_spike"
	CauseCeiling     DeathCause = "ceiling"
	CauseHole        DeathCause = "hole"
	CauseBoundary    DeathCause = "boundary"
	CauseTimeUp      DeathCause = "time_up"
)

// contactResult carries the transient per-tick collision flags consumed once
// by the outcome evaluator. Nothing in it survives the tick.
type contactResult struct {
	landed          bool
	flipGravity     bool
	holeCrossed     bool
	boundaryCrossed bool
	hazardFatal     bool
	hazardCause     DeathCause
	goalTouched     bool
}

// landingRule checks one platform category for a resting contact and applies
// the correction to the runner when found. Rules are folded in priority
// order; the first rule that lands short-circuits the rest so exactly one
// resting surface applies per tick.
type landingRule func() bool

// crossedSurface is the tunneling-resistant contact test. A naive overlap
// check misses thin platforms at high game speed because the foot can pass
// entirely through one within a tick; instead, contact is confirmed only if
// the foot crossed the surface's y-level between the previous and current
// sample. An entity starting a tick already below the surface is not caught;
// that state is itself only reachable through a prior allowed pass.
func crossedSurface(r *Runner, prevFootY, x1, x2, surfaceY float64) bool {
	if r.VY < 0 {
		// Moving upward never lands.
		return false
	}
	if !(r.X+r.Radius > x1 && r.X-r.Radius < x2) {
		return false
	}
	return prevFootY <= surfaceY && r.FootY() >= surfaceY
}

// land applies the standard crossing correction: rest the foot on the
// surface, halt descent, and confirm grounding for this tick.
func land(r *Runner, surfaceY float64) {
	r.Y = surfaceY - r.Radius
	r.VY = 0
	r.Grounded = true
}

// resolveContacts checks the runner against all static and dynamic geometry
// for one tick. It mutates the runner (landing corrections, platform carry)
// and the breakable substate of hz (hit counters); all other hazard state is
// read-only here. prevFootY is the foot sample from before integration and
// wasGrounded the grounding flag from the previous tick, distinguishing a
// fresh landing from a resting re-confirmation.
//
// Category priority, each short-circuiting the rest: moving platforms →
// breakable platforms → static platforms → gravity-flip plates. Lethal and
// goal checks are independent of platform resolution and always run.
func resolveContacts(r *Runner, prevFootY float64, wasGrounded bool, lv *level.Level, hz *hazardState, factor float64) contactResult {
	var res contactResult

	rules := []landingRule{
		func() bool { return landOnMoving(r, prevFootY, lv, hz, factor) },
		func() bool { return landOnBreakable(r, prevFootY, wasGrounded, lv, hz) },
		func() bool { return landOnStatic(r, prevFootY, lv) },
		func() bool {
			if landOnPlate(r, prevFootY, lv) {
				res.flipGravity = true
				return true
			}
			return false
		},
	}
	for _, rule := range rules {
		if rule() {
			res.landed = true
			break
		}
	}

	// Lethal overlap checks. Contact itself is fatal, not resting, so plain
	// circle-vs-rect suffices; no crossing logic is needed.
	if cause, fatal := checkHazards(r, lv, hz); fatal {
		res.hazardFatal = true
		res.hazardCause = cause
	}

	if lv.Goal.IntersectsCircle(r.X, r.Y, r.Radius) {
		res.goalTouched = true
	}

	// Boundary and hole checks. The deep boundaries catch runaway entities
	// in either gravity direction; HoleDepth is the stage-specific pit line.
	if r.Y > lv.Height+100 || r.Y < -100 {
		res.boundaryCrossed = true
	}
	if lv.HoleDepth > 0 && r.Y > lv.HoleDepth {
		res.holeCrossed = true
	}

	return res
}

// landOnMoving lands the runner on a moving platform and carries it
// horizontally by the platform's own motion so it rides along.
func landOnMoving(r *Runner, prevFootY float64, lv *level.Level, hz *hazardState, factor float64) bool {
	for i := range hz.moving {
		m := &hz.moving[i]
		geo := lv.Moving[hz.movingIdx[m.ID]]
		if crossedSurface(r, prevFootY, m.X, m.X+geo.Width, geo.Y) {
			land(r, geo.Y)
			r.X += geo.Speed * m.Direction * factor
			return true
		}
	}
	return false
}

// landOnBreakable lands the runner on an unbroken breakable platform. A hit
// is charged only on the airborne→grounded transition: a resting runner
// re-confirms the crossing every tick (prevFootY == footY, VY == 0) and must
// keep its grounding without draining the hit budget. A platform that reaches
// its hit budget breaks and is permanently excluded from contact for the rest
// of the attempt.
func landOnBreakable(r *Runner, prevFootY float64, wasGrounded bool, lv *level.Level, hz *hazardState) bool {
	for i := range hz.breakables {
		b := &hz.breakables[i]
		if b.Broken {
			continue
		}
		geo := lv.Breakables[hz.breakableIdx[b.ID]]
		if crossedSurface(r, prevFootY, geo.X, geo.X+geo.Width, geo.Y) {
			land(r, geo.Y)
			if !wasGrounded {
				b.Hits++
				if b.Hits >= b.MaxHits {
					b.Broken = true
				}
			}
			return true
		}
	}
	return false
}

// landOnStatic lands the runner on a static platform segment. First match in
// geometry iteration order wins.
func landOnStatic(r *Runner, prevFootY float64, lv *level.Level) bool {
	for _, p := range lv.Platforms {
		if crossedSurface(r, prevFootY, p.X1, p.X2, p.Y1) {
			land(r, p.Y1)
			return true
		}
	}
	return false
}

// landOnPlate lands the runner on a gravity-flip plate. The position and
// velocity correction is the standard one, but grounding is not confirmed:
// once gravity points away from the plate it is no longer a resting surface,
// and leaving the runner airborne makes the flip fire exactly once per
// landing instead of on every resting tick.
func landOnPlate(r *Runner, prevFootY float64, lv *level.Level) bool {
	for _, p := range lv.Plates {
		if crossedSurface(r, prevFootY, p.X1, p.X2, p.Y1) {
			land(r, p.Y1)
			r.Grounded = false
			return true
		}
	}
	return false
}

// checkHazards tests the runner against everything that kills on touch:
// static spikes, active patrol spikes, and falling ceilings still in motion.
// A ceiling that has reached its stop line is inert and can no longer crush.
func checkHazards(r *Runner, lv *level.Level, hz *hazardState) (DeathCause, bool) {
	for _, s := range lv.Spikes {
		if s.IntersectsCircle(r.X, r.Y, r.Radius) {
			return CauseSpike, true
		}
	}

	for i := range hz.patrols {
		p := &hz.patrols[i]
		geo := lv.Patrols[hz.patrolIdx[p.ID]]
		if geo.Rect(p.X, p.Y).IntersectsCircle(r.X, r.Y, r.Radius) {
			return CausePatrolSpike, true
		}
	}

	for i := range hz.ceilings {
		c := &hz.ceilings[i]
		geo := lv.Ceilings[hz.ceilingIdx[c.ID]]
		if !c.Activated || c.Y >= geo.StopY {
			continue
		}
		if geo.Rect(c.Y).IntersectsCircle(r.X, r.Y, r.Radius) {
			return CauseCeiling, true
		}
	}

	return "", false
}
