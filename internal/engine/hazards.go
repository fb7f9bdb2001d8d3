package engine

import (
	"github.com/vovakirdan/jump-runner/internal/level"
)

// Runtime hazard state, parallel to the level's dynamic geometry and keyed
// by element id. It is rebuilt from geometry on every attempt (re)start and
// discarded on unload; nothing in it survives an attempt boundary.

type movingState struct {
	ID        string
	X         float64
	Direction float64 // +1 or -1 along the patrol range
}

type breakableState struct {
	ID      string
	Hits    int
	MaxHits int
	Broken  bool
}

type patrolState struct {
	ID        string
	X, Y      float64
	Direction float64
}

type ceilingState struct {
	ID        string
	Activated bool
	Y         float64 // current top edge; starts at OriginalY
}

type hazardState struct {
	moving     []movingState
	breakables []breakableState
	patrols    []patrolState
	ceilings   []ceilingState

	// id → index maps built once per attempt so per-tick lookups stay O(1).
	movingIdx    map[string]int
	breakableIdx map[string]int
	patrolIdx    map[string]int
	ceilingIdx   map[string]int
}

// newHazardState derives fresh runtime state purely from geometry. Restart
// correctness depends on this being the only way runtime state comes into
// existence: no field is patched in place across attempts.
func newHazardState(lv *level.Level) *hazardState {
	hz := &hazardState{
		moving:       make([]movingState, len(lv.Moving)),
		breakables:   make([]breakableState, len(lv.Breakables)),
		patrols:      make([]patrolState, len(lv.Patrols)),
		ceilings:     make([]ceilingState, len(lv.Ceilings)),
		movingIdx:    make(map[string]int, len(lv.Moving)),
		breakableIdx: make(map[string]int, len(lv.Breakables)),
		patrolIdx:    make(map[string]int, len(lv.Patrols)),
		ceilingIdx:   make(map[string]int, len(lv.Ceilings)),
	}

	for i, m := range lv.Moving {
		hz.moving[i] = movingState{ID: m.ID, X: m.StartX, Direction: 1}
		hz.movingIdx[m.ID] = i
	}
	for i, b := range lv.Breakables {
		hz.breakables[i] = breakableState{ID: b.ID, MaxHits: b.MaxHits}
		hz.breakableIdx[b.ID] = i
	}
	for i, p := range lv.Patrols {
		hz.patrols[i] = patrolState{ID: p.ID, X: p.X, Y: p.Y, Direction: 1}
		hz.patrolIdx[p.ID] = i
	}
	for i, c := range lv.Ceilings {
		hz.ceilings[i] = ceilingState{ID: c.ID, Y: c.OriginalY}
		hz.ceilingIdx[c.ID] = i
	}

	return hz
}

// patrolAdvance moves a patrolling element one normalized tick and reflects
// it off its bounds. Overshoot is reflected back rather than clamped so total
// travel distance, and therefore the patrol period, stays consistent across
// tick granularities. Reflection repeats until the position settles inside
// [start, end]: one oversized tick can overshoot by more than the patrol
// range, and each bounce sheds one range length.
func patrolAdvance(pos, dir, speed, start, end, factor float64) (float64, float64) {
	pos += speed * dir * factor
	for {
		if dir > 0 && pos >= end {
			pos = end - (pos - end)
			dir = -1
		} else if dir < 0 && pos <= start {
			pos = start + (start - pos)
			dir = 1
		} else {
			return pos, dir
		}
	}
}

// driveHazards advances all autonomous dynamic elements by one tick,
// independent of the runner's motion. runnerX is the runner's x-position at
// the start of the tick, used only for ceiling trigger checks. This is the
// sole writer of moving/patrol/ceiling motion state; breakable platforms
// have no autonomous motion and are untouched here.
func driveHazards(hz *hazardState, lv *level.Level, runnerX, factor float64) {
	for i := range hz.moving {
		m := &hz.moving[i]
		geo := lv.Moving[hz.movingIdx[m.ID]]
		m.X, m.Direction = patrolAdvance(m.X, m.Direction, geo.Speed, geo.StartX, geo.EndX, factor)
	}

	for i := range hz.patrols {
		p := &hz.patrols[i]
		geo := lv.Patrols[hz.patrolIdx[p.ID]]
		switch geo.Axis {
		case level.AxisHorizontal:
			p.X, p.Direction = patrolAdvance(p.X, p.Direction, geo.Speed, geo.Start, geo.End, factor)
		case level.AxisVertical:
			p.Y, p.Direction = patrolAdvance(p.Y, p.Direction, geo.Speed, geo.Start, geo.End, factor)
		}
	}

	for i := range hz.ceilings {
		c := &hz.ceilings[i]
		geo := lv.Ceilings[hz.ceilingIdx[c.ID]]

		// Arming is one-way: once activated the trigger is never re-checked.
		if !c.Activated && runnerX >= geo.TriggerX && runnerX <= geo.TriggerX+geo.TriggerWidth {
			c.Activated = true
		}

		if c.Activated && c.Y < geo.StopY {
			c.Y += geo.FallSpeed * factor
			if c.Y > geo.StopY {
				c.Y = geo.StopY
			}
		}
	}
}
