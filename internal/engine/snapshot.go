package engine

// Snapshot captures the complete attempt state for determinism verification,
// replay tooling, and the rendering layer. All slices are copies; mutating a
// snapshot never touches live state.
type Snapshot struct {
	Tick       uint64
	State      AttemptState
	Score      int
	ElapsedS   float64
	GravityDir float64

	RunnerX, RunnerY   float64
	RunnerVX, RunnerVY float64
	RunnerRadius       float64
	Grounded           bool

	Moving     []MovingSnapshot
	Breakables []BreakableSnapshot
	Patrols    []PatrolSnapshot
	Ceilings   []CeilingSnapshot

	Death *DeathMark
}

// MovingSnapshot is the live state of one moving platform.
type MovingSnapshot struct {
	ID        string
	X         float64
	Direction float64
}

// BreakableSnapshot is the live state of one breakable platform.
type BreakableSnapshot struct {
	ID     string
	Hits   int
	Broken bool
}

// PatrolSnapshot is the live state of one patrol spike.
type PatrolSnapshot struct {
	ID        string
	X, Y      float64
	Direction float64
}

// CeilingSnapshot is the live state of one falling ceiling.
type CeilingSnapshot struct {
	ID        string
	Activated bool
	Y         float64
}

// Snapshot returns a read-only copy of the current attempt state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         e.tick,
		State:        e.state,
		Score:        e.score,
		ElapsedS:     e.elapsed,
		GravityDir:   e.gravityDir,
		RunnerX:      e.runner.X,
		RunnerY:      e.runner.Y,
		RunnerVX:     e.runner.VX,
		RunnerVY:     e.runner.VY,
		RunnerRadius: e.runner.Radius,
		Grounded:     e.runner.Grounded,
	}

	if e.death != nil {
		d := *e.death
		snap.Death = &d
	}

	if e.hazards == nil {
		return snap
	}

	snap.Moving = make([]MovingSnapshot, len(e.hazards.moving))
	for i, m := range e.hazards.moving {
		snap.Moving[i] = MovingSnapshot{ID: m.ID, X: m.X, Direction: m.Direction}
	}
	snap.Breakables = make([]BreakableSnapshot, len(e.hazards.breakables))
	for i, b := range e.hazards.breakables {
		snap.Breakables[i] = BreakableSnapshot{ID: b.ID, Hits: b.Hits, Broken: b.Broken}
	}
	snap.Patrols = make([]PatrolSnapshot, len(e.hazards.patrols))
	for i, p := range e.hazards.patrols {
		snap.Patrols[i] = PatrolSnapshot{ID: p.ID, X: p.X, Y: p.Y, Direction: p.Direction}
	}
	snap.Ceilings = make([]CeilingSnapshot, len(e.hazards.ceilings))
	for i, c := range e.hazards.ceilings {
		snap.Ceilings[i] = CeilingSnapshot{ID: c.ID, Activated: c.Activated, Y: c.Y}
	}

	return snap
}
