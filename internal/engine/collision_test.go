package engine

import (
	"testing"

	"github.com/vovakirdan/jump-runner/internal/core"
	"github.com/vovakirdan/jump-runner/internal/level"
)

func flatLevel() *level.Level {
	return &level.Level{
		ID:        "flat",
		Name:      "Flat",
		Width:     800,
		Height:    600,
		TimeLimit: 30,
		SpawnX:    100,
		SpawnY:    400,
		Platforms: []level.Platform{{X1: 0, Y1: 500, X2: 800, Y2: 500}},
		Goal:      core.NewRect(700, 440, 40, 60),
	}
}

func TestCrossingDetectsHugeStep(t *testing.T) {
	// prevFootY=100, surface at 110, currentFootY=500: the foot passed
	// entirely through the platform in one tick and must still land.
	lv := flatLevel()
	lv.Platforms = []level.Platform{{X1: 0, Y1: 110, X2: 800, Y2: 110}}
	hz := newHazardState(lv)

	r := Runner{X: 100, Y: 500 - 15, VY: 400, Radius: 15}
	prevFootY := 100.0

	res := resolveContacts(&r, prevFootY, false, lv, hz, 1)

	if !res.landed {
		t.Fatal("huge displacement across the surface should still land")
	}
	if r.FootY() != 110 {
		t.Errorf("foot should rest on the surface: footY = %g, expected 110", r.FootY())
	}
	if r.VY != 0 {
		t.Errorf("landing should halt descent, VY = %g", r.VY)
	}
	if !r.Grounded {
		t.Error("landing should ground the runner")
	}
}

func TestNoUpwardContact(t *testing.T) {
	// An entity moving upward never registers a landing, regardless of
	// overlap with the surface.
	lv := flatLevel()
	hz := newHazardState(lv)

	r := Runner{X: 100, Y: 500 - 10, VY: -5, Radius: 15}
	prevFootY := 520.0 // foot was below the surface, now above: full crossing

	res := resolveContacts(&r, prevFootY, false, lv, hz, 1)

	if res.landed {
		t.Error("upward-moving runner must not land")
	}
	if r.Grounded {
		t.Error("upward-moving runner must not be grounded")
	}
}

func TestNoContactWithoutHorizontalOverlap(t *testing.T) {
	lv := flatLevel()
	lv.Platforms = []level.Platform{{X1: 300, Y1: 500, X2: 400, Y2: 500}}
	hz := newHazardState(lv)

	r := Runner{X: 100, Y: 510, VY: 5, Radius: 15}
	res := resolveContacts(&r, 480, false, lv, hz, 1)

	if res.landed {
		t.Error("runner beside the platform must fall past it")
	}
}

func TestBreakablePlatformLifecycle(t *testing.T) {
	lv := flatLevel()
	lv.Platforms = nil
	lv.Breakables = []level.BreakablePlatform{{ID: "b1", X: 50, Y: 500, Width: 100, MaxHits: 3}}
	hz := newHazardState(lv)

	hit := func() (landed bool) {
		r := Runner{X: 100, Y: 490 - 15, VY: 20, Radius: 15}
		r.Y += r.VY // simulate one integration step past the surface
		res := resolveContacts(&r, 490, false, lv, hz, 1)
		return res.landed
	}

	// Hits 1 and 2 ground the runner and count up without breaking.
	for i := 1; i <= 2; i++ {
		if !hit() {
			t.Fatalf("hit %d should land", i)
		}
		b := hz.breakables[0]
		if b.Hits != i || b.Broken {
			t.Fatalf("after hit %d: hits=%d broken=%v, expected hits=%d broken=false", i, b.Hits, b.Broken, i)
		}
	}

	// Hit 3 still grounds but breaks the platform.
	if !hit() {
		t.Fatal("hit 3 should land")
	}
	if b := hz.breakables[0]; !b.Broken || b.Hits != 3 {
		t.Fatalf("after hit 3: hits=%d broken=%v, expected hits=3 broken=true", b.Hits, b.Broken)
	}

	// A 4th contact attempt is a no-op: the runner falls through.
	if hit() {
		t.Error("broken platform must be permanently excluded from contact")
	}
	if b := hz.breakables[0]; b.Hits != 3 {
		t.Errorf("broken platform must not count further hits, hits=%d", b.Hits)
	}
}

func TestBreakableRestingTicksChargeNoHits(t *testing.T) {
	lv := flatLevel()
	lv.Platforms = nil
	lv.Breakables = []level.BreakablePlatform{{ID: "b1", X: 50, Y: 500, Width: 100, MaxHits: 3}}
	hz := newHazardState(lv)

	// Fresh landing from the air charges the first hit.
	r := Runner{X: 100, Y: 510 - 15, VY: 10, Radius: 15}
	res := resolveContacts(&r, 495, false, lv, hz, 1)
	if !res.landed || hz.breakables[0].Hits != 1 {
		t.Fatalf("landing should charge one hit: landed=%v hits=%d", res.landed, hz.breakables[0].Hits)
	}

	// A grounded runner re-confirms the same crossing every tick
	// (prevFootY == footY == surface, VY == 0). Grounding must hold without
	// draining the hit budget.
	for i := 0; i < 120; i++ {
		res = resolveContacts(&r, r.FootY(), true, lv, hz, 1)
		if !res.landed {
			t.Fatalf("resting tick %d should keep the runner grounded", i)
		}
	}
	if b := hz.breakables[0]; b.Hits != 1 || b.Broken {
		t.Fatalf("resting ticks must not charge hits: hits=%d broken=%v", b.Hits, b.Broken)
	}
}

func TestCategoryPriorityMovingBeatsStatic(t *testing.T) {
	// A moving platform and a static platform share the same surface line;
	// only the higher-priority moving contact applies, and it carries the
	// runner horizontally.
	lv := flatLevel()
	lv.Moving = []level.MovingPlatform{{ID: "m1", Y: 500, Width: 200, StartX: 0, EndX: 400, Speed: 3}}
	hz := newHazardState(lv)
	hz.moving[0].X = 50
	hz.moving[0].Direction = 1

	r := Runner{X: 100, Y: 505 - 15, VY: 10, Radius: 15}
	res := resolveContacts(&r, 495, false, lv, hz, 1)

	if !res.landed {
		t.Fatal("runner should land")
	}
	if r.X == 100 {
		t.Error("landing on a moving platform should carry the runner horizontally")
	}
	if want := 100 + 3.0*1*1; r.X != want {
		t.Errorf("carry: X = %g, expected %g", r.X, want)
	}
}

func TestGravityPlateLanding(t *testing.T) {
	lv := flatLevel()
	lv.Platforms = nil
	lv.Plates = []level.GravityPlate{{ID: "g1", X1: 50, Y1: 500, X2: 200}}
	hz := newHazardState(lv)

	r := Runner{X: 100, Y: 505 - 15, VY: 10, Radius: 15}
	res := resolveContacts(&r, 495, false, lv, hz, 1)

	if !res.landed || !res.flipGravity {
		t.Fatalf("plate landing should apply the standard correction and request a flip, got landed=%v flip=%v", res.landed, res.flipGravity)
	}
	if r.FootY() != 500 || r.VY != 0 {
		t.Errorf("plate landing must apply the position/velocity correction: footY=%g VY=%g", r.FootY(), r.VY)
	}
	if r.Grounded {
		t.Error("a flip plate is not a resting surface; the runner must lift off")
	}
}

func TestSpikeContactIsFatal(t *testing.T) {
	lv := flatLevel()
	lv.Spikes = []core.Rect{core.NewRect(90, 470, 20, 30)}
	hz := newHazardState(lv)

	r := Runner{X: 100, Y: 480, VY: 0, Radius: 15}
	res := resolveContacts(&r, r.FootY(), false, lv, hz, 1)

	if !res.hazardFatal || res.hazardCause != CauseSpike {
		t.Errorf("spike overlap should be fatal, got fatal=%v cause=%q", res.hazardFatal, res.hazardCause)
	}
}

func TestCeilingCrushOnlyWhileFalling(t *testing.T) {
	lv := flatLevel()
	lv.Ceilings = []level.FallingCeiling{{
		ID: "c1", X: 50, OriginalY: 100, W: 100, H: 20,
		StopY: 480, FallSpeed: 8, TriggerX: 80, TriggerWidth: 40,
	}}

	// Still in motion: overlap is fatal.
	hz := newHazardState(lv)
	hz.ceilings[0].Activated = true
	hz.ceilings[0].Y = 460

	r := Runner{X: 100, Y: 480, Radius: 15}
	res := resolveContacts(&r, r.FootY(), false, lv, hz, 1)
	if !res.hazardFatal || res.hazardCause != CauseCeiling {
		t.Errorf("falling ceiling overlap should crush, got fatal=%v cause=%q", res.hazardFatal, res.hazardCause)
	}

	// At its stop line the ceiling is inert and can no longer crush.
	hz = newHazardState(lv)
	hz.ceilings[0].Activated = true
	hz.ceilings[0].Y = 480

	res = resolveContacts(&r, r.FootY(), false, lv, hz, 1)
	if res.hazardFatal {
		t.Error("a ceiling at its stop line is static and must not crush")
	}

	// Not yet armed: no crush either, regardless of overlap.
	hz = newHazardState(lv)
	hz.ceilings[0].Y = 460

	res = resolveContacts(&r, r.FootY(), false, lv, hz, 1)
	if res.hazardFatal {
		t.Error("an unarmed ceiling must not crush")
	}
}

func TestBoundaryAndHoleFlags(t *testing.T) {
	lv := flatLevel()
	lv.HoleDepth = 550
	hz := newHazardState(lv)

	tests := []struct {
		name         string
		y            float64
		wantBoundary bool
		wantHole     bool
	}{
		{"above hole depth", 400, false, false},
		{"past hole depth", 560, false, true},
		{"past floor boundary", 720, true, true},
		{"above top boundary", -150, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Runner{X: 400, Y: tt.y, Radius: 15}
			res := resolveContacts(&r, r.FootY(), false, lv, hz, 1)
			if res.boundaryCrossed != tt.wantBoundary {
				t.Errorf("boundaryCrossed = %v, expected %v", res.boundaryCrossed, tt.wantBoundary)
			}
			if res.holeCrossed != tt.wantHole {
				t.Errorf("holeCrossed = %v, expected %v", res.holeCrossed, tt.wantHole)
			}
		})
	}
}

func TestGoalTouch(t *testing.T) {
	lv := flatLevel()
	hz := newHazardState(lv)

	r := Runner{X: 710, Y: 470, Radius: 15}
	res := resolveContacts(&r, r.FootY(), false, lv, hz, 1)
	if !res.goalTouched {
		t.Error("goal overlap should be reported")
	}

	r = Runner{X: 100, Y: 470, Radius: 15}
	res = resolveContacts(&r, r.FootY(), false, lv, hz, 1)
	if res.goalTouched {
		t.Error("goal must not be reported without overlap")
	}
}
