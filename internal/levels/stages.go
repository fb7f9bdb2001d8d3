package levels

import (
	"github.com/vovakirdan/jump-runner/internal/core"
	"github.com/vovakirdan/jump-runner/internal/level"
)

// Built-in stages. Layout numbers assume the stock tuning (gravity 0.6,
// jump -12, move speed 4, game speed 2.0), which gives a max jump height of
// 120px and a safe jump distance of roughly 224px. Platform widths stay at
// 60px or wider so a landing is always survivable at full horizontal speed.

func init() {
	Register("stage1", firstSteps)
	Register("stage2", movingTransport)
	Register("stage3", gauntlet)
}

// firstSteps teaches the auto-jump rhythm: flat ground, one pit, one spike.
func firstSteps() *level.Level {
	return &level.Level{
		ID:        "stage1",
		Name:      "First Steps",
		Width:     1200,
		Height:    600,
		TimeLimit: 30,
		SpawnX:    60,
		SpawnY:    450,
		Platforms: []level.Platform{
			{X1: 0, Y1: 500, X2: 400, Y2: 500},
			{X1: 480, Y1: 500, X2: 800, Y2: 500},
			{X1: 880, Y1: 500, X2: 1200, Y2: 500},
		},
		Spikes: []core.Rect{
			core.NewRect(640, 470, 30, 30),
		},
		Goal: core.NewRect(1120, 440, 40, 60),
	}
}

// movingTransport is the moving-platform stage: two long transports over
// pits, bounded by solid ground on either side.
func movingTransport() *level.Level {
	return &level.Level{
		ID:        "stage2",
		Name:      "Moving Transport",
		Width:     2500,
		Height:    600,
		HoleDepth: 610,
		TimeLimit: 60,
		SpawnX:    60,
		SpawnY:    450,
		Platforms: []level.Platform{
			{X1: 0, Y1: 500, X2: 300, Y2: 500},
			{X1: 850, Y1: 500, X2: 1100, Y2: 500},
			{X1: 1780, Y1: 500, X2: 2500, Y2: 500},
		},
		Moving: []level.MovingPlatform{
			{ID: "mp1", Y: 480, Width: 100, StartX: 320, EndX: 760, Speed: 2},
			{ID: "mp2", Y: 460, Width: 100, StartX: 1150, EndX: 1690, Speed: 3},
		},
		Spikes: []core.Rect{
			core.NewRect(960, 470, 30, 30),
			core.NewRect(2100, 470, 30, 30),
		},
		Goal: core.NewRect(2410, 440, 50, 60),
	}
}

// gauntlet exercises every hazard type: breakable platforms over a spiked
// pit, a patrol spike on a walkway, a falling ceiling, a vertical patrol,
// and a gravity-flip plate that launches the runner up to the goal.
func gauntlet() *level.Level {
	return &level.Level{
		ID:        "stage3",
		Name:      "The Gauntlet",
		Width:     2000,
		Height:    600,
		TimeLimit: 45,
		SpawnX:    60,
		SpawnY:    450,
		Platforms: []level.Platform{
			{X1: 0, Y1: 500, X2: 250, Y2: 500},
			{X1: 560, Y1: 500, X2: 900, Y2: 500},
			{X1: 950, Y1: 500, X2: 1300, Y2: 500},
			{X1: 1380, Y1: 500, X2: 1700, Y2: 500},
		},
		Breakables: []level.BreakablePlatform{
			{ID: "bp1", X: 300, Y: 500, Width: 80, MaxHits: 2},
			{ID: "bp2", X: 430, Y: 480, Width: 80, MaxHits: 3},
		},
		Patrols: []level.PatrolSpike{
			{ID: "ps1", Axis: level.AxisHorizontal, X: 600, Y: 474, W: 26, H: 26, Start: 580, End: 860, Speed: 3},
			{ID: "ps2", Axis: level.AxisVertical, X: 1336, Y: 300, W: 26, H: 26, Start: 250, End: 480, Speed: 4},
		},
		Ceilings: []level.FallingCeiling{
			{ID: "fc1", X: 950, OriginalY: 60, W: 120, H: 24, StopY: 440, FallSpeed: 6, TriggerX: 900, TriggerWidth: 120},
		},
		Plates: []level.GravityPlate{
			{ID: "gp1", X1: 1740, Y1: 500, X2: 1860},
		},
		Spikes: []core.Rect{
			core.NewRect(515, 560, 40, 40),
		},
		Goal: core.NewRect(1750, 80, 100, 60),
	}
}
