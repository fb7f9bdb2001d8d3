// Package level defines the immutable geometry bundle consumed by the
// simulation engine. A Level is produced externally (built-in stages, an
// editor, a future loader) and handed to the engine read-only for the
// duration of an attempt; all mutable hazard state is derived from it at
// attempt start.
package level

import "github.com/vovakirdan/jump-runner/internal/core"

// Platform is a static horizontal surface the runner can land on, expressed
// as a line segment. Y2 is carried for completeness; contact resolution uses
// Y1 as the surface height.
type Platform struct {
	X1, Y1 float64
	X2, Y2 float64
}

// MovingPlatform patrols horizontally between StartX and EndX at Speed,
// carrying the runner while it stands on it. The platform surface sits at Y;
// Width is the rideable extent from the platform's current left edge.
type MovingPlatform struct {
	ID     string
	Y      float64
	Width  float64
	StartX float64
	EndX   float64
	Speed  float64
}

// BreakablePlatform is a surface that shatters after MaxHits landings.
type BreakablePlatform struct {
	ID      string
	X       float64
	Y       float64
	Width   float64
	MaxHits int
}

// Axis is the movement axis of a patrol spike.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)

// PatrolSpike is a lethal rectangle that travels back and forth along one
// axis between Start and End at Speed. X and Y give the spawn position; the
// coordinate on the patrol axis is replaced by runtime state.
type PatrolSpike struct {
	ID     string
	Axis   Axis
	X, Y   float64
	W, H   float64
	Start  float64
	End    float64
	Speed  float64
}

// FallingCeiling is a crusher armed when the runner's x enters the trigger
// window. Once armed it falls from OriginalY toward StopY at FallSpeed and
// becomes inert when it lands.
type FallingCeiling struct {
	ID           string
	X            float64
	OriginalY    float64
	W, H         float64
	StopY        float64
	FallSpeed    float64
	TriggerX     float64
	TriggerWidth float64
}

// GravityPlate is a surface that reverses the gravity direction when landed
// on. The landing itself behaves like a normal platform contact.
type GravityPlate struct {
	ID     string
	X1, Y1 float64
	X2     float64
}

// Level is the immutable geometry bundle for one stage.
type Level struct {
	ID   string
	Name string

	// Canvas dimensions; the fatal fall boundary is Height+100 and the
	// flipped-gravity escape boundary is -100.
	Width  float64
	Height float64

	// HoleDepth is a shallower stage-specific pit threshold. Zero disables it.
	HoleDepth float64

	// TimeLimit is the attempt budget in seconds.
	TimeLimit float64

	SpawnX, SpawnY float64

	Platforms  []Platform
	Spikes     []core.Rect
	Goal       core.Rect
	Moving     []MovingPlatform
	Breakables []BreakablePlatform
	Patrols    []PatrolSpike
	Ceilings   []FallingCeiling
	Plates     []GravityPlate
}

// Rect returns the spike's current rectangle given its live position on the
// patrol axis.
func (p PatrolSpike) Rect(posX, posY float64) core.Rect {
	return core.NewRect(posX, posY, p.W, p.H)
}

// Rect returns the ceiling's rectangle at the given current top coordinate.
func (c FallingCeiling) Rect(currentY float64) core.Rect {
	return core.NewRect(c.X, currentY, c.W, c.H)
}
