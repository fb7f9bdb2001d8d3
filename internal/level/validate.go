package level

import "fmt"

// ValidationError contains details about a malformed geometry bundle.
// Configuration errors fail the attempt start; the simulation itself never
// sees an invalid level.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the geometry bundle for configuration errors. It is called
// before any tick runs; silent defaults would corrupt the crossing-detection
// math, so every dynamic element must carry complete, coherent bounds.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_CANVAS",
			Message: fmt.Sprintf("canvas must be positive, got %gx%g", l.Width, l.Height),
		}
	}
	if l.TimeLimit <= 0 {
		return ValidationError{
			Code:    "INVALID_TIME_LIMIT",
			Message: fmt.Sprintf("time limit must be positive, got %g", l.TimeLimit),
		}
	}
	if l.Goal.W <= 0 || l.Goal.H <= 0 {
		return ValidationError{
			Code:    "MISSING_GOAL",
			Message: "level has no goal rectangle",
		}
	}

	for i, p := range l.Platforms {
		if p.X2 <= p.X1 {
			return ValidationError{
				Code:    "INVALID_PLATFORM",
				Message: fmt.Sprintf("platform %d has non-positive extent (x1=%g, x2=%g)", i, p.X1, p.X2),
			}
		}
	}

	if err := l.validateMoving(); err != nil {
		return err
	}
	if err := l.validateBreakables(); err != nil {
		return err
	}
	if err := l.validatePatrols(); err != nil {
		return err
	}
	if err := l.validateCeilings(); err != nil {
		return err
	}

	for _, g := range l.Plates {
		if g.X2 <= g.X1 {
			return ValidationError{
				Code:    "INVALID_PLATE",
				Message: fmt.Sprintf("gravity plate %q has non-positive extent (x1=%g, x2=%g)", g.ID, g.X1, g.X2),
			}
		}
	}

	ids := make(map[string]bool)
	for _, id := range l.elementIDs() {
		if id == "" {
			return ValidationError{
				Code:    "MISSING_ID",
				Message: "dynamic element has an empty id",
			}
		}
		if ids[id] {
			return ValidationError{
				Code:    "DUPLICATE_ID",
				Message: fmt.Sprintf("dynamic element id %q is not unique", id),
			}
		}
		ids[id] = true
	}

	return nil
}

func (l *Level) validateMoving() error {
	for _, m := range l.Moving {
		if m.Width <= 0 {
			return ValidationError{
				Code:    "INVALID_MOVING_PLATFORM",
				Message: fmt.Sprintf("moving platform %q has non-positive width %g", m.ID, m.Width),
			}
		}
		if m.EndX <= m.StartX {
			return ValidationError{
				Code:    "INVALID_MOVING_PLATFORM",
				Message: fmt.Sprintf("moving platform %q has empty patrol range [%g, %g]", m.ID, m.StartX, m.EndX),
			}
		}
		if m.Speed <= 0 {
			return ValidationError{
				Code:    "INVALID_MOVING_PLATFORM",
				Message: fmt.Sprintf("moving platform %q has non-positive speed %g", m.ID, m.Speed),
			}
		}
	}
	return nil
}

func (l *Level) validateBreakables() error {
	for _, b := range l.Breakables {
		if b.Width <= 0 {
			return ValidationError{
				Code:    "INVALID_BREAKABLE",
				Message: fmt.Sprintf("breakable platform %q has non-positive width %g", b.ID, b.Width),
			}
		}
		if b.MaxHits <= 0 {
			return ValidationError{
				Code:    "INVALID_BREAKABLE",
				Message: fmt.Sprintf("breakable platform %q must take at least one hit, got %d", b.ID, b.MaxHits),
			}
		}
	}
	return nil
}

func (l *Level) validatePatrols() error {
	for _, p := range l.Patrols {
		// Unknown axis is rejected here rather than silently ignored in the
		// motion driver.
		if p.Axis != AxisHorizontal && p.Axis != AxisVertical {
			return ValidationError{
				Code:    "INVALID_AXIS",
				Message: fmt.Sprintf("patrol spike %q has unknown axis %q", p.ID, p.Axis),
			}
		}
		if p.End <= p.Start {
			return ValidationError{
				Code:    "INVALID_PATROL",
				Message: fmt.Sprintf("patrol spike %q has empty patrol range [%g, %g]", p.ID, p.Start, p.End),
			}
		}
		if p.Speed <= 0 {
			return ValidationError{
				Code:    "INVALID_PATROL",
				Message: fmt.Sprintf("patrol spike %q has non-positive speed %g", p.ID, p.Speed),
			}
		}
		if p.W <= 0 || p.H <= 0 {
			return ValidationError{
				Code:    "INVALID_PATROL",
				Message: fmt.Sprintf("patrol spike %q has non-positive size %gx%g", p.ID, p.W, p.H),
			}
		}
	}
	return nil
}

func (l *Level) validateCeilings() error {
	for _, c := range l.Ceilings {
		if c.StopY <= c.OriginalY {
			return ValidationError{
				Code:    "INVALID_CEILING",
				Message: fmt.Sprintf("falling ceiling %q must stop below its origin (origin=%g, stop=%g)", c.ID, c.OriginalY, c.StopY),
			}
		}
		if c.FallSpeed <= 0 {
			return ValidationError{
				Code:    "INVALID_CEILING",
				Message: fmt.Sprintf("falling ceiling %q has non-positive fall speed %g", c.ID, c.FallSpeed),
			}
		}
		if c.TriggerWidth <= 0 {
			return ValidationError{
				Code:    "INVALID_CEILING",
				Message: fmt.Sprintf("falling ceiling %q has non-positive trigger width %g", c.ID, c.TriggerWidth),
			}
		}
		if c.W <= 0 || c.H <= 0 {
			return ValidationError{
				Code:    "INVALID_CEILING",
				Message: fmt.Sprintf("falling ceiling %q has non-positive size %gx%g", c.ID, c.W, c.H),
			}
		}
	}
	return nil
}

// elementIDs collects the ids of all dynamic elements. Stable, unique ids
// key the runtime hazard state rebuilt on every (re)start.
func (l *Level) elementIDs() []string {
	ids := make([]string, 0, len(l.Moving)+len(l.Breakables)+len(l.Patrols)+len(l.Ceilings)+len(l.Plates))
	for _, m := range l.Moving {
		ids = append(ids, m.ID)
	}
	for _, b := range l.Breakables {
		ids = append(ids, b.ID)
	}
	for _, p := range l.Patrols {
		ids = append(ids, p.ID)
	}
	for _, c := range l.Ceilings {
		ids = append(ids, c.ID)
	}
	for _, g := range l.Plates {
		ids = append(ids, g.ID)
	}
	return ids
}
