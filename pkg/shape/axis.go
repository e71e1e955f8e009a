package shape

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// AxisOptions configures an Axis composite.
type AxisOptions struct {
	// Length and Angle describe the axis line.
	Length float64
	Angle  float64
	// MinTickSpacing and MaxTickSpacing bound each gap drawn while
	// placing ticks greedily along the axis.
	MinTickSpacing float64
	MaxTickSpacing float64
	// MinTickLength and MaxTickLength bound each tick's length.
	MinTickLength float64
	MaxTickLength float64
	// Start anchors the axis; nil draws from [10,20)x[60,80) at
	// assignment.
	Start *geom.Point
}

// DefaultAxisOptions returns the standard Axis configuration.
func DefaultAxisOptions() AxisOptions {
	return AxisOptions{
		Length:         50,
		Angle:          30,
		MinTickSpacing: 5,
		MaxTickSpacing: 10,
		MinTickLength:  2,
		MaxTickLength:  4,
	}
}

// Axis is one axis line plus tick lines placed greedily along it, each a
// short segment perpendicular to the axis.
type Axis struct {
	base
	Opts AxisOptions
	P1   geom.Point
	P2   geom.Point

	line  *Line
	ticks []*Line

	ids *IDGenerator
}

// NewAxis constructs an unlocked axis. Tick lines are created during
// assignment since their count depends on the random spacing draws.
func NewAxis(ids *IDGenerator, opts AxisOptions) *Axis {
	return &Axis{
		base: base{id: ids.Next(KindAxis)},
		Opts: opts,
		line: NewLine(ids),
		ids:  ids,
	}
}

func (a *Axis) Kind() Kind {
	return KindAxis
}

// Line returns the axis line itself.
func (a *Axis) Line() *Line {
	return a.line
}

// Ticks returns the tick lines in placement order.
func (a *Axis) Ticks() []*Line {
	return a.ticks
}

// AssignGeometry places the axis line from the start position along the
// configured angle, then walks the axis placing ticks at random spacing until
// the next gap would overrun the length. Each tick is perpendicular to the
// axis and centered on it. Assignment locks the composite; SetPosition
// unlocks it for re-derivation.
func (a *Axis) AssignGeometry(rng *rand.Rand) {
	if !a.locked {
		var start geom.Point
		if a.Opts.Start != nil {
			start = *a.Opts.Start
		} else {
			start = geom.Pt(uniform(rng, 10, 20), uniform(rng, 60, 80))
		}
		a.P1 = start
		a.P2 = geom.PointAt(start, a.Opts.Angle, a.Opts.Length)
		a.line.P1 = a.P1
		a.line.P2 = a.P2
		a.line.locked = true

		a.ticks = a.ticks[:0]
		offset := 0.0
		for {
			gap := uniform(rng, a.Opts.MinTickSpacing, a.Opts.MaxTickSpacing)
			if offset+gap > a.Opts.Length {
				break
			}
			offset += gap
			center := geom.PointAt(start, a.Opts.Angle, offset)
			halfLen := uniform(rng, a.Opts.MinTickLength, a.Opts.MaxTickLength) / 2
			arm := geom.PointAt(geom.Point{}, a.Opts.Angle+90, halfLen)
			tick := NewLineBetween(a.ids, center.Sub(arm), center.Add(arm))
			a.ticks = append(a.ticks, tick)
		}
		a.locked = true
	}
	a.line.AssignGeometry(rng)
	for _, tick := range a.ticks {
		tick.AssignGeometry(rng)
	}
}

// SetPosition re-anchors the axis start at (x, y) with a new angle, keeping
// the current length, and unlocks the composite so the next assignment
// re-derives the line and ticks.
func (a *Axis) SetPosition(x, y, angleDeg float64) {
	start := geom.Pt(x, y)
	a.Opts.Start = &start
	a.Opts.Angle = angleDeg
	a.locked = false
}

// BoundingBox covers the axis endpoints; ticks extend at most a couple of
// units past the line and are not counted, matching the axis' own extent
// definition.
func (a *Axis) BoundingBox() geom.Rect {
	return geom.RectFromPoints(a.P1, a.P2)
}

func (a *Axis) ApplyTransform(fn geom.Transform) {
	a.P1 = fn(a.P1)
	a.P2 = fn(a.P2)
	if a.Opts.Start != nil {
		start := fn(*a.Opts.Start)
		a.Opts.Start = &start
	}
	a.line.ApplyTransform(fn)
	for _, tick := range a.ticks {
		tick.ApplyTransform(fn)
	}
}

func (a *Axis) Children() []Shape {
	children := make([]Shape, 0, 1+len(a.ticks))
	children = append(children, a.line)
	for _, tick := range a.ticks {
		children = append(children, tick)
	}
	return children
}

func (a *Axis) Attributes() map[string]any {
	attrs := map[string]any{
		"p1":     pointAttr(a.P1),
		"p2":     pointAttr(a.P2),
		"length": a.Opts.Length,
		"angle":  a.Opts.Angle,
	}
	if a.Opts.Start != nil {
		attrs["start"] = pointAttr(*a.Opts.Start)
	}
	return attrs
}
