package shape

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// headAngle is the angular spread of each head stroke away from the reversed
// shaft direction, and headScale the stroke length as a fraction of the
// shaft.
const (
	headAngle = 30.0
	headScale = 0.2
)

// Arrow is a shaft line plus two head strokes departing the tip.
type Arrow struct {
	base
	Start  geom.Point
	Length float64
	Angle  float64

	shaft *Line
	headL *Line
	headR *Line
}

// NewArrow constructs an unlocked arrow with three unresolved child lines.
func NewArrow(ids *IDGenerator) *Arrow {
	return &Arrow{
		base:  base{id: ids.Next(KindArrow)},
		shaft: NewLine(ids),
		headL: NewLine(ids),
		headR: NewLine(ids),
	}
}

// NewArrowFrom constructs an arrow with explicit, locked geometry.
func NewArrowFrom(ids *IDGenerator, start geom.Point, length, angleDeg float64) *Arrow {
	a := NewArrow(ids)
	a.Start = start
	a.Length = length
	a.Angle = angleDeg
	a.locked = true
	a.deriveLines()
	return a
}

func (a *Arrow) Kind() Kind {
	return KindArrow
}

// Tip returns the end of the shaft.
func (a *Arrow) Tip() geom.Point {
	return geom.PointAt(a.Start, a.Angle, a.Length)
}

func (a *Arrow) deriveLines() {
	tip := a.Tip()
	a.shaft.P1 = a.Start
	a.shaft.P2 = tip
	a.shaft.locked = true
	headLen := a.Length * headScale
	a.headL.P1 = tip
	a.headL.P2 = geom.PointAt(tip, a.Angle+180-headAngle, headLen)
	a.headL.locked = true
	a.headR.P1 = tip
	a.headR.P2 = geom.PointAt(tip, a.Angle+180+headAngle, headLen)
	a.headR.locked = true
}

// AssignGeometry draws start in [20,30)^2, length in [20,40) and angle in
// [0,180) if unlocked, then derives shaft and head strokes either way.
func (a *Arrow) AssignGeometry(rng *rand.Rand) {
	if !a.locked {
		a.Start = geom.Pt(uniform(rng, 20, 30), uniform(rng, 20, 30))
		a.Length = uniform(rng, 20, 40)
		a.Angle = uniform(rng, 0, 180)
	}
	a.deriveLines()
	a.shaft.AssignGeometry(rng)
	a.headL.AssignGeometry(rng)
	a.headR.AssignGeometry(rng)
}

// SetPosition places the start point at (x, y) with the default shaft length
// of 20.
func (a *Arrow) SetPosition(x, y, angleDeg float64) {
	a.SetStart(x, y, angleDeg, 20)
}

// SetStart places the start point and direction with an explicit shaft
// length, locking geometry.
func (a *Arrow) SetStart(x, y, angleDeg, length float64) {
	a.Start = geom.Pt(x, y)
	a.Length = length
	a.Angle = angleDeg
	a.locked = true
	a.deriveLines()
}

// BoundingBox is the union of the shaft and head stroke boxes.
func (a *Arrow) BoundingBox() geom.Rect {
	return childBoundingBox(a.Children())
}

func (a *Arrow) ApplyTransform(fn geom.Transform) {
	a.Start = fn(a.Start)
	a.shaft.ApplyTransform(fn)
	a.headL.ApplyTransform(fn)
	a.headR.ApplyTransform(fn)
}

func (a *Arrow) Children() []Shape {
	return []Shape{a.shaft, a.headL, a.headR}
}

func (a *Arrow) Attributes() map[string]any {
	return map[string]any{
		"start":  pointAttr(a.Start),
		"length": a.Length,
		"angle":  a.Angle,
	}
}
