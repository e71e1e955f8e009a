package shape

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// Line is a two-endpoint segment. It is the leaf every composite shape
// bottoms out in, and a geometric primitive in its own right.
type Line struct {
	base
	P1 geom.Point
	P2 geom.Point
}

// NewLine constructs an unlocked line; geometry is resolved by a later
// AssignGeometry pass.
func NewLine(ids *IDGenerator) *Line {
	return &Line{base: base{id: ids.Next(KindLine)}}
}

// NewLineBetween constructs a line with explicit, locked endpoints.
func NewLineBetween(ids *IDGenerator, p1, p2 geom.Point) *Line {
	return &Line{base: base{id: ids.Next(KindLine), locked: true}, P1: p1, P2: p2}
}

func (l *Line) Kind() Kind {
	return KindLine
}

// AssignGeometry draws length in [10,30), angle in [0,360) and center in
// [20,80)^2, deriving the endpoints from them. Locked lines are untouched.
func (l *Line) AssignGeometry(rng *rand.Rand) {
	if l.locked {
		return
	}
	length := uniform(rng, 10, 30)
	angle := uniform(rng, 0, 360)
	center := geom.Pt(uniform(rng, 20, 80), uniform(rng, 20, 80))
	half := geom.PointAt(geom.Point{}, angle, length/2)
	l.P1 = center.Sub(half)
	l.P2 = center.Add(half)
}

// SetPosition places the start point at (x, y) with the default length of 10.
func (l *Line) SetPosition(x, y, angleDeg float64) {
	l.SetStart(x, y, angleDeg, 10)
}

// SetStart places the start point and direction with an explicit length,
// locking geometry.
func (l *Line) SetStart(x, y, angleDeg, length float64) {
	l.P1 = geom.Pt(x, y)
	l.P2 = geom.PointAt(l.P1, angleDeg, length)
	l.locked = true
}

// Length returns the Euclidean length of the segment.
func (l *Line) Length() float64 {
	length, _ := geom.LengthAngle(l.P1, l.P2)
	return length
}

// Angle returns the direction angle of the P1->P2 vector in [0, 360).
// A zero-length line yields 0.
func (l *Line) Angle() float64 {
	_, angle := geom.LengthAngle(l.P1, l.P2)
	return angle
}

func (l *Line) BoundingBox() geom.Rect {
	return geom.RectFromPoints(l.P1, l.P2)
}

func (l *Line) ApplyTransform(fn geom.Transform) {
	l.P1 = fn(l.P1)
	l.P2 = fn(l.P2)
}

func (l *Line) Children() []Shape {
	return nil
}

func (l *Line) Attributes() map[string]any {
	return map[string]any{
		"p1": pointAttr(l.P1),
		"p2": pointAttr(l.P2),
	}
}
