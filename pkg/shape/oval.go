package shape

import (
	"math"
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// Oval is an ellipse described by center, width, height and rotation angle in
// degrees. It has no child lines; renderers read its parameters directly.
type Oval struct {
	base
	Center geom.Point
	Width  float64
	Height float64
	Angle  float64
}

// NewOval constructs an unlocked oval with the minimal default size.
func NewOval(ids *IDGenerator) *Oval {
	return &Oval{base: base{id: ids.Next(KindOval)}, Width: 10, Height: 10}
}

// NewOvalAt constructs an oval with explicit, locked geometry.
func NewOvalAt(ids *IDGenerator, center geom.Point, width, height, angleDeg float64) *Oval {
	return &Oval{
		base:   base{id: ids.Next(KindOval), locked: true},
		Center: center,
		Width:  width,
		Height: height,
		Angle:  angleDeg,
	}
}

func (o *Oval) Kind() Kind {
	return KindOval
}

// AssignGeometry draws center in [20,80)^2, width and height in [10,30) and
// angle in [0,360). Locked ovals are untouched.
func (o *Oval) AssignGeometry(rng *rand.Rand) {
	if o.locked {
		return
	}
	o.Center = geom.Pt(uniform(rng, 20, 80), uniform(rng, 20, 80))
	o.Width = uniform(rng, 10, 30)
	o.Height = uniform(rng, 10, 30)
	o.Angle = uniform(rng, 0, 360)
}

// SetPosition places the pre-rotation bottom-left corner of the bounding
// extent at (x, y), keeping the current size.
func (o *Oval) SetPosition(x, y, angleDeg float64) {
	o.SetBottomLeft(x, y, angleDeg, o.Width, o.Height)
}

// SetBottomLeft anchors the oval by its pre-rotation bottom-left corner: the
// half-size offset to the center is rotated about the anchor. Locks geometry.
func (o *Oval) SetBottomLeft(x, y, angleDeg, width, height float64) {
	anchor := geom.Pt(x, y)
	o.Center = geom.RotateAround(anchor.Add(geom.Pt(width/2, height/2)), anchor, angleDeg)
	o.Width = width
	o.Height = height
	o.Angle = angleDeg
	o.locked = true
}

// Area returns the ellipse area pi*(w/2)*(h/2).
func (o *Oval) Area() float64 {
	return math.Pi * (o.Width / 2) * (o.Height / 2)
}

// BoundingBox covers the unrotated extent centered on Center.
func (o *Oval) BoundingBox() geom.Rect {
	return geom.Rect{
		Left:   o.Center.X - o.Width/2,
		Top:    o.Center.Y - o.Height/2,
		Right:  o.Center.X + o.Width/2,
		Bottom: o.Center.Y + o.Height/2,
	}
}

func (o *Oval) ApplyTransform(fn geom.Transform) {
	o.Center = fn(o.Center)
}

func (o *Oval) Children() []Shape {
	return nil
}

func (o *Oval) Attributes() map[string]any {
	return map[string]any{
		"center": pointAttr(o.Center),
		"width":  o.Width,
		"height": o.Height,
		"angle":  o.Angle,
	}
}
