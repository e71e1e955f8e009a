package shape

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// Rectangle is a composite of four child lines derived from center, width,
// height and rotation angle. The parametric fields are the source of truth;
// the lines are a cached projection recomputed on every geometry assignment.
type Rectangle struct {
	base
	Center geom.Point
	Width  float64
	Height float64
	Angle  float64

	sides [4]*Line
}

// NewRectangle constructs an unlocked rectangle with four unresolved child
// lines.
func NewRectangle(ids *IDGenerator) *Rectangle {
	r := &Rectangle{base: base{id: ids.Next(KindRectangle)}}
	for i := range r.sides {
		r.sides[i] = NewLine(ids)
	}
	return r
}

// NewRectangleAt constructs a rectangle with explicit, locked geometry.
// Child lines reflect the parameters immediately.
func NewRectangleAt(ids *IDGenerator, center geom.Point, width, height, angleDeg float64) *Rectangle {
	r := NewRectangle(ids)
	r.Center = center
	r.Width = width
	r.Height = height
	r.Angle = angleDeg
	r.locked = true
	r.deriveSides()
	return r
}

func (r *Rectangle) Kind() Kind {
	return KindRectangle
}

// Corners returns the four vertices in winding order, rotated about the
// center.
func (r *Rectangle) Corners() []geom.Point {
	halfW := r.Width / 2
	halfH := r.Height / 2
	corners := []geom.Point{
		{X: r.Center.X - halfW, Y: r.Center.Y - halfH},
		{X: r.Center.X + halfW, Y: r.Center.Y - halfH},
		{X: r.Center.X + halfW, Y: r.Center.Y + halfH},
		{X: r.Center.X - halfW, Y: r.Center.Y + halfH},
	}
	if r.Angle != 0 {
		for i, c := range corners {
			corners[i] = geom.RotateAround(c, r.Center, r.Angle)
		}
	}
	return corners
}

func (r *Rectangle) deriveSides() {
	corners := r.Corners()
	for i, side := range r.sides {
		side.P1 = corners[i]
		side.P2 = corners[(i+1)%4]
		side.locked = true
	}
}

// AssignGeometry draws center in [30,70)^2, width and height in [10,30) and
// angle in [0,180) if unlocked, then derives the four side lines either way.
func (r *Rectangle) AssignGeometry(rng *rand.Rand) {
	if !r.locked {
		r.Center = geom.Pt(uniform(rng, 30, 70), uniform(rng, 30, 70))
		r.Width = uniform(rng, 10, 30)
		r.Height = uniform(rng, 10, 30)
		r.Angle = uniform(rng, 0, 180)
	}
	r.deriveSides()
	for _, side := range r.sides {
		side.AssignGeometry(rng)
	}
}

// SetPosition places the pre-rotation bottom-left corner at (x, y), keeping
// the current size.
func (r *Rectangle) SetPosition(x, y, angleDeg float64) {
	r.SetBottomLeft(x, y, angleDeg, r.Width, r.Height)
}

// SetBottomLeft anchors the rectangle by its pre-rotation bottom-left corner:
// the half-size offset to the center is rotated about the anchor. Locks
// geometry and re-derives the side lines.
func (r *Rectangle) SetBottomLeft(x, y, angleDeg, width, height float64) {
	r.Width = width
	r.Height = height
	r.Angle = angleDeg
	anchor := geom.Pt(x, y)
	r.Center = geom.RotateAround(anchor.Add(geom.Pt(width/2, height/2)), anchor, angleDeg)
	r.locked = true
	r.deriveSides()
}

// Area returns width*height.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns 2*(width+height).
func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// BoundingBox is the union of the four side lines' boxes, so it tracks the
// rotated corners exactly.
func (r *Rectangle) BoundingBox() geom.Rect {
	return childBoundingBox(r.Children())
}

func (r *Rectangle) ApplyTransform(fn geom.Transform) {
	r.Center = fn(r.Center)
	for _, side := range r.sides {
		side.ApplyTransform(fn)
	}
}

func (r *Rectangle) Children() []Shape {
	children := make([]Shape, len(r.sides))
	for i, side := range r.sides {
		children[i] = side
	}
	return children
}

func (r *Rectangle) Attributes() map[string]any {
	return map[string]any{
		"center": pointAttr(r.Center),
		"width":  r.Width,
		"height": r.Height,
		"angle":  r.Angle,
	}
}
