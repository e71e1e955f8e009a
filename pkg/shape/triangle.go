package shape

import (
	"math"
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// Triangle is a composite of three child lines derived from three vertices.
type Triangle struct {
	base
	Vertices [3]geom.Point

	sides [3]*Line
}

// NewTriangle constructs an unlocked triangle with three unresolved child
// lines.
func NewTriangle(ids *IDGenerator) *Triangle {
	t := &Triangle{base: base{id: ids.Next(KindTriangle)}}
	for i := range t.sides {
		t.sides[i] = NewLine(ids)
	}
	return t
}

// NewTriangleFrom constructs a triangle with explicit, locked vertices.
func NewTriangleFrom(ids *IDGenerator, vertices [3]geom.Point) *Triangle {
	t := NewTriangle(ids)
	t.Vertices = vertices
	t.locked = true
	t.deriveSides()
	return t
}

func (t *Triangle) Kind() Kind {
	return KindTriangle
}

func (t *Triangle) deriveSides() {
	for i, side := range t.sides {
		side.P1 = t.Vertices[i]
		side.P2 = t.Vertices[(i+1)%3]
		side.locked = true
	}
}

// AssignGeometry draws the first vertex in [20,80)^2 and the other two as
// offsets of [10,30)/[-20,20) and [-20,20)/[10,30) from it, then derives the
// side lines either way.
func (t *Triangle) AssignGeometry(rng *rand.Rand) {
	if !t.locked {
		v0 := geom.Pt(uniform(rng, 20, 80), uniform(rng, 20, 80))
		v1 := geom.Pt(v0.X+uniform(rng, 10, 30), v0.Y+uniform(rng, -20, 20))
		v2 := geom.Pt(v0.X+uniform(rng, -20, 20), v0.Y+uniform(rng, 10, 30))
		t.Vertices = [3]geom.Point{v0, v1, v2}
	}
	t.deriveSides()
	for _, side := range t.sides {
		side.AssignGeometry(rng)
	}
}

// SetPosition places the first vertex at (x, y) with the default edge
// offsets.
func (t *Triangle) SetPosition(x, y, angleDeg float64) {
	t.SetFirstVertex(x, y, angleDeg, 10, 10)
}

// SetFirstVertex anchors the triangle at its first vertex: the second vertex
// lies dx away along angleDeg, the third dy away at angleDeg+45 degrees.
// Locks geometry and re-derives the side lines.
func (t *Triangle) SetFirstVertex(x, y, angleDeg, dx, dy float64) {
	v0 := geom.Pt(x, y)
	t.Vertices = [3]geom.Point{
		v0,
		geom.PointAt(v0, angleDeg, dx),
		geom.PointAt(v0, angleDeg+45, dy),
	}
	t.locked = true
	t.deriveSides()
}

// Area returns the triangle area by the shoelace formula.
func (t *Triangle) Area() float64 {
	a, b, c := t.Vertices[0], t.Vertices[1], t.Vertices[2]
	return math.Abs(a.X*(b.Y-c.Y)+b.X*(c.Y-a.Y)+c.X*(a.Y-b.Y)) / 2
}

func (t *Triangle) BoundingBox() geom.Rect {
	return geom.RectFromPoints(t.Vertices[:]...)
}

func (t *Triangle) ApplyTransform(fn geom.Transform) {
	for i, v := range t.Vertices {
		t.Vertices[i] = fn(v)
	}
	for _, side := range t.sides {
		side.ApplyTransform(fn)
	}
}

func (t *Triangle) Children() []Shape {
	children := make([]Shape, len(t.sides))
	for i, side := range t.sides {
		children[i] = side
	}
	return children
}

func (t *Triangle) Attributes() map[string]any {
	return map[string]any{
		"vertices": [][]float64{
			pointAttr(t.Vertices[0]),
			pointAttr(t.Vertices[1]),
			pointAttr(t.Vertices[2]),
		},
	}
}
