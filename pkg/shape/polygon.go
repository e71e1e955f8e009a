package shape

import (
	"math"
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// polygonPoolSize is the number of preallocated child lines; Sides of them
// are active, the rest are zeroed out on every derivation.
const polygonPoolSize = 10

// Polygon is a regular polygon: Sides vertices placed at equal angular steps
// of 360/Sides around the center, starting at Angle.
type Polygon struct {
	base
	Center geom.Point
	Sides  int
	Radius float64
	Angle  float64

	pool [polygonPoolSize]*Line
}

// NewPolygon constructs an unlocked polygon with the minimal default of three
// sides.
func NewPolygon(ids *IDGenerator) *Polygon {
	p := &Polygon{base: base{id: ids.Next(KindPolygon)}, Sides: 3}
	for i := range p.pool {
		p.pool[i] = NewLine(ids)
	}
	return p
}

// NewPolygonAt constructs a polygon with explicit, locked geometry.
func NewPolygonAt(ids *IDGenerator, center geom.Point, sides int, radius, angleDeg float64) *Polygon {
	p := NewPolygon(ids)
	p.Center = center
	p.Sides = sides
	p.Radius = radius
	p.Angle = angleDeg
	p.locked = true
	p.deriveSides()
	return p
}

func (p *Polygon) Kind() Kind {
	return KindPolygon
}

// Vertices returns the Sides vertices in angular order. A polygon with fewer
// than three sides is degenerate and yields no vertices.
func (p *Polygon) Vertices() []geom.Point {
	if p.Sides < 3 {
		return nil
	}
	step := 360.0 / float64(p.Sides)
	verts := make([]geom.Point, p.Sides)
	for i := range verts {
		verts[i] = geom.PointAt(p.Center, p.Angle+float64(i)*step, p.Radius)
	}
	return verts
}

func (p *Polygon) deriveSides() {
	verts := p.Vertices()
	n := len(verts)
	for i, line := range p.pool {
		if i < n {
			line.P1 = verts[i]
			line.P2 = verts[(i+1)%n]
		} else {
			line.P1 = geom.Point{}
			line.P2 = geom.Point{}
		}
		line.locked = true
	}
}

// AssignGeometry draws center in [30,70)^2, sides in {3..6}, radius in
// [10,20) and angle in [0,180) if unlocked, then derives the active side
// lines and zeroes the rest of the pool.
func (p *Polygon) AssignGeometry(rng *rand.Rand) {
	if !p.locked {
		p.Center = geom.Pt(uniform(rng, 30, 70), uniform(rng, 30, 70))
		p.Sides = intBetween(rng, 3, 6)
		p.Radius = uniform(rng, 10, 20)
		p.Angle = uniform(rng, 0, 180)
	}
	p.deriveSides()
	for _, line := range p.pool {
		line.AssignGeometry(rng)
	}
}

// SetPosition places the polygon with its center one radius rightward of
// (x, y), keeping the current sides and radius.
func (p *Polygon) SetPosition(x, y, angleDeg float64) {
	p.SetAnchor(x, y, angleDeg, p.Sides, p.Radius)
}

// SetAnchor places the center at (x+radius, y) with the given sides and
// starting angle. Locks geometry and re-derives the side lines.
func (p *Polygon) SetAnchor(x, y, angleDeg float64, sides int, radius float64) {
	p.Sides = sides
	p.Radius = radius
	p.Angle = angleDeg
	p.Center = geom.Pt(x+radius, y)
	p.locked = true
	p.deriveSides()
}

// Area returns the regular-polygon area 0.5*n*r^2*sin(2*pi/n). Degenerate
// side counts yield 0.
func (p *Polygon) Area() float64 {
	if p.Sides < 3 {
		return 0
	}
	n := float64(p.Sides)
	return 0.5 * n * p.Radius * p.Radius * math.Sin(2*math.Pi/n)
}

// BoundingBox covers the active vertices only.
func (p *Polygon) BoundingBox() geom.Rect {
	return geom.RectFromPoints(p.Vertices()...)
}

func (p *Polygon) ApplyTransform(fn geom.Transform) {
	p.Center = fn(p.Center)
	for _, line := range p.pool {
		line.ApplyTransform(fn)
	}
}

// Children returns only the active side lines; the idle remainder of the pool
// is invisible to traversal.
func (p *Polygon) Children() []Shape {
	n := p.Sides
	if n < 3 || n > polygonPoolSize {
		return nil
	}
	children := make([]Shape, n)
	for i := 0; i < n; i++ {
		children[i] = p.pool[i]
	}
	return children
}

func (p *Polygon) Attributes() map[string]any {
	return map[string]any{
		"center": pointAttr(p.Center),
		"sides":  p.Sides,
		"radius": p.Radius,
		"angle":  p.Angle,
	}
}
