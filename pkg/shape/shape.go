// Package shape implements the composite shape model: the closed set of
// primitive and composite 2-D shapes a scene is built from.
//
// Every shape owns its parametric description (endpoints, center/size/angle,
// vertices) as the source of truth; composite shapes derive child Line
// geometry from it whenever their parameters are set. Geometry supplied
// explicitly locks a shape: randomized assignment then becomes a no-op, so
// scenario-mandated placement survives the assignment pass.
package shape

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/errors"
	"github.com/go-scenery/scenery/pkg/geom"
)

// Kind identifies a shape variant. The set is closed: every Shape value is
// one of these kinds.
type Kind int

const (
	// KindLine is a two-endpoint segment, the leaf of every composite.
	KindLine Kind = iota
	// KindOval is an ellipse described by center, size and rotation.
	KindOval
	// KindRectangle is four lines derived from center/size/angle.
	KindRectangle
	// KindTriangle is three lines derived from three vertices.
	KindTriangle
	// KindPolygon is a regular polygon derived from center/radius/sides.
	KindPolygon
	// KindArrow is a shaft line plus two head strokes.
	KindArrow
	// KindBars is a row of rectangles laid out along a common angle.
	KindBars
	// KindAxis is an axis line with perpendicular tick lines.
	KindAxis
	// KindBarGraph is a Bars child framed by one or two Axis children.
	KindBarGraph

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindOval:
		return "Oval"
	case KindRectangle:
		return "Rectangle"
	case KindTriangle:
		return "Triangle"
	case KindPolygon:
		return "Polygon"
	case KindArrow:
		return "Arrow"
	case KindBars:
		return "Bars"
	case KindAxis:
		return "Axis"
	case KindBarGraph:
		return "BarGraph"
	default:
		return "Unknown"
	}
}

// Kinds returns every shape kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		ks = append(ks, k)
	}
	return ks
}

// ParseKind maps a kind name to its Kind. Unknown names are a configuration
// error.
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, errors.Configf("shape.ParseKind", "unknown shape kind %q", name)
}

// Shape is the capability set shared by every shape variant.
type Shape interface {
	// Kind returns the variant tag.
	Kind() Kind
	// ID returns the per-kind sequential id assigned at construction.
	// Ids label shapes for tracing; they never express equality or
	// ownership.
	ID() int
	// Locked reports whether geometry was explicitly supplied.
	Locked() bool
	// AssignGeometry draws randomized parameters from the kind's valid
	// range if the shape is unlocked, derives all children, and recurses.
	// Locked shapes only recurse.
	AssignGeometry(rng *rand.Rand)
	// SetPosition places the shape's reference point (bottom-left corner
	// pre-rotation for area shapes, start point for Line/Arrow) and
	// orientation using the kind's default sizing, locking geometry.
	SetPosition(x, y, angleDeg float64)
	// BoundingBox returns the axis-aligned box covering the shape's own
	// and children's geometry. It is recomputed on every call.
	BoundingBox() geom.Rect
	// ApplyTransform remaps every coordinate-bearing field recursively.
	// Used only during scene-level canvas fitting.
	ApplyTransform(fn geom.Transform)
	// Children returns the owned child shapes in order.
	Children() []Shape
	// Attributes returns a flat view of the parametric fields for the
	// external serializer.
	Attributes() map[string]any
}

// base carries the identity and lock state shared by all shape kinds.
type base struct {
	id     int
	locked bool
}

func (b *base) ID() int {
	return b.id
}

func (b *base) Locked() bool {
	return b.locked
}

// IDGenerator hands out per-kind sequential ids. It is threaded explicitly
// through scene construction so concurrent or repeated runs stay isolated;
// there is no process-global counter state.
type IDGenerator struct {
	counters map[Kind]int
}

// NewIDGenerator returns a generator with all counters at zero.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{counters: make(map[Kind]int)}
}

// Next returns the next id for the given kind, starting at 0.
func (g *IDGenerator) Next(k Kind) int {
	id := g.counters[k]
	g.counters[k] = id + 1
	return id
}

// New constructs an unlocked shape of the given kind with default parameters.
// Bars, Axis and BarGraph draw their structural parameters (bar count,
// spacing, axis length) from rng at construction, matching their randomized
// defaults. Unknown kinds are a configuration error.
func New(k Kind, ids *IDGenerator, rng *rand.Rand) (Shape, error) {
	switch k {
	case KindLine:
		return NewLine(ids), nil
	case KindOval:
		return NewOval(ids), nil
	case KindRectangle:
		return NewRectangle(ids), nil
	case KindTriangle:
		return NewTriangle(ids), nil
	case KindPolygon:
		return NewPolygon(ids), nil
	case KindArrow:
		return NewArrow(ids), nil
	case KindBars:
		return NewBars(ids, rng, DefaultBarsOptions()), nil
	case KindAxis:
		return NewAxis(ids, DefaultAxisOptions()), nil
	case KindBarGraph:
		return NewBarGraph(ids, rng, DefaultBarGraphOptions()), nil
	default:
		return nil, errors.Configf("shape.New", "unknown shape kind %d", int(k))
	}
}

// Lines returns every Line reachable from s by tree traversal, including s
// itself, in depth-first order.
func Lines(s Shape) []*Line {
	var out []*Line
	var walk func(Shape)
	walk = func(cur Shape) {
		if ln, ok := cur.(*Line); ok {
			out = append(out, ln)
		}
		for _, child := range cur.Children() {
			walk(child)
		}
	}
	walk(s)
	return out
}

// childBoundingBox unions the bounding boxes of all children. It backs the
// pure-composite kinds whose own box is exactly the union of their children.
func childBoundingBox(children []Shape) geom.Rect {
	if len(children) == 0 {
		return geom.Rect{}
	}
	box := children[0].BoundingBox()
	for _, c := range children[1:] {
		box = box.Union(c.BoundingBox())
	}
	return box
}

// pointAttr flattens a point for the serializer attribute view.
func pointAttr(p geom.Point) []float64 {
	return []float64{p.X, p.Y}
}
