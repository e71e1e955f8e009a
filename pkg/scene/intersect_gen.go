package scene

import (
	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/relate"
	"github.com/go-scenery/scenery/pkg/shape"
)

// candidate holds the parametric description of one shape while the
// intersection search runs. Parameters are tested and perturbed without
// materializing shapes; only the accepted pair is built.
type candidate struct {
	kind   shape.Kind
	p1, p2 geom.Point    // Line
	center geom.Point    // Oval, Rectangle, Polygon
	width  float64       // Oval, Rectangle
	height float64       // Oval, Rectangle
	angle  float64       // Oval, Rectangle, Polygon
	sides  int           // Polygon
	radius float64       // Polygon
	verts  [3]geom.Point // Triangle
}

// wiggle deltas: coordinate perturbation and angle perturbation applied
// during the answer-preserving refinement pass.
const (
	wiggleDelta      = 5.0
	wiggleAngleDelta = 10.0
)

// IntersectKind selects one candidate family for the intersection search.
// EqualDims forces the drawn width and height to match, turning an Oval
// candidate into a circle and a Rectangle candidate into a square; the other
// kinds ignore it.
type IntersectKind struct {
	Kind      shape.Kind
	EqualDims bool
}

// randomCandidate draws intersection-search parameters for a kind. Sizes are
// proportional to the canvas so candidate pairs have a workable chance of
// overlapping.
func randomCandidate(ik IntersectKind, env *Env, opts Options) (candidate, error) {
	width := opts.Canvas.Width()
	height := opts.Canvas.Height()
	c := candidate{kind: ik.Kind}
	switch ik.Kind {
	case shape.KindLine:
		c.p1 = randomCanvasPoint(env, width, height)
		c.p2 = randomCanvasPoint(env, width, height)
	case shape.KindOval, shape.KindRectangle:
		c.center = randomCanvasPoint(env, width, height)
		c.width = uniform(env.RNG, 10, width/2)
		c.height = uniform(env.RNG, 10, height/2)
		if ik.EqualDims {
			c.height = c.width
		}
		c.angle = uniform(env.RNG, 0, 360)
	case shape.KindTriangle:
		center := randomCanvasPoint(env, width, height)
		for i := range c.verts {
			c.verts[i] = geom.Pt(
				center.X+uniform(env.RNG, -10, 10),
				center.Y+uniform(env.RNG, -10, 10),
			)
		}
	case shape.KindPolygon:
		c.center = randomCanvasPoint(env, width, height)
		c.sides = 3 + env.RNG.Intn(4)
		c.radius = uniform(env.RNG, 10, 30)
		c.angle = uniform(env.RNG, 0, 360)
	default:
		return candidate{}, errUnsupportedKind("scene.GenerateIntersection", ik.Kind)
	}
	return c, nil
}

// wiggle returns a slightly perturbed copy of the candidate.
func (c candidate) wiggle(env *Env) candidate {
	jitter := func(p geom.Point) geom.Point {
		return geom.Pt(
			p.X+uniform(env.RNG, -wiggleDelta, wiggleDelta),
			p.Y+uniform(env.RNG, -wiggleDelta, wiggleDelta),
		)
	}
	out := c
	switch c.kind {
	case shape.KindLine:
		out.p1 = jitter(c.p1)
		out.p2 = jitter(c.p2)
	case shape.KindOval, shape.KindRectangle, shape.KindPolygon:
		out.center = jitter(c.center)
		out.angle = geom.NormalizeAngle(c.angle + uniform(env.RNG, -wiggleAngleDelta, wiggleAngleDelta))
	case shape.KindTriangle:
		for i, v := range c.verts {
			out.verts[i] = jitter(v)
		}
	}
	return out
}

// polygonVerts returns the candidate's boundary for the polygon-class tests.
func (c candidate) polygonVerts() []geom.Point {
	switch c.kind {
	case shape.KindRectangle:
		halfW := c.width / 2
		halfH := c.height / 2
		corners := []geom.Point{
			{X: c.center.X - halfW, Y: c.center.Y - halfH},
			{X: c.center.X + halfW, Y: c.center.Y - halfH},
			{X: c.center.X + halfW, Y: c.center.Y + halfH},
			{X: c.center.X - halfW, Y: c.center.Y + halfH},
		}
		for i, p := range corners {
			corners[i] = geom.RotateAround(p, c.center, c.angle)
		}
		return corners
	case shape.KindTriangle:
		return c.verts[:]
	case shape.KindPolygon:
		step := 360.0 / float64(c.sides)
		verts := make([]geom.Point, c.sides)
		for i := range verts {
			verts[i] = geom.PointAt(c.center, c.angle+float64(i)*step, c.radius)
		}
		return verts
	default:
		return nil
	}
}

func (c candidate) ellipse() relate.Ellipse {
	return relate.Ellipse{Center: c.center, Width: c.width, Height: c.height, Angle: c.angle}
}

// intersects evaluates the pairwise predicate on two candidates, dispatching
// on their geometric classes.
func intersects(a, b candidate) bool {
	aLine := a.kind == shape.KindLine
	aOval := a.kind == shape.KindOval
	bLine := b.kind == shape.KindLine
	bOval := b.kind == shape.KindOval
	switch {
	case aLine && bLine:
		return relate.SegmentsIntersect(a.p1, a.p2, b.p1, b.p2)
	case aLine && bOval:
		return relate.SegmentIntersectsEllipse(a.p1, a.p2, b.ellipse())
	case aOval && bLine:
		return relate.SegmentIntersectsEllipse(b.p1, b.p2, a.ellipse())
	case aLine:
		return relate.SegmentIntersectsPolygon(a.p1, a.p2, b.polygonVerts())
	case bLine:
		return relate.SegmentIntersectsPolygon(b.p1, b.p2, a.polygonVerts())
	case aOval && bOval:
		return relate.EllipsesIntersect(a.ellipse(), b.ellipse())
	case aOval:
		return relate.EllipseIntersectsPolygon(a.ellipse(), b.polygonVerts())
	case bOval:
		return relate.EllipseIntersectsPolygon(b.ellipse(), a.polygonVerts())
	default:
		return relate.PolygonsIntersect(a.polygonVerts(), b.polygonVerts())
	}
}

// build materializes the candidate as a locked shape.
func (c candidate) build(ids *shape.IDGenerator) shape.Shape {
	switch c.kind {
	case shape.KindLine:
		return shape.NewLineBetween(ids, c.p1, c.p2)
	case shape.KindOval:
		return shape.NewOvalAt(ids, c.center, c.width, c.height, c.angle)
	case shape.KindRectangle:
		return shape.NewRectangleAt(ids, c.center, c.width, c.height, c.angle)
	case shape.KindTriangle:
		return shape.NewTriangleFrom(ids, c.verts)
	default:
		return shape.NewPolygonAt(ids, c.center, c.sides, c.radius, c.angle)
	}
}

// GenerateIntersection searches for a pair of shapes of the given kinds that
// intersect (answer true) or stay apart (answer false), then perturbs the
// accepted pair a bounded number of times, keeping only perturbations that
// preserve the answer, so repeated scenes are not overly static. For answer
// false, both kinds are kept off the distractor list so padding cannot
// reintroduce the pairing. Line, Oval, Rectangle, Triangle and Polygon are
// supported, with circles and squares requested through EqualDims; other
// kinds are a configuration error.
func GenerateIntersection(kind1, kind2 IntersectKind, answer bool, env *Env, opts Options) (Result, error) {
	var a, b candidate
	var err error
	found := false
	attempts := 0
	for attempts < opts.IntersectRetries {
		attempts++
		a, err = randomCandidate(kind1, env, opts)
		if err != nil {
			return Result{}, err
		}
		b, err = randomCandidate(kind2, env, opts)
		if err != nil {
			return Result{}, err
		}
		if intersects(a, b) == answer {
			found = true
			break
		}
	}

	if found {
		for i := 0; i < opts.WiggleAttempts; i++ {
			if na := a.wiggle(env); intersects(na, b) == answer {
				a = na
			}
			if nb := b.wiggle(env); intersects(a, nb) == answer {
				b = nb
			}
		}
	}

	if !answer {
		opts = opts.withAvoid(kind1.Kind)
		if kind2.Kind != kind1.Kind {
			opts = opts.withAvoid(kind2.Kind)
		}
	}
	plan := Plan{
		{Kind: kind1.Kind, Shapes: []shape.Shape{a.build(env.IDs)}},
		{Kind: kind2.Kind, Shapes: []shape.Shape{b.build(env.IDs)}},
	}
	sc, err := Create(plan, env, opts)
	if err != nil {
		return Result{}, err
	}
	outcome := MatchedConstraint
	if !found {
		outcome = FallbackUsed
	}
	return Result{Scene: sc, Outcome: outcome, Attempts: attempts}, nil
}
