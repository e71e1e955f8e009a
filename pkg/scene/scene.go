// Package scene assembles shape inventories into scenes: plan building with
// distractor padding, canvas-fit layout, and the bounded-retry constrained
// generation that searches for geometry satisfying (or violating) a target
// relation.
package scene

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/shape"
)

// Scene is an ordered sequence of root shapes. It is not itself a shape;
// roots are owned by the scene and destroyed with it.
type Scene struct {
	roots []shape.Shape
}

// Add appends root shapes in order.
func (s *Scene) Add(shapes ...shape.Shape) {
	s.roots = append(s.roots, shapes...)
}

// Roots returns the root shapes in order.
func (s *Scene) Roots() []shape.Shape {
	return s.roots
}

// Len returns the number of root shapes.
func (s *Scene) Len() int {
	return len(s.roots)
}

// removeLast drops the most recently added root. Used when trimming an
// overfull scene back into the configured band.
func (s *Scene) removeLast() {
	if len(s.roots) > 0 {
		s.roots = s.roots[:len(s.roots)-1]
	}
}

// OfKind returns the root shapes of the given kind in order.
func (s *Scene) OfKind(k shape.Kind) []shape.Shape {
	var out []shape.Shape
	for _, r := range s.roots {
		if r.Kind() == k {
			out = append(out, r)
		}
	}
	return out
}

// Lines returns every Line reachable from any root by tree traversal, not
// just root-level lines. Relation predicates evaluate over this set.
func (s *Scene) Lines() []*shape.Line {
	var out []*shape.Line
	for _, r := range s.roots {
		out = append(out, shape.Lines(r)...)
	}
	return out
}

// AssignGeometry resolves randomized geometry for every root in order.
// Locked shapes keep their explicit geometry.
func (s *Scene) AssignGeometry(rng *rand.Rand) {
	for _, r := range s.roots {
		r.AssignGeometry(rng)
	}
}

// BoundingBox returns the union of all roots' boxes. An empty scene yields
// the zero box.
func (s *Scene) BoundingBox() geom.Rect {
	if len(s.roots) == 0 {
		return geom.Rect{}
	}
	box := s.roots[0].BoundingBox()
	for _, r := range s.roots[1:] {
		box = box.Union(r.BoundingBox())
	}
	return box
}

// Records returns the serializer view of every root, in order.
func (s *Scene) Records() []shape.Record {
	recs := make([]shape.Record, len(s.roots))
	for i, r := range s.roots {
		recs[i] = shape.NewRecord(r)
	}
	return recs
}

// FitToCanvas applies the uniform-scale, center-translate transform that
// brings the whole scene inside the canvas. Scaling only ever shrinks;
// scenes that already fit are re-centered at 1:1 scale. Applying it twice is
// a no-op: the second fit recomputes scale 1 and zero translation. Empty
// scenes are left untouched.
func (s *Scene) FitToCanvas(canvas geom.Rect) {
	if len(s.roots) == 0 {
		return
	}
	fn := geom.FitTransform(s.BoundingBox(), canvas)
	for _, r := range s.roots {
		r.ApplyTransform(fn)
	}
}
