package shape

import "github.com/go-scenery/scenery/pkg/geom"

// Record is the structural view of a shape tree handed to the external
// serializer: kind tag, id, flat attribute map and recursive children.
// Ownership is tree-shaped, so a plain walk produces no cycles.
type Record struct {
	Kind       string         `json:"type"`
	ID         int            `json:"id"`
	Attributes map[string]any `json:"attributes"`
	Children   []Record       `json:"children,omitempty"`
}

// NewRecord builds the record for s and its subtree.
func NewRecord(s Shape) Record {
	rec := Record{
		Kind:       s.Kind().String(),
		ID:         s.ID(),
		Attributes: s.Attributes(),
	}
	for _, child := range s.Children() {
		rec.Children = append(rec.Children, NewRecord(child))
	}
	return rec
}

// Segment is a resolved stroke handed to the external renderer.
type Segment struct {
	P1 geom.Point
	P2 geom.Point
}

// Strokes flattens every Line reachable from s into renderer segments. Ovals
// carry no lines; renderers read their parametric fields from the shape
// directly.
func Strokes(s Shape) []Segment {
	lines := Lines(s)
	segs := make([]Segment, len(lines))
	for i, ln := range lines {
		segs[i] = Segment{P1: ln.P1, P2: ln.P2}
	}
	return segs
}
