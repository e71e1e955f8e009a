package relate

import (
	"github.com/go-scenery/scenery/pkg/errors"
	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/shape"
)

// class is the geometric category a shape is tested as.
type class int

const (
	classLine class = iota
	classOval
	classPolygon
)

// resolved is the predicate-ready geometry extracted from a shape.
type resolved struct {
	class class
	p1    geom.Point
	p2    geom.Point
	e     Ellipse
	verts []geom.Point
}

func resolve(s shape.Shape) (resolved, error) {
	switch v := s.(type) {
	case *shape.Line:
		return resolved{class: classLine, p1: v.P1, p2: v.P2}, nil
	case *shape.Oval:
		return resolved{class: classOval, e: Ellipse{
			Center: v.Center,
			Width:  v.Width,
			Height: v.Height,
			Angle:  v.Angle,
		}}, nil
	case *shape.Rectangle:
		return resolved{class: classPolygon, verts: v.Corners()}, nil
	case *shape.Triangle:
		return resolved{class: classPolygon, verts: v.Vertices[:]}, nil
	case *shape.Polygon:
		return resolved{class: classPolygon, verts: v.Vertices()}, nil
	default:
		return resolved{}, errors.Configf("relate.Intersects",
			"shape kind %s has no intersection geometry", s.Kind())
	}
}

// Intersects dispatches the pairwise intersection predicate on the geometric
// classes of the two shapes. Line, Oval, Rectangle, Triangle and Polygon are
// supported; any other kind is a configuration error.
func Intersects(a, b shape.Shape) (bool, error) {
	ra, err := resolve(a)
	if err != nil {
		return false, err
	}
	rb, err := resolve(b)
	if err != nil {
		return false, err
	}
	// Order the pair so only one side of each symmetric case is handled.
	if ra.class > rb.class {
		ra, rb = rb, ra
	}
	switch {
	case ra.class == classLine && rb.class == classLine:
		return SegmentsIntersect(ra.p1, ra.p2, rb.p1, rb.p2), nil
	case ra.class == classLine && rb.class == classOval:
		return SegmentIntersectsEllipse(ra.p1, ra.p2, rb.e), nil
	case ra.class == classLine && rb.class == classPolygon:
		return SegmentIntersectsPolygon(ra.p1, ra.p2, rb.verts), nil
	case ra.class == classOval && rb.class == classOval:
		return EllipsesIntersect(ra.e, rb.e), nil
	case ra.class == classOval && rb.class == classPolygon:
		return EllipseIntersectsPolygon(ra.e, rb.verts), nil
	default:
		return PolygonsIntersect(ra.verts, rb.verts), nil
	}
}
