// Package relate implements the spatial relation predicates: pairwise
// intersection tests over segments, ellipses and polygons, plus the angular
// relations (parallel, perpendicular, arrow direction).
//
// All predicates are pure functions over already-resolved geometry; none of
// them mutate shapes or draw randomness.
package relate

import (
	"math"

	"github.com/go-scenery/scenery/pkg/geom"
)

// ellipseSamples is the boundary sample count used by the ellipse-ellipse
// test. Sampling is a deliberate approximation: thin lens-shaped overlaps
// missed by both sample sets report false.
const ellipseSamples = 36

// collinearEps is the orientation-sign threshold below which three points
// count as collinear.
const collinearEps = 1e-9

// Ellipse is the resolved geometry of an oval: center, full width and height,
// and rotation angle in degrees.
type Ellipse struct {
	Center geom.Point
	Width  float64
	Height float64
	Angle  float64
}

// toLocal maps p into the ellipse's unrotated frame centered on the origin.
func (e Ellipse) toLocal(p geom.Point) geom.Point {
	return geom.RotateAround(p, e.Center, -e.Angle).Sub(e.Center)
}

// orientation returns 0 when a, b, c are collinear, 1 for clockwise and 2 for
// counterclockwise turns.
func orientation(a, b, c geom.Point) int {
	val := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	if math.Abs(val) < collinearEps {
		return 0
	}
	if val > 0 {
		return 1
	}
	return 2
}

// onSegment reports whether b lies within the axis-aligned box spanned by a
// and c; callers guarantee the three points are collinear.
func onSegment(a, b, c geom.Point) bool {
	return math.Min(a.X, c.X) <= b.X && b.X <= math.Max(a.X, c.X) &&
		math.Min(a.Y, c.Y) <= b.Y && b.Y <= math.Max(a.Y, c.Y)
}

// SegmentsIntersect reports whether segments p1-p2 and p3-p4 intersect,
// including touching endpoints and collinear overlap. Exact for all
// non-degenerate inputs.
func SegmentsIntersect(p1, p2, p3, p4 geom.Point) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)
	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == 0 && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == 0 && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == 0 && onSegment(p3, p2, p4) {
		return true
	}
	return false
}

// PointInPolygon reports whether p lies inside the polygon by ray casting.
func PointInPolygon(p geom.Point, verts []geom.Point) bool {
	inside := false
	n := len(verts)
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := verts[i], verts[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y+collinearEps)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// PointInEllipse reports whether p lies inside or on the ellipse, via the
// normalized quadratic form in the ellipse's local frame.
func PointInEllipse(p geom.Point, e Ellipse) bool {
	w2 := e.Width / 2
	h2 := e.Height / 2
	if w2 <= 0 || h2 <= 0 {
		return false
	}
	local := e.toLocal(p)
	return (local.X*local.X)/(w2*w2)+(local.Y*local.Y)/(h2*h2) <= 1
}

// SegmentIntersectsEllipse reports whether segment p1-p2 crosses or touches
// the ellipse boundary or interior. The segment is transformed into the
// ellipse's local frame and the resulting quadratic in the segment parameter
// is solved; an intersection exists iff a real root lies in [0,1].
func SegmentIntersectsEllipse(p1, p2 geom.Point, e Ellipse) bool {
	w2 := e.Width / 2
	h2 := e.Height / 2
	if w2 <= 0 || h2 <= 0 {
		return false
	}
	l1 := e.toLocal(p1)
	l2 := e.toLocal(p2)
	dx := l2.X - l1.X
	dy := l2.Y - l1.Y
	a := (dx*dx)/(w2*w2) + (dy*dy)/(h2*h2)
	b := 2 * (l1.X*dx/(w2*w2) + l1.Y*dy/(h2*h2))
	c := (l1.X*l1.X)/(w2*w2) + (l1.Y*l1.Y)/(h2*h2) - 1
	if a == 0 {
		// Degenerate zero-length segment: inside iff c <= 0.
		return c <= 0
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	sqrtDisc := math.Sqrt(disc)
	t1 := (-b + sqrtDisc) / (2 * a)
	t2 := (-b - sqrtDisc) / (2 * a)
	return (0 <= t1 && t1 <= 1) || (0 <= t2 && t2 <= 1)
}

// SegmentIntersectsPolygon reports whether segment p1-p2 touches the polygon:
// either endpoint inside, or any edge crossed.
func SegmentIntersectsPolygon(p1, p2 geom.Point, verts []geom.Point) bool {
	if PointInPolygon(p1, verts) || PointInPolygon(p2, verts) {
		return true
	}
	n := len(verts)
	for i := 0; i < n; i++ {
		if SegmentsIntersect(p1, p2, verts[i], verts[(i+1)%n]) {
			return true
		}
	}
	return false
}

// EllipsesIntersect approximates ellipse-ellipse intersection by sampling
// each boundary and testing the samples for containment in the other ellipse.
func EllipsesIntersect(e1, e2 Ellipse) bool {
	for _, p := range sampleBoundary(e1) {
		if PointInEllipse(p, e2) {
			return true
		}
	}
	for _, p := range sampleBoundary(e2) {
		if PointInEllipse(p, e1) {
			return true
		}
	}
	return false
}

// sampleBoundary returns ellipseSamples points spaced evenly in parameter
// angle around the rotated boundary.
func sampleBoundary(e Ellipse) []geom.Point {
	pts := make([]geom.Point, ellipseSamples)
	w2 := e.Width / 2
	h2 := e.Height / 2
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / ellipseSamples
		p := geom.Pt(e.Center.X+w2*math.Cos(theta), e.Center.Y+h2*math.Sin(theta))
		pts[i] = geom.RotateAround(p, e.Center, e.Angle)
	}
	return pts
}

// PolygonsIntersect reports whether two polygons touch: any vertex of one
// inside the other, or any edge pair crossing.
func PolygonsIntersect(verts1, verts2 []geom.Point) bool {
	for _, v := range verts1 {
		if PointInPolygon(v, verts2) {
			return true
		}
	}
	for _, v := range verts2 {
		if PointInPolygon(v, verts1) {
			return true
		}
	}
	n1 := len(verts1)
	n2 := len(verts2)
	for i := 0; i < n1; i++ {
		a1 := verts1[i]
		a2 := verts1[(i+1)%n1]
		for j := 0; j < n2; j++ {
			if SegmentsIntersect(a1, a2, verts2[j], verts2[(j+1)%n2]) {
				return true
			}
		}
	}
	return false
}

// EllipseIntersectsPolygon reports whether the ellipse touches the polygon:
// any polygon vertex inside the ellipse, the ellipse center inside the
// polygon, or any polygon edge crossing the ellipse.
func EllipseIntersectsPolygon(e Ellipse, verts []geom.Point) bool {
	for _, v := range verts {
		if PointInEllipse(v, e) {
			return true
		}
	}
	if PointInPolygon(e.Center, verts) {
		return true
	}
	n := len(verts)
	for i := 0; i < n; i++ {
		if SegmentIntersectsEllipse(verts[i], verts[(i+1)%n], e) {
			return true
		}
	}
	return false
}
