// Package geom provides the 2-D primitives shared by the scenery packages:
// points, axis-aligned boxes, angle arithmetic and affine transforms.
//
// Angles are expressed in degrees with a downward-positive y axis: 0 points
// rightward, 90 points downward on screen. Display layers that invert the y
// axis see 90 as upward; the convention here matches what the predicates in
// pkg/relate expect.
package geom

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 1e-9

// Point represents a 2-D point or vector.
type Point struct {
	X float64
	Y float64
}

// Pt constructs a Point from x and y.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect represents an axis-aligned rectangle using left, top, right, bottom
// coordinates. Left <= Right and Top <= Bottom for a well-formed rect.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromPoints returns the tightest Rect covering all given points.
// An empty point list yields the zero Rect.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left = math.Min(r.Left, p.X)
		r.Top = math.Min(r.Top, p.Y)
		r.Right = math.Max(r.Right, p.X)
		r.Bottom = math.Max(r.Bottom, p.Y)
	}
	return r
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// ContainsPoint reports whether p lies inside r, within tol.
func (r Rect) ContainsPoint(p Point, tol float64) bool {
	return p.X >= r.Left-tol && p.X <= r.Right+tol &&
		p.Y >= r.Top-tol && p.Y <= r.Bottom+tol
}

// ContainsRect reports whether other lies entirely inside r, within tol.
func (r Rect) ContainsRect(other Rect, tol float64) bool {
	return other.Left >= r.Left-tol && other.Right <= r.Right+tol &&
		other.Top >= r.Top-tol && other.Bottom <= r.Bottom+tol
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// LengthAngle returns the Euclidean distance from p1 to p2 and the direction
// angle of the p1->p2 vector in degrees, normalized to [0, 360). A zero-length
// vector yields angle 0.
func LengthAngle(p1, p2 Point) (length, angle float64) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	length = math.Hypot(dx, dy)
	if length < epsilon {
		return 0, 0
	}
	angle = NormalizeAngle(Degrees(math.Atan2(dy, dx)))
	return length, angle
}

// AngleDifference returns the smallest absolute difference between two angles
// in degrees, in [0, 180], handling wraparound.
func AngleDifference(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// RotateAround rotates p about center by angleDeg degrees.
func RotateAround(p, center Point, angleDeg float64) Point {
	r := Radians(angleDeg)
	sin, cos := math.Sincos(r)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// PointAt returns the point at distance dist from origin along angleDeg.
func PointAt(origin Point, angleDeg, dist float64) Point {
	r := Radians(angleDeg)
	sin, cos := math.Sincos(r)
	return Point{
		X: origin.X + dist*cos,
		Y: origin.Y + dist*sin,
	}
}

// Transform is an affine mapping applied to every coordinate-bearing field of
// a shape tree during canvas fitting.
type Transform func(Point) Point

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return func(p Point) Point { return p }
}

// FitTransform builds the uniform-scale, center-translate transform that maps
// the scene box into the canvas. The scale factor is
// min(canvasW/sceneW, canvasH/sceneH, 1): fitting only ever shrinks, never
// magnifies. Scenes that already fit are re-centered at 1:1 scale. Degenerate
// scene extents contribute no scale constraint.
func FitTransform(box, canvas Rect) Transform {
	scale := 1.0
	if box.Width() > epsilon {
		scale = math.Min(scale, canvas.Width()/box.Width())
	}
	if box.Height() > epsilon {
		scale = math.Min(scale, canvas.Height()/box.Height())
	}
	fittedW := scale * box.Width()
	fittedH := scale * box.Height()
	originX := canvas.Left + (canvas.Width()-fittedW)/2
	originY := canvas.Top + (canvas.Height()-fittedH)/2
	return func(p Point) Point {
		return Point{
			X: originX + scale*(p.X-box.Left),
			Y: originY + scale*(p.Y-box.Top),
		}
	}
}
