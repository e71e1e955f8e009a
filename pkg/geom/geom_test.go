package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthAngle(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		length float64
		angle  float64
	}{
		{"rightward", Pt(0, 0), Pt(10, 0), 10, 0},
		{"downward", Pt(0, 0), Pt(0, 10), 10, 90},
		{"leftward", Pt(10, 5), Pt(0, 5), 10, 180},
		{"upward", Pt(0, 10), Pt(0, 0), 10, 270},
		{"diagonal", Pt(0, 0), Pt(3, 4), 5, 53.13010235415598},
		{"zero length", Pt(7, 7), Pt(7, 7), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, angle := LengthAngle(tt.p1, tt.p2)
			assert.InDelta(t, tt.length, length, 1e-9)
			assert.InDelta(t, tt.angle, angle, 1e-9)
		})
	}
}

func TestLengthAngleRange(t *testing.T) {
	for deg := -720.0; deg < 720; deg += 17 {
		p2 := PointAt(Pt(50, 50), deg, 25)
		length, angle := LengthAngle(Pt(50, 50), p2)
		assert.InDelta(t, 25, length, 1e-9)
		assert.GreaterOrEqual(t, angle, 0.0)
		assert.Less(t, angle, 360.0)
		assert.InDelta(t, 0, AngleDifference(deg, angle), 1e-9)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(360), 1e-9)
	assert.InDelta(t, 350, NormalizeAngle(-10), 1e-9)
	assert.InDelta(t, 45, NormalizeAngle(765), 1e-9)
	assert.InDelta(t, 0, NormalizeAngle(0), 1e-9)
}

func TestAngleDifference(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{0, 90, 90},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{45, 405, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, AngleDifference(tt.a, tt.b), 1e-9)
		assert.InDelta(t, tt.want, AngleDifference(tt.b, tt.a), 1e-9)
	}
}

func TestRotateAround(t *testing.T) {
	p := RotateAround(Pt(10, 0), Pt(0, 0), 90)
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)

	p = RotateAround(Pt(5, 5), Pt(5, 5), 123)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)

	// A full turn is the identity.
	p = RotateAround(Pt(3, 7), Pt(1, 1), 360)
	assert.InDelta(t, 3, p.X, 1e-9)
	assert.InDelta(t, 7, p.Y, 1e-9)
}

func TestRectFromPoints(t *testing.T) {
	r := RectFromPoints(Pt(5, 2), Pt(-1, 8), Pt(3, 3))
	assert.Equal(t, Rect{Left: -1, Top: 2, Right: 5, Bottom: 8}, r)
	assert.Equal(t, Rect{}, RectFromPoints())
}

func TestRectUnionAndContains(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	u := a.Union(b)
	assert.Equal(t, Rect{Left: 0, Top: 0, Right: 15, Bottom: 15}, u)
	assert.True(t, u.ContainsRect(a, 0))
	assert.True(t, u.ContainsRect(b, 0))
	assert.True(t, a.ContainsPoint(Pt(10, 10), 0))
	assert.False(t, a.ContainsPoint(Pt(10.1, 10), 0))
	assert.True(t, a.ContainsPoint(Pt(10.1, 10), 0.2))
}

func TestFitTransformShrinksAndCenters(t *testing.T) {
	box := RectFromLTWH(0, 0, 200, 100)
	canvas := RectFromLTWH(0, 0, 100, 100)
	fit := FitTransform(box, canvas)

	// Scale is min(100/200, 100/100, 1) = 0.5; the 200x100 box becomes
	// 100x50 centered vertically.
	tl := fit(Pt(0, 0))
	br := fit(Pt(200, 100))
	assert.InDelta(t, 0, tl.X, 1e-9)
	assert.InDelta(t, 25, tl.Y, 1e-9)
	assert.InDelta(t, 100, br.X, 1e-9)
	assert.InDelta(t, 75, br.Y, 1e-9)
}

func TestFitTransformNeverMagnifies(t *testing.T) {
	box := RectFromLTWH(40, 40, 20, 20)
	canvas := RectFromLTWH(0, 0, 100, 100)
	fit := FitTransform(box, canvas)

	// The small box is re-centered at 1:1 scale, not blown up.
	tl := fit(Pt(40, 40))
	br := fit(Pt(60, 60))
	assert.InDelta(t, 20, br.X-tl.X, 1e-9)
	assert.InDelta(t, 20, br.Y-tl.Y, 1e-9)
	assert.InDelta(t, 40, tl.X, 1e-9)
	assert.InDelta(t, 40, tl.Y, 1e-9)
}

func TestFitTransformIdempotent(t *testing.T) {
	box := RectFromLTWH(-50, 10, 300, 80)
	canvas := RectFromLTWH(0, 0, 100, 100)
	fit := FitTransform(box, canvas)

	corners := []Point{Pt(-50, 10), Pt(250, 10), Pt(250, 90), Pt(-50, 90)}
	var fitted []Point
	for _, p := range corners {
		fitted = append(fitted, fit(p))
	}
	again := FitTransform(RectFromPoints(fitted...), canvas)
	for _, p := range fitted {
		q := again(p)
		assert.InDelta(t, p.X, q.X, 1e-9)
		assert.InDelta(t, p.Y, q.Y, 1e-9)
	}
}

func TestFitTransformDegenerateBox(t *testing.T) {
	// A single point has no extent; it lands on the canvas center.
	box := RectFromPoints(Pt(500, -300))
	canvas := RectFromLTWH(0, 0, 100, 100)
	p := FitTransform(box, canvas)(Pt(500, -300))
	assert.InDelta(t, 50, p.X, 1e-9)
	assert.InDelta(t, 50, p.Y, 1e-9)
}
