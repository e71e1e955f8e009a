package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scenery/scenery/pkg/geom"
)

func TestBarsLayoutPitch(t *testing.T) {
	ids, rng := newTestEnv(30)
	base := geom.Pt(10, 60)
	opts := DefaultBarsOptions()
	opts.NumBars = 4
	opts.Spacing = 7
	opts.Angle = 0
	opts.BasePosition = &base
	b := NewBars(ids, rng, opts)
	require.Equal(t, 4, b.NumBars)
	b.AssignGeometry(rng)
	assert.True(t, b.Locked())

	bars := b.Bars()
	require.Len(t, bars, 4)
	// With angle 0 the pre-rotation anchor is the top-left corner; the
	// pitch between successive anchors is MaxWidth+Spacing along x.
	pitch := opts.MaxWidth + 7
	for i, bar := range bars {
		assert.InDelta(t, base.X+float64(i)*pitch+bar.Width/2, bar.Center.X, 1e-9)
		assert.InDelta(t, base.Y+bar.Height/2, bar.Center.Y, 1e-9)
		assert.GreaterOrEqual(t, bar.Width, opts.MinWidth)
		assert.Less(t, bar.Width, opts.MaxWidth)
		assert.GreaterOrEqual(t, bar.Height, opts.MinHeight)
		assert.Less(t, bar.Height, opts.MaxHeight)
	}
}

func TestBarsRandomCountAndSpacing(t *testing.T) {
	ids, rng := newTestEnv(31)
	for i := 0; i < 20; i++ {
		b := NewBars(ids, rng, DefaultBarsOptions())
		assert.GreaterOrEqual(t, b.NumBars, 2)
		assert.LessOrEqual(t, b.NumBars, 5)
		assert.GreaterOrEqual(t, b.Spacing, 5.0)
		assert.Less(t, b.Spacing, 10.0)
		assert.Len(t, b.Bars(), b.NumBars)
	}
}

func TestBarsSetPositionUnlocks(t *testing.T) {
	ids, rng := newTestEnv(32)
	b := NewBars(ids, rng, DefaultBarsOptions())
	b.AssignGeometry(rng)
	require.True(t, b.Locked())
	first := b.Bars()[0].Center

	b.SetPosition(5, 90, 0)
	assert.False(t, b.Locked())
	b.AssignGeometry(rng)
	assert.True(t, b.Locked())
	assert.NotEqual(t, first, b.Bars()[0].Center)
	assert.InDelta(t, 5+b.Bars()[0].Width/2, b.Bars()[0].Center.X, 1e-9)
}

func TestAxisTicksAlongLine(t *testing.T) {
	ids, rng := newTestEnv(33)
	start := geom.Pt(10, 70)
	opts := DefaultAxisOptions()
	opts.Start = &start
	opts.Angle = 0
	a := NewAxis(ids, opts)
	a.AssignGeometry(rng)
	assert.True(t, a.Locked())
	assert.Equal(t, start, a.P1)
	assert.InDelta(t, start.X+opts.Length, a.P2.X, 1e-9)
	assert.InDelta(t, start.Y, a.P2.Y, 1e-9)

	ticks := a.Ticks()
	// Gaps in [5,10) along a length-50 axis place at least 5 ticks.
	assert.GreaterOrEqual(t, len(ticks), 5)
	prev := start.X
	for _, tick := range ticks {
		cx := (tick.P1.X + tick.P2.X) / 2
		cy := (tick.P1.Y + tick.P2.Y) / 2
		assert.Greater(t, cx, prev)
		assert.LessOrEqual(t, cx, start.X+opts.Length)
		assert.InDelta(t, start.Y, cy, 1e-9)
		// Ticks are perpendicular to the axis line.
		assert.InDelta(t, 90, geom.AngleDifference(a.Line().Angle(), tick.Angle()), 1e-9)
		assert.GreaterOrEqual(t, tick.Length(), opts.MinTickLength)
		assert.Less(t, tick.Length(), opts.MaxTickLength)
		prev = cx
	}
}

func TestAxisSetPositionRederives(t *testing.T) {
	ids, rng := newTestEnv(34)
	a := NewAxis(ids, DefaultAxisOptions())
	a.AssignGeometry(rng)
	require.True(t, a.Locked())

	a.SetPosition(20, 40, 90)
	assert.False(t, a.Locked())
	a.AssignGeometry(rng)
	assert.Equal(t, geom.Pt(20, 40), a.P1)
	assert.InDelta(t, 20, a.P2.X, 1e-9)
	assert.InDelta(t, 40+a.Opts.Length, a.P2.Y, 1e-9)
}

func TestBarGraphStructure(t *testing.T) {
	ids, rng := newTestEnv(35)
	base := geom.Pt(15, 70)
	opts := DefaultBarGraphOptions()
	opts.BasePosition = &base
	opts.AxisLength = 50
	opts.NumBars = 3
	g := NewBarGraph(ids, rng, opts)

	require.NotNil(t, g.BarsChild())
	require.NotNil(t, g.AxisX())
	require.NotNil(t, g.AxisY())
	assert.Equal(t, 3, g.BarsChild().NumBars)
	assert.Len(t, g.Children(), 3)

	g.AssignGeometry(rng)
	assert.True(t, g.Locked())
	// Both axes share the start point; the y axis is perpendicular.
	assert.Equal(t, g.AxisX().P1, g.AxisY().P1)
	xAngle := g.AxisX().Line().Angle()
	yAngle := g.AxisY().Line().Angle()
	assert.InDelta(t, 90, geom.AngleDifference(xAngle, yAngle), 1e-9)
}

func TestBarGraphWithoutYAxis(t *testing.T) {
	ids, rng := newTestEnv(36)
	opts := DefaultBarGraphOptions()
	opts.WithYAxis = false
	g := NewBarGraph(ids, rng, opts)
	assert.Nil(t, g.AxisY())
	assert.Len(t, g.Children(), 2)
}

func TestBarGraphSetPositionMovesEverything(t *testing.T) {
	ids, rng := newTestEnv(37)
	g := NewBarGraph(ids, rng, DefaultBarGraphOptions())
	g.AssignGeometry(rng)
	require.True(t, g.Locked())

	g.SetPosition(30, 40, 0)
	assert.False(t, g.Locked())
	g.AssignGeometry(rng)
	assert.InDelta(t, 30, g.AxisX().P1.X, 1e-9)
	assert.InDelta(t, 40, g.AxisX().P1.Y, 1e-9)
	firstBar := g.BarsChild().Bars()[0]
	assert.InDelta(t, 30+firstBar.Width/2, firstBar.Center.X, 1e-9)
}

func TestCompositeBoundingBoxIsChildUnion(t *testing.T) {
	ids, rng := newTestEnv(38)
	g := NewBarGraph(ids, rng, DefaultBarGraphOptions())
	g.AssignGeometry(rng)
	box := g.BoundingBox()
	for _, child := range g.Children() {
		assert.True(t, box.ContainsRect(child.BoundingBox(), 1e-9))
	}
}

func TestApplyTransformMovesAllStrokes(t *testing.T) {
	ids, rng := newTestEnv(39)
	g := NewBarGraph(ids, rng, DefaultBarGraphOptions())
	g.AssignGeometry(rng)
	before := Strokes(g)
	shift := func(p geom.Point) geom.Point { return geom.Pt(p.X+7, p.Y-3) }
	g.ApplyTransform(shift)
	after := Strokes(g)
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.InDelta(t, before[i].P1.X+7, after[i].P1.X, 1e-9)
		assert.InDelta(t, before[i].P1.Y-3, after[i].P1.Y, 1e-9)
		assert.InDelta(t, before[i].P2.X+7, after[i].P2.X, 1e-9)
		assert.InDelta(t, before[i].P2.Y-3, after[i].P2.Y, 1e-9)
	}
}
