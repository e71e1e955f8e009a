package shape

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// BarGraphOptions configures a BarGraph composite. Sentinel values select the
// randomized defaults noted per field.
type BarGraphOptions struct {
	// BasePosition anchors both the bars and the axes; nil draws from
	// [10,30)x[50,80) at construction.
	BasePosition *geom.Point
	// AxisLength is the length of each axis; non-positive draws from
	// [40,60) at construction.
	AxisLength float64
	// NumBars is the bar count; 0 draws from [2,5] at construction.
	NumBars int
	// BarsAngle is the bar rotation and x-axis direction.
	BarsAngle float64
	// WithYAxis adds a second axis perpendicular to the first.
	WithYAxis bool
	// AxisMargin offsets the axis start from the base position,
	// perpendicular to the bars' angle.
	AxisMargin float64
	// Bars carries the width/height/spacing ranges for the bars child.
	Bars BarsOptions
}

// DefaultBarGraphOptions returns the standard BarGraph configuration.
func DefaultBarGraphOptions() BarGraphOptions {
	return BarGraphOptions{
		WithYAxis: true,
		Bars:      DefaultBarsOptions(),
	}
}

// BarGraph owns one Bars child and one or two Axis children: the x axis runs
// along the bars' angle, the optional y axis perpendicular to it.
type BarGraph struct {
	base
	Opts       BarGraphOptions
	AxisLength float64

	bars  *Bars
	axisX *Axis
	axisY *Axis
}

// NewBarGraph constructs an unlocked bar graph, resolving randomized
// structural parameters (base position, axis length, bar count) immediately
// since the children they shape are created here.
func NewBarGraph(ids *IDGenerator, rng *rand.Rand, opts BarGraphOptions) *BarGraph {
	g := &BarGraph{base: base{id: ids.Next(KindBarGraph)}, Opts: opts}
	if g.Opts.BasePosition == nil {
		pos := geom.Pt(uniform(rng, 10, 30), uniform(rng, 50, 80))
		g.Opts.BasePosition = &pos
	}
	g.AxisLength = opts.AxisLength
	if g.AxisLength <= 0 {
		g.AxisLength = uniform(rng, 40, 60)
	}

	barsOpts := opts.Bars
	barsOpts.NumBars = opts.NumBars
	barsOpts.Angle = opts.BarsAngle
	barsOpts.BasePosition = g.Opts.BasePosition
	g.bars = NewBars(ids, rng, barsOpts)

	axisStart := geom.PointAt(*g.Opts.BasePosition, opts.BarsAngle-90, opts.AxisMargin)
	axisXOpts := DefaultAxisOptions()
	axisXOpts.Start = &axisStart
	axisXOpts.Length = g.AxisLength
	axisXOpts.Angle = opts.BarsAngle
	g.axisX = NewAxis(ids, axisXOpts)

	if opts.WithYAxis {
		axisYOpts := DefaultAxisOptions()
		axisYOpts.Start = &axisStart
		axisYOpts.Length = g.AxisLength
		axisYOpts.Angle = geom.NormalizeAngle(opts.BarsAngle + 90)
		g.axisY = NewAxis(ids, axisYOpts)
	}
	return g
}

func (g *BarGraph) Kind() Kind {
	return KindBarGraph
}

// BarsChild returns the owned Bars composite.
func (g *BarGraph) BarsChild() *Bars {
	return g.bars
}

// AxisX returns the axis running along the bars' angle.
func (g *BarGraph) AxisX() *Axis {
	return g.axisX
}

// AxisY returns the perpendicular axis, or nil when WithYAxis is false.
func (g *BarGraph) AxisY() *Axis {
	return g.axisY
}

// AssignGeometry unlocks and re-derives the axes and bars from the graph's
// own parameters, then locks the composite. Children are recursed either way.
func (g *BarGraph) AssignGeometry(rng *rand.Rand) {
	if !g.locked {
		g.bars.locked = false
		g.axisX.locked = false
		if g.axisY != nil {
			g.axisY.locked = false
		}
		g.axisX.AssignGeometry(rng)
		if g.axisY != nil {
			g.axisY.AssignGeometry(rng)
		}
		g.bars.AssignGeometry(rng)
		g.locked = true
	}
	for _, child := range g.Children() {
		child.AssignGeometry(rng)
	}
}

// SetPosition re-anchors the whole graph at (x, y) with a new bars angle and
// unlocks it; children are re-derived on the next assignment.
func (g *BarGraph) SetPosition(x, y, angleDeg float64) {
	pos := geom.Pt(x, y)
	g.Opts.BasePosition = &pos
	g.Opts.BarsAngle = angleDeg
	g.bars.SetPosition(x, y, angleDeg)
	axisStart := geom.PointAt(pos, angleDeg-90, g.Opts.AxisMargin)
	g.axisX.SetPosition(axisStart.X, axisStart.Y, angleDeg)
	if g.axisY != nil {
		g.axisY.SetPosition(axisStart.X, axisStart.Y, geom.NormalizeAngle(angleDeg+90))
	}
	g.locked = false
}

// BoundingBox is the union of the bars' and axes' boxes.
func (g *BarGraph) BoundingBox() geom.Rect {
	return childBoundingBox(g.Children())
}

func (g *BarGraph) ApplyTransform(fn geom.Transform) {
	if g.Opts.BasePosition != nil {
		pos := fn(*g.Opts.BasePosition)
		g.Opts.BasePosition = &pos
	}
	for _, child := range g.Children() {
		child.ApplyTransform(fn)
	}
}

func (g *BarGraph) Children() []Shape {
	children := []Shape{g.bars, g.axisX}
	if g.axisY != nil {
		children = append(children, g.axisY)
	}
	return children
}

func (g *BarGraph) Attributes() map[string]any {
	attrs := map[string]any{
		"axisLength": g.AxisLength,
		"numBars":    g.bars.NumBars,
		"barsAngle":  g.Opts.BarsAngle,
		"withYAxis":  g.Opts.WithYAxis,
		"axisMargin": g.Opts.AxisMargin,
	}
	if g.Opts.BasePosition != nil {
		attrs["basePosition"] = pointAttr(*g.Opts.BasePosition)
	}
	return attrs
}
