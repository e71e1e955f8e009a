package shape

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/geom"
)

// BarsOptions configures a Bars composite. Zero or negative sentinel values
// select the randomized defaults noted per field.
type BarsOptions struct {
	// NumBars is the bar count; 0 draws from [2,5] at construction.
	NumBars int
	// Angle is the common bar rotation and the layout direction.
	Angle float64
	// MinWidth and MaxWidth bound each bar's width draw.
	MinWidth float64
	MaxWidth float64
	// Spacing is the gap added to MaxWidth for the layout pitch; a
	// negative value draws from [5,10) at construction.
	Spacing float64
	// MinHeight and MaxHeight bound each bar's height draw.
	MinHeight float64
	MaxHeight float64
	// BasePosition anchors the first bar; nil draws from
	// [10,30)x[50,80) at assignment.
	BasePosition *geom.Point
}

// DefaultBarsOptions returns the standard Bars configuration.
func DefaultBarsOptions() BarsOptions {
	return BarsOptions{
		Angle:     30,
		MinWidth:  5,
		MaxWidth:  6,
		Spacing:   -1,
		MinHeight: 15,
		MaxHeight: 30,
	}
}

// Bars is an ordered row of rectangles laid out along a common angle with
// pitch MaxWidth+Spacing.
type Bars struct {
	base
	Opts    BarsOptions
	NumBars int
	Spacing float64

	bars []*Rectangle
}

// NewBars constructs an unlocked Bars composite. The bar count and spacing
// are resolved immediately (drawing from rng where the options say so) since
// they fix the child arity.
func NewBars(ids *IDGenerator, rng *rand.Rand, opts BarsOptions) *Bars {
	b := &Bars{base: base{id: ids.Next(KindBars)}, Opts: opts}
	b.NumBars = opts.NumBars
	if b.NumBars <= 0 {
		b.NumBars = intBetween(rng, 2, 5)
	}
	b.Spacing = opts.Spacing
	if b.Spacing < 0 {
		b.Spacing = uniform(rng, 5, 10)
	}
	b.bars = make([]*Rectangle, b.NumBars)
	for i := range b.bars {
		b.bars[i] = NewRectangle(ids)
	}
	return b
}

func (b *Bars) Kind() Kind {
	return KindBars
}

// Angle returns the common bar rotation.
func (b *Bars) Angle() float64 {
	return b.Opts.Angle
}

// Bars returns the owned rectangles in layout order.
func (b *Bars) Bars() []*Rectangle {
	return b.bars
}

// AssignGeometry lays out the bars from the base position along the bars'
// angle: each bar draws its own width and height, is anchored bottom-left at
// the current position, and the position advances by the layout pitch.
// Assignment locks the composite; SetPosition unlocks it for re-derivation.
func (b *Bars) AssignGeometry(rng *rand.Rand) {
	if !b.locked {
		var pos geom.Point
		if b.Opts.BasePosition != nil {
			pos = *b.Opts.BasePosition
		} else {
			pos = geom.Pt(uniform(rng, 10, 30), uniform(rng, 50, 80))
		}
		pitch := b.Opts.MaxWidth + b.Spacing
		step := geom.PointAt(geom.Point{}, b.Opts.Angle, pitch)
		for _, bar := range b.bars {
			w := uniform(rng, b.Opts.MinWidth, b.Opts.MaxWidth)
			h := uniform(rng, b.Opts.MinHeight, b.Opts.MaxHeight)
			bar.locked = false
			bar.SetBottomLeft(pos.X, pos.Y, b.Opts.Angle, w, h)
			pos = pos.Add(step)
		}
		b.locked = true
	}
	for _, bar := range b.bars {
		bar.AssignGeometry(rng)
	}
}

// SetPosition re-anchors the row at (x, y) with a new angle and unlocks the
// composite so the next assignment re-derives every bar.
func (b *Bars) SetPosition(x, y, angleDeg float64) {
	pos := geom.Pt(x, y)
	b.Opts.BasePosition = &pos
	b.Opts.Angle = angleDeg
	b.locked = false
}

// BoundingBox is the union of the bars' boxes.
func (b *Bars) BoundingBox() geom.Rect {
	return childBoundingBox(b.Children())
}

func (b *Bars) ApplyTransform(fn geom.Transform) {
	if b.Opts.BasePosition != nil {
		pos := fn(*b.Opts.BasePosition)
		b.Opts.BasePosition = &pos
	}
	for _, bar := range b.bars {
		bar.ApplyTransform(fn)
	}
}

func (b *Bars) Children() []Shape {
	children := make([]Shape, len(b.bars))
	for i, bar := range b.bars {
		children[i] = bar
	}
	return children
}

func (b *Bars) Attributes() map[string]any {
	attrs := map[string]any{
		"numBars":   b.NumBars,
		"angle":     b.Opts.Angle,
		"minWidth":  b.Opts.MinWidth,
		"maxWidth":  b.Opts.MaxWidth,
		"spacing":   b.Spacing,
		"minHeight": b.Opts.MinHeight,
		"maxHeight": b.Opts.MaxHeight,
	}
	if b.Opts.BasePosition != nil {
		attrs["basePosition"] = pointAttr(*b.Opts.BasePosition)
	}
	return attrs
}
