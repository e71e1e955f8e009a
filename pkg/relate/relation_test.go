package relate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/shape"
)

func TestParallelAndPerpendicular(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		parallel bool
		perp     bool
	}{
		{"identical", 30, 30, true, false},
		{"within tolerance", 30, 33, true, false},
		{"opposite directions", 10, 190, true, false},
		{"exact right angle", 45, 135, false, true},
		{"right angle near wrap", 350, 80, false, true},
		{"wraparound parallel", 358, 2, true, false},
		{"plainly unrelated", 0, 40, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.parallel, Parallel(tt.a, tt.b, DefaultTolerance))
			assert.Equal(t, tt.parallel, Parallel(tt.b, tt.a, DefaultTolerance))
			assert.Equal(t, tt.perp, Perpendicular(tt.a, tt.b, DefaultTolerance))
			assert.Equal(t, tt.perp, Perpendicular(tt.b, tt.a, DefaultTolerance))
		})
	}
}

func TestLinePredicates(t *testing.T) {
	ids := shape.NewIDGenerator()
	horizontal := shape.NewLineBetween(ids, geom.Pt(0, 0), geom.Pt(10, 0))
	alsoHorizontal := shape.NewLineBetween(ids, geom.Pt(5, 20), geom.Pt(25, 20))
	reversed := shape.NewLineBetween(ids, geom.Pt(25, 30), geom.Pt(5, 30))
	vertical := shape.NewLineBetween(ids, geom.Pt(3, 3), geom.Pt(3, 13))

	assert.True(t, LinesParallel(horizontal, alsoHorizontal, DefaultTolerance))
	// Endpoint order does not matter: parallelism is axial.
	assert.True(t, LinesParallel(horizontal, reversed, DefaultTolerance))
	assert.False(t, LinesParallel(horizontal, vertical, DefaultTolerance))
	assert.True(t, LinesPerpendicular(horizontal, vertical, DefaultTolerance))
	assert.False(t, LinesPerpendicular(horizontal, alsoHorizontal, DefaultTolerance))
}

func TestDirectionConvention(t *testing.T) {
	assert.Equal(t, 0.0, Rightward.Angle())
	assert.Equal(t, 90.0, Upward.Angle())
	assert.Equal(t, 180.0, Leftward.Angle())
	assert.Equal(t, 270.0, Downward.Angle())
	assert.Len(t, Directions(), 4)
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions() {
		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestArrowPoints(t *testing.T) {
	ids := shape.NewIDGenerator()
	a := shape.NewArrowFrom(ids, geom.Pt(10, 10), 20, 95)
	assert.True(t, ArrowPoints(a, Upward, 30))
	assert.True(t, ArrowPoints(a, Upward, DefaultTolerance))
	assert.False(t, ArrowPoints(a, Rightward, 30))
	assert.False(t, ArrowPoints(a, Downward, 30))

	// Wraparound: 350 degrees is rightward within 30.
	b := shape.NewArrowFrom(ids, geom.Pt(10, 10), 20, 350)
	assert.True(t, ArrowPoints(b, Rightward, 30))
}

func TestIntersectsDispatch(t *testing.T) {
	ids := shape.NewIDGenerator()
	line := shape.NewLineBetween(ids, geom.Pt(0, 5), geom.Pt(20, 5))
	oval := shape.NewOvalAt(ids, geom.Pt(10, 5), 8, 8, 0)
	rect := shape.NewRectangleAt(ids, geom.Pt(10, 5), 6, 6, 0)
	tri := shape.NewTriangleFrom(ids, [3]geom.Point{geom.Pt(50, 50), geom.Pt(60, 50), geom.Pt(50, 60)})
	poly := shape.NewPolygonAt(ids, geom.Pt(10, 5), 5, 4, 0)

	tests := []struct {
		name string
		a, b shape.Shape
		want bool
	}{
		{"line through oval", line, oval, true},
		{"line through rectangle", line, rect, true},
		{"line misses triangle", line, tri, false},
		{"oval overlaps rectangle", oval, rect, true},
		{"oval misses triangle", oval, tri, false},
		{"rectangle overlaps polygon", rect, poly, true},
		{"triangle misses polygon", tri, poly, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Intersects(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			// Dispatch is symmetric.
			rev, err := Intersects(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rev)
		})
	}
}

func TestIntersectsRejectsCompositeKinds(t *testing.T) {
	ids := shape.NewIDGenerator()
	rng := rand.New(rand.NewSource(1))
	bars := shape.NewBars(ids, rng, shape.DefaultBarsOptions())
	line := shape.NewLineBetween(ids, geom.Pt(0, 0), geom.Pt(1, 1))

	_, err := Intersects(bars, line)
	assert.Error(t, err)
	_, err = Intersects(line, bars)
	assert.Error(t, err)
}
