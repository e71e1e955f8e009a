package relate

import (
	"math"

	"github.com/go-scenery/scenery/pkg/errors"
	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/shape"
)

// DefaultTolerance is the angular tolerance in degrees for the parallel,
// perpendicular and direction predicates.
const DefaultTolerance = 5.0

// axialDifference folds a direction-angle difference past 90 degrees: lines
// are undirected, so angles 180 degrees apart describe the same line
// orientation.
func axialDifference(angleA, angleB float64) float64 {
	diff := geom.AngleDifference(angleA, angleB)
	if diff > 90 {
		diff = 180 - diff
	}
	return diff
}

// Parallel reports whether two line orientations differ by at most tol
// degrees. Orientations are axial: angles 180 degrees apart are parallel.
func Parallel(angleA, angleB, tol float64) bool {
	return axialDifference(angleA, angleB) <= tol
}

// Perpendicular reports whether two line orientations differ by 90 degrees
// within tol.
func Perpendicular(angleA, angleB, tol float64) bool {
	return math.Abs(axialDifference(angleA, angleB)-90) <= tol
}

// LinesParallel reports whether the two lines' direction angles differ by at
// most tol degrees. Symmetric in its arguments.
func LinesParallel(l1, l2 *shape.Line, tol float64) bool {
	return Parallel(l1.Angle(), l2.Angle(), tol)
}

// LinesPerpendicular reports whether the two lines' direction angles differ
// by 90 degrees within tol. Symmetric in its arguments.
func LinesPerpendicular(l1, l2 *shape.Line, tol float64) bool {
	return Perpendicular(l1.Angle(), l2.Angle(), tol)
}

// Direction is one of the four canonical arrow directions. Angles follow the
// downward-positive y convention: the canvas y axis is inverted for display,
// so 90 degrees here reads as "upward" on screen.
type Direction int

const (
	// Rightward is 0 degrees.
	Rightward Direction = iota
	// Upward is 90 degrees (y inverted for display).
	Upward
	// Leftward is 180 degrees.
	Leftward
	// Downward is 270 degrees.
	Downward
)

// Angle returns the direction's canonical angle in degrees.
func (d Direction) Angle() float64 {
	switch d {
	case Upward:
		return 90
	case Leftward:
		return 180
	case Downward:
		return 270
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Upward:
		return "upward"
	case Leftward:
		return "leftward"
	case Downward:
		return "downward"
	default:
		return "rightward"
	}
}

// Directions returns the four directions in angular order.
func Directions() []Direction {
	return []Direction{Rightward, Upward, Leftward, Downward}
}

// ParseDirection maps a direction name to its Direction. Unknown names are a
// configuration error.
func ParseDirection(name string) (Direction, error) {
	for _, d := range Directions() {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, errors.Configf("relate.ParseDirection", "unknown direction %q", name)
}

// ArrowPoints reports whether the arrow's angle matches the direction within
// tol degrees.
func ArrowPoints(a *shape.Arrow, d Direction, tol float64) bool {
	return geom.AngleDifference(a.Angle, d.Angle()) <= tol
}
