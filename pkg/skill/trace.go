package skill

import (
	"fmt"

	"github.com/go-scenery/scenery/pkg/shape"
)

// Demonstration is one capability demonstrated over a concrete shape, in the
// order the dependency graph allows: parts are recognized and grouped before
// the composite they form.
type Demonstration struct {
	Capability Capability
	Kind       shape.Kind
	ID         int
	// Detail describes the measured or localized geometry.
	Detail string
	// Members lists the grouped child ids for Group demonstrations.
	Members []int
}

func (d Demonstration) String() string {
	s := fmt.Sprintf("%s%s => %s#%d", d.Capability, d.Kind, d.Kind, d.ID)
	if d.Detail != "" {
		s += " (" + d.Detail + ")"
	}
	return s
}

// Demonstrations returns the ordered capability demonstrations for a shape
// tree: children first, then the grouping of their kind, then recognition,
// localization and measurement of the shape itself.
func Demonstrations(s shape.Shape) []Demonstration {
	switch v := s.(type) {
	case *shape.Line:
		return lineDemos(v)
	case *shape.Oval:
		return []Demonstration{
			{Capability: RecognizeInstance, Kind: shape.KindOval, ID: v.ID()},
			{Capability: Localize, Kind: shape.KindOval, ID: v.ID(),
				Detail: fmt.Sprintf("center=(%.1f, %.1f), w=%.1f, h=%.1f, angle=%.1f",
					v.Center.X, v.Center.Y, v.Width, v.Height, v.Angle)},
			{Capability: Measure, Kind: shape.KindOval, ID: v.ID(),
				Detail: fmt.Sprintf("area=%.1f", v.Area())},
		}
	case *shape.Rectangle:
		return compositeDemos(v, shape.KindLine,
			fmt.Sprintf("w=%.1f, h=%.1f, angle=%.1f", v.Width, v.Height, v.Angle),
			fmt.Sprintf("area=%.1f, perimeter=%.1f", v.Area(), v.Perimeter()))
	case *shape.Triangle:
		return compositeDemos(v, shape.KindLine,
			fmt.Sprintf("vertices=%v", v.Vertices),
			fmt.Sprintf("area=%.1f", v.Area()))
	case *shape.Polygon:
		return compositeDemos(v, shape.KindLine,
			fmt.Sprintf("sides=%d, angle=%.1f", v.Sides, v.Angle),
			fmt.Sprintf("area=%.1f", v.Area()))
	case *shape.Arrow:
		return compositeDemos(v, shape.KindLine,
			fmt.Sprintf("length=%.1f, angle=%.1f", v.Length, v.Angle),
			fmt.Sprintf("shaftLength=%.1f", v.Length))
	case *shape.Bars:
		return compositeDemos(v, shape.KindRectangle,
			"positions for each rectangle",
			"heights, widths, spacing")
	case *shape.Axis:
		length := v.Line().Length()
		angle := v.Line().Angle()
		return compositeDemos(v, shape.KindLine,
			fmt.Sprintf("endpoints=(%.1f, %.1f), (%.1f, %.1f)", v.P1.X, v.P1.Y, v.P2.X, v.P2.Y),
			fmt.Sprintf("length=%.1f, angle=%.1f", length, angle))
	case *shape.BarGraph:
		return barGraphDemos(v)
	default:
		return nil
	}
}

func lineDemos(l *shape.Line) []Demonstration {
	return []Demonstration{
		{Capability: RecognizeInstance, Kind: shape.KindLine, ID: l.ID()},
		{Capability: Localize, Kind: shape.KindLine, ID: l.ID(),
			Detail: fmt.Sprintf("endpoints=(%.1f, %.1f), (%.1f, %.1f)",
				l.P1.X, l.P1.Y, l.P2.X, l.P2.Y)},
		{Capability: Measure, Kind: shape.KindLine, ID: l.ID(),
			Detail: fmt.Sprintf("length=%.1f, angle=%.1f", l.Length(), l.Angle())},
	}
}

// compositeDemos emits the demonstrations of every child, a Group event over
// the children of memberKind, then the composite's own recognize/localize/
// measure triplet.
func compositeDemos(s shape.Shape, memberKind shape.Kind, localize, measure string) []Demonstration {
	var demos []Demonstration
	var members []int
	for _, child := range s.Children() {
		demos = append(demos, Demonstrations(child)...)
		if child.Kind() == memberKind {
			members = append(members, child.ID())
		}
	}
	if len(members) > 0 {
		demos = append(demos, Demonstration{
			Capability: Group, Kind: memberKind, ID: s.ID(), Members: members,
		})
	}
	demos = append(demos,
		Demonstration{Capability: RecognizeInstance, Kind: s.Kind(), ID: s.ID()},
		Demonstration{Capability: Localize, Kind: s.Kind(), ID: s.ID(), Detail: localize},
		Demonstration{Capability: Measure, Kind: s.Kind(), ID: s.ID(), Detail: measure},
	)
	return demos
}

// barGraphDemos orders the axes before the bars, grouping each kind as it
// completes.
func barGraphDemos(g *shape.BarGraph) []Demonstration {
	var demos []Demonstration
	axisMembers := []int{g.AxisX().ID()}
	demos = append(demos, Demonstrations(g.AxisX())...)
	if y := g.AxisY(); y != nil {
		demos = append(demos, Demonstrations(y)...)
		axisMembers = append(axisMembers, y.ID())
	}
	demos = append(demos, Demonstration{
		Capability: Group, Kind: shape.KindAxis, ID: g.ID(), Members: axisMembers,
	})
	demos = append(demos, Demonstrations(g.BarsChild())...)
	demos = append(demos, Demonstration{
		Capability: Group, Kind: shape.KindBars, ID: g.ID(),
		Members: []int{g.BarsChild().ID()},
	})
	demos = append(demos,
		Demonstration{Capability: RecognizeInstance, Kind: shape.KindBarGraph, ID: g.ID()},
		Demonstration{Capability: Localize, Kind: shape.KindBarGraph, ID: g.ID(),
			Detail: "overall bounding region"},
		Demonstration{Capability: Measure, Kind: shape.KindBarGraph, ID: g.ID(),
			Detail: fmt.Sprintf("numBars=%d, axisLength=%.1f", g.BarsChild().NumBars, g.AxisLength)},
	)
	return demos
}
