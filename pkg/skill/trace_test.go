package skill

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/shape"
)

func TestLineDemonstrations(t *testing.T) {
	ids := shape.NewIDGenerator()
	l := shape.NewLineBetween(ids, geom.Pt(0, 0), geom.Pt(10, 0))
	demos := Demonstrations(l)
	require.Len(t, demos, 3)
	assert.Equal(t, RecognizeInstance, demos[0].Capability)
	assert.Equal(t, Localize, demos[1].Capability)
	assert.Equal(t, Measure, demos[2].Capability)
	for _, d := range demos {
		assert.Equal(t, shape.KindLine, d.Kind)
		assert.Equal(t, l.ID(), d.ID)
	}
	assert.Contains(t, demos[2].Detail, "length=10.0")
}

func TestRectangleDemonstrationsGroupSides(t *testing.T) {
	ids := shape.NewIDGenerator()
	r := shape.NewRectangleAt(ids, geom.Pt(50, 50), 20, 10, 0)
	demos := Demonstrations(r)

	// Four line triplets, one Group event, then the rectangle triplet.
	require.Len(t, demos, 4*3+1+3)
	group := demos[12]
	assert.Equal(t, Group, group.Capability)
	assert.Equal(t, shape.KindLine, group.Kind)
	assert.Len(t, group.Members, 4)
	assert.Equal(t, RecognizeInstance, demos[13].Capability)
	assert.Equal(t, shape.KindRectangle, demos[13].Kind)
	assert.Contains(t, demos[15].Detail, "area=200.0")
}

func TestDemonstrationOrderRespectsGraph(t *testing.T) {
	ids := shape.NewIDGenerator()
	rng := rand.New(rand.NewSource(7))
	g := shape.NewBarGraph(ids, rng, shape.DefaultBarGraphOptions())
	g.AssignGeometry(rng)
	demos := Demonstrations(g)
	require.NotEmpty(t, demos)

	// Every demonstration ordering constraint the graph encodes must hold
	// within the trace: a capability for a kind never precedes its
	// prerequisites' first occurrence.
	firstOf := func(c Capability, k shape.Kind) int {
		for i, d := range demos {
			if d.Capability == c && d.Kind == k {
				return i
			}
		}
		return -1
	}
	groupAxis := firstOf(Group, shape.KindAxis)
	groupBars := firstOf(Group, shape.KindBars)
	recogGraph := firstOf(RecognizeInstance, shape.KindBarGraph)
	require.NotEqual(t, -1, groupAxis)
	require.NotEqual(t, -1, groupBars)
	require.NotEqual(t, -1, recogGraph)
	assert.Less(t, groupAxis, recogGraph)
	assert.Less(t, groupBars, recogGraph)
	assert.Less(t, firstOf(Group, shape.KindRectangle), firstOf(RecognizeInstance, shape.KindBars))
	assert.Less(t, firstOf(Group, shape.KindLine), firstOf(RecognizeInstance, shape.KindRectangle))

	// The trace ends on the bar graph's own triplet.
	last := demos[len(demos)-1]
	assert.Equal(t, Measure, last.Capability)
	assert.Equal(t, shape.KindBarGraph, last.Kind)
}

func TestBarGraphGroupMembers(t *testing.T) {
	ids := shape.NewIDGenerator()
	rng := rand.New(rand.NewSource(8))
	g := shape.NewBarGraph(ids, rng, shape.DefaultBarGraphOptions())
	g.AssignGeometry(rng)
	demos := Demonstrations(g)

	for _, d := range demos {
		if d.Capability == Group && d.Kind == shape.KindAxis {
			assert.ElementsMatch(t, []int{g.AxisX().ID(), g.AxisY().ID()}, d.Members)
		}
		if d.Capability == Group && d.Kind == shape.KindBars {
			assert.Equal(t, []int{g.BarsChild().ID()}, d.Members)
		}
	}
}

func TestDemonstrationString(t *testing.T) {
	d := Demonstration{Capability: Measure, Kind: shape.KindLine, ID: 3, Detail: "length=10.0"}
	assert.Equal(t, "MeasureLine => Line#3 (length=10.0)", d.String())
}
