// Package skill models the capability dependency graph: which
// (kind, capability) pairs must be demonstrable before another becomes
// meaningful, and the minimum object inventory a scene needs to demonstrate a
// target capability.
//
// The graph is small and static, so it is an explicit adjacency map with a
// hand-rolled topological sort and reverse-reachability query rather than a
// general graph dependency.
package skill

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-scenery/scenery/pkg/errors"
	"github.com/go-scenery/scenery/pkg/shape"
)

// Capability is one step of the fixed capability ordering.
type Capability int

const (
	// RecognizeInstance identifies that an object of a kind is present.
	RecognizeInstance Capability = iota
	// Localize pins down where the object is.
	Localize
	// Measure derives the object's metric properties.
	Measure
	// Group collects multiple instances into one aggregate.
	Group
	// Count enumerates the instances of a kind.
	Count

	capabilityCount
)

func (c Capability) String() string {
	switch c {
	case RecognizeInstance:
		return "RecognizeInstance"
	case Localize:
		return "Localize"
	case Measure:
		return "Measure"
	case Group:
		return "Group"
	case Count:
		return "Count"
	default:
		return "Unknown"
	}
}

// capabilitySynonyms maps alternate capability-label spellings to the
// canonical capability. Keys are lowercase.
var capabilitySynonyms = map[string]Capability{
	"recognizeinstance": RecognizeInstance,
	"recognize":         RecognizeInstance,
	"recognise":         RecognizeInstance,
	"detect":            RecognizeInstance,
	"identify":          RecognizeInstance,
	"localize":          Localize,
	"localise":          Localize,
	"locate":            Localize,
	"measure":           Measure,
	"size":              Measure,
	"group":             Group,
	"cluster":           Group,
	"count":             Count,
	"enumerate":         Count,
}

// ParseCapability resolves a capability label, accepting the canonical names
// and their synonyms case-insensitively. Unknown labels are a configuration
// error.
func ParseCapability(name string) (Capability, error) {
	if c, ok := capabilitySynonyms[strings.ToLower(name)]; ok {
		return c, nil
	}
	return 0, errors.Configf("skill.ParseCapability", "unknown capability %q", name)
}

// Node is one (kind, capability) pair in the dependency graph.
type Node struct {
	Kind       shape.Kind
	Capability Capability
}

func (n Node) String() string {
	return fmt.Sprintf("%s(%s)", n.Capability, n.Kind)
}

// Graph is the capability dependency DAG. Edges encode "must occur before":
// an edge from a to b means a is a prerequisite of b.
type Graph struct {
	prereqs map[Node][]Node
}

// New builds the static scenery graph: the capability chain
// RecognizeInstance -> Localize -> Measure -> Group -> Count per kind, plus
// the cross-kind edges expressing that a composite kind is recognized only
// once its parts are grouped.
func New() *Graph {
	g := &Graph{prereqs: make(map[Node][]Node)}
	for _, k := range shape.Kinds() {
		for c := RecognizeInstance; c < Count; c++ {
			g.addEdge(Node{k, c}, Node{k, c + 1})
		}
	}
	groupLine := Node{shape.KindLine, Group}
	for _, k := range []shape.Kind{
		shape.KindRectangle,
		shape.KindTriangle,
		shape.KindPolygon,
		shape.KindArrow,
		shape.KindAxis,
	} {
		g.addEdge(groupLine, Node{k, RecognizeInstance})
	}
	g.addEdge(Node{shape.KindRectangle, Group}, Node{shape.KindBars, RecognizeInstance})
	g.addEdge(Node{shape.KindBars, Group}, Node{shape.KindBarGraph, RecognizeInstance})
	g.addEdge(Node{shape.KindAxis, Group}, Node{shape.KindBarGraph, RecognizeInstance})
	return g
}

// addEdge records that before must occur before after.
func (g *Graph) addEdge(before, after Node) {
	g.prereqs[after] = append(g.prereqs[after], before)
}

func validNode(n Node) bool {
	_, err := shape.ParseKind(n.Kind.String())
	return err == nil && n.Capability >= RecognizeInstance && n.Capability < capabilityCount
}

// Prerequisites returns the full ordered chain of nodes that must be
// demonstrable before (and including) target: every node reachable from
// target over prerequisite edges, in a deterministic topological order with
// target last.
func (g *Graph) Prerequisites(target Node) ([]Node, error) {
	if !validNode(target) {
		return nil, errors.Configf("skill.Prerequisites", "unknown node %s", target)
	}
	var order []Node
	visited := make(map[Node]bool)
	var visit func(Node)
	visit = func(n Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, p := range sortedNodes(g.prereqs[n]) {
			visit(p)
		}
		order = append(order, n)
	}
	visit(target)
	return order, nil
}

// Inventory resolves the minimum object inventory for demonstrating target:
// one instance of a kind for a RecognizeInstance/Localize/Measure
// requirement, at least two for Group/Count, since a group of one is
// degenerate.
func (g *Graph) Inventory(target Node) (map[shape.Kind]int, error) {
	chain, err := g.Prerequisites(target)
	if err != nil {
		return nil, err
	}
	inv := make(map[shape.Kind]int)
	for _, n := range chain {
		need := 1
		if n.Capability == Group || n.Capability == Count {
			need = 2
		}
		if need > inv[n.Kind] {
			inv[n.Kind] = need
		}
	}
	return inv, nil
}

// sortedNodes returns a copy of nodes ordered by kind then capability, so
// traversal order is deterministic.
func sortedNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Capability < out[j].Capability
	})
	return out
}
