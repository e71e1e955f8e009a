package scene

import (
	"github.com/go-scenery/scenery/pkg/errors"
	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/relate"
	"github.com/go-scenery/scenery/pkg/shape"
	"github.com/go-scenery/scenery/pkg/skill"
)

// Outcome reports how a constrained-generation search terminated.
type Outcome int

const (
	// MatchedConstraint means the accepted scene's predicate truth value
	// matches the requested answer.
	MatchedConstraint Outcome = iota
	// FallbackUsed means the retry bound was exhausted and the last
	// candidate was accepted as-is; its predicate truth value may not
	// match the requested answer. Callers relying on strict correctness
	// must check for this.
	FallbackUsed
)

func (o Outcome) String() string {
	if o == FallbackUsed {
		return "fallback"
	}
	return "matched"
}

// Result is a finished constrained generation: the scene, whether the
// constraint was actually met, and how many candidates were tried.
type Result struct {
	Scene    *Scene
	Outcome  Outcome
	Attempts int
}

// sceneMargin keeps constructed geometry away from the canvas edge.
const sceneMargin = 5

// GeneratePresence creates a scene that contains (answer true) or provably
// lacks (answer false) the given shape kind. Absence is enforced by keeping
// the kind off the distractor list, so no retry loop is needed.
func GeneratePresence(kind shape.Kind, answer bool, env *Env, opts Options) (Result, error) {
	var plan Plan
	if answer {
		plan = Plan{{Kind: kind, Count: 1 + env.RNG.Intn(2)}}
	} else {
		opts = opts.withAvoid(kind)
	}
	sc, err := Create(plan, env, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Scene: sc, Outcome: MatchedConstraint, Attempts: 1}, nil
}

// GenerateCapability creates a scene carrying the minimum object inventory
// for demonstrating target, padded with distractors like any other scene.
// The required instances are never trimmed: when the inventory alone exceeds
// the object band, the band widens to hold it.
func GenerateCapability(g *skill.Graph, target skill.Node, env *Env, opts Options) (Result, error) {
	inv, err := g.Inventory(target)
	if err != nil {
		return Result{}, err
	}
	plan := PlanFromInventory(inv)
	if n := plan.Required(); n > opts.MaxShapes {
		opts.MaxShapes = n
	}
	sc, err := Create(plan, env, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Scene: sc, Outcome: MatchedConstraint, Attempts: 1}, nil
}

// LineRelation selects which angular relation a line-pair search targets.
type LineRelation int

const (
	// ParallelLines targets two lines within the tolerance of each other.
	ParallelLines LineRelation = iota
	// PerpendicularLines targets two lines 90 degrees apart within the
	// tolerance.
	PerpendicularLines
)

func (r LineRelation) String() string {
	if r == PerpendicularLines {
		return "perpendicular"
	}
	return "parallel"
}

// holds evaluates the relation between two direction angles.
func (r LineRelation) holds(a, b, tol float64) bool {
	if r == PerpendicularLines {
		return relate.Perpendicular(a, b, tol)
	}
	return relate.Parallel(a, b, tol)
}

// decoyOffsets are the angular offsets used to construct a line pair that
// deliberately violates the relation.
func (r LineRelation) decoyOffsets() []float64 {
	if r == PerpendicularLines {
		return []float64{20, 40, 120}
	}
	return []float64{10, 20, 30, 40}
}

// anyPair reports whether any two reachable lines in the scene satisfy the
// relation. Every Line found by tree traversal is eligible, including
// composite children.
func (r LineRelation) anyPair(sc *Scene, tol float64) bool {
	lines := sc.Lines()
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			if r.holds(lines[i].Angle(), lines[j].Angle(), tol) {
				return true
			}
		}
	}
	return false
}

// GenerateLineRelation searches for a scene whose reachable lines do
// (answer true) or do not (answer false) contain a pair satisfying the
// relation within opts.Epsilon. Two candidate lines are constructed per
// attempt; distractor padding can contribute further eligible lines, so the
// whole scene is re-verified each attempt. For answer true there is a small
// chance of emitting a single Rectangle, Bars or Axis instead, which carries
// the relation structurally.
func GenerateLineRelation(rel LineRelation, answer bool, env *Env, opts Options) (Result, error) {
	if answer {
		switch r := env.RNG.Float64(); {
		case r < 0.02:
			return structuralLineScene(rel, shape.KindRectangle, env, opts)
		case r < 0.04:
			return structuralLineScene(rel, shape.KindBars, env, opts)
		case r < 0.06:
			return structuralLineScene(rel, shape.KindAxis, env, opts)
		}
	}

	width := opts.Canvas.Width()
	height := opts.Canvas.Height()
	var last *Scene
	for attempt := 1; attempt <= opts.LineRetries; attempt++ {
		base := uniform(env.RNG, 0, 360)
		a1, a2 := rel.anglePair(base, answer, env, opts.Epsilon)
		p1 := randomCanvasPoint(env, width, height)
		p2 := randomCanvasPoint(env, width, height)
		len1 := uniform(env.RNG, 10, width*0.6)
		len2 := uniform(env.RNG, 10, width*0.6)

		plan := Plan{{Kind: shape.KindLine, Shapes: []shape.Shape{
			shape.NewLineBetween(env.IDs, p1, geom.PointAt(p1, a1, len1)),
			shape.NewLineBetween(env.IDs, p2, geom.PointAt(p2, a2, len2)),
		}}}
		sc, err := Create(plan, env, opts)
		if err != nil {
			return Result{}, err
		}
		last = sc
		if rel.anyPair(sc, opts.Epsilon) == answer {
			return Result{Scene: sc, Outcome: MatchedConstraint, Attempts: attempt}, nil
		}
	}
	return Result{Scene: last, Outcome: FallbackUsed, Attempts: opts.LineRetries}, nil
}

// anglePair derives the two line angles for one candidate: close together
// (or 90 degrees apart) when the relation should hold, offset by a fixed
// decoy amount when it should not.
func (r LineRelation) anglePair(base float64, valid bool, env *Env, eps float64) (float64, float64) {
	a1 := geom.NormalizeAngle(base)
	if valid {
		offset := uniform(env.RNG, -eps/2, eps/2)
		target := 0.0
		if r == PerpendicularLines {
			target = 90
		}
		return a1, geom.NormalizeAngle(base + target + offset)
	}
	decoys := r.decoyOffsets()
	return a1, geom.NormalizeAngle(base + decoys[env.RNG.Intn(len(decoys))])
}

// structuralLineScene emits a single composite whose derived lines carry the
// relation, verifying it the same way as a constructed pair.
func structuralLineScene(rel LineRelation, kind shape.Kind, env *Env, opts Options) (Result, error) {
	sc, err := Create(Plan{{Kind: kind, Count: 1}}, env, opts)
	if err != nil {
		return Result{}, err
	}
	outcome := MatchedConstraint
	if !rel.anyPair(sc, opts.Epsilon) {
		outcome = FallbackUsed
	}
	return Result{Scene: sc, Outcome: outcome, Attempts: 1}, nil
}

// noArrowChance is the probability that an answer=false direction scene
// simply contains no arrow at all.
const noArrowChance = 0.15

// GenerateArrowDirection searches for a scene in which some arrow does
// (answer true) or no arrow does (answer false) point in the given direction
// within opts.DirectionTolerance. For answer false the scene may instead
// contain no arrow, or an arrow aimed at a different direction.
func GenerateArrowDirection(dir relate.Direction, answer bool, env *Env, opts Options) (Result, error) {
	width := opts.Canvas.Width()
	height := opts.Canvas.Height()
	maxLen := width
	if height < width {
		maxLen = height
	}

	var last *Scene
	for attempt := 1; attempt <= opts.ArrowRetries; attempt++ {
		var plan Plan
		if answer {
			plan = arrowPlan(dir, env, opts, maxLen)
		} else if env.RNG.Float64() >= noArrowChance {
			others := otherDirections(dir)
			wrong := others[env.RNG.Intn(len(others))]
			plan = arrowPlan(wrong, env, opts, maxLen)
		}
		sc, err := Create(plan, env, opts)
		if err != nil {
			return Result{}, err
		}
		last = sc
		if arrowAnswer(sc, dir, opts.DirectionTolerance) == answer {
			return Result{Scene: sc, Outcome: MatchedConstraint, Attempts: attempt}, nil
		}
	}
	return Result{Scene: last, Outcome: FallbackUsed, Attempts: opts.ArrowRetries}, nil
}

// arrowPlan constructs one locked arrow aimed at dir within the direction
// tolerance.
func arrowPlan(dir relate.Direction, env *Env, opts Options, maxLen float64) Plan {
	angle := dir.Angle() + uniform(env.RNG, -opts.DirectionTolerance, opts.DirectionTolerance)
	length := uniform(env.RNG, 20, maxLen/1.5)
	start := randomCanvasPoint(env, opts.Canvas.Width(), opts.Canvas.Height())
	return Plan{{Kind: shape.KindArrow, Shapes: []shape.Shape{
		shape.NewArrowFrom(env.IDs, start, length, geom.NormalizeAngle(angle)),
	}}}
}

// arrowAnswer reports whether any arrow in the scene points in dir within
// tol. Distractor padding can add arrows beyond the planned one, so every
// root arrow is checked.
func arrowAnswer(sc *Scene, dir relate.Direction, tol float64) bool {
	for _, root := range sc.OfKind(shape.KindArrow) {
		if relate.ArrowPoints(root.(*shape.Arrow), dir, tol) {
			return true
		}
	}
	return false
}

func otherDirections(dir relate.Direction) []relate.Direction {
	var out []relate.Direction
	for _, d := range relate.Directions() {
		if d != dir {
			out = append(out, d)
		}
	}
	return out
}

// randomCanvasPoint draws a point inside the canvas respecting the scene
// margin.
func randomCanvasPoint(env *Env, width, height float64) geom.Point {
	return geom.Pt(
		uniform(env.RNG, sceneMargin, width-sceneMargin),
		uniform(env.RNG, sceneMargin, height-sceneMargin),
	)
}

// errUnsupportedKind builds the configuration error for a kind outside the
// intersectable set.
func errUnsupportedKind(op string, k shape.Kind) error {
	return errors.Configf(op, "shape kind %s cannot be intersection-tested", k)
}
