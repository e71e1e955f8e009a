package scene

import (
	"github.com/go-scenery/scenery/pkg/errors"
	"github.com/go-scenery/scenery/pkg/geom"
	"github.com/go-scenery/scenery/pkg/shape"
)

// PlanItem requests instances of one shape kind: either Count randomized
// instances, or explicit (typically locked) pre-built shapes.
type PlanItem struct {
	Kind   shape.Kind
	Count  int
	Shapes []shape.Shape
}

// Plan is the ordered object inventory a scene is built from. Order matters
// for reproducibility: shapes are constructed and assigned in plan order.
type Plan []PlanItem

// PlanFromInventory converts a resolved minimum object inventory into a plan.
// Kinds are emitted in declaration order, not map order, so the same
// inventory always yields the same plan.
func PlanFromInventory(inv map[shape.Kind]int) Plan {
	var plan Plan
	for _, k := range shape.Kinds() {
		if inv[k] > 0 {
			plan = append(plan, PlanItem{Kind: k, Count: inv[k]})
		}
	}
	return plan
}

// Required counts the instances the plan demands.
func (p Plan) Required() int {
	n := 0
	for _, item := range p {
		n += item.Count + len(item.Shapes)
	}
	return n
}

// Options controls scene creation and constrained generation.
type Options struct {
	// Canvas is the rectangle the finished scene is fitted into.
	Canvas geom.Rect
	// MinShapes and MaxShapes bound the root-object count; scenes outside
	// the band are padded with random distractors or trimmed.
	MinShapes int
	MaxShapes int
	// Avoid lists kinds distractor padding must never add.
	Avoid []shape.Kind
	// SkipFit leaves the scene in its raw coordinates.
	SkipFit bool

	// LineRetries bounds the parallel/perpendicular search.
	LineRetries int
	// ArrowRetries bounds the arrow-direction search.
	ArrowRetries int
	// IntersectRetries bounds the intersection candidate search.
	IntersectRetries int
	// WiggleAttempts bounds the answer-preserving perturbation pass after
	// an intersection candidate is found.
	WiggleAttempts int
	// Epsilon is the angular tolerance used when verifying line
	// relations.
	Epsilon float64
	// DirectionTolerance is the angular band for arrow-direction
	// construction and verification.
	DirectionTolerance float64
}

// DefaultOptions returns the standard generation settings: a 100x100 canvas,
// a 3..6 distractor band, and the retry bounds tuned per relation rarity.
func DefaultOptions() Options {
	return Options{
		Canvas:             geom.RectFromLTWH(0, 0, 100, 100),
		MinShapes:          3,
		MaxShapes:          6,
		LineRetries:        50,
		ArrowRetries:       5,
		IntersectRetries:   100,
		WiggleAttempts:     10,
		Epsilon:            4,
		DirectionTolerance: 30,
	}
}

func (o Options) avoids(k shape.Kind) bool {
	for _, a := range o.Avoid {
		if a == k {
			return true
		}
	}
	return false
}

// withAvoid returns a copy of the options with k added to the avoid list.
func (o Options) withAvoid(k shape.Kind) Options {
	avoid := make([]shape.Kind, 0, len(o.Avoid)+1)
	avoid = append(avoid, o.Avoid...)
	avoid = append(avoid, k)
	o.Avoid = avoid
	return o
}

// Build instantiates the plan's shapes in order. Unknown kinds fail fast
// with a configuration error.
func (p Plan) Build(env *Env) (*Scene, error) {
	sc := &Scene{}
	for _, item := range p {
		for i := 0; i < item.Count; i++ {
			s, err := shape.New(item.Kind, env.IDs, env.RNG)
			if err != nil {
				return nil, err
			}
			sc.Add(s)
		}
		sc.Add(item.Shapes...)
	}
	return sc, nil
}

// Create builds the plan, pads or trims the scene into the configured object
// band, resolves randomized geometry in construction order, and fits the
// scene to the canvas unless SkipFit is set.
func Create(plan Plan, env *Env, opts Options) (*Scene, error) {
	sc, err := plan.Build(env)
	if err != nil {
		return nil, err
	}

	var available []shape.Kind
	for _, k := range shape.Kinds() {
		if !opts.avoids(k) {
			available = append(available, k)
		}
	}
	for sc.Len() < opts.MinShapes && len(available) > 0 {
		k := available[env.RNG.Intn(len(available))]
		s, err := shape.New(k, env.IDs, env.RNG)
		if err != nil {
			return nil, err
		}
		sc.Add(s)
	}
	for sc.Len() > opts.MaxShapes {
		sc.removeLast()
	}

	sc.AssignGeometry(env.RNG)

	if !opts.SkipFit {
		if opts.Canvas.Width() <= 0 || opts.Canvas.Height() <= 0 {
			return nil, errors.Geometryf("scene.Create",
				"cannot fit scene into degenerate %gx%g canvas",
				opts.Canvas.Width(), opts.Canvas.Height())
		}
		sc.FitToCanvas(opts.Canvas)
	}
	return sc, nil
}
