package scene

import (
	"math/rand"

	"github.com/go-scenery/scenery/pkg/shape"
)

// Env bundles the single pseudo-random source and the threaded id counters a
// generation run consumes. Independent runs get independent Envs, so ids and
// random draws never interleave across runs; reproducing a run means seeding
// a fresh Env and repeating the same call sequence.
type Env struct {
	RNG *rand.Rand
	IDs *shape.IDGenerator
}

// NewEnv returns an Env seeded with the given value.
func NewEnv(seed int64) *Env {
	return &Env{
		RNG: rand.New(rand.NewSource(seed)),
		IDs: shape.NewIDGenerator(),
	}
}
