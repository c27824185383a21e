package articulated

import (
	"math"
	"math/rand"
)

// Sampler draws uniform joint configurations within each joint's range,
// defaulting to [-pi/2, +pi/2] when a joint's Min/Max are both zero.
type Sampler struct {
	rng    *rand.Rand
	joints []JointSpec
}

// NewSampler returns a Sampler seeded by rng, so repeated runs with the
// same seed produce identical configuration sequences.
func NewSampler(rng *rand.Rand, joints []JointSpec) *Sampler {
	return &Sampler{rng: rng, joints: joints}
}

// Sample draws one configuration: one angle per joint, uniform in range.
func (s *Sampler) Sample() []float64 {
	out := make([]float64, len(s.joints))
	for i, j := range s.joints {
		lo, hi := j.Min, j.Max
		if lo == 0 && hi == 0 {
			lo, hi = -math.Pi/2, math.Pi/2
		}
		out[i] = lo + s.rng.Float64()*(hi-lo)
	}
	return out
}
