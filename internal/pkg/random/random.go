// Package random provides the seedable randomness source and the weighted
// selection primitive used by the loot engine.
package random

import (
	"math/rand/v2"
	"time"

	"github.com/edover/praeda-go/internal/errors"
)

// Source provides the uniform draws the engine needs. A Source is owned by a
// single generation call at a time; implementations are not safe for
// concurrent use.
type Source interface {
	// Float64 returns a uniform real in [0, 1)
	Float64() float64

	// IntN returns a uniform int in [0, n); n must be positive
	IntN(n int) int
}

// New returns a seeded source. Identical seeds produce identical draw
// sequences, which is the reproducibility contract generation relies on.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewFromTime returns a source seeded from the current time.
func NewFromTime() Source {
	return New(uint64(time.Now().UnixNano())) // #nosec G115 -- seed truncation is fine
}

// Weighted pairs a candidate with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// PickWeighted returns one entry with probability weight/total using a single
// uniform draw and a cumulative walk over the slice. Input order is the only
// order that matters, so results are reproducible for a fixed source.
// Entries with non-positive weight carry no selection mass.
func PickWeighted[T any](src Source, entries []Weighted[T]) (T, error) {
	var zero T

	total := 0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total == 0 {
		return zero, errors.EmptyDistribution("no entries with positive weight")
	}

	roll := src.Float64() * float64(total)
	acc := 0.0
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		acc += float64(e.Weight)
		if roll < acc {
			return e.Value, nil
		}
	}

	// Unreachable unless float accumulation rounds under the total.
	return zero, errors.Internal("weighted selection walked past all entries")
}

// PickUniform returns one entry chosen uniformly.
func PickUniform[T any](src Source, entries []T) (T, error) {
	var zero T
	if len(entries) == 0 {
		return zero, errors.EmptyDistribution("no entries to select from")
	}
	return entries[src.IntN(len(entries))], nil
}

// Range returns a uniform real in [lo, hi). lo == hi returns lo.
func Range(src Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}

// Bernoulli returns true with probability p, clamping p into [0, 1].
func Bernoulli(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}
