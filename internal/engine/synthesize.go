package engine

import (
	"math"
	"strings"

	"github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/errors"
	"github.com/edover/praeda-go/internal/pkg/random"
)

// levelNorm normalizes effective level so that default options around level
// 10 produce modest growth: at level 10 with unit factors, linear scaling
// doubles the draw before clamping.
const levelNorm = 10.0

// requirementMarker pins an attribute to the rolled item level instead of
// synthesizing it from its range. Used for stat requirements that must track
// the item's level (e.g. "strength_requirement").
const requirementMarker = "_requirement"

// synthesize realizes one attribute spec at the given effective level.
//
// The scale multiplier shifts the likely value within [min, max] rather than
// violating the range: the uniform draw is scaled and then clamped back.
// Negative effective levels flow through deliberately and shrink the scale
// below 1; callers wanting a floor clamp the level themselves.
func (g *Generator) synthesize(spec loot.AttributeSpec, level float64, opts loot.Options) (loot.AttributeValue, error) {
	if spec.Min > spec.Max {
		return loot.AttributeValue{}, errors.InvalidRangef(
			"attribute %q: min %v is greater than max %v", spec.Name, spec.Min, spec.Max)
	}

	value := 0.0
	if strings.Contains(spec.Name, requirementMarker) {
		value = level
	} else {
		factor := spec.ScalingFactor * opts.ScalingFactor

		var scale float64
		if opts.Linear {
			scale = 1 + level*factor/levelNorm
		} else {
			base := 1 + factor
			if base < 0 {
				// A fractional exponent on a negative base is undefined;
				// treat the scale as collapsed instead of returning NaN.
				base = 0
			}
			scale = math.Pow(base, level/levelNorm)
		}

		value = random.Range(g.random, spec.Min, spec.Max) * scale
		value = math.Min(math.Max(value, spec.Min), spec.Max)
	}

	return loot.AttributeValue{
		Name:          spec.Name,
		Value:         value,
		Min:           spec.Min,
		Max:           spec.Max,
		Required:      spec.Required,
		ScalingFactor: spec.ScalingFactor,
		Chance:        spec.Chance,
	}, nil
}
