package loot

// Options controls one generation call.
type Options struct {
	// How many items to generate; zero yields an empty batch
	NumberOfItems int `json:"number_of_items"`

	// Center of the per-item level roll
	BaseLevel float64 `json:"base_level"`

	// Half-width of the level roll: level = base ± up to variance.
	// Negative effective levels are allowed and shrink values.
	LevelVariance float64 `json:"level_variance"`

	// Probability of rolling a prefix and, independently, a suffix.
	// Clamped to [0, 1] at use time.
	AffixChance float64 `json:"affix_chance"`

	// Linear selects linear level scaling; false selects exponential
	Linear bool `json:"linear"`

	// Global multiplier applied on top of each attribute's own factor
	ScalingFactor float64 `json:"scaling_factor"`
}

// DefaultOptions returns the documented generation defaults.
func DefaultOptions() Options {
	return Options{
		NumberOfItems: 1,
		BaseLevel:     1.0,
		LevelVariance: 1.0,
		AffixChance:   0.25,
		Linear:        true,
		ScalingFactor: 1.0,
	}
}

// Overrides pins selection stages instead of rolling them. Empty fields keep
// random selection for that stage. Overridden values must exist in the
// taxonomy.
type Overrides struct {
	Quality string `json:"quality,omitempty"`
	Type    string `json:"type,omitempty"`
	Subtype string `json:"subtype,omitempty"`
}
