package loot

// AttributeSpec declares the value range and inclusion rules for one
// attribute within its owning scope (type-wide, subtype, or affix).
type AttributeSpec struct {
	// Attribute name, unique within its owning scope
	Name string `json:"name"`

	// Base value before level scaling
	InitialValue float64 `json:"initial_value"`

	// Lower bound of the synthesized value
	Min float64 `json:"min"`

	// Upper bound of the synthesized value
	Max float64 `json:"max"`

	// Required attributes are always included; optional ones roll Chance
	Required bool `json:"required"`

	// Per-attribute multiplier applied during level scaling
	ScalingFactor float64 `json:"scaling_factor"`

	// Inclusion probability for optional attributes
	Chance float64 `json:"chance"`
}

// NewAttributeSpec creates a spec with the default scaling factor of 1.0
// and no inclusion chance.
func NewAttributeSpec(name string, initialValue, minValue, maxValue float64, required bool) AttributeSpec {
	return AttributeSpec{
		Name:          name,
		InitialValue:  initialValue,
		Min:           minValue,
		Max:           maxValue,
		Required:      required,
		ScalingFactor: 1.0,
	}
}

// AffixSpec is a named prefix or suffix definition with the attribute specs
// it applies when drawn.
type AffixSpec struct {
	Name       string          `json:"name"`
	Attributes []AttributeSpec `json:"attributes"`
}

// AttributeValue is a realized attribute on a generated item. It carries the
// generated value alongside the spec fields it was synthesized from.
type AttributeValue struct {
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	Required      bool    `json:"required"`
	ScalingFactor float64 `json:"scaling_factor"`
	Chance        float64 `json:"chance"`
}
