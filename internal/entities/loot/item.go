// Package loot defines the entities produced and consumed by the generation
// engine: items, affixes, attributes, and the weighted taxonomy leaf types.
package loot

// QualityTier is a weighted rarity grade (common, rare, legendary, ...).
type QualityTier struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// TypeWeight is a weighted item type entry.
type TypeWeight struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// SubtypeWeight is a weighted subtype entry owned by an item type.
type SubtypeWeight struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// Affix is a prefix or suffix instance attached to a generated item. An
// absent affix has an empty name and no attributes.
type Affix struct {
	Name       string           `json:"name"`
	Attributes []AttributeValue `json:"attributes"`
}

// IsEmpty reports whether the affix slot is unoccupied.
func (a Affix) IsEmpty() bool {
	return a.Name == "" && len(a.Attributes) == 0
}

// Item is one generated loot item. Items are owned by the caller that
// received them and hold no reference back into the taxonomy.
type Item struct {
	// Display name drawn from the (type, subtype) name pool
	Name string `json:"name"`

	// Quality tier name
	Quality string `json:"quality"`

	// Item type name
	Type string `json:"type"`

	// Subtype name within the type
	Subtype string `json:"subtype"`

	// Effective level rolled for this item; all attribute scaling used it
	Level float64 `json:"level"`

	// Prefix affix, empty if none was rolled
	Prefix Affix `json:"prefix"`

	// Suffix affix, empty if none was rolled
	Suffix Affix `json:"suffix"`

	// Realized base attributes keyed by attribute name
	Attributes map[string]AttributeValue `json:"attributes"`

	// Free-form metadata copied from the taxonomy (subtype-level entries
	// first, then name-level entries on key collision)
	Metadata map[string]any `json:"metadata,omitempty"`
}
