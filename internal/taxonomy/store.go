// Package taxonomy holds the configured loot taxonomy (qualities, item
// types, subtypes, name pools, attribute specs, affixes) and the builder
// API that mutates it.
//
// A Store is an explicit owned value: callers create as many independent
// stores as they need and pass them into generation calls. The concurrency
// contract is read-many/write-exclusive per store: builder calls must not
// overlap with an in-flight generation call on the same store.
package taxonomy

import (
	"github.com/edover/praeda-go/internal/entities/loot"
)

// pairKey is the resolved lookup key for (type, subtype) scoped data. The
// type-wide bucket resolves to an empty subtype; the sentinel never appears
// in the public API, which addresses scopes through the Scope variant.
type pairKey struct {
	itemType string
	subtype  string
}

type itemTypeEntry struct {
	name     string
	weight   int
	subtypes []loot.SubtypeWeight
}

// Store holds one loot taxonomy. Slices, not maps, back every weighted set
// so selection walks a reproducible order.
type Store struct {
	qualities []loot.QualityTier
	types     []*itemTypeEntry

	names       map[pairKey][]string
	attrs       map[pairKey][]loot.AttributeSpec
	affixes     map[pairKey]map[Side][]loot.AffixSpec
	subtypeMeta map[pairKey]map[string]any
	nameMeta    map[pairKey]map[string]map[string]any
}

// New creates an empty taxonomy store.
func New() *Store {
	return &Store{
		names:       make(map[pairKey][]string),
		attrs:       make(map[pairKey][]loot.AttributeSpec),
		affixes:     make(map[pairKey]map[Side][]loot.AffixSpec),
		subtypeMeta: make(map[pairKey]map[string]any),
		nameMeta:    make(map[pairKey]map[string]map[string]any),
	}
}

func (s *Store) findType(name string) *itemTypeEntry {
	for _, t := range s.types {
		if t.name == name {
			return t
		}
	}
	return nil
}

// Qualities returns the configured quality tiers in insertion order.
func (s *Store) Qualities() []loot.QualityTier {
	return s.qualities
}

// HasQuality reports whether a quality tier is configured. An empty name is
// vacuously true, matching the override semantics where empty means
// unconstrained.
func (s *Store) HasQuality(name string) bool {
	if name == "" {
		return true
	}
	for _, q := range s.qualities {
		if q.Name == name {
			return true
		}
	}
	return false
}

// Types returns the configured item types in insertion order.
func (s *Store) Types() []loot.TypeWeight {
	out := make([]loot.TypeWeight, len(s.types))
	for i, t := range s.types {
		out[i] = loot.TypeWeight{Name: t.name, Weight: t.weight}
	}
	return out
}

// HasType reports whether an item type is configured.
func (s *Store) HasType(name string) bool {
	return s.findType(name) != nil
}

// TypeNames returns the configured item type names in insertion order.
func (s *Store) TypeNames() []string {
	out := make([]string, len(s.types))
	for i, t := range s.types {
		out[i] = t.name
	}
	return out
}

// Subtypes returns the weighted subtypes of a type in insertion order, nil
// if the type is unknown.
func (s *Store) Subtypes(itemType string) []loot.SubtypeWeight {
	t := s.findType(itemType)
	if t == nil {
		return nil
	}
	return t.subtypes
}

// HasSubtype reports whether a subtype is configured under a type.
func (s *Store) HasSubtype(itemType, subtype string) bool {
	t := s.findType(itemType)
	if t == nil {
		return false
	}
	for _, st := range t.subtypes {
		if st.Name == subtype {
			return true
		}
	}
	return false
}

// SubtypeNames returns the subtype names of a type in insertion order.
func (s *Store) SubtypeNames(itemType string) []string {
	subtypes := s.Subtypes(itemType)
	out := make([]string, len(subtypes))
	for i, st := range subtypes {
		out[i] = st.Name
	}
	return out
}

// NamePool returns the display names configured for a (type, subtype) pair.
func (s *Store) NamePool(itemType, subtype string) []string {
	return s.names[pairKey{itemType, subtype}]
}

// MergedAttributes returns the base attribute specs for a (type, subtype)
// pair: the type-wide specs first, with subtype-scoped specs overriding
// same-named entries in place and appending otherwise. The result order is
// deterministic for a given configuration order.
func (s *Store) MergedAttributes(itemType, subtype string) []loot.AttributeSpec {
	typeWide := s.attrs[pairKey{itemType, ""}]
	scoped := s.attrs[pairKey{itemType, subtype}]

	merged := make([]loot.AttributeSpec, len(typeWide), len(typeWide)+len(scoped))
	copy(merged, typeWide)

	for _, spec := range scoped {
		replaced := false
		for i := range merged {
			if merged[i].Name == spec.Name {
				merged[i] = spec
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, spec)
		}
	}

	return merged
}

// Affixes returns the affixes registered on one side of a (type, subtype)
// pair, in registration order.
func (s *Store) Affixes(itemType, subtype string, side Side) []loot.AffixSpec {
	sides := s.affixes[pairKey{itemType, subtype}]
	if sides == nil {
		return nil
	}
	return sides[side]
}

// SubtypeMetadata returns the metadata configured for a (type, subtype)
// pair. The returned map is the store's own; callers must copy before
// attaching it to output.
func (s *Store) SubtypeMetadata(itemType, subtype string) map[string]any {
	return s.subtypeMeta[pairKey{itemType, subtype}]
}

// NameMetadata returns the metadata configured for one display name within
// a (type, subtype) pair.
func (s *Store) NameMetadata(itemType, subtype, itemName string) map[string]any {
	names := s.nameMeta[pairKey{itemType, subtype}]
	if names == nil {
		return nil
	}
	return names[itemName]
}
