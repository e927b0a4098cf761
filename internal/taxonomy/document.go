package taxonomy

import (
	"slices"

	"github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/errors"
)

// Document is the serializable form of a Store. Snapshots are deterministic:
// every collection appears in the store's insertion order, so a snapshot of
// an unchanged store is byte-stable under JSON encoding.
type Document struct {
	Qualities  []loot.QualityTier       `json:"qualities"`
	Types      []TypeDocument           `json:"types"`
	Names      []NamePoolDocument       `json:"names,omitempty"`
	Attributes []AttributeScopeDocument `json:"attributes,omitempty"`
	Affixes    []AffixScopeDocument     `json:"affixes,omitempty"`
}

// TypeDocument is one item type with its weighted subtypes.
type TypeDocument struct {
	Name     string               `json:"name"`
	Weight   int                  `json:"weight"`
	Subtypes []loot.SubtypeWeight `json:"subtypes,omitempty"`
}

// NamePoolDocument is the name pool for one (type, subtype) pair, with any
// per-name metadata.
type NamePoolDocument struct {
	Type         string                    `json:"type"`
	Subtype      string                    `json:"subtype"`
	Names        []string                  `json:"names"`
	NameMetadata map[string]map[string]any `json:"name_metadata,omitempty"`
}

// AttributeScopeDocument carries the attribute specs of one scope. An empty
// subtype marks the type-wide scope.
type AttributeScopeDocument struct {
	Type       string               `json:"type"`
	Subtype    string               `json:"subtype,omitempty"`
	Attributes []loot.AttributeSpec `json:"attributes"`
}

// AffixScopeDocument carries the affixes and metadata of one (type,
// subtype) pair.
type AffixScopeDocument struct {
	Type     string           `json:"type"`
	Subtype  string           `json:"subtype"`
	Prefixes []loot.AffixSpec `json:"prefixes,omitempty"`
	Suffixes []loot.AffixSpec `json:"suffixes,omitempty"`
	Metadata map[string]any   `json:"metadata,omitempty"`
}

// Snapshot exports the store as a Document.
func (s *Store) Snapshot() Document {
	doc := Document{
		Qualities: append([]loot.QualityTier(nil), s.qualities...),
	}

	for _, t := range s.types {
		doc.Types = append(doc.Types, TypeDocument{
			Name:     t.name,
			Weight:   t.weight,
			Subtypes: append([]loot.SubtypeWeight(nil), t.subtypes...),
		})
	}

	// Walk (type, subtype) pairs in insertion order rather than ranging
	// over the maps, so the document layout is reproducible.
	for _, t := range s.types {
		if typeWide := s.attrs[pairKey{t.name, ""}]; len(typeWide) > 0 {
			doc.Attributes = append(doc.Attributes, AttributeScopeDocument{
				Type:       t.name,
				Attributes: append([]loot.AttributeSpec(nil), typeWide...),
			})
		}

		for _, st := range t.subtypes {
			key := pairKey{t.name, st.Name}

			if pool := s.names[key]; len(pool) > 0 {
				doc.Names = append(doc.Names, NamePoolDocument{
					Type:         t.name,
					Subtype:      st.Name,
					Names:        append([]string(nil), pool...),
					NameMetadata: copyNameMetadata(s.nameMeta[key]),
				})
			}

			if scoped := s.attrs[key]; len(scoped) > 0 {
				doc.Attributes = append(doc.Attributes, AttributeScopeDocument{
					Type:       t.name,
					Subtype:    st.Name,
					Attributes: append([]loot.AttributeSpec(nil), scoped...),
				})
			}

			sides := s.affixes[key]
			meta := s.subtypeMeta[key]
			if len(sides) == 0 && len(meta) == 0 {
				continue
			}
			doc.Affixes = append(doc.Affixes, AffixScopeDocument{
				Type:     t.name,
				Subtype:  st.Name,
				Prefixes: copyAffixSpecs(sides[SidePrefix]),
				Suffixes: copyAffixSpecs(sides[SideSuffix]),
				Metadata: copyMetadata(meta),
			})
		}
	}

	return doc
}

// FromDocument builds a Store by replaying the document through the builder,
// so document input gets the same validation as programmatic input.
func FromDocument(doc Document) (*Store, error) {
	s := New()

	for _, q := range doc.Qualities {
		if err := s.SetQuality(q.Name, q.Weight); err != nil {
			return nil, errors.Wrapf(err, "quality %q", q.Name)
		}
	}

	for _, t := range doc.Types {
		if err := s.SetItemType(t.Name, t.Weight); err != nil {
			return nil, errors.Wrapf(err, "item type %q", t.Name)
		}
		for _, st := range t.Subtypes {
			if err := s.SetSubtype(t.Name, st.Name, st.Weight); err != nil {
				return nil, errors.Wrapf(err, "subtype %q of %q", st.Name, t.Name)
			}
		}
	}

	for _, np := range doc.Names {
		if err := s.SetNames(np.Type, np.Subtype, np.Names); err != nil {
			return nil, errors.Wrapf(err, "name pool for %s/%s", np.Type, np.Subtype)
		}
		for _, name := range np.Names {
			meta := np.NameMetadata[name]
			for _, key := range sortedKeys(meta) {
				if err := s.SetNameMetadata(np.Type, np.Subtype, name, key, meta[key]); err != nil {
					return nil, errors.Wrapf(err, "metadata for name %q", name)
				}
			}
		}
	}

	for _, as := range doc.Attributes {
		scope := TypeWide(as.Type)
		if as.Subtype != "" {
			scope = Subtyped(as.Type, as.Subtype)
		}
		for _, spec := range as.Attributes {
			if err := s.SetAttribute(scope, spec); err != nil {
				return nil, errors.Wrapf(err, "attribute %q in %s", spec.Name, scope)
			}
		}
	}

	for _, afs := range doc.Affixes {
		for _, affix := range afs.Prefixes {
			if err := applyAffix(s, afs, affix, SidePrefix); err != nil {
				return nil, err
			}
		}
		for _, affix := range afs.Suffixes {
			if err := applyAffix(s, afs, affix, SideSuffix); err != nil {
				return nil, err
			}
		}
		for _, key := range sortedKeys(afs.Metadata) {
			if err := s.SetSubtypeMetadata(afs.Type, afs.Subtype, key, afs.Metadata[key]); err != nil {
				return nil, errors.Wrapf(err, "metadata for %s/%s", afs.Type, afs.Subtype)
			}
		}
	}

	return s, nil
}

func applyAffix(s *Store, afs AffixScopeDocument, affix loot.AffixSpec, side Side) error {
	scope := Affixed(afs.Type, afs.Subtype, affix.Name, side)
	for _, spec := range affix.Attributes {
		if err := s.SetAttribute(scope, spec); err != nil {
			return errors.Wrapf(err, "attribute %q in %s", spec.Name, scope)
		}
	}
	return nil
}

func copyAffixSpecs(specs []loot.AffixSpec) []loot.AffixSpec {
	if len(specs) == 0 {
		return nil
	}
	out := make([]loot.AffixSpec, len(specs))
	for i, a := range specs {
		out[i] = loot.AffixSpec{
			Name:       a.Name,
			Attributes: append([]loot.AttributeSpec(nil), a.Attributes...),
		}
	}
	return out
}

func copyMetadata(meta map[string]any) map[string]any {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// sortedKeys keeps map replay order deterministic during FromDocument.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func copyNameMetadata(meta map[string]map[string]any) map[string]map[string]any {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string]map[string]any, len(meta))
	for name, m := range meta {
		out[name] = copyMetadata(m)
	}
	return out
}
