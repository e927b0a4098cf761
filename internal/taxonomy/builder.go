package taxonomy

import (
	"strings"

	"github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/errors"
)

// Builder mutation API. Every call validates its input in full before
// touching the store, so a failed call leaves the store exactly as it was.
// Set semantics are add-or-replace throughout: setting an existing key
// overwrites it in place and keeps its position in the selection order.

// SetQuality adds or replaces a weighted quality tier.
func (s *Store) SetQuality(name string, weight int) error {
	if err := requireName("quality", name); err != nil {
		return err
	}
	if err := requireWeight(weight); err != nil {
		return err
	}

	for i := range s.qualities {
		if s.qualities[i].Name == name {
			s.qualities[i].Weight = weight
			return nil
		}
	}
	s.qualities = append(s.qualities, loot.QualityTier{Name: name, Weight: weight})
	return nil
}

// SetItemType adds or replaces a weighted item type. Replacing keeps the
// type's existing subtypes, attributes, and names.
func (s *Store) SetItemType(name string, weight int) error {
	if err := requireName("item type", name); err != nil {
		return err
	}
	if err := requireWeight(weight); err != nil {
		return err
	}

	if t := s.findType(name); t != nil {
		t.weight = weight
		return nil
	}
	s.types = append(s.types, &itemTypeEntry{name: name, weight: weight})
	return nil
}

// SetSubtype adds or replaces a weighted subtype under an existing type.
func (s *Store) SetSubtype(itemType, subtype string, weight int) error {
	if err := requireName("item type", itemType); err != nil {
		return err
	}
	if err := requireName("subtype", subtype); err != nil {
		return err
	}
	if err := requireWeight(weight); err != nil {
		return err
	}

	t := s.findType(itemType)
	if t == nil {
		return unknownType(itemType)
	}

	for i := range t.subtypes {
		if t.subtypes[i].Name == subtype {
			t.subtypes[i].Weight = weight
			return nil
		}
	}
	t.subtypes = append(t.subtypes, loot.SubtypeWeight{Name: subtype, Weight: weight})
	return nil
}

// SetNames replaces the display-name pool for a (type, subtype) pair. The
// pool may legitimately stay unset while configuration is built up; an
// empty pool only becomes an error at generation time.
func (s *Store) SetNames(itemType, subtype string, names []string) error {
	if err := s.requireSubtype(itemType, subtype); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return errors.EmptyValue("name pool entries must not be blank")
		}
		if _, dup := seen[name]; dup {
			return errors.DuplicateKeyf("duplicate name %q in pool for %s/%s", name, itemType, subtype)
		}
		seen[name] = struct{}{}
	}

	pool := make([]string, len(names))
	copy(pool, names)
	s.names[pairKey{itemType, subtype}] = pool
	return nil
}

// SetAttribute adds or replaces an attribute spec in the given scope. For
// affix scopes the affix itself is registered on first use.
func (s *Store) SetAttribute(scope Scope, spec loot.AttributeSpec) error {
	if err := s.validateScope(scope); err != nil {
		return err
	}
	if err := requireName("attribute", spec.Name); err != nil {
		return err
	}
	if spec.Min > spec.Max {
		return errors.InvalidRangef("attribute %q: min %v is greater than max %v", spec.Name, spec.Min, spec.Max).
			WithMeta("scope", scope.String())
	}

	if scope.Kind() == ScopeAffixed {
		s.setAffixAttribute(scope, spec)
		return nil
	}

	key := pairKey{scope.Type(), scope.Subtype()}
	bucket := s.attrs[key]
	for i := range bucket {
		if bucket[i].Name == spec.Name {
			bucket[i] = spec
			return nil
		}
	}
	s.attrs[key] = append(bucket, spec)
	return nil
}

func (s *Store) setAffixAttribute(scope Scope, spec loot.AttributeSpec) {
	key := pairKey{scope.Type(), scope.Subtype()}
	sides := s.affixes[key]
	if sides == nil {
		sides = make(map[Side][]loot.AffixSpec)
		s.affixes[key] = sides
	}

	bucket := sides[scope.Side()]
	for i := range bucket {
		if bucket[i].Name != scope.Affix() {
			continue
		}
		for j := range bucket[i].Attributes {
			if bucket[i].Attributes[j].Name == spec.Name {
				bucket[i].Attributes[j] = spec
				return
			}
		}
		bucket[i].Attributes = append(bucket[i].Attributes, spec)
		return
	}

	sides[scope.Side()] = append(bucket, loot.AffixSpec{
		Name:       scope.Affix(),
		Attributes: []loot.AttributeSpec{spec},
	})
}

// SetSubtypeMetadata adds or replaces one metadata entry on a (type,
// subtype) pair.
func (s *Store) SetSubtypeMetadata(itemType, subtype, key string, value any) error {
	if err := s.requireSubtype(itemType, subtype); err != nil {
		return err
	}
	if err := requireName("metadata key", key); err != nil {
		return err
	}

	pk := pairKey{itemType, subtype}
	if s.subtypeMeta[pk] == nil {
		s.subtypeMeta[pk] = make(map[string]any)
	}
	s.subtypeMeta[pk][key] = value
	return nil
}

// SetNameMetadata adds or replaces one metadata entry on a display name.
// The name must already be in the pool for the (type, subtype) pair.
func (s *Store) SetNameMetadata(itemType, subtype, itemName, key string, value any) error {
	if err := s.requireSubtype(itemType, subtype); err != nil {
		return err
	}
	if err := requireName("item name", itemName); err != nil {
		return err
	}
	if err := requireName("metadata key", key); err != nil {
		return err
	}

	pk := pairKey{itemType, subtype}
	inPool := false
	for _, n := range s.names[pk] {
		if n == itemName {
			inPool = true
			break
		}
	}
	if !inPool {
		return errors.UnknownParentf("item name %q is not in the pool for %s/%s", itemName, itemType, subtype)
	}

	if s.nameMeta[pk] == nil {
		s.nameMeta[pk] = make(map[string]map[string]any)
	}
	if s.nameMeta[pk][itemName] == nil {
		s.nameMeta[pk][itemName] = make(map[string]any)
	}
	s.nameMeta[pk][itemName][key] = value
	return nil
}

func (s *Store) validateScope(scope Scope) error {
	switch scope.Kind() {
	case ScopeTypeWide:
		if err := requireName("item type", scope.Type()); err != nil {
			return err
		}
		if !s.HasType(scope.Type()) {
			return unknownType(scope.Type())
		}
		return nil
	case ScopeSubtyped:
		return s.requireSubtype(scope.Type(), scope.Subtype())
	case ScopeAffixed:
		if err := s.requireSubtype(scope.Type(), scope.Subtype()); err != nil {
			return err
		}
		if err := requireName("affix", scope.Affix()); err != nil {
			return err
		}
		if !scope.Side().Valid() {
			return errors.InvalidArgumentf("affix side must be %q or %q", SidePrefix, SideSuffix)
		}
		return nil
	default:
		return errors.InvalidArgument("unknown attribute scope kind")
	}
}

func (s *Store) requireSubtype(itemType, subtype string) error {
	if err := requireName("item type", itemType); err != nil {
		return err
	}
	if err := requireName("subtype", subtype); err != nil {
		return err
	}
	if !s.HasType(itemType) {
		return unknownType(itemType)
	}
	if !s.HasSubtype(itemType, subtype) {
		return errors.UnknownParentf("subtype %q is not configured under type %q", subtype, itemType)
	}
	return nil
}

func requireName(what, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.EmptyValuef("%s name must not be blank", what)
	}
	return nil
}

func requireWeight(weight int) error {
	if weight <= 0 {
		return errors.InvalidRangef("weight must be positive, got %d", weight)
	}
	return nil
}

func unknownType(itemType string) error {
	return errors.UnknownParentf("item type %q is not configured", itemType)
}
