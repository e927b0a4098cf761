package taxonomy

import "fmt"

// Side distinguishes prefix from suffix affixes.
type Side string

// Affix sides
const (
	SidePrefix Side = "prefix"
	SideSuffix Side = "suffix"
)

// Valid reports whether the side is one of the two known values.
func (s Side) Valid() bool {
	return s == SidePrefix || s == SideSuffix
}

// ScopeKind discriminates the attribute scope variants.
type ScopeKind int

// Attribute scope kinds
const (
	// ScopeTypeWide attributes apply to every subtype of a type
	ScopeTypeWide ScopeKind = iota

	// ScopeSubtyped attributes apply to one (type, subtype) pair and
	// override same-named type-wide attributes
	ScopeSubtyped

	// ScopeAffixed attributes belong to a named prefix or suffix affix
	// registered for a (type, subtype) pair
	ScopeAffixed
)

// Scope identifies which attribute bucket a spec belongs to. Construct one
// with TypeWide, Subtyped, or Affixed; the zero value is not a valid scope.
type Scope struct {
	kind     ScopeKind
	itemType string
	subtype  string
	affix    string
	side     Side
}

// TypeWide addresses the attributes shared by every subtype of itemType.
func TypeWide(itemType string) Scope {
	return Scope{kind: ScopeTypeWide, itemType: itemType}
}

// Subtyped addresses the attributes of one (type, subtype) pair.
func Subtyped(itemType, subtype string) Scope {
	return Scope{kind: ScopeSubtyped, itemType: itemType, subtype: subtype}
}

// Affixed addresses the attributes of a named affix on a (type, subtype) pair.
func Affixed(itemType, subtype, affix string, side Side) Scope {
	return Scope{kind: ScopeAffixed, itemType: itemType, subtype: subtype, affix: affix, side: side}
}

// Kind returns the scope variant.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// Type returns the item type the scope belongs to.
func (s Scope) Type() string {
	return s.itemType
}

// Subtype returns the subtype, empty for type-wide scopes.
func (s Scope) Subtype() string {
	return s.subtype
}

// Affix returns the affix name, empty for non-affix scopes.
func (s Scope) Affix() string {
	return s.affix
}

// Side returns the affix side, empty for non-affix scopes.
func (s Scope) Side() Side {
	return s.side
}

// String renders the scope for error messages.
func (s Scope) String() string {
	switch s.kind {
	case ScopeTypeWide:
		return fmt.Sprintf("type-wide(%s)", s.itemType)
	case ScopeSubtyped:
		return fmt.Sprintf("subtyped(%s/%s)", s.itemType, s.subtype)
	case ScopeAffixed:
		return fmt.Sprintf("affixed(%s/%s %s %q)", s.itemType, s.subtype, s.side, s.affix)
	default:
		return "unknown scope"
	}
}
