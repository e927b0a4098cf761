// Package config loads loot taxonomies from TOML. The file layout mirrors
// the table document shape: a quality_data table plus item_types,
// item_attributes, item_list and item_affixes array tables. Parsed files are
// replayed through the taxonomy builder, so a file that loads is a file
// that validates.
package config

import (
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/errors"
	"github.com/edover/praeda-go/internal/taxonomy"
)

// File is the top-level TOML document.
type File struct {
	QualityData    map[string]int     `toml:"quality_data"`
	ItemTypes      []ItemTypeSection  `toml:"item_types"`
	ItemAttributes []AttributeSection `toml:"item_attributes"`
	ItemList       []NameSection      `toml:"item_list"`
	ItemAffixes    []AffixSection     `toml:"item_affixes"`
}

// ItemTypeSection declares one item type with its weighted subtypes.
type ItemTypeSection struct {
	ItemType string         `toml:"item_type"`
	Weight   int            `toml:"weight"`
	Subtypes map[string]int `toml:"subtypes"`
}

// AttributeSection binds attribute entries to a scope. An empty subtype
// binds them type-wide.
type AttributeSection struct {
	ItemType   string           `toml:"item_type"`
	Subtype    string           `toml:"subtype"`
	Attributes []AttributeEntry `toml:"attributes"`
}

// AttributeEntry is one attribute spec as written in TOML. ScalingFactor is
// a pointer so an absent key can fall back to the 1.0 default instead of
// reading as zero.
type AttributeEntry struct {
	Name          string   `toml:"name"`
	InitialValue  float64  `toml:"initial_value"`
	Min           float64  `toml:"min"`
	Max           float64  `toml:"max"`
	Required      bool     `toml:"required"`
	ScalingFactor *float64 `toml:"scaling_factor"`
	Chance        float64  `toml:"chance"`
}

// NameSection is the name pool for one (type, subtype) pair, with optional
// per-name metadata.
type NameSection struct {
	ItemType     string                    `toml:"item_type"`
	Subtype      string                    `toml:"subtype"`
	Names        []string                  `toml:"names"`
	ItemMetadata map[string]map[string]any `toml:"item_metadata"`
}

// AffixSection holds the prefixes and suffixes of one (type, subtype) pair,
// with optional subtype metadata.
type AffixSection struct {
	ItemType string         `toml:"item_type"`
	Subtype  string         `toml:"subtype"`
	Prefixes []AffixEntry   `toml:"prefixes"`
	Suffixes []AffixEntry   `toml:"suffixes"`
	Metadata map[string]any `toml:"metadata"`
}

// AffixEntry is one named affix with its attribute entries.
type AffixEntry struct {
	Name       string           `toml:"name"`
	Attributes []AttributeEntry `toml:"attributes"`
}

// Parse decodes TOML bytes and builds the taxonomy they describe.
func Parse(data []byte) (*taxonomy.Store, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "decoding taxonomy config")
	}
	return file.Build()
}

// Load reads and parses a taxonomy config from r.
func Load(r io.Reader) (*taxonomy.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading taxonomy config")
	}
	return Parse(data)
}

// LoadFile reads and parses a taxonomy config file.
func LoadFile(path string) (*taxonomy.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading taxonomy config %s", path)
	}
	return Parse(data)
}

// Build replays the file through the taxonomy builder. TOML tables are
// unordered, so table keys are applied in sorted order to keep the resulting
// store deterministic.
func (f *File) Build() (*taxonomy.Store, error) {
	store := taxonomy.New()

	for _, name := range sortedKeys(f.QualityData) {
		if err := store.SetQuality(name, f.QualityData[name]); err != nil {
			return nil, errors.Wrapf(err, "quality %q", name)
		}
	}

	for _, section := range f.ItemTypes {
		if err := store.SetItemType(section.ItemType, section.Weight); err != nil {
			return nil, errors.Wrapf(err, "item type %q", section.ItemType)
		}
		for _, subtype := range sortedKeys(section.Subtypes) {
			if err := store.SetSubtype(section.ItemType, subtype, section.Subtypes[subtype]); err != nil {
				return nil, errors.Wrapf(err, "subtype %q of %q", subtype, section.ItemType)
			}
		}
	}

	for _, section := range f.ItemList {
		if err := store.SetNames(section.ItemType, section.Subtype, section.Names); err != nil {
			return nil, errors.Wrapf(err, "name pool for %s/%s", section.ItemType, section.Subtype)
		}
		for _, name := range sortedKeys(section.ItemMetadata) {
			meta := section.ItemMetadata[name]
			for _, key := range sortedKeys(meta) {
				if err := store.SetNameMetadata(section.ItemType, section.Subtype, name, key, meta[key]); err != nil {
					return nil, errors.Wrapf(err, "metadata for name %q", name)
				}
			}
		}
	}

	for _, section := range f.ItemAttributes {
		scope := taxonomy.TypeWide(section.ItemType)
		if section.Subtype != "" {
			scope = taxonomy.Subtyped(section.ItemType, section.Subtype)
		}
		for _, entry := range section.Attributes {
			if err := store.SetAttribute(scope, entry.spec()); err != nil {
				return nil, errors.Wrapf(err, "attribute %q in %s", entry.Name, scope)
			}
		}
	}

	for _, section := range f.ItemAffixes {
		if err := section.apply(store, taxonomy.SidePrefix, section.Prefixes); err != nil {
			return nil, err
		}
		if err := section.apply(store, taxonomy.SideSuffix, section.Suffixes); err != nil {
			return nil, err
		}
		for _, key := range sortedKeys(section.Metadata) {
			if err := store.SetSubtypeMetadata(section.ItemType, section.Subtype, key, section.Metadata[key]); err != nil {
				return nil, errors.Wrapf(err, "metadata for %s/%s", section.ItemType, section.Subtype)
			}
		}
	}

	return store, nil
}

func (s *AffixSection) apply(store *taxonomy.Store, side taxonomy.Side, affixes []AffixEntry) error {
	for _, affix := range affixes {
		scope := taxonomy.Affixed(s.ItemType, s.Subtype, affix.Name, side)
		for _, entry := range affix.Attributes {
			if err := store.SetAttribute(scope, entry.spec()); err != nil {
				return errors.Wrapf(err, "attribute %q in %s", entry.Name, scope)
			}
		}
	}
	return nil
}

func (e *AttributeEntry) spec() loot.AttributeSpec {
	spec := loot.NewAttributeSpec(e.Name, e.InitialValue, e.Min, e.Max, e.Required)
	if e.ScalingFactor != nil {
		spec.ScalingFactor = *e.ScalingFactor
	}
	spec.Chance = e.Chance
	return spec
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
