package engine

import (
	"context"

	"github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/errors"
	"github.com/edover/praeda-go/internal/pkg/random"
	"github.com/edover/praeda-go/internal/taxonomy"
)

// Config holds the dependencies for the generator
type Config struct {
	// Random is owned by this generator; seed it for reproducible output
	Random random.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Random == nil {
		return errors.InvalidArgument("random source is required")
	}
	return nil
}

// Generator implements Engine with weighted selection and level-scaled
// attribute synthesis. It is pure computation over the input store; nothing
// is written back to the taxonomy.
type Generator struct {
	random random.Source
}

// New creates a new generator
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Generator{random: cfg.Random}, nil
}

// Ensure Generator implements the Engine interface
var _ Engine = (*Generator)(nil)

// Generate produces a batch of items. The batch either fully succeeds or
// aborts at the first per-item failure with no partial result.
func (g *Generator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Store == nil {
		return nil, errors.InvalidArgument("taxonomy store is required")
	}
	if err := validateOptions(input.Options); err != nil {
		return nil, err
	}
	if err := validateOverrides(input.Store, input.Overrides); err != nil {
		return nil, err
	}

	items := make([]loot.Item, 0, input.Options.NumberOfItems)
	for i := 0; i < input.Options.NumberOfItems; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "generation canceled")
		}

		item, err := g.generateItem(input.Store, input.Options, input.Overrides)
		if err != nil {
			return nil, errors.Wrapf(err, "generating item %d of %d", i+1, input.Options.NumberOfItems)
		}
		items = append(items, item)
	}

	return &GenerateOutput{Items: items}, nil
}

func validateOptions(opts loot.Options) error {
	vb := errors.NewValidationBuilder()
	if opts.NumberOfItems < 0 {
		vb.Fieldf("numberOfItems", "must not be negative, got %d", opts.NumberOfItems)
	}
	errors.ValidateNonNegative("levelVariance", opts.LevelVariance, vb)
	return vb.Build()
}

func validateOverrides(store *taxonomy.Store, ov loot.Overrides) error {
	if ov.Quality != "" && !store.HasQuality(ov.Quality) {
		return errors.NotFoundf("override quality %q is not configured", ov.Quality)
	}
	if ov.Type != "" && !store.HasType(ov.Type) {
		return errors.NotFoundf("override type %q is not configured", ov.Type)
	}
	if ov.Subtype != "" {
		if ov.Type == "" {
			return errors.InvalidArgument("subtype override requires a type override")
		}
		if !store.HasSubtype(ov.Type, ov.Subtype) {
			return errors.NotFoundf("override subtype %q is not configured under type %q", ov.Subtype, ov.Type)
		}
	}
	return nil
}

// generateItem runs the per-item state machine: quality, type, subtype,
// name, base attributes, then prefix/suffix. Items are independent; no
// state carries over between them.
func (g *Generator) generateItem(store *taxonomy.Store, opts loot.Options, ov loot.Overrides) (loot.Item, error) {
	var item loot.Item

	quality, err := g.selectQuality(store, ov)
	if err != nil {
		return item, err
	}

	itemType, err := g.selectType(store, ov)
	if err != nil {
		return item, err
	}

	subtype, err := g.selectSubtype(store, itemType, ov)
	if err != nil {
		return item, err
	}

	name, err := g.selectName(store, itemType, subtype)
	if err != nil {
		return item, err
	}

	// One level roll per item; every attribute on the item, affix
	// attributes included, scales from it.
	level := opts.BaseLevel + random.Range(g.random, -opts.LevelVariance, opts.LevelVariance)

	attrs, err := g.synthesizeSet(store.MergedAttributes(itemType, subtype), level, opts)
	if err != nil {
		return item, errors.Wrapf(err, "base attributes for %s/%s", itemType, subtype)
	}
	attrMap := make(map[string]loot.AttributeValue, len(attrs))
	for _, av := range attrs {
		attrMap[av.Name] = av
	}

	prefix, err := g.rollAffix(store, itemType, subtype, taxonomy.SidePrefix, level, opts)
	if err != nil {
		return item, err
	}
	suffix, err := g.rollAffix(store, itemType, subtype, taxonomy.SideSuffix, level, opts)
	if err != nil {
		return item, err
	}

	item = loot.Item{
		Name:       name,
		Quality:    quality,
		Type:       itemType,
		Subtype:    subtype,
		Level:      level,
		Prefix:     prefix,
		Suffix:     suffix,
		Attributes: attrMap,
		Metadata:   collectMetadata(store, itemType, subtype, name),
	}
	return item, nil
}

func (g *Generator) selectQuality(store *taxonomy.Store, ov loot.Overrides) (string, error) {
	if ov.Quality != "" {
		return ov.Quality, nil
	}

	qualities := store.Qualities()
	if len(qualities) == 0 {
		return "", errors.NoQualities("no quality tiers configured")
	}

	entries := make([]random.Weighted[string], len(qualities))
	for i, q := range qualities {
		entries[i] = random.Weighted[string]{Value: q.Name, Weight: q.Weight}
	}
	return random.PickWeighted(g.random, entries)
}

func (g *Generator) selectType(store *taxonomy.Store, ov loot.Overrides) (string, error) {
	if ov.Type != "" {
		return ov.Type, nil
	}

	types := store.Types()
	if len(types) == 0 {
		return "", errors.NoItemTypes("no item types configured")
	}

	entries := make([]random.Weighted[string], len(types))
	for i, t := range types {
		entries[i] = random.Weighted[string]{Value: t.Name, Weight: t.Weight}
	}
	return random.PickWeighted(g.random, entries)
}

func (g *Generator) selectSubtype(store *taxonomy.Store, itemType string, ov loot.Overrides) (string, error) {
	if ov.Subtype != "" {
		return ov.Subtype, nil
	}

	subtypes := store.Subtypes(itemType)
	if len(subtypes) == 0 {
		return "", errors.NoSubtypesf("type %q has no subtypes configured", itemType).
			WithMeta("item_type", itemType)
	}

	entries := make([]random.Weighted[string], len(subtypes))
	for i, st := range subtypes {
		entries[i] = random.Weighted[string]{Value: st.Name, Weight: st.Weight}
	}
	return random.PickWeighted(g.random, entries)
}

func (g *Generator) selectName(store *taxonomy.Store, itemType, subtype string) (string, error) {
	pool := store.NamePool(itemType, subtype)
	if len(pool) == 0 {
		return "", errors.NoNamesf("no names configured for %s/%s", itemType, subtype).
			WithMeta("item_type", itemType).
			WithMeta("subtype", subtype)
	}
	return random.PickUniform(g.random, pool)
}

// synthesizeSet realizes a list of specs. Required attributes always land;
// optional ones roll their own chance.
func (g *Generator) synthesizeSet(specs []loot.AttributeSpec, level float64, opts loot.Options) ([]loot.AttributeValue, error) {
	out := make([]loot.AttributeValue, 0, len(specs))
	for _, spec := range specs {
		if !spec.Required && !random.Bernoulli(g.random, spec.Chance) {
			continue
		}
		av, err := g.synthesize(spec, level, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, av)
	}
	return out, nil
}

// rollAffix gates the side on affix chance, then picks uniformly among the
// registered affixes. A gated success with nothing registered leaves the
// side empty; that is not an error.
func (g *Generator) rollAffix(store *taxonomy.Store, itemType, subtype string, side taxonomy.Side, level float64, opts loot.Options) (loot.Affix, error) {
	if !random.Bernoulli(g.random, opts.AffixChance) {
		return loot.Affix{}, nil
	}

	specs := store.Affixes(itemType, subtype, side)
	if len(specs) == 0 {
		return loot.Affix{}, nil
	}

	chosen, err := random.PickUniform(g.random, specs)
	if err != nil {
		return loot.Affix{}, err
	}

	attrs, err := g.synthesizeSet(chosen.Attributes, level, opts)
	if err != nil {
		return loot.Affix{}, errors.Wrapf(err, "%s %q for %s/%s", side, chosen.Name, itemType, subtype)
	}

	return loot.Affix{Name: chosen.Name, Attributes: attrs}, nil
}

func collectMetadata(store *taxonomy.Store, itemType, subtype, name string) map[string]any {
	subtypeMeta := store.SubtypeMetadata(itemType, subtype)
	nameMeta := store.NameMetadata(itemType, subtype, name)
	if len(subtypeMeta) == 0 && len(nameMeta) == 0 {
		return nil
	}

	out := make(map[string]any, len(subtypeMeta)+len(nameMeta))
	for k, v := range subtypeMeta {
		out[k] = v
	}
	// Name-level entries win on key collision.
	for k, v := range nameMeta {
		out[k] = v
	}
	return out
}
