package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edover/praeda-go/internal/config"
	"github.com/edover/praeda-go/internal/errors"
	"github.com/edover/praeda-go/internal/taxonomy"
)

const sampleConfig = `
[quality_data]
common = 100
uncommon = 60
rare = 30

[[item_types]]
item_type = "weapon"
weight = 1
subtypes = { sword = 1, axe = 1 }

[[item_types]]
item_type = "armor"
weight = 1
subtypes = { head = 1 }

[[item_attributes]]
item_type = "weapon"
subtype = ""
attributes = [
    { name = "damage", initial_value = 10.0, min = 1.0, max = 20.0, required = true },
]

[[item_attributes]]
item_type = "weapon"
subtype = "sword"
attributes = [
    { name = "damage", initial_value = 12.0, min = 5.0, max = 25.0, required = true, scaling_factor = 2.0 },
    { name = "crit", initial_value = 1.0, min = 0.0, max = 5.0, required = false, chance = 0.3 },
]

[[item_list]]
item_type = "weapon"
subtype = "sword"
names = ["longsword", "shortsword"]

[item_list.item_metadata.longsword]
handedness = "two-handed"

[[item_list]]
item_type = "weapon"
subtype = "axe"
names = ["battleaxe"]

[[item_list]]
item_type = "armor"
subtype = "head"
names = ["helmet"]

[[item_affixes]]
item_type = "weapon"
subtype = "sword"
metadata = { rarity_class = "martial" }

[[item_affixes.prefixes]]
name = "Flaming"
attributes = [
    { name = "fire_damage", initial_value = 3.0, min = 1.0, max = 6.0, required = true },
]

[[item_affixes.suffixes]]
name = "of Strength"
attributes = [
    { name = "strength", initial_value = 2.0, min = 1.0, max = 4.0, required = true },
]
`

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestParseFullDocument() {
	store, err := config.Parse([]byte(sampleConfig))
	s.Require().NoError(err)

	qualities := store.Qualities()
	s.Require().Len(qualities, 3)
	s.Assert().True(store.HasQuality("common"))
	s.Assert().True(store.HasQuality("rare"))

	s.Assert().True(store.HasSubtype("weapon", "sword"))
	s.Assert().True(store.HasSubtype("weapon", "axe"))
	s.Assert().True(store.HasSubtype("armor", "head"))

	s.Assert().ElementsMatch([]string{"longsword", "shortsword"}, store.NamePool("weapon", "sword"))
	s.Assert().Equal([]string{"helmet"}, store.NamePool("armor", "head"))
}

func (s *ConfigTestSuite) TestSubtypeAttributesOverrideTypeWide() {
	store, err := config.Parse([]byte(sampleConfig))
	s.Require().NoError(err)

	merged := store.MergedAttributes("weapon", "sword")
	byName := make(map[string]float64, len(merged))
	scaling := make(map[string]float64, len(merged))
	for _, spec := range merged {
		byName[spec.Name] = spec.Max
		scaling[spec.Name] = spec.ScalingFactor
	}

	// The sword-scoped damage replaces the type-wide one.
	s.Assert().Equal(25.0, byName["damage"])
	s.Assert().Equal(2.0, scaling["damage"])
	s.Assert().Contains(byName, "crit")

	// The axe keeps the type-wide damage with the default scaling factor.
	axe := store.MergedAttributes("weapon", "axe")
	s.Require().Len(axe, 1)
	s.Assert().Equal(20.0, axe[0].Max)
	s.Assert().Equal(1.0, axe[0].ScalingFactor)
}

func (s *ConfigTestSuite) TestAffixesAndMetadata() {
	store, err := config.Parse([]byte(sampleConfig))
	s.Require().NoError(err)

	prefixes := store.Affixes("weapon", "sword", taxonomy.SidePrefix)
	s.Require().Len(prefixes, 1)
	s.Assert().Equal("Flaming", prefixes[0].Name)
	s.Require().Len(prefixes[0].Attributes, 1)
	s.Assert().Equal("fire_damage", prefixes[0].Attributes[0].Name)

	suffixes := store.Affixes("weapon", "sword", taxonomy.SideSuffix)
	s.Require().Len(suffixes, 1)
	s.Assert().Equal("of Strength", suffixes[0].Name)

	s.Assert().Equal("martial", store.SubtypeMetadata("weapon", "sword")["rarity_class"])
	s.Assert().Equal("two-handed", store.NameMetadata("weapon", "sword", "longsword")["handedness"])
}

func (s *ConfigTestSuite) TestMalformedTOML() {
	_, err := config.Parse([]byte(`[quality_data`))
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestInvalidValuesRejected() {
	s.Run("non-positive weight", func() {
		_, err := config.Parse([]byte(`
[quality_data]
common = 0
`))
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidRange(err))
	})

	s.Run("names under unknown type", func() {
		_, err := config.Parse([]byte(`
[quality_data]
common = 1

[[item_list]]
item_type = "weapon"
subtype = "sword"
names = ["longsword"]
`))
		s.Require().Error(err)
		s.Assert().Equal(errors.CodeUnknownParent, errors.GetCode(err))
	})

	s.Run("inverted attribute range", func() {
		_, err := config.Parse([]byte(`
[quality_data]
common = 1

[[item_types]]
item_type = "weapon"
weight = 1
subtypes = { sword = 1 }

[[item_attributes]]
item_type = "weapon"
attributes = [
    { name = "damage", initial_value = 10.0, min = 20.0, max = 1.0, required = true },
]
`))
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidRange(err))
	})
}

func (s *ConfigTestSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "loot.toml")
	s.Require().NoError(os.WriteFile(path, []byte(sampleConfig), 0o600))

	store, err := config.LoadFile(path)
	s.Require().NoError(err)
	s.Assert().True(store.HasType("weapon"))

	_, err = config.LoadFile(filepath.Join(s.T().TempDir(), "missing.toml"))
	s.Require().Error(err)
}
