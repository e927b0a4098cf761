package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/errors"
	"github.com/edover/praeda-go/internal/taxonomy"
)

type BuilderTestSuite struct {
	suite.Suite
	store *taxonomy.Store
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) SetupTest() {
	s.store = taxonomy.New()
}

func (s *BuilderTestSuite) seedWeaponSword() {
	s.Require().NoError(s.store.SetItemType("weapon", 2))
	s.Require().NoError(s.store.SetSubtype("weapon", "sword", 3))
}

func (s *BuilderTestSuite) TestSetQuality() {
	s.Require().NoError(s.store.SetQuality("common", 100))
	s.Require().NoError(s.store.SetQuality("rare", 30))

	s.Assert().True(s.store.HasQuality("common"))
	s.Assert().True(s.store.HasQuality("rare"))
	s.Assert().False(s.store.HasQuality("legendary"))

	// Replace keeps position, updates weight.
	s.Require().NoError(s.store.SetQuality("common", 200))
	qualities := s.store.Qualities()
	s.Require().Len(qualities, 2)
	s.Assert().Equal(loot.QualityTier{Name: "common", Weight: 200}, qualities[0])
}

func (s *BuilderTestSuite) TestSetQualityValidation() {
	testCases := []struct {
		name     string
		quality  string
		weight   int
		wantCode errors.Code
	}{
		{name: "blank name", quality: "  ", weight: 10, wantCode: errors.CodeEmptyValue},
		{name: "zero weight", quality: "common", weight: 0, wantCode: errors.CodeInvalidRange},
		{name: "negative weight", quality: "common", weight: -5, wantCode: errors.CodeInvalidRange},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.store.SetQuality(tc.quality, tc.weight)
			s.Require().Error(err)
			s.Assert().Equal(tc.wantCode, errors.GetCode(err))
		})
	}

	s.Assert().Empty(s.store.Qualities())
}

func (s *BuilderTestSuite) TestSubtypeRequiresType() {
	err := s.store.SetSubtype("weapon", "sword", 3)
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeUnknownParent, errors.GetCode(err))

	s.Require().NoError(s.store.SetItemType("weapon", 2))
	s.Require().NoError(s.store.SetSubtype("weapon", "sword", 3))
	s.Assert().True(s.store.HasSubtype("weapon", "sword"))
}

func (s *BuilderTestSuite) TestSameSubtypeNameUnderTwoTypes() {
	s.Require().NoError(s.store.SetItemType("weapon", 1))
	s.Require().NoError(s.store.SetItemType("armor", 1))
	s.Require().NoError(s.store.SetSubtype("weapon", "ceremonial", 3))
	s.Require().NoError(s.store.SetSubtype("armor", "ceremonial", 7))

	weapon := s.store.Subtypes("weapon")
	armor := s.store.Subtypes("armor")
	s.Require().Len(weapon, 1)
	s.Require().Len(armor, 1)
	s.Assert().Equal(3, weapon[0].Weight)
	s.Assert().Equal(7, armor[0].Weight)
}

func (s *BuilderTestSuite) TestSetNames() {
	s.seedWeaponSword()

	s.Require().NoError(s.store.SetNames("weapon", "sword", []string{"Iron Sword", "Steel Sword"}))
	s.Assert().Equal([]string{"Iron Sword", "Steel Sword"}, s.store.NamePool("weapon", "sword"))

	s.Run("duplicate entries rejected", func() {
		err := s.store.SetNames("weapon", "sword", []string{"Blade", "Blade"})
		s.Require().Error(err)
		s.Assert().Equal(errors.CodeDuplicateKey, errors.GetCode(err))
		// Failed call left the previous pool intact.
		s.Assert().Equal([]string{"Iron Sword", "Steel Sword"}, s.store.NamePool("weapon", "sword"))
	})

	s.Run("blank entry rejected", func() {
		err := s.store.SetNames("weapon", "sword", []string{"Blade", " "})
		s.Require().Error(err)
		s.Assert().Equal(errors.CodeEmptyValue, errors.GetCode(err))
	})

	s.Run("unknown subtype rejected", func() {
		err := s.store.SetNames("weapon", "axe", []string{"Hatchet"})
		s.Require().Error(err)
		s.Assert().Equal(errors.CodeUnknownParent, errors.GetCode(err))
	})
}

func (s *BuilderTestSuite) TestSetAttributeScopes() {
	s.seedWeaponSword()

	typeWide := loot.NewAttributeSpec("damage", 10, 5, 20, true)
	s.Require().NoError(s.store.SetAttribute(taxonomy.TypeWide("weapon"), typeWide))

	scoped := loot.NewAttributeSpec("damage", 15, 10, 30, true)
	s.Require().NoError(s.store.SetAttribute(taxonomy.Subtyped("weapon", "sword"), scoped))

	extra := loot.NewAttributeSpec("crit_chance", 0.05, 0, 0.5, false)
	extra.Chance = 0.3
	s.Require().NoError(s.store.SetAttribute(taxonomy.Subtyped("weapon", "sword"), extra))

	// Subtype-scoped damage overrides the type-wide spec in place.
	merged := s.store.MergedAttributes("weapon", "sword")
	s.Require().Len(merged, 2)
	s.Assert().Equal("damage", merged[0].Name)
	s.Assert().Equal(10.0, merged[0].Min)
	s.Assert().Equal(30.0, merged[0].Max)
	s.Assert().Equal("crit_chance", merged[1].Name)

	// A different subtype only sees the type-wide spec.
	s.Require().NoError(s.store.SetSubtype("weapon", "axe", 2))
	mergedAxe := s.store.MergedAttributes("weapon", "axe")
	s.Require().Len(mergedAxe, 1)
	s.Assert().Equal(5.0, mergedAxe[0].Min)
}

func (s *BuilderTestSuite) TestSetAttributeValidation() {
	s.seedWeaponSword()

	s.Run("min greater than max", func() {
		bad := loot.NewAttributeSpec("damage", 10, 20, 5, true)
		err := s.store.SetAttribute(taxonomy.TypeWide("weapon"), bad)
		s.Require().Error(err)
		s.Assert().Equal(errors.CodeInvalidRange, errors.GetCode(err))
	})

	s.Run("blank attribute name", func() {
		bad := loot.NewAttributeSpec("", 1, 0, 2, true)
		err := s.store.SetAttribute(taxonomy.TypeWide("weapon"), bad)
		s.Require().Error(err)
		s.Assert().Equal(errors.CodeEmptyValue, errors.GetCode(err))
	})

	s.Run("unknown type", func() {
		spec := loot.NewAttributeSpec("defense", 5, 1, 10, true)
		err := s.store.SetAttribute(taxonomy.TypeWide("armor"), spec)
		s.Require().Error(err)
		s.Assert().Equal(errors.CodeUnknownParent, errors.GetCode(err))
	})

	s.Assert().Empty(s.store.MergedAttributes("weapon", "sword"))
}

func (s *BuilderTestSuite) TestSetAffixAttribute() {
	s.seedWeaponSword()

	fire := loot.NewAttributeSpec("fire_damage", 3, 0, 5, true)
	scope := taxonomy.Affixed("weapon", "sword", "Flaming", taxonomy.SidePrefix)
	s.Require().NoError(s.store.SetAttribute(scope, fire))

	burn := loot.NewAttributeSpec("burn_chance", 0.1, 0, 0.3, false)
	burn.Chance = 0.5
	s.Require().NoError(s.store.SetAttribute(scope, burn))

	strength := loot.NewAttributeSpec("strength", 2, 1, 4, true)
	s.Require().NoError(s.store.SetAttribute(
		taxonomy.Affixed("weapon", "sword", "of Strength", taxonomy.SideSuffix), strength))

	prefixes := s.store.Affixes("weapon", "sword", taxonomy.SidePrefix)
	s.Require().Len(prefixes, 1)
	s.Assert().Equal("Flaming", prefixes[0].Name)
	s.Assert().Len(prefixes[0].Attributes, 2)

	suffixes := s.store.Affixes("weapon", "sword", taxonomy.SideSuffix)
	s.Require().Len(suffixes, 1)
	s.Assert().Equal("of Strength", suffixes[0].Name)

	// Replacing a same-named attribute on the affix does not grow the set.
	fire.Max = 8
	s.Require().NoError(s.store.SetAttribute(scope, fire))
	prefixes = s.store.Affixes("weapon", "sword", taxonomy.SidePrefix)
	s.Require().Len(prefixes[0].Attributes, 2)
	s.Assert().Equal(8.0, prefixes[0].Attributes[0].Max)
}

func (s *BuilderTestSuite) TestMetadata() {
	s.seedWeaponSword()
	s.Require().NoError(s.store.SetNames("weapon", "sword", []string{"Iron Sword"}))

	s.Require().NoError(s.store.SetSubtypeMetadata("weapon", "sword", "handedness", "one-handed"))
	s.Require().NoError(s.store.SetNameMetadata("weapon", "sword", "Iron Sword", "icon", "iron_sword.png"))

	s.Assert().Equal("one-handed", s.store.SubtypeMetadata("weapon", "sword")["handedness"])
	s.Assert().Equal("iron_sword.png", s.store.NameMetadata("weapon", "sword", "Iron Sword")["icon"])

	err := s.store.SetNameMetadata("weapon", "sword", "Unknown Blade", "icon", "x.png")
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeUnknownParent, errors.GetCode(err))
}

func (s *BuilderTestSuite) TestHasQualityEmptyName() {
	// Empty means unconstrained in override checks.
	s.Assert().True(s.store.HasQuality(""))
}
