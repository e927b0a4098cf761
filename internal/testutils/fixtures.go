package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edover/praeda-go/internal/entities/loot"
	"github.com/edover/praeda-go/internal/taxonomy"
)

// TestTableName is the default table name for test fixtures
const TestTableName = "dungeon-drops"

// CreateTestStore builds a small weapon/armor taxonomy with names,
// attributes and a pair of sword affixes.
func CreateTestStore(t *testing.T) *taxonomy.Store {
	store := taxonomy.New()

	require.NoError(t, store.SetQuality("common", 100))
	require.NoError(t, store.SetQuality("uncommon", 60))
	require.NoError(t, store.SetQuality("rare", 30))

	require.NoError(t, store.SetItemType("weapon", 1))
	require.NoError(t, store.SetSubtype("weapon", "sword", 1))
	require.NoError(t, store.SetSubtype("weapon", "axe", 1))
	require.NoError(t, store.SetItemType("armor", 1))
	require.NoError(t, store.SetSubtype("armor", "head", 1))

	require.NoError(t, store.SetNames("weapon", "sword", []string{"longsword", "shortsword"}))
	require.NoError(t, store.SetNames("weapon", "axe", []string{"battleaxe"}))
	require.NoError(t, store.SetNames("armor", "head", []string{"helmet"}))

	require.NoError(t, store.SetAttribute(
		taxonomy.TypeWide("weapon"), loot.NewAttributeSpec("damage", 10, 1, 20, true)))
	require.NoError(t, store.SetAttribute(
		taxonomy.TypeWide("armor"), loot.NewAttributeSpec("defense", 5, 1, 10, true)))

	require.NoError(t, store.SetAttribute(
		taxonomy.Affixed("weapon", "sword", "Flaming", taxonomy.SidePrefix),
		loot.NewAttributeSpec("fire_damage", 3, 1, 6, true)))
	require.NoError(t, store.SetAttribute(
		taxonomy.Affixed("weapon", "sword", "of Strength", taxonomy.SideSuffix),
		loot.NewAttributeSpec("strength", 2, 1, 4, true)))

	return store
}

// CreateTestDocument snapshots the fixture taxonomy.
func CreateTestDocument(t *testing.T) taxonomy.Document {
	return CreateTestStore(t).Snapshot()
}
