package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

func intp(n int) *int { return &n }

func god(name, pantheon string) models.God {
	return models.God{Name: name, Pantheon: pantheon}
}

func TestValidItemFilter(t *testing.T) {
	items := []models.Item{
		{Name: "Sword"},
		{},                    // no identifying field at all
		{InternalName: "axe"}, // internal name alone qualifies
		{Active: true},
		{Consumable: true},
	}
	c := New(nil, items)
	assert.Len(t, c.Items(), 4)
	// The invalid record stays available to the resolver corpus.
	assert.Len(t, c.Corpus(), 5)
}

func TestItemSortOrder(t *testing.T) {
	items := []models.Item{
		{Name: "Zeal"},
		{Name: "ankh"},
		{Name: "Ankh"},
		{InternalName: "bracer"},
	}
	c := New(nil, items)

	var names []string
	for _, it := range c.Items() {
		names = append(names, it.DisplayName())
	}
	// Case-insensitive compare; the two Ankhs tie exactly, so dataset
	// order breaks the tie.
	assert.Equal(t, []string{"ankh", "Ankh", "bracer", "Zeal"}, names)
}

func TestPantheonIndex(t *testing.T) {
	gods := []models.God{
		god("Zeus", "Greek"),
		god("Thor", "Norse"),
		god("Ares", "Greek"),
		god("Mystery", ""),
	}
	c := New(gods, nil)
	assert.Equal(t, []string{"Greek", "Norse"}, c.Pantheons())
}

func TestStatKeyIndex(t *testing.T) {
	items := []models.Item{
		{Name: "A", Stats: map[string]models.StatValue{"Power": "50", "Health": "200"}},
		{Name: "B", Stats: map[string]models.StatValue{"Health": "100", "Lifesteal": "10%"}},
		{Stats: map[string]models.StatValue{"Hidden": "1"}}, // invalid item, excluded
	}
	c := New(nil, items)
	assert.Equal(t, []string{"Health", "Lifesteal", "Power"}, c.StatKeys())
}

func TestFilterGodsByPantheonAndQuery(t *testing.T) {
	gods := []models.God{
		god("Zeus", "Greek"),
		god("Poseidon", "Greek"),
		god("Thor", "Norse"),
	}
	c := New(gods, nil)

	greek := c.FilterGods(GodFilter{Pantheon: "Greek"})
	require.Len(t, greek, 2)

	hit := c.FilterGods(GodFilter{Pantheon: "Greek", Query: "posei"})
	require.Len(t, hit, 1)
	assert.Equal(t, "Poseidon", hit[0].Name)

	none := c.FilterGods(GodFilter{Pantheon: "Norse", Query: "zeus"})
	assert.Empty(t, none)
}

func TestPageCapOnlyWithoutQuery(t *testing.T) {
	var items []models.Item
	for i := 0; i < 25; i++ {
		items = append(items, models.Item{Name: fmt.Sprintf("Item %02d", i)})
	}
	c := New(nil, items)

	capped := c.FilterItems(ItemFilter{})
	require.Len(t, capped, 20)
	// The cap keeps the head of the structurally filtered order.
	assert.Equal(t, c.Items()[:20], capped)

	// Any text query lifts the cap.
	all := c.FilterItems(ItemFilter{Query: "item"})
	assert.Len(t, all, 25)
}

func TestCategorySelectors(t *testing.T) {
	tests := []struct {
		name     string
		item     models.Item
		category string
		want     bool
	}{
		{"starter flag", models.Item{Name: "Warrior Axe", Starter: true}, CategoryStarter, true},
		{"starter by name", models.Item{Name: "Mage Starter Blade"}, CategoryStarter, true},
		{"active with total cost", models.Item{Name: "Blink", Active: true, TotalCost: intp(500)}, CategoryActive, true},
		{"active with step cost but no tier is not active", models.Item{Name: "Potion", Active: true, StepCost: intp(100)}, CategoryActive, false},
		{"active with step cost and tier stays active", models.Item{Name: "Upgrade", Active: true, StepCost: intp(100), Tier: intp(2)}, CategoryActive, true},
		{"active with step cost but no tier is consumable", models.Item{Name: "Potion", Active: true, StepCost: intp(100)}, CategoryConsumable, true},
		{"consumable flag", models.Item{Name: "Ward", Consumable: true}, CategoryConsumable, true},
		{"relic flag", models.Item{Name: "Beads", Relic: true}, CategoryRelic, true},
		{"god specific flag", models.Item{Name: "Anything", GodSpecific: true}, CategoryGodSpecific, true},
		{"god specific by lamp fragment", models.Item{Name: "Aladdin's Lamp"}, CategoryGodSpecific, true},
		{"god specific mod fragment", models.Item{Name: "Thermal Mod"}, CategoryGodSpecific, true},
		{"mod without family fragment", models.Item{Name: "Generic Mod"}, CategoryGodSpecific, false},
		{"tier match", models.Item{Name: "Zeal", Tier: intp(2)}, CategoryTier2, true},
		{"tier mismatch", models.Item{Name: "Zeal", Tier: intp(2)}, CategoryTier3, false},
		{"untiered never matches a tier", models.Item{Name: "Zeal"}, CategoryTier1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchCategory(tt.item, tt.category))
		})
	}
}

func TestFilterItemsByStat(t *testing.T) {
	items := []models.Item{
		{Name: "A", Stats: map[string]models.StatValue{"Power": "50"}},
		{Name: "B", Stats: map[string]models.StatValue{"Health": "100"}},
	}
	c := New(nil, items)

	got := c.FilterItems(ItemFilter{Stat: "Power"})
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}
