package catalog

import (
	"strings"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// Item category selectors. A listing applies at most one of these at
// a time.
const (
	CategoryStarter     = "Starter"
	CategoryActive      = "Active"
	CategoryRelic       = "Relic"
	CategoryConsumable  = "Consumable"
	CategoryGodSpecific = "God Specific"
	CategoryTier1       = "Tier 1"
	CategoryTier2       = "Tier 2"
	CategoryTier3       = "Tier 3"
)

// Categories lists the selectors in display order.
func Categories() []string {
	return []string{
		CategoryStarter, CategoryActive, CategoryRelic, CategoryConsumable,
		CategoryGodSpecific, CategoryTier1, CategoryTier2, CategoryTier3,
	}
}

// GodFilter is the browse-state for the gods tab. Empty fields mean
// "no constraint".
type GodFilter struct {
	Pantheon string
	Query    string
}

// ItemFilter is the browse-state for the items tab.
type ItemFilter struct {
	Category string
	Stat     string
	Query    string
}

// FilterGods returns the visible god subset for a browse state:
// structural predicates first, text query after, and the page cap
// only when no query is active. Every call rescans; the dataset is
// small enough that no index is kept.
func (c *Catalog) FilterGods(f GodFilter) []models.God {
	out := []models.God{}
	for _, g := range c.gods {
		if f.Pantheon != "" && g.Pantheon != f.Pantheon {
			continue
		}
		out = append(out, g)
	}
	if f.Query == "" {
		return capPage(out, c.pageSize())
	}
	q := strings.ToLower(f.Query)
	matched := []models.God{}
	for _, g := range out {
		if strings.Contains(strings.ToLower(g.Name), q) {
			matched = append(matched, g)
		}
	}
	return matched
}

// FilterItems returns the visible item subset for a browse state,
// over the sorted valid-item listing. Same query/cap policy as
// FilterGods; the text query also matches internal names.
func (c *Catalog) FilterItems(f ItemFilter) []models.Item {
	out := []models.Item{}
	for _, it := range c.items {
		if f.Category != "" && !matchCategory(it, f.Category) {
			continue
		}
		if f.Stat != "" {
			if _, ok := it.Stats[f.Stat]; !ok {
				continue
			}
		}
		out = append(out, it)
	}
	if f.Query == "" {
		return capPage(out, c.pageSize())
	}
	q := strings.ToLower(f.Query)
	matched := []models.Item{}
	for _, it := range out {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.InternalName), q) {
			matched = append(matched, it)
		}
	}
	return matched
}

func (c *Catalog) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return DefaultPageSize
}

func capPage[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// godSpecificMods are name fragments that identify god-specific mod
// items when they co-occur with "mod" in the normalized name.
var godSpecificMods = []string{
	"alternator", "dual", "effeciency", "resonator", "thermal",
	"shrapnel", "masterwork", "surplus", "seismic",
}

func matchCategory(it models.Item, category string) bool {
	name := strings.ToLower(it.DisplayName())
	switch category {
	case CategoryStarter:
		return it.Starter || strings.Contains(name, "starter")
	case CategoryActive:
		// An active with a step cost but no tier is a consumable in
		// disguise; keep it out of the actives listing.
		hasSubstance := it.Tier != nil || it.TotalCost != nil || len(it.Stats) > 0
		return it.Active && hasSubstance && (it.StepCost == nil || it.Tier != nil)
	case CategoryRelic:
		return it.Relic
	case CategoryConsumable:
		return it.Consumable ||
			(it.Active && it.StepCost != nil && it.Tier == nil) ||
			strings.Contains(name, "consumable")
	case CategoryGodSpecific:
		if it.GodSpecific {
			return true
		}
		norm := stripNonAlnum(name)
		if strings.Contains(norm, "aladdinslamp") || strings.Contains(norm, "baron") {
			return true
		}
		if strings.Contains(norm, "mod") {
			for _, frag := range godSpecificMods {
				if strings.Contains(norm, frag) {
					return true
				}
			}
		}
		return false
	case CategoryTier1:
		return it.Tier != nil && *it.Tier == 1
	case CategoryTier2:
		return it.Tier != nil && *it.Tier == 2
	case CategoryTier3:
		return it.Tier != nil && *it.Tier == 3
	default:
		return false
	}
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
