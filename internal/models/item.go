package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Item represents a purchasable equipment entity. Tier, TotalCost and
// StepCost are pointers because their absence is meaningful: an
// active with a stepCost but no tier is a consumable, not an active.
type Item struct {
	Name         string               `json:"name,omitempty"`
	InternalName string               `json:"internal_name,omitempty"`
	Tier         *int                 `json:"tier,omitempty"`
	Components   []string             `json:"components,omitempty"`
	BuildsFromT1 []string             `json:"builds_from_t1,omitempty"`
	TotalCost    *int                 `json:"total_cost,omitempty"`
	StepCost     *int                 `json:"step_cost,omitempty"`
	Active       bool                 `json:"active,omitempty"`
	Relic        bool                 `json:"relic,omitempty"`
	Starter      bool                 `json:"starter,omitempty"`
	GodSpecific  bool                 `json:"god_specific,omitempty"`
	Consumable   bool                 `json:"consumable,omitempty"`
	Stats        map[string]StatValue `json:"stats,omitempty"`
	Passive      string               `json:"passive,omitempty"`
	Icon         string               `json:"icon,omitempty"`
}

type itemAlias struct {
	Name         string               `json:"name"`
	InternalName string               `json:"internalName"`
	Tier         json.RawMessage      `json:"tier"`
	Components   []string             `json:"components"`
	BuildsFromT1 []string             `json:"buildsFromT1"`
	TotalCost    json.RawMessage      `json:"totalCost"`
	StepCost     json.RawMessage      `json:"stepCost"`
	Active       bool                 `json:"active"`
	Relic        bool                 `json:"relic"`
	Starter      bool                 `json:"starter"`
	GodSpecific  bool                 `json:"godSpecific"`
	Consumable   bool                 `json:"consumable"`
	Stats        map[string]StatValue `json:"stats"`
	Passive      string               `json:"passive"`
	Icon         string               `json:"icon"`
}

// UnmarshalJSON reads the raw dataset shape. Numeric fields are
// tolerated as numbers or numeric strings; anything else counts as
// absent rather than failing the record.
func (it *Item) UnmarshalJSON(data []byte) error {
	var a itemAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	it.Name = a.Name
	it.InternalName = a.InternalName
	it.Tier = coerceInt(a.Tier)
	it.Components = a.Components
	it.BuildsFromT1 = a.BuildsFromT1
	it.TotalCost = coerceInt(a.TotalCost)
	it.StepCost = coerceInt(a.StepCost)
	it.Active = a.Active
	it.Relic = a.Relic
	it.Starter = a.Starter
	it.GodSpecific = a.GodSpecific
	it.Consumable = a.Consumable
	it.Stats = a.Stats
	it.Passive = a.Passive
	it.Icon = a.Icon
	return nil
}

// Valid reports whether the record is shown in listings: it needs a
// name, an internal name, or one of the active/consumable flags.
func (it Item) Valid() bool {
	return it.Name != "" || it.InternalName != "" || it.Active || it.Consumable
}

// DisplayName returns name, falling back to internal name, falling
// back to a placeholder.
func (it Item) DisplayName() string {
	if it.Name != "" {
		return it.Name
	}
	if it.InternalName != "" {
		return it.InternalName
	}
	return "Unknown"
}

// SortKey is the listing sort key: case-insensitive name falling back
// to internal name falling back to empty.
func (it Item) SortKey() string {
	if it.Name != "" {
		return strings.ToLower(it.Name)
	}
	return strings.ToLower(it.InternalName)
}

// StatValue is a stat entry the dataset stores as a number or a
// string ("+10%", "2.5"). The literal text is preserved.
type StatValue string

func (v *StatValue) UnmarshalJSON(data []byte) error {
	d := json.NewDecoder(strings.NewReader(string(data)))
	d.UseNumber()
	var raw any
	if err := d.Decode(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = StatValue(t)
	case json.Number:
		*v = StatValue(t.String())
	case bool:
		*v = StatValue(strconv.FormatBool(t))
	default:
		*v = ""
	}
	return nil
}

// coerceInt accepts a JSON number or a numeric string; anything else
// is treated as absent.
func coerceInt(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return &parsed
		}
	}
	return nil
}
