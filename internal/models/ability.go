package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// Ability represents a god ability or passive. Passives reuse the
// same shape; their valueKeys may carry god-specific upgrade slots
// whose labels contain "Mod" (see ModGroups).
type Ability struct {
	Key       string               `json:"key,omitempty"`
	Name      string               `json:"name,omitempty"`
	Icon      string               `json:"icon,omitempty"`
	Scales    string               `json:"scales,omitempty"`
	ShortDesc string               `json:"short_desc,omitempty"`
	ValueKeys map[string]ValueList `json:"value_keys,omitempty"`
}

type abilityAlias struct {
	Key         string               `json:"key"`
	Name        string               `json:"name"`
	Icon        string               `json:"icon"`
	Scales      string               `json:"scales"`
	ShortDesc   string               `json:"shortDesc"`
	Description string               `json:"description"`
	ValueKeys   map[string]ValueList `json:"valueKeys"`
}

// UnmarshalJSON normalizes the name/key and shortDesc/description aliases.
func (ab *Ability) UnmarshalJSON(data []byte) error {
	var a abilityAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	ab.Key = a.Key
	ab.Name = firstNonEmpty(a.Name, a.Key)
	ab.Icon = a.Icon
	ab.Scales = a.Scales
	ab.ShortDesc = firstNonEmpty(a.ShortDesc, a.Description)
	ab.ValueKeys = a.ValueKeys
	return nil
}

// ValueList holds an ability value that the dataset stores either as
// a scalar or as a per-rank sequence. Numbers are kept verbatim as
// their literal text.
type ValueList []string

func (v *ValueList) UnmarshalJSON(data []byte) error {
	d := json.NewDecoder(strings.NewReader(string(data)))
	d.UseNumber()
	var raw any
	if err := d.Decode(&raw); err != nil {
		return err
	}
	*v = appendValues(nil, raw)
	return nil
}

func appendValues(out []string, raw any) []string {
	switch t := raw.(type) {
	case nil:
		return out
	case []any:
		for _, e := range t {
			out = appendValues(out, e)
		}
		return out
	case string:
		return append(out, t)
	case json.Number:
		return append(out, t.String())
	case bool:
		if t {
			return append(out, "true")
		}
		return append(out, "false")
	default:
		return out
	}
}

// ModGroups extracts god-specific upgrade slots from a passive's
// valueKeys: entries whose label contains "Mod", grouped by the
// "Set One" / "Set Two" / "Set Three" label fragments. Labels that
// name no set group under "Other".
func (ab Ability) ModGroups() map[string][]string {
	groups := make(map[string][]string)
	for label := range ab.ValueKeys {
		if !strings.Contains(label, "Mod") {
			continue
		}
		set := "Other"
		for _, s := range []string{"Set One", "Set Two", "Set Three"} {
			if strings.Contains(label, s) {
				set = s
				break
			}
		}
		groups[set] = append(groups[set], label)
	}
	for _, labels := range groups {
		sort.Strings(labels)
	}
	if len(groups) == 0 {
		return nil
	}
	return groups
}
