package models

import (
	"encoding/json"
	"strings"
)

// God represents a playable character entity
type God struct {
	Name      string             `json:"name"`
	Pantheon  string             `json:"pantheon,omitempty"`
	Type      string             `json:"type,omitempty"` // Role archetype, e.g. "Warrior"
	Abilities map[string]Ability `json:"abilities,omitempty"`
	Passive   *Ability           `json:"passive,omitempty"`
	Aspect    *Aspect            `json:"aspect,omitempty"`
	Skins     map[string]Skin    `json:"skins,omitempty"`
	LoreShort string             `json:"lore_short,omitempty"`
	Roles     []string           `json:"roles,omitempty"`
	Builds    []BuildRef         `json:"builds,omitempty"`
}

// Aspect is an optional god variant toggle
type Aspect struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Skin represents a cosmetic skin entry
type Skin struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// BuildRef is a community build attached to a god. All fields are
// free text; the role deriver scans them for lane keywords.
type BuildRef struct {
	Name  string   `json:"name,omitempty"`
	Title string   `json:"title,omitempty"`
	Role  string   `json:"role,omitempty"`
	Lane  string   `json:"lane,omitempty"`
	Notes string   `json:"notes,omitempty"`
	Items []string `json:"items,omitempty"`
}

// godAlias mirrors the raw dataset shape, where field naming drifted
// across sources over time. UnmarshalJSON collapses the aliases into
// the canonical God shape once, at load time.
type godAlias struct {
	Name        string             `json:"name"`
	GodName     string             `json:"GodName"`
	Title       string             `json:"title"`
	DisplayName string             `json:"displayName"`
	Pantheon    string             `json:"pantheon"`
	TypeUpper   string             `json:"Type"`
	TypeLower   string             `json:"type"`
	Abilities   map[string]Ability `json:"abilities"`
	Passive     *Ability           `json:"passive"`
	Aspect      *Aspect            `json:"aspect"`
	Skins       map[string]Skin    `json:"skins"`
	LoreShort   string             `json:"loreShort"`
	Roles       json.RawMessage    `json:"roles"`
	Role        json.RawMessage    `json:"role"`
	Builds      []BuildRef         `json:"builds"`
}

// UnmarshalJSON normalizes historical field aliases
// (name | GodName | title | displayName, roles | role, Type | type).
func (g *God) UnmarshalJSON(data []byte) error {
	var a godAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	g.Name = firstNonEmpty(a.Name, a.GodName, a.Title, a.DisplayName)
	g.Pantheon = a.Pantheon
	g.Type = firstNonEmpty(a.TypeUpper, a.TypeLower)
	g.Abilities = a.Abilities
	g.Passive = a.Passive
	g.Aspect = a.Aspect
	g.Skins = a.Skins
	g.LoreShort = a.LoreShort
	g.Builds = a.Builds

	g.Roles = coerceStrings(a.Roles)
	if len(g.Roles) == 0 {
		g.Roles = coerceStrings(a.Role)
	}
	return nil
}

// DisplayName returns the god's name or a placeholder when the
// record carries none.
func (g God) DisplayName() string {
	if g.Name != "" {
		return g.Name
	}
	return "Unknown"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// coerceStrings accepts a JSON string, a list of strings, or anything
// else (yielding nil). Non-string list entries are skipped.
func coerceStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil
		}
		return []string{single}
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	var out []string
	for _, v := range list {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
