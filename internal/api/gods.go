package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/catalog"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/icons"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/roles"
)

// godSummary is one row of the god listing
type godSummary struct {
	Name     string     `json:"name"`
	Pantheon string     `json:"pantheon,omitempty"`
	Type     string     `json:"type,omitempty"`
	Icon     icons.Icon `json:"icon"`
}

// godDetail is the full god detail view
type godDetail struct {
	models.God
	DerivedRoles []string   `json:"derived_roles,omitempty"`
	Icon         icons.Icon `json:"icon"`
}

// handleListGods returns the filtered god listing
func (s *Server) handleListGods(w http.ResponseWriter, r *http.Request) {
	filter := catalog.GodFilter{
		Pantheon: r.URL.Query().Get("pantheon"),
		Query:    r.URL.Query().Get("q"),
	}

	gods := s.cat.FilterGods(filter)
	summaries := make([]godSummary, 0, len(gods))
	for _, g := range gods {
		summaries = append(summaries, godSummary{
			Name:     g.Name,
			Pantheon: g.Pantheon,
			Type:     g.Type,
			Icon:     s.godIcon(g),
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"gods":        summaries,
		"total_count": len(summaries),
	})
}

// handleGetPantheons returns the distinct pantheon values
func (s *Server) handleGetPantheons(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.cat.Pantheons())
}

// handleGetGod returns a single god with its derived roles
func (s *Server) handleGetGod(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")

	god, ok := s.cat.GodByName(name)
	if !ok {
		respondError(w, http.StatusNotFound, "God not found")
		return
	}

	respondJSON(w, http.StatusOK, godDetail{
		God:          god,
		DerivedRoles: roles.Derive(god),
		Icon:         s.godIcon(god),
	})
}

// abilityDetail is the ability drill-down view
type abilityDetail struct {
	models.Ability
	ModGroups map[string][]string `json:"mod_groups,omitempty"`
	Icon      icons.Icon          `json:"resolved_icon"`
}

// handleGetAbility returns one ability of a god. The key is the
// ability slot ("A01"...) or "passive".
func (s *Server) handleGetAbility(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")
	key := chi.URLParam(r, "key")

	god, ok := s.cat.GodByName(name)
	if !ok {
		respondError(w, http.StatusNotFound, "God not found")
		return
	}

	var ability models.Ability
	if strings.EqualFold(key, "passive") {
		if god.Passive == nil {
			respondError(w, http.StatusNotFound, "Ability not found")
			return
		}
		ability = *god.Passive
	} else {
		ability, ok = god.Abilities[key]
		if !ok {
			respondError(w, http.StatusNotFound, "Ability not found")
			return
		}
	}

	respondJSON(w, http.StatusOK, abilityDetail{
		Ability:   ability,
		ModGroups: ability.ModGroups(),
		Icon:      icons.ResolveOrPlaceholder(s.icons, ability.Icon, ability.Name),
	})
}

func (s *Server) godIcon(g models.God) icons.Icon {
	var path string
	if len(g.Skins) > 0 {
		// Default skin icon doubles as the god portrait when present.
		if skin, ok := g.Skins["default"]; ok {
			path = skin.Icon
		}
	}
	return icons.ResolveOrPlaceholder(s.icons, path, g.DisplayName())
}
