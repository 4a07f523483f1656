package api

import (
	"net/http"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/catalog"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/icons"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// itemDetail is the item drill-down view
type itemDetail struct {
	models.Item
	ResolvedIcon icons.Icon `json:"resolved_icon"`
}

// handleListItems returns the filtered item listing
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	filter := catalog.ItemFilter{
		Category: r.URL.Query().Get("category"),
		Stat:     r.URL.Query().Get("stat"),
		Query:    r.URL.Query().Get("q"),
	}

	items := s.cat.FilterItems(filter)
	respondJSON(w, http.StatusOK, map[string]any{
		"items":       items,
		"total_count": len(items),
	})
}

// handleGetStatKeys returns the distinct stat keys across valid items
func (s *Server) handleGetStatKeys(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.cat.StatKeys())
}

// handleGetCategories returns the item category selectors
func (s *Server) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Categories())
}

// handleGetItem resolves an item by free-text name
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")

	item, ok := s.resolver.Resolve(name)
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	respondJSON(w, http.StatusOK, itemDetail{
		Item:         item,
		ResolvedIcon: icons.ResolveOrPlaceholder(s.icons, item.Icon, item.DisplayName()),
	})
}

// handleGetRecipe returns the recipe tree for an item. Items without
// a recipe return a bare root; unresolved components show up in the
// discrepancy count rather than failing the request.
func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")

	item, ok := s.resolver.Resolve(name)
	if !ok {
		respondError(w, http.StatusNotFound, "Item not found")
		return
	}

	tree := s.builder.Build(item)
	if tree.Discrepancy() > 0 {
		s.log.Warn("recipe has unresolved components",
			"item", item.DisplayName(), "missing", tree.Discrepancy())
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"tree":        tree,
		"has_recipe":  tree.HasRecipe(),
		"discrepancy": tree.Discrepancy(),
	})
}
