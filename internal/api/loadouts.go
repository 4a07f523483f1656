package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// handleCreateLoadout creates a new loadout. The god must exist and
// every item name must resolve against the dataset.
func (s *Server) handleCreateLoadout(w http.ResponseWriter, r *http.Request) {
	var req models.LoadoutCreate
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.GodName == "" || req.Name == "" || len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "god_name, name, and items are required")
		return
	}
	if _, ok := s.cat.GodByName(req.GodName); !ok {
		respondError(w, http.StatusBadRequest, "Unknown god")
		return
	}
	for _, item := range req.Items {
		if _, ok := s.resolver.Resolve(item); !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Unknown item: %s", item))
			return
		}
	}

	loadout, err := s.store.CreateLoadout(&req)
	if err != nil {
		s.log.Error("failed to create loadout", "err", err)
		respondError(w, http.StatusInternalServerError, "Failed to create loadout")
		return
	}

	respondJSON(w, http.StatusCreated, loadout)
}

// handleListLoadouts returns loadouts, optionally for one god
func (s *Server) handleListLoadouts(w http.ResponseWriter, r *http.Request) {
	loadouts, err := s.store.ListLoadouts(r.URL.Query().Get("god"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch loadouts")
		return
	}
	if loadouts == nil {
		loadouts = []models.Loadout{}
	}
	respondJSON(w, http.StatusOK, loadouts)
}

// handleGetLoadout returns a loadout by ID
func (s *Server) handleGetLoadout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	loadout, err := s.store.GetLoadout(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch loadout")
		return
	}
	if loadout == nil {
		respondError(w, http.StatusNotFound, "Loadout not found")
		return
	}

	respondJSON(w, http.StatusOK, loadout)
}

// handleUpdateLoadout updates an existing loadout
func (s *Server) handleUpdateLoadout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetLoadout(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch loadout")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Loadout not found")
		return
	}

	var update models.LoadoutUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	for _, item := range update.Items {
		if _, ok := s.resolver.Resolve(item); !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Unknown item: %s", item))
			return
		}
	}

	if err := s.store.UpdateLoadout(id, &update); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update loadout")
		return
	}

	updated, _ := s.store.GetLoadout(id)
	respondJSON(w, http.StatusOK, updated)
}

// handleDeleteLoadout deletes a loadout by ID
func (s *Server) handleDeleteLoadout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	existing, err := s.store.GetLoadout(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch loadout")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Loadout not found")
		return
	}

	if err := s.store.DeleteLoadout(id); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete loadout")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGetLoadoutByCode returns a loadout by share code
func (s *Server) handleGetLoadoutByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	loadout, err := s.store.GetLoadoutByShareCode(code)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch loadout")
		return
	}
	if loadout == nil {
		respondError(w, http.StatusNotFound, "Loadout not found")
		return
	}

	respondJSON(w, http.StatusOK, loadout)
}
