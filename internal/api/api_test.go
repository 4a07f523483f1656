package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/catalog"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/storage"
)

func intp(n int) *int { return &n }

func testServer(t *testing.T) *Server {
	t.Helper()

	gods := []models.God{
		{
			Name: "Zeus", Pantheon: "Greek", Type: "Mage",
			Roles: []string{"Middle Lane"},
			Abilities: map[string]models.Ability{
				"A01": {Key: "A01", Name: "Chain Lightning"},
			},
		},
		{Name: "Thor", Pantheon: "Norse", Roles: []string{"Jungle"}},
	}
	items := []models.Item{
		{Name: "Hidden Blade", Tier: intp(1)},
		{Name: "Zeal", Tier: intp(2), Components: []string{"Hidden Blade"}},
		{
			Name: "Wind Demon", Tier: intp(3), Components: []string{"Zeal"},
			Stats: map[string]models.StatValue{"Attack Speed": "25%"},
		},
	}

	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return New(catalog.New(gods, items), store, Options{})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestListGods(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/api/gods", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["total_count"])

	rec, body = doJSON(t, s, http.MethodGet, "/api/gods?pantheon=Greek", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["total_count"])

	rec, body = doJSON(t, s, http.MethodGet, "/api/gods?q=tho", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["total_count"])
}

func TestGetGodWithDerivedRoles(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/api/gods/zeus", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Zeus", body["name"])
	assert.Equal(t, []any{"Mid"}, body["derived_roles"])

	rec, _ = doJSON(t, s, http.MethodGet, "/api/gods/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAbility(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/api/gods/Zeus/abilities/A01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Chain Lightning", body["name"])

	rec, _ = doJSON(t, s, http.MethodGet, "/api/gods/Zeus/abilities/A09", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, s, http.MethodGet, "/api/gods/Zeus/abilities/passive", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPantheonsAndStats(t *testing.T) {
	s := testServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/gods/pantheons", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Greek","Norse"]`, rec.Body.String())

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Attack Speed"]`, rec.Body.String())
}

func TestListItemsWithCategory(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/api/items?category=Tier+2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["total_count"])
}

func TestGetItemResolvesLooseNames(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/api/items/wind-demon", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Wind Demon", body["name"])

	rec, _ = doJSON(t, s, http.MethodGet, "/api/items/no-such-item", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecipe(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodGet, "/api/items/Wind%20Demon/recipe", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["has_recipe"])
	assert.EqualValues(t, 0, body["discrepancy"])

	// Tier-1 items have no recipe but still respond.
	rec, body = doJSON(t, s, http.MethodGet, "/api/items/Hidden%20Blade/recipe", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["has_recipe"])
}

func TestLoadoutLifecycle(t *testing.T) {
	s := testServer(t)

	rec, body := doJSON(t, s, http.MethodPost, "/api/loadouts", models.LoadoutCreate{
		GodName: "Zeus", Name: "Crit Build", Items: []string{"Zeal", "Wind Demon"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := body["id"].(string)
	code := body["share_code"].(string)

	rec, body = doJSON(t, s, http.MethodGet, "/api/loadouts/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Crit Build", body["name"])

	rec, body = doJSON(t, s, http.MethodGet, "/api/s/"+code, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, body["id"])

	rec, _ = doJSON(t, s, http.MethodPut, "/api/loadouts/"+id, map[string]any{"name": "Renamed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, s, http.MethodDelete, "/api/loadouts/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, s, http.MethodGet, "/api/loadouts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateLoadoutValidation(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name string
		req  models.LoadoutCreate
	}{
		{"missing fields", models.LoadoutCreate{GodName: "Zeus"}},
		{"unknown god", models.LoadoutCreate{GodName: "Nobody", Name: "X", Items: []string{"Zeal"}}},
		{"unknown item", models.LoadoutCreate{GodName: "Zeus", Name: "X", Items: []string{"Fake Item"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doJSON(t, s, http.MethodPost, "/api/loadouts", tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnfilteredItemListIsCapped(t *testing.T) {
	var items []models.Item
	for i := 0; i < 30; i++ {
		items = append(items, models.Item{Name: fmt.Sprintf("Item %02d", i)})
	}
	s := New(catalog.New(nil, items), nil, Options{})

	rec, body := doJSON(t, s, http.MethodGet, "/api/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 20, body["total_count"])
}
