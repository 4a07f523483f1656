package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/catalog"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/icons"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/lookup"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/recipe"
	"github.com/YungSonix/Smite2Mastery-sub002/internal/storage"
)

// Server holds the HTTP server dependencies
type Server struct {
	cat      *catalog.Catalog
	resolver *lookup.Resolver
	builder  *recipe.Builder
	store    *storage.Store
	icons    icons.Registry
	log      *charmlog.Logger
	router   chi.Router
}

// Options configures optional server collaborators.
type Options struct {
	Icons       icons.Registry // nil renders text placeholders only
	CORSOrigins []string
	Logger      *charmlog.Logger
}

// New creates a new API server over a loaded catalog. The store may
// be nil, which disables the loadout routes.
func New(cat *catalog.Catalog, store *storage.Store, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = charmlog.Default()
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"http://localhost:*"}
	}

	resolver := lookup.New(cat.Corpus())
	s := &Server{
		cat:      cat,
		resolver: resolver,
		builder:  recipe.NewBuilder(resolver),
		store:    store,
		icons:    opts.Icons,
		log:      opts.Logger,
		router:   chi.NewRouter(),
	}

	s.setupMiddleware(opts.CORSOrigins)
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Gods
		r.Get("/gods", s.handleListGods)
		r.Get("/gods/pantheons", s.handleGetPantheons)
		r.Get("/gods/{name}", s.handleGetGod)
		r.Get("/gods/{name}/abilities/{key}", s.handleGetAbility)

		// Items
		r.Get("/items", s.handleListItems)
		r.Get("/items/stats", s.handleGetStatKeys)
		r.Get("/items/categories", s.handleGetCategories)
		r.Get("/items/{name}", s.handleGetItem)
		r.Get("/items/{name}/recipe", s.handleGetRecipe)

		// Loadouts
		if s.store != nil {
			r.Post("/loadouts", s.handleCreateLoadout)
			r.Get("/loadouts", s.handleListLoadouts)
			r.Get("/loadouts/{id}", s.handleGetLoadout)
			r.Put("/loadouts/{id}", s.handleUpdateLoadout)
			r.Delete("/loadouts/{id}", s.handleDeleteLoadout)

			// Share links
			r.Get("/s/{code}", s.handleGetLoadoutByCode)
		}
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Request/response helpers ---

// urlParam returns a path parameter with percent-escapes decoded;
// entity names carry spaces and apostrophes.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
