// Package web provides the HTTP server, HTML views, and JSON routes for the
// Shelflog application.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shelflogapp/shelflog-server/internal/metadata/openlibrary"
	"github.com/shelflogapp/shelflog-server/internal/service"
	"github.com/shelflogapp/shelflog-server/internal/validation"
)

// Catalog is the subset of the Open Library client used by the autocomplete
// proxy route.
type Catalog interface {
	Search(ctx context.Context, query string) ([]openlibrary.Match, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	bookService     *service.BookService
	wishlistService *service.WishlistService
	authService     *service.AuthService
	catalog         Catalog
	validator       *validation.Validator
	sessionDuration time.Duration
	router          *chi.Mux
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(bookService *service.BookService, wishlistService *service.WishlistService, authService *service.AuthService, catalog Catalog, sessionDuration time.Duration, logger *slog.Logger) *Server {
	s := &Server{
		bookService:     bookService,
		wishlistService: wishlistService,
		authService:     authService,
		catalog:         catalog,
		validator:       validation.New(),
		sessionDuration: sessionDuration,
		router:          chi.NewRouter(),
		logger:          logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// Read-only views (no session required).
	s.router.Get("/", s.handleHome)
	s.router.Get("/wishlist", s.handleWishlist)

	// Login and logout.
	s.router.Get("/login", s.handleLoginForm)
	s.router.Post("/login", s.handleLogin)
	s.router.Get("/logout", s.handleLogout)
	s.router.Post("/logout", s.handleLogout)

	// Mutating routes, gated by the session cookie.
	s.router.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Get("/add", s.handleAddBookForm)
		r.Post("/add", s.handleAddBook)
		r.Get("/edit/{id}", s.handleEditBookForm)
		r.Post("/edit", s.handleEditBook)
		r.Post("/delete", s.handleDeleteBook)

		r.Get("/wishlist/add", s.handleAddWishlistForm)
		r.Post("/wishlist/add", s.handleAddWishlistItem)
		r.Post("/wishlist/delete", s.handleDeleteWishlistItem)
		r.Post("/wishlist/mark-read", s.handleMarkWishlistRead)
		r.Post("/wishlist/toggle-read", s.handleToggleWishlistRead)
	})

	// JSON API, used by the add-form autocomplete.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/search", s.handleCatalogSearch)
	})
}
