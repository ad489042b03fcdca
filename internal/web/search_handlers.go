package web

import (
	"net/http"
	"strings"

	"github.com/shelflogapp/shelflog-server/internal/http/response"
)

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}

// handleCatalogSearch proxies the add-form autocomplete to the catalog,
// returning the top matches as JSON.
func (s *Server) handleCatalogSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		response.BadRequest(w, "q is required", s.logger)
		return
	}

	matches, err := s.catalog.Search(r.Context(), query)
	if err != nil {
		s.logger.Error("Catalog search failed", "query", query, "error", err)
		response.Error(w, http.StatusBadGateway, "book catalog unavailable", s.logger)
		return
	}

	response.Success(w, matches, s.logger)
}
