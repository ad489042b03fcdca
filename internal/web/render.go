package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates is parsed once at startup; every file under templates/ is a
// complete standalone page.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render executes the named template into a buffer and writes it out, so a
// template error never produces a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Failed to render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// errorView is the data for the generic error page.
type errorView struct {
	Status  int
	Message string
}

// renderError renders the generic error page with the given status.
func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	s.render(w, status, "error.html", errorView{Status: status, Message: message})
}
