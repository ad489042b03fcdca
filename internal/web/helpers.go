package web

import (
	"net/http"
	"strconv"

	domainerrors "github.com/shelflogapp/shelflog-server/internal/errors"
)

// formInt parses an integer form field, returning zero when absent or
// malformed so validation can report it.
func formInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.PostFormValue(name))
	if err != nil {
		return 0
	}
	return n
}

// viewError renders the error page for a failed view or mutation. Domain
// errors surface their own message and status; anything else is logged and
// shown as the generic message.
func (s *Server) viewError(w http.ResponseWriter, err error, generic string) {
	var domainErr *domainerrors.Error
	if domainerrors.As(err, &domainErr) {
		s.renderError(w, domainErr.HTTPStatus(), domainErr.Message)
		return
	}

	s.logger.Error(generic, "error", err)
	s.renderError(w, http.StatusInternalServerError, generic)
}
