package web

import (
	"net/http"
	"net/url"
	"strings"
)

// sessionCookieName is the cookie carrying the PASETO session token.
const sessionCookieName = "shelflog_session"

// requireSession is middleware that gates mutating routes behind a valid
// session token. Requests without one are redirected to the login form with
// the original path preserved, and never reach the handler.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.hasValidSession(r) {
			target := "/login?redirect=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// hasValidSession reports whether the request carries a valid, unexpired
// session cookie. Used both by the gate and by views that show edit controls
// only to the authenticated owner.
func (s *Server) hasValidSession(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	_, err = s.authService.Verify(cookie.Value)
	return err == nil
}

// setSessionCookie attaches a fresh session token to the response.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.sessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeRedirectPath constrains a user-supplied redirect target to a local
// path, falling back to "/" for anything that could leave the site.
func safeRedirectPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}
	return path
}
