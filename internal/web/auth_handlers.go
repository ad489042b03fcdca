package web

import (
	"net/http"

	domainerrors "github.com/shelflogapp/shelflog-server/internal/errors"
)

// loginView is the data for the login page.
type loginView struct {
	Redirect string
	Error    string
}

// handleLoginForm renders the login form, preserving the redirect target the
// session gate attached.
func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "login.html", loginView{
		Redirect: safeRedirectPath(r.URL.Query().Get("redirect")),
	})
}

// handleLogin checks the submitted password. Success sets the session cookie
// and follows the redirect; a wrong password re-renders the form in place
// with an error, still HTTP 200.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	password := r.PostFormValue("password")
	redirect := safeRedirectPath(r.PostFormValue("redirect"))

	token, err := s.authService.Login(password)
	if err != nil {
		if domainerrors.Is(err, domainerrors.ErrInvalidCredentials) {
			s.render(w, http.StatusOK, "login.html", loginView{
				Redirect: redirect,
				Error:    "Incorrect password. Please try again.",
			})
			return
		}
		s.viewError(w, err, "error logging in")
		return
	}

	s.setSessionCookie(w, token)
	http.Redirect(w, r, redirect, http.StatusFound)
}

// handleLogout clears the session cookie and redirects. Logging out without
// a session is fine.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)

	redirect := safeRedirectPath(r.PostFormValue("redirect"))
	http.Redirect(w, r, redirect, http.StatusFound)
}
