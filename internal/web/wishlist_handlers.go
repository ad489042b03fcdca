package web

import (
	"net/http"
	"time"

	"github.com/shelflogapp/shelflog-server/internal/domain"
	domainerrors "github.com/shelflogapp/shelflog-server/internal/errors"
)

// addWishlistForm carries the add-wishlist submission.
type addWishlistForm struct {
	Title     string `form:"title_input" validate:"required,max=500"`
	DateAdded string `form:"date_added" validate:"required,datetime=2006-01-02"`
}

// wishlistView is the data for the wishlist page.
type wishlistView struct {
	Items         []*domain.WishlistItem
	Authenticated bool
}

// handleWishlist renders the wishlist, newest first.
func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := s.wishlistService.ListItems(r.Context())
	if err != nil {
		s.viewError(w, err, "error fetching wishlist")
		return
	}

	s.render(w, http.StatusOK, "wishlist.html", wishlistView{
		Items:         items,
		Authenticated: s.hasValidSession(r),
	})
}

// handleAddWishlistForm renders the add-wishlist form.
func (s *Server) handleAddWishlistForm(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "wishlist-add.html", struct {
		Authenticated bool
		Today         string
	}{
		Authenticated: true,
		Today:         time.Now().Format(domain.DateFormat),
	})
}

// handleAddWishlistItem creates a wishlist item from the submitted form,
// enriching the title against the catalog first.
func (s *Server) handleAddWishlistItem(w http.ResponseWriter, r *http.Request) {
	form := addWishlistForm{
		Title:     r.PostFormValue("title_input"),
		DateAdded: r.PostFormValue("date_added"),
	}
	if err := s.validator.Validate(form); err != nil {
		s.viewError(w, err, "error adding wishlist item")
		return
	}

	dateAdded, err := time.Parse(domain.DateFormat, form.DateAdded)
	if err != nil {
		s.viewError(w, domainerrors.Validation("date_added must be a valid date"), "error adding wishlist item")
		return
	}

	if _, err := s.wishlistService.AddItem(r.Context(), form.Title, dateAdded); err != nil {
		s.viewError(w, err, "error adding wishlist item")
		return
	}

	http.Redirect(w, r, "/wishlist", http.StatusFound)
}

// handleDeleteWishlistItem deletes a wishlist item by id.
func (s *Server) handleDeleteWishlistItem(w http.ResponseWriter, r *http.Request) {
	if err := s.wishlistService.DeleteItem(r.Context(), r.PostFormValue("id")); err != nil {
		s.viewError(w, err, "error deleting wishlist item")
		return
	}

	http.Redirect(w, r, "/wishlist", http.StatusFound)
}

// handleMarkWishlistRead unconditionally marks an item as read.
func (s *Server) handleMarkWishlistRead(w http.ResponseWriter, r *http.Request) {
	if err := s.wishlistService.MarkRead(r.Context(), r.PostFormValue("id")); err != nil {
		s.viewError(w, err, "error updating wishlist item")
		return
	}

	http.Redirect(w, r, "/wishlist", http.StatusFound)
}

// handleToggleWishlistRead flips an item's read flag.
func (s *Server) handleToggleWishlistRead(w http.ResponseWriter, r *http.Request) {
	if err := s.wishlistService.ToggleRead(r.Context(), r.PostFormValue("id")); err != nil {
		s.viewError(w, err, "error updating wishlist item")
		return
	}

	http.Redirect(w, r, "/wishlist", http.StatusFound)
}
