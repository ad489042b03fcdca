package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shelflogapp/shelflog-server/internal/domain"
	domainerrors "github.com/shelflogapp/shelflog-server/internal/errors"
	"github.com/shelflogapp/shelflog-server/internal/service"
)

// addBookForm carries the add-book submission.
type addBookForm struct {
	Title    string `form:"title_input" validate:"required,max=500"`
	Rating   int    `form:"rating" validate:"gte=1,lte=5"`
	DateRead string `form:"date_read" validate:"required,datetime=2006-01-02"`
	Notes    string `form:"notes" validate:"max=5000"`
}

// editBookForm carries the edit-book submission.
type editBookForm struct {
	ID       string `form:"id" validate:"required"`
	Title    string `form:"title" validate:"required,max=500"`
	Rating   int    `form:"rating" validate:"gte=1,lte=5"`
	DateRead string `form:"date_read" validate:"required,datetime=2006-01-02"`
	Notes    string `form:"notes" validate:"max=5000"`
}

// homeView is the data for the read-books list page.
type homeView struct {
	Books         []*domain.Book
	Authenticated bool
}

// editView is the data for the edit-book page.
type editView struct {
	Book          *domain.Book
	Authenticated bool
}

// handleHome renders the read-books list, newest first.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	books, err := s.bookService.ListBooks(r.Context())
	if err != nil {
		s.viewError(w, err, "error fetching books")
		return
	}

	s.render(w, http.StatusOK, "home.html", homeView{
		Books:         books,
		Authenticated: s.hasValidSession(r),
	})
}

// handleAddBookForm renders the add-book form.
func (s *Server) handleAddBookForm(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "add.html", struct {
		Authenticated bool
		Today         string
	}{
		Authenticated: true,
		Today:         time.Now().Format(domain.DateFormat),
	})
}

// handleAddBook creates a book from the submitted form, enriching the title
// against the catalog first. An unreachable catalog aborts the create.
func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	form := addBookForm{
		Title:    r.PostFormValue("title_input"),
		Rating:   formInt(r, "rating"),
		DateRead: r.PostFormValue("date_read"),
		Notes:    r.PostFormValue("notes"),
	}
	if err := s.validator.Validate(form); err != nil {
		s.viewError(w, err, "error adding book")
		return
	}

	dateRead, err := time.Parse(domain.DateFormat, form.DateRead)
	if err != nil {
		s.viewError(w, domainerrors.Validation("date_read must be a valid date"), "error adding book")
		return
	}

	_, err = s.bookService.CreateBook(r.Context(), service.CreateBookParams{
		Title:    form.Title,
		Rating:   form.Rating,
		DateRead: dateRead,
		Notes:    form.Notes,
	})
	if err != nil {
		s.viewError(w, err, "error adding book")
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// handleEditBookForm renders the edit form prefilled with the book's current
// fields.
func (s *Server) handleEditBookForm(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")

	book, err := s.bookService.GetBook(r.Context(), bookID)
	if err != nil {
		s.viewError(w, err, "error fetching book")
		return
	}

	s.render(w, http.StatusOK, "edit.html", editView{
		Book:          book,
		Authenticated: true,
	})
}

// handleEditBook updates the user-editable fields of a book. Author and
// cover are never re-derived here.
func (s *Server) handleEditBook(w http.ResponseWriter, r *http.Request) {
	form := editBookForm{
		ID:       r.PostFormValue("id"),
		Title:    r.PostFormValue("title"),
		Rating:   formInt(r, "rating"),
		DateRead: r.PostFormValue("date_read"),
		Notes:    r.PostFormValue("notes"),
	}
	if err := s.validator.Validate(form); err != nil {
		s.viewError(w, err, "error updating book")
		return
	}

	dateRead, err := time.Parse(domain.DateFormat, form.DateRead)
	if err != nil {
		s.viewError(w, domainerrors.Validation("date_read must be a valid date"), "error updating book")
		return
	}

	err = s.bookService.UpdateBook(r.Context(), service.UpdateBookParams{
		ID:       form.ID,
		Title:    form.Title,
		Rating:   form.Rating,
		DateRead: dateRead,
		Notes:    form.Notes,
	})
	if err != nil {
		s.viewError(w, err, "error updating book")
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// handleDeleteBook deletes a book by id. A missing id deletes nothing and
// still redirects.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := s.bookService.DeleteBook(r.Context(), r.PostFormValue("id")); err != nil {
		s.viewError(w, err, "error deleting book")
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
