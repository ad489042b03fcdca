package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shelflogapp/shelflog-server/internal/domain"
	domainerrors "github.com/shelflogapp/shelflog-server/internal/errors"
	"github.com/shelflogapp/shelflog-server/internal/id"
	"github.com/shelflogapp/shelflog-server/internal/store/sqlite"
)

// BookService handles business logic for the read list.
type BookService struct {
	store    *sqlite.Store
	enricher Enricher
	logger   *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *sqlite.Store, enricher Enricher, logger *slog.Logger) *BookService {
	return &BookService{
		store:    store,
		enricher: enricher,
		logger:   logger,
	}
}

// CreateBookParams carries the user-supplied fields for a new book.
type CreateBookParams struct {
	Title    string
	Rating   int
	DateRead time.Time
	Notes    string
}

// UpdateBookParams carries the editable fields of an existing book.
// Author and cover URL are absent on purpose; they are set once at creation.
type UpdateBookParams struct {
	ID       string
	Title    string
	Rating   int
	DateRead time.Time
	Notes    string
}

// ListBooks returns all read books, most recently read first.
func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetBook retrieves one book for edit-form prefill.
func (s *BookService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		if domainerrors.Is(err, sqlite.ErrNotFound) {
			return nil, domainerrors.NotFoundf("book %s not found", bookID).WithCause(err)
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// CreateBook enriches the title against the catalog and inserts the book.
// An unreachable catalog aborts the create; a reachable catalog with no
// match inserts the book with empty author and cover.
func (s *BookService) CreateBook(ctx context.Context, p CreateBookParams) (*domain.Book, error) {
	enrichment, err := s.enricher.Enrich(ctx, p.Title)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeUnavailable, "book catalog unavailable")
	}

	bookID, err := id.Generate("book")
	if err != nil {
		return nil, fmt.Errorf("generate book id: %w", err)
	}

	book := &domain.Book{
		ID:       bookID,
		Title:    p.Title,
		Author:   enrichment.Author,
		Rating:   p.Rating,
		DateRead: p.DateRead,
		Notes:    p.Notes,
		CoverURL: enrichment.CoverURL,
	}

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.logger.Info("Book added",
		"id", book.ID,
		"title", book.Title,
		"author", book.Author,
	)
	return book, nil
}

// UpdateBook updates the user-editable fields of a book.
// A nonexistent id is a no-op, not an error.
func (s *BookService) UpdateBook(ctx context.Context, p UpdateBookParams) error {
	dateRead := p.DateRead.Format(domain.DateFormat)
	if err := s.store.UpdateBook(ctx, p.ID, p.Title, p.Rating, dateRead, p.Notes); err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// DeleteBook removes a book. A nonexistent id is a no-op, not an error.
func (s *BookService) DeleteBook(ctx context.Context, bookID string) error {
	if err := s.store.DeleteBook(ctx, bookID); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}
