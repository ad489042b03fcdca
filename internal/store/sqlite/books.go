package sqlite

import (
	"context"
	"database/sql"

	"github.com/shelflogapp/shelflog-server/internal/domain"
)

// bookColumns is the ordered list of columns selected in book queries.
// Must match the scan order in scanBook.
const bookColumns = `id, title, author, rating, date_read, notes, cover_url`

// scanBook scans a sql.Row (or sql.Rows via its Scan method) into a domain.Book.
func scanBook(scanner interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var b domain.Book

	var (
		author   sql.NullString
		dateRead string
		notes    sql.NullString
		coverURL sql.NullString
	)

	err := scanner.Scan(
		&b.ID,
		&b.Title,
		&author,
		&b.Rating,
		&dateRead,
		&notes,
		&coverURL,
	)
	if err != nil {
		return nil, err
	}

	b.DateRead, err = parseDate(dateRead)
	if err != nil {
		return nil, err
	}

	if author.Valid {
		b.Author = author.String
	}
	if notes.Valid {
		b.Notes = notes.String
	}
	if coverURL.Valid {
		b.CoverURL = coverURL.String
	}

	return &b, nil
}

// ListBooks returns all read books, most recently read first.
// Returns an empty slice when no rows exist.
func (s *Store) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books ORDER BY date_read DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []*domain.Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook retrieves a book by ID.
// Returns ErrNotFound if the book does not exist.
func (s *Store) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = ?`, id)

	book, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// CreateBook inserts a new book. No duplicate detection; the same title may
// be recorded any number of times.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO books (id, title, author, rating, date_read, notes, cover_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		book.ID,
		book.Title,
		nullString(book.Author),
		book.Rating,
		formatDate(book.DateRead),
		nullString(book.Notes),
		nullString(book.CoverURL),
	)
	return err
}

// UpdateBook updates the user-editable fields of a book. Author and cover URL
// are never touched here; they are set once at creation from catalog data.
// A nonexistent id affects zero rows and is not an error.
func (s *Store) UpdateBook(ctx context.Context, id, title string, rating int, dateRead string, notes string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE books SET title = ?, rating = ?, date_read = ?, notes = ?
		WHERE id = ?`,
		title, rating, dateRead, nullString(notes), id,
	)
	return err
}

// DeleteBook removes a book by ID. A nonexistent id affects zero rows and is
// not an error.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	return err
}
