package sqlite

import (
	"context"
	"database/sql"

	"github.com/shelflogapp/shelflog-server/internal/domain"
)

// wishlistColumns is the ordered list of columns selected in wishlist queries.
// Must match the scan order in scanWishlistItem.
const wishlistColumns = `id, title, author, cover_url, date_added, marked_read`

// scanWishlistItem scans a sql.Row (or sql.Rows via its Scan method) into a domain.WishlistItem.
func scanWishlistItem(scanner interface{ Scan(dest ...any) error }) (*domain.WishlistItem, error) {
	var w domain.WishlistItem

	var (
		author    sql.NullString
		coverURL  sql.NullString
		dateAdded string
	)

	err := scanner.Scan(
		&w.ID,
		&w.Title,
		&author,
		&coverURL,
		&dateAdded,
		&w.MarkedRead,
	)
	if err != nil {
		return nil, err
	}

	w.DateAdded, err = parseDate(dateAdded)
	if err != nil {
		return nil, err
	}

	if author.Valid {
		w.Author = author.String
	}
	if coverURL.Valid {
		w.CoverURL = coverURL.String
	}

	return &w, nil
}

// ListWishlist returns all wishlist items, most recently added first.
// Returns an empty slice when no rows exist.
func (s *Store) ListWishlist(ctx context.Context) ([]*domain.WishlistItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+wishlistColumns+` FROM wishlist ORDER BY date_added DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*domain.WishlistItem{}
	for rows.Next() {
		item, err := scanWishlistItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetWishlistItem retrieves a wishlist item by ID.
// Returns ErrNotFound if the item does not exist.
func (s *Store) GetWishlistItem(ctx context.Context, id string) (*domain.WishlistItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+wishlistColumns+` FROM wishlist WHERE id = ?`, id)

	item, err := scanWishlistItem(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateWishlistItem inserts a new wishlist item.
func (s *Store) CreateWishlistItem(ctx context.Context, item *domain.WishlistItem) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO wishlist (id, title, author, cover_url, date_added, marked_read)
		VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.Title,
		nullString(item.Author),
		nullString(item.CoverURL),
		formatDate(item.DateAdded),
		item.MarkedRead,
	)
	return err
}

// DeleteWishlistItem removes a wishlist item by ID. A nonexistent id affects
// zero rows and is not an error.
func (s *Store) DeleteWishlistItem(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM wishlist WHERE id = ?`, id)
	return err
}

// MarkWishlistRead unconditionally sets marked_read for an item.
// A nonexistent id affects zero rows and is not an error.
func (s *Store) MarkWishlistRead(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE wishlist SET marked_read = 1 WHERE id = ?`, id)
	return err
}

// ToggleWishlistRead flips marked_read for an item in a single statement,
// so concurrent toggles on the same row cannot lose an update.
// A nonexistent id affects zero rows and is not an error.
func (s *Store) ToggleWishlistRead(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE wishlist SET marked_read = NOT marked_read WHERE id = ?`, id)
	return err
}
