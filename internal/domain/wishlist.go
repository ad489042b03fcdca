package domain

import "time"

// WishlistItem represents a book the user intends to read.
// Wishlist items are independent of read-list books; moving an item to the
// read list is a manual re-entry, not a transactional move.
type WishlistItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	CoverURL   string    `json:"cover_url,omitempty"`
	DateAdded  time.Time `json:"date_added"`
	MarkedRead bool      `json:"marked_read"`
}

// DateAddedString formats the added date for templates.
func (w *WishlistItem) DateAddedString() string {
	return w.DateAdded.Format(DateFormat)
}
