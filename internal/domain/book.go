// Package domain contains the core business entities for the Shelflog reading tracker.
package domain

import "time"

// DateFormat is the calendar-date layout used for date_read and date_added.
// Dates come from HTML date inputs and carry no time component.
const DateFormat = "2006-01-02"

// Book represents a finished book on the read list.
type Book struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author,omitempty"` // empty when the catalog had no author
	Rating   int       `json:"rating"`
	DateRead time.Time `json:"date_read"`
	Notes    string    `json:"notes,omitempty"`
	CoverURL string    `json:"cover_url,omitempty"` // empty when the catalog had no cover
}

// DateReadString formats the read date for templates and form prefill.
func (b *Book) DateReadString() string {
	return b.DateRead.Format(DateFormat)
}
