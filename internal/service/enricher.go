// Package service contains the business logic sitting between the HTTP
// handlers and the persistence store.
package service

import (
	"context"

	"github.com/shelflogapp/shelflog-server/internal/metadata/openlibrary"
)

// Enricher fetches catalog metadata for a user-entered title.
// A zero Enrichment with nil error means the catalog had no match; an error
// means the catalog was unreachable and the enclosing write must abort.
type Enricher interface {
	Enrich(ctx context.Context, title string) (openlibrary.Enrichment, error)
}
