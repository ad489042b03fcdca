package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shelflogapp/shelflog-server/internal/metadata/openlibrary"
	"github.com/shelflogapp/shelflog-server/internal/store/sqlite"
)

// fakeEnricher is a scriptable Enricher for tests.
type fakeEnricher struct {
	enrichment openlibrary.Enrichment
	err        error
	calls      int
}

func (f *fakeEnricher) Enrich(_ context.Context, _ string) (openlibrary.Enrichment, error) {
	f.calls++
	if f.err != nil {
		return openlibrary.Enrichment{}, f.err
	}
	return f.enrichment, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

var errCatalogDown = errors.New("connection refused")
