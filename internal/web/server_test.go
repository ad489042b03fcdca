package web

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shelflogapp/shelflog-server/internal/auth"
	"github.com/shelflogapp/shelflog-server/internal/metadata/openlibrary"
	"github.com/shelflogapp/shelflog-server/internal/service"
	"github.com/shelflogapp/shelflog-server/internal/store/sqlite"
)

const testPassword = "hunter2"

// fakeCatalog is a scriptable catalog for handler tests. It serves both the
// enricher and the autocomplete proxy.
type fakeCatalog struct {
	enrichment openlibrary.Enrichment
	matches    []openlibrary.Match
	err        error
	calls      int
}

func (f *fakeCatalog) Enrich(_ context.Context, _ string) (openlibrary.Enrichment, error) {
	f.calls++
	if f.err != nil {
		return openlibrary.Enrichment{}, f.err
	}
	return f.enrichment, nil
}

func (f *fakeCatalog) Search(_ context.Context, _ string) ([]openlibrary.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

type testServer struct {
	server  *Server
	catalog *fakeCatalog
	store   *sqlite.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	key := make([]byte, 32)
	_, err = rand.Read(key)
	require.NoError(t, err)
	tokens, err := auth.NewTokenService(key, time.Hour)
	require.NoError(t, err)

	catalog := &fakeCatalog{}
	server := NewServer(
		service.NewBookService(store, catalog, logger),
		service.NewWishlistService(store, catalog, logger),
		service.NewAuthService(tokens, testPassword, logger),
		catalog,
		time.Hour,
		logger,
	)

	return &testServer{server: server, catalog: catalog, store: store}
}

// get performs a GET request, attaching the session cookie when given.
func (ts *testServer) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, req)
	return rec
}

// postForm performs a form POST, attaching the session cookie when given.
func (ts *testServer) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	ts.server.ServeHTTP(rec, req)
	return rec
}

// login authenticates with the test password and returns the session cookie.
func (ts *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := ts.postForm("/login", url.Values{
		"password": {testPassword},
		"redirect": {"/"},
	}, nil)
	require.Equal(t, http.StatusFound, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set after login")
	return nil
}

var errCatalogDown = errors.New("connection refused")
