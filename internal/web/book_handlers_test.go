package web

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelflogapp/shelflog-server/internal/metadata/openlibrary"
)

func TestHome_EmptyList(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.get("/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No books yet")
	// Anonymous visitors see a login link, not edit controls.
	assert.Contains(t, rec.Body.String(), "/login")
	assert.NotContains(t, rec.Body.String(), "/edit/")
}

func TestAddBook_FullFlow(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.enrichment = openlibrary.Enrichment{
		Author:   "Frank Herbert",
		CoverURL: "https://covers.openlibrary.org/b/id/123-M.jpg",
	}
	cookie := ts.login(t)

	rec := ts.postForm("/add", url.Values{
		"title_input": {"Dune"},
		"rating":      {"5"},
		"date_read":   {"2026-08-30"},
		"notes":       {"spice"},
	}, cookie)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	home := ts.get("/", cookie)
	assert.Contains(t, home.Body.String(), "Dune")
	assert.Contains(t, home.Body.String(), "Frank Herbert")
	assert.Contains(t, home.Body.String(), "123-M.jpg")
	// Edit controls show for the authenticated owner.
	assert.Contains(t, home.Body.String(), "/edit/")
}

func TestAddBook_WithoutSessionRedirectsAndDoesNotMutate(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postForm("/add", url.Values{
		"title_input": {"Dune"},
		"rating":      {"5"},
		"date_read":   {"2026-08-30"},
	}, nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fadd", rec.Header().Get("Location"))
	// The enricher was never consulted and nothing was inserted.
	assert.Zero(t, ts.catalog.calls)
	books, err := ts.store.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestAddBook_CatalogDownRendersErrorAndInsertsNothing(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.err = errCatalogDown
	cookie := ts.login(t)

	rec := ts.postForm("/add", url.Values{
		"title_input": {"Dune"},
		"rating":      {"5"},
		"date_read":   {"2026-08-30"},
	}, cookie)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	books, err := ts.store.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestAddBook_ValidationError(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.postForm("/add", url.Values{
		"title_input": {"Dune"},
		"rating":      {"9"},
		"date_read":   {"2026-08-30"},
	}, cookie)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "rating")
}

func TestEditBook_PrefillAndUpdate(t *testing.T) {
	ts := newTestServer(t)
	ts.catalog.enrichment = openlibrary.Enrichment{Author: "Frank Herbert"}
	cookie := ts.login(t)

	ts.postForm("/add", url.Values{
		"title_input": {"Dune"},
		"rating":      {"4"},
		"date_read":   {"2026-08-30"},
	}, cookie)

	books, err := ts.store.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	bookID := books[0].ID

	form := ts.get("/edit/"+bookID, cookie)
	assert.Equal(t, http.StatusOK, form.Code)
	assert.Contains(t, form.Body.String(), "Dune")
	assert.Contains(t, form.Body.String(), "2026-08-30")

	rec := ts.postForm("/edit", url.Values{
		"id":        {bookID},
		"title":     {"Dune Messiah"},
		"rating":    {"3"},
		"date_read": {"2026-08-31"},
		"notes":     {"sequel"},
	}, cookie)
	require.Equal(t, http.StatusFound, rec.Code)

	books, err = ts.store.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune Messiah", books[0].Title)
	assert.Equal(t, 3, books[0].Rating)
	// Author survives the edit untouched.
	assert.Equal(t, "Frank Herbert", books[0].Author)
}

func TestEditBookForm_NotFound(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	rec := ts.get("/edit/book-missing", cookie)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBook(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.login(t)

	ts.postForm("/add", url.Values{
		"title_input": {"Dune"},
		"rating":      {"5"},
		"date_read":   {"2026-08-30"},
	}, cookie)

	books, err := ts.store.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)

	rec := ts.postForm("/delete", url.Values{"id": {books[0].ID}}, cookie)
	require.Equal(t, http.StatusFound, rec.Code)

	books, err = ts.store.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)

	// Deleting a missing id still redirects.
	rec = ts.postForm("/delete", url.Values{"id": {"book-missing"}}, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
}
