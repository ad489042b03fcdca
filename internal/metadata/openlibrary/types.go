// Package openlibrary provides a client for the Open Library search API,
// used to enrich user-entered titles with author and cover metadata.
package openlibrary

// Enrichment is the metadata extracted for a title. The zero value means the
// catalog was reachable but had no match; both fields stay empty and the
// caller proceeds without them.
type Enrichment struct {
	Author   string `json:"author,omitempty"`
	CoverURL string `json:"cover_url,omitempty"`
}

// Match is a single search result, used by the autocomplete proxy.
type Match struct {
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	CoverURL string `json:"cover_url,omitempty"`
}

// searchResponse is the raw Open Library search.json response.
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

// searchDoc is a single document from Open Library search.
type searchDoc struct {
	Title       string   `json:"title"`
	CoverID     int64    `json:"cover_i"`
	AuthorNames []string `json:"author_name"`
}
