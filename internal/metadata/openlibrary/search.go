package openlibrary

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/http"
	"net/url"
)

const defaultLimit = 5

// search issues one query against search.json and returns the raw documents.
// A failed transport or a non-200 status is an error; an empty document list
// is a successful response.
func (c *Client) search(ctx context.Context, query string, limit int) ([]searchDoc, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprintf("%d", limit))

	searchURL := c.baseURL + "/search.json?" + params.Encode()

	c.logger.Debug("searching Open Library",
		"query", query,
		"url", searchURL,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.UnmarshalRead(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	c.logger.Debug("Open Library search results",
		"query", query,
		"count", searchResp.NumFound,
	)

	return searchResp.Docs, nil
}

// Enrich looks up a title and extracts author and cover metadata from the
// best-ranked match, trusting Open Library's own relevance order.
//
// The two failure shapes are deliberately distinct: a reachable catalog with
// no match returns a zero Enrichment and nil error, while a transport or API
// failure returns an error that the caller must treat as aborting its write.
func (c *Client) Enrich(ctx context.Context, title string) (Enrichment, error) {
	docs, err := c.search(ctx, title, 1)
	if err != nil {
		return Enrichment{}, err
	}

	if len(docs) == 0 {
		return Enrichment{}, nil
	}

	return enrichmentFromDoc(&docs[0]), nil
}

// Search returns the top matches for a query, for the add-form autocomplete.
func (c *Client) Search(ctx context.Context, query string) ([]Match, error) {
	docs, err := c.search(ctx, query, defaultLimit)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		e := enrichmentFromDoc(doc)
		matches = append(matches, Match{
			Title:    doc.Title,
			Author:   e.Author,
			CoverURL: e.CoverURL,
		})
	}
	return matches, nil
}

// enrichmentFromDoc extracts the fields we keep from a search document.
func enrichmentFromDoc(doc *searchDoc) Enrichment {
	var e Enrichment
	if doc.CoverID != 0 {
		e.CoverURL = CoverURL(doc.CoverID)
	}
	if len(doc.AuthorNames) > 0 {
		e.Author = doc.AuthorNames[0]
	}
	return e
}
