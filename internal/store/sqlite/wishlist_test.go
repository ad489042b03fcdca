package sqlite

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shelflogapp/shelflog-server/internal/domain"
)

func makeTestWishlistItem(id, title string) *domain.WishlistItem {
	dateAdded, _ := time.Parse(domain.DateFormat, "2024-02-14")
	return &domain.WishlistItem{
		ID:        id,
		Title:     title,
		Author:    "Ursula K. Le Guin",
		CoverURL:  "https://covers.openlibrary.org/b/id/456-M.jpg",
		DateAdded: dateAdded,
	}
}

func TestCreateAndGetWishlistItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item := makeTestWishlistItem("wish-1", "The Dispossessed")
	if err := s.CreateWishlistItem(ctx, item); err != nil {
		t.Fatalf("CreateWishlistItem: %v", err)
	}

	got, err := s.GetWishlistItem(ctx, "wish-1")
	if err != nil {
		t.Fatalf("GetWishlistItem: %v", err)
	}
	if got.Title != item.Title {
		t.Errorf("Title: got %q, want %q", got.Title, item.Title)
	}
	if got.Author != item.Author {
		t.Errorf("Author: got %q, want %q", got.Author, item.Author)
	}
	if got.CoverURL != item.CoverURL {
		t.Errorf("CoverURL: got %q, want %q", got.CoverURL, item.CoverURL)
	}
	if !got.DateAdded.Equal(item.DateAdded) {
		t.Errorf("DateAdded: got %v, want %v", got.DateAdded, item.DateAdded)
	}
	if got.MarkedRead {
		t.Error("new wishlist items must default to unread")
	}
}

func TestListWishlist_OrderedByDateAddedDesc(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	dates := map[string]string{
		"wish-old": "2023-01-01",
		"wish-new": "2024-06-01",
	}
	for id, date := range dates {
		item := makeTestWishlistItem(id, "Title "+id)
		item.DateAdded, _ = time.Parse(domain.DateFormat, date)
		if err := s.CreateWishlistItem(ctx, item); err != nil {
			t.Fatalf("CreateWishlistItem %s: %v", id, err)
		}
	}

	items, err := s.ListWishlist(ctx)
	if err != nil {
		t.Fatalf("ListWishlist: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "wish-new" || items[1].ID != "wish-old" {
		t.Errorf("wrong order: got [%s, %s]", items[0].ID, items[1].ID)
	}
}

func TestMarkWishlistRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateWishlistItem(ctx, makeTestWishlistItem("wish-1", "The Dispossessed")); err != nil {
		t.Fatalf("CreateWishlistItem: %v", err)
	}

	// Mark twice; the second call must be a no-op, not an error.
	for i := 0; i < 2; i++ {
		if err := s.MarkWishlistRead(ctx, "wish-1"); err != nil {
			t.Fatalf("MarkWishlistRead (call %d): %v", i+1, err)
		}
	}

	got, err := s.GetWishlistItem(ctx, "wish-1")
	if err != nil {
		t.Fatalf("GetWishlistItem: %v", err)
	}
	if !got.MarkedRead {
		t.Error("expected marked_read to be true")
	}

	// Missing id is still a success.
	if err := s.MarkWishlistRead(ctx, "wish-missing"); err != nil {
		t.Errorf("MarkWishlistRead on missing id should succeed, got %v", err)
	}
}

func TestToggleWishlistRead_PairRestoresOriginal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateWishlistItem(ctx, makeTestWishlistItem("wish-1", "The Dispossessed")); err != nil {
		t.Fatalf("CreateWishlistItem: %v", err)
	}

	if err := s.ToggleWishlistRead(ctx, "wish-1"); err != nil {
		t.Fatalf("ToggleWishlistRead: %v", err)
	}
	got, err := s.GetWishlistItem(ctx, "wish-1")
	if err != nil {
		t.Fatalf("GetWishlistItem: %v", err)
	}
	if !got.MarkedRead {
		t.Error("expected marked_read true after first toggle")
	}

	if err := s.ToggleWishlistRead(ctx, "wish-1"); err != nil {
		t.Fatalf("ToggleWishlistRead: %v", err)
	}
	got, err = s.GetWishlistItem(ctx, "wish-1")
	if err != nil {
		t.Fatalf("GetWishlistItem: %v", err)
	}
	if got.MarkedRead {
		t.Error("expected marked_read false after second toggle")
	}
}

func TestToggleWishlistRead_ConcurrentTogglesDoNotLoseUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateWishlistItem(ctx, makeTestWishlistItem("wish-1", "The Dispossessed")); err != nil {
		t.Fatalf("CreateWishlistItem: %v", err)
	}

	// An even number of concurrent toggles must land back on false, since
	// each toggle is a single atomic statement.
	const toggles = 10
	var wg sync.WaitGroup
	errs := make(chan error, toggles)
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.ToggleWishlistRead(ctx, "wish-1")
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("ToggleWishlistRead: %v", err)
		}
	}

	got, err := s.GetWishlistItem(ctx, "wish-1")
	if err != nil {
		t.Fatalf("GetWishlistItem: %v", err)
	}
	if got.MarkedRead {
		t.Error("expected marked_read false after an even number of toggles")
	}
}

func TestDeleteWishlistItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateWishlistItem(ctx, makeTestWishlistItem("wish-1", "The Dispossessed")); err != nil {
		t.Fatalf("CreateWishlistItem: %v", err)
	}
	if err := s.DeleteWishlistItem(ctx, "wish-1"); err != nil {
		t.Fatalf("DeleteWishlistItem: %v", err)
	}
	if _, err := s.GetWishlistItem(ctx, "wish-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := s.DeleteWishlistItem(ctx, "wish-missing"); err != nil {
		t.Errorf("DeleteWishlistItem on missing id should succeed, got %v", err)
	}
}
