package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shelflogapp/shelflog-server/internal/domain"
	domainerrors "github.com/shelflogapp/shelflog-server/internal/errors"
	"github.com/shelflogapp/shelflog-server/internal/id"
	"github.com/shelflogapp/shelflog-server/internal/store/sqlite"
)

// WishlistService handles business logic for the wishlist.
type WishlistService struct {
	store    *sqlite.Store
	enricher Enricher
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(store *sqlite.Store, enricher Enricher, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		store:    store,
		enricher: enricher,
		logger:   logger,
	}
}

// ListItems returns all wishlist items, most recently added first.
func (s *WishlistService) ListItems(ctx context.Context) ([]*domain.WishlistItem, error) {
	items, err := s.store.ListWishlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return items, nil
}

// AddItem enriches the title against the catalog and inserts the item.
// Same failure contract as BookService.CreateBook: unreachable catalog
// aborts, no match degrades to empty metadata.
func (s *WishlistService) AddItem(ctx context.Context, title string, dateAdded time.Time) (*domain.WishlistItem, error) {
	enrichment, err := s.enricher.Enrich(ctx, title)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeUnavailable, "book catalog unavailable")
	}

	itemID, err := id.Generate("wish")
	if err != nil {
		return nil, fmt.Errorf("generate wishlist id: %w", err)
	}

	item := &domain.WishlistItem{
		ID:        itemID,
		Title:     title,
		Author:    enrichment.Author,
		CoverURL:  enrichment.CoverURL,
		DateAdded: dateAdded,
	}

	if err := s.store.CreateWishlistItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create wishlist item: %w", err)
	}

	s.logger.Info("Wishlist item added",
		"id", item.ID,
		"title", item.Title,
		"author", item.Author,
	)
	return item, nil
}

// DeleteItem removes a wishlist item. A nonexistent id is a no-op.
func (s *WishlistService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.store.DeleteWishlistItem(ctx, itemID); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	return nil
}

// MarkRead unconditionally marks an item as read. A nonexistent id is a no-op.
func (s *WishlistService) MarkRead(ctx context.Context, itemID string) error {
	if err := s.store.MarkWishlistRead(ctx, itemID); err != nil {
		return fmt.Errorf("mark wishlist item read: %w", err)
	}
	return nil
}

// ToggleRead flips an item's read flag. A nonexistent id is a no-op.
func (s *WishlistService) ToggleRead(ctx context.Context, itemID string) error {
	if err := s.store.ToggleWishlistRead(ctx, itemID); err != nil {
		return fmt.Errorf("toggle wishlist item read: %w", err)
	}
	return nil
}
