package providers

import (
	"github.com/samber/do/v2"

	"github.com/shelflogapp/shelflog-server/internal/auth"
	"github.com/shelflogapp/shelflog-server/internal/config"
	"github.com/shelflogapp/shelflog-server/internal/logger"
	"github.com/shelflogapp/shelflog-server/internal/metadata/openlibrary"
	"github.com/shelflogapp/shelflog-server/internal/service"
)

// ProvideAuthService provides the password-gate auth service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(tokens, cfg.Auth.SitePassword, log.Logger), nil
}

// ProvideBookService provides the book service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	catalog := do.MustInvoke[*openlibrary.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, catalog, log.Logger), nil
}

// ProvideWishlistService provides the wishlist service.
func ProvideWishlistService(i do.Injector) (*service.WishlistService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	catalog := do.MustInvoke[*openlibrary.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewWishlistService(storeHandle.Store, catalog, log.Logger), nil
}
