package providers

import (
	"github.com/samber/do/v2"

	"github.com/shelflogapp/shelflog-server/internal/config"
	"github.com/shelflogapp/shelflog-server/internal/logger"
	"github.com/shelflogapp/shelflog-server/internal/metadata/openlibrary"
)

// ProvideOpenLibraryClient provides the Open Library catalog client.
func ProvideOpenLibraryClient(i do.Injector) (*openlibrary.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := openlibrary.NewClient(cfg.Catalog.BaseURL, log.Logger)

	log.Info("Open Library client ready", "base_url", cfg.Catalog.BaseURL)
	return client, nil
}
