package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/shelflogapp/shelflog-server/internal/config"
	"github.com/shelflogapp/shelflog-server/internal/logger"
	"github.com/shelflogapp/shelflog-server/internal/metadata/openlibrary"
	"github.com/shelflogapp/shelflog-server/internal/service"
	"github.com/shelflogapp/shelflog-server/internal/web"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	bookService := do.MustInvoke[*service.BookService](i)
	wishlistService := do.MustInvoke[*service.WishlistService](i)
	authService := do.MustInvoke[*service.AuthService](i)
	catalog := do.MustInvoke[*openlibrary.Client](i)

	handler := web.NewServer(bookService, wishlistService, authService, catalog, cfg.Auth.SessionDuration, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
