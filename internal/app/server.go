package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/fx"

	"github.com/heartmarshall/amulet-backend/internal/config"
	"github.com/heartmarshall/amulet-backend/internal/service/appconfig"
)

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

// ensureConfig makes sure the singleton config row exists before traffic
// arrives.
func ensureConfig(lc fx.Lifecycle, configs *appconfig.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := configs.EnsureDefault(ctx); err != nil {
				return fmt.Errorf("ensure app config: %w", err)
			}
			return nil
		},
	})
}

// runHTTP binds the listener on start and drains in-flight requests on stop.
// A serve failure after start shuts the whole app down.
func runHTTP(lc fx.Lifecycle, sd fx.Shutdowner, srv *http.Server, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			log.Info("http server listening", slog.String("addr", ln.Addr().String()))

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server failed", slog.String("error", err.Error()))
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("http shutdown: %w", err)
			}
			return nil
		},
	})
}
