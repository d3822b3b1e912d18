package app

import (
	"context"
	"errors"
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/heartmarshall/amulet-backend/internal/config"
	"github.com/heartmarshall/amulet-backend/internal/transport/rest"
)

var errAbnormalExit = errors.New("app: stopped after component failure")

// Run is the server entry point. It loads configuration, builds the
// dependency graph and blocks until ctx is cancelled or a component asks
// the app to shut down.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)
	if cfg.Admin.UsesDefaults() {
		logger.Warn("admin API uses the default credential, set ADMIN_USER and ADMIN_PASS")
	}

	fxApp := fx.New(
		fx.Supply(cfg, logger),
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
		}),
		Module,
	)
	if err := fxApp.Err(); err != nil {
		logger.Error("build dependency graph", slog.String("error", err.Error()))
		return err
	}

	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		logger.Error("startup failed", slog.String("error", err.Error()))
		return err
	}

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case sig := <-fxApp.Wait():
		exitCode = sig.ExitCode
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
		return err
	}
	if exitCode != 0 {
		return errAbnormalExit
	}

	logger.Info("application stopped")
	return nil
}

// Module is the server's dependency graph.
var Module = fx.Options(
	fx.Provide(
		newPool,
		newTxManager,
		newCache,
		newRateLimiter,

		newLicenseRepo,
		newAPIKeyRepo,
		newVoiceRepo,
		newAppConfigRepo,
		newAuditRepo,

		newLedgerService,
		newLicenseService,
		newKeyPoolService,
		newCatalogService,
		newAppConfigService,
		newAuditLogService,
		newBackupService,

		newClientHandler,
		newAdminHandler,
		newHealthHandler,
		rest.NewRouter,
		newHTTPServer,
	),
	fx.Invoke(ensureConfig, runHTTP),
)
