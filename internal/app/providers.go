package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/heartmarshall/amulet-backend/internal/adapter/cache"
	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres"
	apikeyrepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/apikey"
	appconfigrepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/appconfig"
	auditrepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/audit"
	licenserepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/license"
	voicerepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/voice"
	"github.com/heartmarshall/amulet-backend/internal/config"
	"github.com/heartmarshall/amulet-backend/internal/service/appconfig"
	"github.com/heartmarshall/amulet-backend/internal/service/auditlog"
	"github.com/heartmarshall/amulet-backend/internal/service/backup"
	"github.com/heartmarshall/amulet-backend/internal/service/catalog"
	"github.com/heartmarshall/amulet-backend/internal/service/keypool"
	"github.com/heartmarshall/amulet-backend/internal/service/ledger"
	"github.com/heartmarshall/amulet-backend/internal/service/license"
	"github.com/heartmarshall/amulet-backend/internal/transport/middleware"
	"github.com/heartmarshall/amulet-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// Infrastructure
// ---------------------------------------------------------------------------

// connectTimeout bounds the initial database and Redis handshakes, migrations
// included.
const connectTimeout = 30 * time.Second

func newPool(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
		slog.Int("min_conns", int(cfg.Database.MinConns)),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			log.Info("database pool closed")
			return nil
		},
	})
	return pool, nil
}

func newTxManager(pool *pgxpool.Pool) *postgres.TxManager {
	return postgres.NewTxManager(pool)
}

func newCache(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (cache.Store, error) {
	if cfg.Cache.RedisURL == "" {
		log.Info("cache: in-process")
		return cache.NewMemory(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := cache.Connect(ctx, cfg.Cache.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeRedis(client)
		},
	})
	log.Info("cache: redis", slog.String("prefix", cfg.Cache.KeyPrefix))
	return cache.NewRedis(client, cfg.Cache.KeyPrefix), nil
}

func closeRedis(client *redis.Client) error {
	if err := client.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}

func newRateLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			limiter.Stop()
			return nil
		},
	})
	return limiter
}

// ---------------------------------------------------------------------------
// Repositories
// ---------------------------------------------------------------------------

func newLicenseRepo(pool *pgxpool.Pool) *licenserepo.Repo     { return licenserepo.New(pool) }
func newAPIKeyRepo(pool *pgxpool.Pool) *apikeyrepo.Repo       { return apikeyrepo.New(pool) }
func newVoiceRepo(pool *pgxpool.Pool) *voicerepo.Repo         { return voicerepo.New(pool) }
func newAppConfigRepo(pool *pgxpool.Pool) *appconfigrepo.Repo { return appconfigrepo.New(pool) }
func newAuditRepo(pool *pgxpool.Pool) *auditrepo.Repo         { return auditrepo.New(pool) }

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

func newLedgerService(log *slog.Logger, licenses *licenserepo.Repo, audit *auditrepo.Repo, tx *postgres.TxManager) *ledger.Service {
	return ledger.NewService(log, licenses, audit, tx)
}

func newLicenseService(log *slog.Logger, licenses *licenserepo.Repo, audit *auditrepo.Repo, tx *postgres.TxManager) *license.Service {
	return license.NewService(log, licenses, audit, tx)
}

func newKeyPoolService(log *slog.Logger, keys *apikeyrepo.Repo) *keypool.Service {
	return keypool.NewService(log, keys)
}

func newCatalogService(log *slog.Logger, cfg *config.Config, voices *voicerepo.Repo, store cache.Store, tx *postgres.TxManager) *catalog.Service {
	return catalog.NewService(log, voices, store, cfg.Cache.TTL, tx)
}

func newAppConfigService(log *slog.Logger, cfg *config.Config, configs *appconfigrepo.Repo, store cache.Store) *appconfig.Service {
	return appconfig.NewService(log, configs, store, cfg.Cache.TTL)
}

func newAuditLogService(log *slog.Logger, audit *auditrepo.Repo) *auditlog.Service {
	return auditlog.NewService(log, audit)
}

func newBackupService(
	log *slog.Logger,
	licenses *licenserepo.Repo,
	keys *apikeyrepo.Repo,
	voices *voicerepo.Repo,
	configs *appconfig.Service,
	audit *auditrepo.Repo,
) *backup.Service {
	return backup.NewService(log, licenses, keys, voices, configs, audit)
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

func newClientHandler(
	log *slog.Logger,
	ledgerSvc *ledger.Service,
	keys *keypool.Service,
	voices *catalog.Service,
	configs *appconfig.Service,
) *rest.ClientHandler {
	return rest.NewClientHandler(ledgerSvc, keys, voices, configs, log)
}

type adminDeps struct {
	fx.In

	Log      *slog.Logger
	Config   *config.Config
	Licenses *license.Service
	Ledger   *ledger.Service
	APIKeys  *keypool.Service
	Voices   *catalog.Service
	Audit    *auditlog.Service
	AppCfg   *appconfig.Service
	Backup   *backup.Service
}

func newAdminHandler(d adminDeps) *rest.AdminHandler {
	return rest.NewAdminHandler(rest.AdminServices{
		Licenses: d.Licenses,
		Credit:   d.Ledger,
		APIKeys:  d.APIKeys,
		Voices:   d.Voices,
		Audit:    d.Audit,
		Config:   d.AppCfg,
		Backup:   d.Backup,
	}, d.Config.Server.MaxUploadBytes, d.Log)
}

func newHealthHandler(pool *pgxpool.Pool, store cache.Store) *rest.HealthHandler {
	return rest.NewHealthHandler(pool, store, BuildVersion())
}
