package appconfig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/amulet-backend/internal/adapter/cache"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

type configRepo interface {
	Get(ctx context.Context) (*domain.AppConfig, error)
	InsertDefault(ctx context.Context, cfg domain.AppConfig) (bool, error)
	Save(ctx context.Context, cfg domain.AppConfig) (*domain.AppConfig, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CacheKey holds the cached config row.
const CacheKey = "config"

// Service serves and edits the singleton remote configuration.
type Service struct {
	configs configRepo
	cached  *cache.Slot[domain.AppConfig]
	log     *slog.Logger
}

// NewService creates a new remote config service.
func NewService(log *slog.Logger, configs configRepo, store cacheStore, cacheTTL time.Duration) *Service {
	return &Service{
		configs: configs,
		cached:  cache.NewSlot[domain.AppConfig](store, CacheKey, cacheTTL),
		log:     log.With("service", "appconfig"),
	}
}

// EnsureDefault writes the default config row if none exists. It is called
// once at startup and fails when storage is unreachable.
func (s *Service) EnsureDefault(ctx context.Context) error {
	inserted, err := s.configs.InsertDefault(ctx, domain.DefaultAppConfig())
	if err != nil {
		return fmt.Errorf("ensure default config: %w", err)
	}
	if inserted {
		s.log.InfoContext(ctx, "default app config created")
	}
	return nil
}

// Get returns the current config. Use AppConfig.Links for the normalized
// update link list.
func (s *Service) Get(ctx context.Context) (*domain.AppConfig, error) {
	gen := s.cached.Generation()
	cached, ok, err := s.cached.Get(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "config cache read failed", slog.String("error", err.Error()))
	}
	if ok {
		return &cached, nil
	}

	cfg, err := s.configs.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		if err := s.EnsureDefault(ctx); err != nil {
			return nil, err
		}
		cfg, err = s.configs.Get(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}

	if _, err := s.cached.Fill(ctx, gen, *cfg); err != nil {
		s.log.WarnContext(ctx, "config cache write failed", slog.String("error", err.Error()))
	}
	return cfg, nil
}

// Update applies a partial edit and writes the saved row through to the
// cache.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.AppConfig, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.configs.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultAppConfig()
		current, err = &def, s.EnsureDefault(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}

	next := input.apply(*current)
	saved, err := s.configs.Save(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	gen, err := s.cached.Invalidate(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "config cache invalidation failed", slog.String("error", err.Error()))
	}
	if _, err := s.cached.Fill(ctx, gen, *saved); err != nil {
		s.log.WarnContext(ctx, "config cache write failed", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "app config updated",
		slog.String("latest_version", saved.LatestVersion),
		slog.Bool("force_update", saved.ForceUpdate),
		slog.Bool("maintenance", saved.Maintenance),
	)
	return saved, nil
}
