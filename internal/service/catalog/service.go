package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/amulet-backend/internal/adapter/cache"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type voiceRepo interface {
	ListActive(ctx context.Context) ([]domain.Voice, error)
	List(ctx context.Context) ([]domain.Voice, error)
	ExistingVoiceIDs(ctx context.Context, voiceIDs []string) (map[string]bool, error)
	Create(ctx context.Context, v domain.Voice) (*domain.Voice, error)
	Update(ctx context.Context, id uuid.UUID, name, voiceID *string, active *bool) (*domain.Voice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// CacheKeyActiveVoices holds the client-facing voice list.
const CacheKeyActiveVoices = "voices:active"

// Service manages the voice catalog.
type Service struct {
	voices voiceRepo
	active *cache.Slot[[]domain.Voice]
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	voices voiceRepo,
	store cacheStore,
	cacheTTL time.Duration,
	tx txManager,
) *Service {
	return &Service{
		voices: voices,
		active: cache.NewSlot[[]domain.Voice](store, CacheKeyActiveVoices, cacheTTL),
		tx:     tx,
		log:    log.With("service", "catalog"),
	}
}

// ListActive returns the active voices ordered by name. Results are cached;
// cache failures fall back to the database.
func (s *Service) ListActive(ctx context.Context) ([]domain.Voice, error) {
	gen := s.active.Generation()
	cached, ok, err := s.active.Get(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "voice cache read failed", slog.String("error", err.Error()))
	}
	if ok {
		return cached, nil
	}

	voices, err := s.voices.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active voices: %w", err)
	}

	if _, err := s.active.Fill(ctx, gen, voices); err != nil {
		s.log.WarnContext(ctx, "voice cache write failed", slog.String("error", err.Error()))
	}
	return voices, nil
}

// refresh runs after a committed mutation. It drops the cached list and
// writes the reloaded one through; a failed reload leaves the key empty for
// the next read to fill.
func (s *Service) refresh(ctx context.Context) {
	gen, err := s.active.Invalidate(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "voice cache invalidation failed", slog.String("error", err.Error()))
	}

	voices, err := s.voices.ListActive(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "voice cache reload failed", slog.String("error", err.Error()))
		return
	}
	if _, err := s.active.Fill(ctx, gen, voices); err != nil {
		s.log.WarnContext(ctx, "voice cache write failed", slog.String("error", err.Error()))
	}
}
