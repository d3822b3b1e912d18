// Package backup exports the database contents as JSON snapshots.
package backup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

type licenseLister interface {
	List(ctx context.Context, filter domain.LicenseFilter) ([]domain.License, error)
}

type apiKeyLister interface {
	List(ctx context.Context) ([]domain.APIKey, error)
}

type voiceLister interface {
	List(ctx context.Context) ([]domain.Voice, error)
}

type configGetter interface {
	Get(ctx context.Context) (*domain.AppConfig, error)
}

type auditLister interface {
	ListAll(ctx context.Context) ([]domain.AuditEntry, error)
}

// Snapshot is a full export of every table.
type Snapshot struct {
	Licenses   []domain.License
	APIKeys    []domain.APIKey
	Voices     []domain.Voice
	Config     domain.AppConfig
	Logs       []domain.AuditEntry
	ExportedAt time.Time
}

// Service builds backup snapshots.
type Service struct {
	licenses licenseLister
	apiKeys  apiKeyLister
	voices   voiceLister
	config   configGetter
	audit    auditLister
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new backup service.
func NewService(
	log *slog.Logger,
	licenses licenseLister,
	apiKeys apiKeyLister,
	voices voiceLister,
	config configGetter,
	audit auditLister,
) *Service {
	return &Service{
		licenses: licenses,
		apiKeys:  apiKeys,
		voices:   voices,
		config:   config,
		audit:    audit,
		now:      time.Now,
		log:      log.With("service", "backup"),
	}
}

// Full reads every table concurrently. Any failure aborts the export.
func (s *Service) Full(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: s.now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if snap.Licenses, err = s.licenses.List(gctx, domain.LicenseFilter{}); err != nil {
			return fmt.Errorf("licenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.APIKeys, err = s.apiKeys.List(gctx); err != nil {
			return fmt.Errorf("api keys: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.Voices, err = s.voices.List(gctx); err != nil {
			return fmt.Errorf("voices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		cfg, err := s.config.Get(gctx)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		snap.Config = *cfg
		return nil
	})
	g.Go(func() error {
		var err error
		if snap.Logs, err = s.audit.ListAll(gctx); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("backup: %w", err)
	}

	s.log.InfoContext(ctx, "full backup exported",
		slog.Int("licenses", len(snap.Licenses)),
		slog.Int("api_keys", len(snap.APIKeys)),
		slog.Int("voices", len(snap.Voices)),
		slog.Int("logs", len(snap.Logs)),
	)
	return snap, nil
}

// Licenses exports the license table only.
func (s *Service) Licenses(ctx context.Context) ([]domain.License, error) {
	licenses, err := s.licenses.List(ctx, domain.LicenseFilter{})
	if err != nil {
		return nil, fmt.Errorf("backup licenses: %w", err)
	}
	s.log.InfoContext(ctx, "license backup exported", slog.Int("licenses", len(licenses)))
	return licenses, nil
}

// Now returns the export clock, used for attachment file names.
func (s *Service) Now() time.Time { return s.now().UTC() }
