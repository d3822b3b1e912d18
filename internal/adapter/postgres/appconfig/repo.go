// Package appconfig implements the singleton remote configuration
// repository using PostgreSQL.
package appconfig

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

const (
	table = "app_config"
	rowID = 1
)

var columns = []string{
	"latest_version", "force_update", "maintenance", "maintenance_message",
	"update_description", "update_links", "updated_at",
}

// Repo provides app config persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new app config repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	LatestVersion      string    `db:"latest_version"`
	ForceUpdate        bool      `db:"force_update"`
	Maintenance        bool      `db:"maintenance"`
	MaintenanceMessage string    `db:"maintenance_message"`
	UpdateDescription  string    `db:"update_description"`
	UpdateLinks        string    `db:"update_links"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.AppConfig {
	return &domain.AppConfig{
		LatestVersion:      r.LatestVersion,
		ForceUpdate:        r.ForceUpdate,
		Maintenance:        r.Maintenance,
		MaintenanceMessage: r.MaintenanceMessage,
		UpdateDescription:  r.UpdateDescription,
		UpdateLinks:        r.UpdateLinks,
		UpdatedAt:          r.UpdatedAt,
	}
}

// Get returns the config row. ErrNotFound if it was never created.
func (r *Repo) Get(ctx context.Context) (*domain.AppConfig, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where("id = ?", rowID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build app_config query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "app_config", rowID)
	}
	return dst.toDomain(), nil
}

// InsertDefault writes cfg as the config row unless one already exists.
// It reports whether a row was inserted.
func (r *Repo) InsertDefault(ctx context.Context, cfg domain.AppConfig) (bool, error) {
	sql, args, err := postgres.Builder().Insert(table).
		Columns("id", "latest_version", "force_update", "maintenance", "maintenance_message",
			"update_description", "update_links").
		Values(rowID, cfg.LatestVersion, cfg.ForceUpdate, cfg.Maintenance, cfg.MaintenanceMessage,
			cfg.UpdateDescription, cfg.UpdateLinks).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build app_config insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "app_config", rowID)
	}
	return tag.RowsAffected() == 1, nil
}

// Save overwrites the config row.
func (r *Repo) Save(ctx context.Context, cfg domain.AppConfig) (*domain.AppConfig, error) {
	sql, args, err := postgres.Builder().Update(table).
		Set("latest_version", cfg.LatestVersion).
		Set("force_update", cfg.ForceUpdate).
		Set("maintenance", cfg.Maintenance).
		Set("maintenance_message", cfg.MaintenanceMessage).
		Set("update_description", cfg.UpdateDescription).
		Set("update_links", cfg.UpdateLinks).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", rowID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build app_config update: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "app_config", rowID)
	}
	return dst.toDomain(), nil
}
