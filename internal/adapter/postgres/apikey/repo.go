// Package apikey implements the upstream API key pool repository using PostgreSQL.
package apikey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

const table = "api_keys"

var columns = []string{"id", "api_key", "status", "created_at"}

// Repo provides API key persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new API key repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	APIKey    string    `db:"api_key"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.APIKey {
	return domain.APIKey{
		ID:        r.ID,
		Key:       r.APIKey,
		Status:    domain.APIKeyStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// FirstActive returns the oldest active key. Ties on created_at are broken
// by id so the choice is deterministic.
func (r *Repo) FirstActive(ctx context.Context) (*domain.APIKey, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"status": string(domain.APIKeyStatusActive)}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build api_key query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		err = postgres.MapError(err, "api_key", "active")
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoActiveKeys
		}
		return nil, err
	}
	k := dst.toDomain()
	return &k, nil
}

// GetByID returns a key by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	query := postgres.Builder().Select(columns...).From(table).Where("id = ?", id)
	return r.queryOne(ctx, query, id)
}

// SetStatusByKey changes the status of the credential with the given value.
func (r *Repo) SetStatusByKey(ctx context.Context, apiKey string, status domain.APIKeyStatus) error {
	sql, args, err := postgres.Builder().Update(table).
		Set("status", string(status)).
		Where(squirrel.Eq{"api_key": apiKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build api_key update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "api_key", mask(apiKey))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("api_key %s: %w", mask(apiKey), domain.ErrNotFound)
	}
	return nil
}

// List returns all keys, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.APIKey, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build api_key list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list api_keys: %w", err)
	}

	out := make([]domain.APIKey, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create inserts a new key.
func (r *Repo) Create(ctx context.Context, k domain.APIKey) (*domain.APIKey, error) {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}

	query := postgres.Builder().Insert(table).
		Columns("id", "api_key", "status").
		Values(k.ID, k.Key, string(k.Status)).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.queryOne(ctx, query, mask(k.Key))
}

// Update changes the key value and/or status. Nil arguments are left untouched.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, apiKey *string, status *domain.APIKeyStatus) (*domain.APIKey, error) {
	if apiKey == nil && status == nil {
		return r.GetByID(ctx, id)
	}

	query := postgres.Builder().Update(table).
		Where("id = ?", id).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if apiKey != nil {
		query = query.Set("api_key", *apiKey)
	}
	if status != nil {
		query = query.Set("status", string(*status))
	}

	return r.queryOne(ctx, query, id)
}

// Delete removes a key by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build api_key delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "api_key", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("api_key %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (r *Repo) queryOne(ctx context.Context, query sqlizer, id any) (*domain.APIKey, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build api_key query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "api_key", id)
	}
	k := dst.toDomain()
	return &k, nil
}

// mask keeps secrets out of error messages and logs.
func mask(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
