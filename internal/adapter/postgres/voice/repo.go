// Package voice implements the voice catalog repository using PostgreSQL.
package voice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

const table = "voices"

var columns = []string{"id", "name", "voice_id", "active", "created_at"}

// Repo provides voice persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new voice repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	VoiceID   string    `db:"voice_id"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Voice {
	return domain.Voice{
		ID:        r.ID,
		Name:      r.Name,
		VoiceID:   r.VoiceID,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
}

// ListActive returns active voices ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Voice, error) {
	return r.list(ctx, postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC", "id ASC"))
}

// List returns all voices, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Voice, error) {
	return r.list(ctx, postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC"))
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Voice, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build voice list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}

	out := make([]domain.Voice, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ExistingVoiceIDs returns the subset of voiceIDs already stored.
func (r *Repo) ExistingVoiceIDs(ctx context.Context, voiceIDs []string) (map[string]bool, error) {
	found := make(map[string]bool, len(voiceIDs))
	if len(voiceIDs) == 0 {
		return found, nil
	}

	sql, args, err := postgres.Builder().Select("voice_id").From(table).
		Where("voice_id = ANY(?)", voiceIDs).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build voice lookup: %w", err)
	}

	var ids []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, fmt.Errorf("lookup voice ids: %w", err)
	}
	for _, id := range ids {
		found[id] = true
	}
	return found, nil
}

// Create inserts a voice.
func (r *Repo) Create(ctx context.Context, v domain.Voice) (*domain.Voice, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	query := postgres.Builder().Insert(table).
		Columns("id", "name", "voice_id", "active").
		Values(v.ID, v.Name, v.VoiceID, v.Active).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.queryOne(ctx, query, v.VoiceID)
}

// Update applies a partial edit. Nil arguments are left untouched.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, voiceID *string, active *bool) (*domain.Voice, error) {
	if name == nil && voiceID == nil && active == nil {
		return r.GetByID(ctx, id)
	}

	query := postgres.Builder().Update(table).
		Where("id = ?", id).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if name != nil {
		query = query.Set("name", *name)
	}
	if voiceID != nil {
		query = query.Set("voice_id", *voiceID)
	}
	if active != nil {
		query = query.Set("active", *active)
	}

	return r.queryOne(ctx, query, id)
}

// GetByID returns a voice by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voice, error) {
	return r.queryOne(ctx, postgres.Builder().Select(columns...).From(table).Where("id = ?", id), id)
}

// Delete removes a voice by id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build voice delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "voice", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("voice %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (r *Repo) queryOne(ctx context.Context, query sqlizer, id any) (*domain.Voice, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build voice query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "voice", id)
	}
	v := dst.toDomain()
	return &v, nil
}
