// Package audit implements the credit audit log repository using PostgreSQL.
// It provides append-only operations; rows are never updated or deleted.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/amulet-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "license_id", "license_key", "action", "char_count", "delta", "details", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	LicenseID  *uuid.UUID `db:"license_id"`
	LicenseKey string     `db:"license_key"`
	Action     string     `db:"action"`
	CharCount  int64      `db:"char_count"`
	Delta      int64      `db:"delta"`
	Details    string     `db:"details"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.AuditEntry {
	return domain.AuditEntry{
		ID:         r.ID,
		LicenseID:  r.LicenseID,
		LicenseKey: r.LicenseKey,
		Action:     domain.AuditAction(r.Action),
		CharCount:  r.CharCount,
		Delta:      r.Delta,
		Details:    r.Details,
		CreatedAt:  r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an entry. Called inside the transaction that mutates credit so
// both commit or neither does. A zero ID or CreatedAt is filled in.
func (r *Repo) Log(ctx context.Context, e domain.AuditEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	sql, args, err := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(e.ID, e.LicenseID, e.LicenseKey, string(e.Action), e.CharCount, e.Delta, e.Details, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_entry", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Query returns entries matching filter, newest first. Limit <= 0 means no limit.
func (r *Repo) Query(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	query := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC")

	if f.Query != "" {
		like := postgres.LikePattern(f.Query)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"details": like},
			squirrel.ILike{"license_key": like},
		})
	}
	if f.LicenseID != nil {
		query = query.Where("license_id = ?", *f.LicenseID)
	}
	if f.Action != nil {
		query = query.Where(squirrel.Eq{"action": string(*f.Action)})
	}
	if f.MinChars != nil {
		query = query.Where(squirrel.GtOrEq{"char_count": *f.MinChars})
	}
	if f.MaxChars != nil {
		query = query.Where(squirrel.LtOrEq{"char_count": *f.MaxChars})
	}
	if f.From != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		query = query.Where(squirrel.Lt{"created_at": *f.To})
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("query audit_log: %w", err)
	}

	out := make([]domain.AuditEntry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ListAll returns every entry, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.AuditEntry, error) {
	return r.Query(ctx, domain.AuditFilter{})
}
