// Package license implements the License repository using PostgreSQL.
package license

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

const table = "licenses"

var columns = []string{"id", "key", "device_id", "credit", "active", "created_at", "updated_at"}

// Repo provides license persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new license repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Key       string    `db:"key"`
	DeviceID  *string   `db:"device_id"`
	Credit    int64     `db:"credit"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.License {
	return &domain.License{
		ID:        r.ID,
		Key:       r.Key,
		DeviceID:  r.DeviceID,
		Credit:    r.Credit,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a license by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.License, error) {
	return r.getOne(ctx, "id = ?", id, false)
}

// GetByIDForUpdate returns a license by id and locks the row until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.License, error) {
	return r.getOne(ctx, "id = ?", id, true)
}

// GetByKey returns a license by its key.
func (r *Repo) GetByKey(ctx context.Context, key string) (*domain.License, error) {
	return r.getOne(ctx, "key = ?", key, false)
}

// GetByKeyForUpdate returns a license by key and locks the row until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByKeyForUpdate(ctx context.Context, key string) (*domain.License, error) {
	return r.getOne(ctx, "key = ?", key, true)
}

func (r *Repo) getOne(ctx context.Context, pred string, id any, forUpdate bool) (*domain.License, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(pred, id)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build license query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "license", id)
	}
	return dst.toDomain(), nil
}

// List returns licenses matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.LicenseFilter) ([]domain.License, error) {
	query := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.Query != "" {
		like := postgres.LikePattern(filter.Query)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"key": like},
			squirrel.ILike{"device_id": like},
		})
	}
	if filter.MinCredit != nil {
		query = query.Where(squirrel.GtOrEq{"credit": *filter.MinCredit})
	}
	if filter.MaxCredit != nil {
		query = query.Where(squirrel.LtOrEq{"credit": *filter.MaxCredit})
	}
	if filter.Active != nil {
		query = query.Where(squirrel.Eq{"active": *filter.Active})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.Lt{"created_at": *filter.To})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build license list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}

	out := make([]domain.License, len(rows))
	for i, rw := range rows {
		out[i] = *rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new license. ID is generated when zero.
func (r *Repo) Create(ctx context.Context, lic *domain.License) (*domain.License, error) {
	id := lic.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder().Insert(table).
		Columns("id", "key", "device_id", "credit", "active").
		Values(id, lic.Key, nullable(lic.DeviceID), lic.Credit, lic.Active).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.returning(ctx, query, lic.Key)
}

// Update applies a partial edit. An empty DeviceID clears the binding.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.LicenseUpdate) (*domain.License, error) {
	query := postgres.Builder().Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if upd.Key != nil {
		query = query.Set("key", *upd.Key)
	}
	if upd.DeviceID != nil {
		query = query.Set("device_id", nullable(upd.DeviceID))
	}
	if upd.Credit != nil {
		query = query.Set("credit", *upd.Credit)
	}
	if upd.Active != nil {
		query = query.Set("active", *upd.Active)
	}

	return r.returning(ctx, query, id)
}

// BindDevice sets the device binding and refreshes updated_at.
func (r *Repo) BindDevice(ctx context.Context, id uuid.UUID, deviceID string) (*domain.License, error) {
	return r.Update(ctx, id, domain.LicenseUpdate{DeviceID: &deviceID})
}

// Touch refreshes updated_at only.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID) (*domain.License, error) {
	return r.Update(ctx, id, domain.LicenseUpdate{})
}

// SetCredit stores a new credit balance.
func (r *Repo) SetCredit(ctx context.Context, id uuid.UUID, credit int64) (*domain.License, error) {
	return r.Update(ctx, id, domain.LicenseUpdate{Credit: &credit})
}

// SetActive stores the active flag.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.License, error) {
	return r.Update(ctx, id, domain.LicenseUpdate{Active: &active})
}

// Delete removes a license. Audit rows keep their key snapshot.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where("id = ?", id).ToSql()
	if err != nil {
		return fmt.Errorf("build license delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "license", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("license %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func (r *Repo) returning(ctx context.Context, query sqlizer, id any) (*domain.License, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build license write: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "license", id)
	}
	return dst.toDomain(), nil
}

// nullable maps nil and "" to SQL NULL.
func nullable(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
