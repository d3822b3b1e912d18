package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/amulet-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLicense inserts an active, unbound license with the given credit.
func SeedLicense(t *testing.T, pool *pgxpool.Pool, credit int64) domain.License {
	t.Helper()
	return SeedLicenseWith(t, pool, domain.License{Credit: credit, Active: true})
}

// SeedLicenseWith inserts lic, filling ID, Key and timestamps when empty.
func SeedLicenseWith(t *testing.T, pool *pgxpool.Pool, lic domain.License) domain.License {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if lic.ID == uuid.Nil {
		lic.ID = uuid.New()
	}
	if lic.Key == "" {
		lic.Key = "LIC-" + uniqueSuffix()
	}
	lic.CreatedAt, lic.UpdatedAt = now, now

	_, err := pool.Exec(ctx,
		`INSERT INTO licenses (id, key, device_id, credit, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		lic.ID, lic.Key, lic.DeviceID, lic.Credit, lic.Active, lic.CreatedAt, lic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLicense insert: %v", err)
	}

	return lic
}

// SeedAPIKey inserts an upstream credential with the given status and creation time.
func SeedAPIKey(t *testing.T, pool *pgxpool.Pool, status domain.APIKeyStatus, createdAt time.Time) domain.APIKey {
	t.Helper()

	key := domain.APIKey{
		ID:        uuid.New(),
		Key:       "sk-" + uniqueSuffix(),
		Status:    status,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO api_keys (id, api_key, status, created_at) VALUES ($1, $2, $3, $4)`,
		key.ID, key.Key, string(key.Status), key.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAPIKey insert: %v", err)
	}

	return key
}

// SeedVoice inserts an active voice option.
func SeedVoice(t *testing.T, pool *pgxpool.Pool, name string) domain.Voice {
	t.Helper()

	v := domain.Voice{
		ID:        uuid.New(),
		Name:      name,
		VoiceID:   "voice-" + uniqueSuffix(),
		Active:    true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO voices (id, name, voice_id, active, created_at) VALUES ($1, $2, $3, $4, $5)`,
		v.ID, v.Name, v.VoiceID, v.Active, v.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVoice insert: %v", err)
	}

	return v
}

// CountAudit returns the number of audit rows written for a license.
func CountAudit(t *testing.T, pool *pgxpool.Pool, licenseID uuid.UUID, action domain.AuditAction) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM audit_log WHERE license_id = $1 AND action = $2`,
		licenseID, string(action),
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAudit: %v", err)
	}
	return n
}
