//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/amulet-backend/internal/adapter/cache"
	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres"
	apikeyrepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/apikey"
	appconfigrepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/appconfig"
	auditrepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/audit"
	licenserepo "github.com/heartmarshall/amulet-backend/internal/adapter/postgres/license"
	"github.com/heartmarshall/amulet-backend/internal/adapter/postgres/testhelper"
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

const (
	adminUser = "admin"
	adminPass = "e2e-secret"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	store := cache.NewMemory()

	cfg := &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 1 << 20},
		Admin:  config.AdminConfig{User: adminUser, Password: adminPass, Realm: "Amulet Admin"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}

	licenses := licenserepo.New(pool)
	apiKeys := apikeyrepo.New(pool)
	voices := voicerepo.New(pool)
	configs := appconfigrepo.New(pool)
	audit := auditrepo.New(pool)

	ledgerSvc := ledger.NewService(logger, licenses, audit, txm)
	licenseSvc := license.NewService(logger, licenses, audit, txm)
	keySvc := keypool.NewService(logger, apiKeys)
	catalogSvc := catalog.NewService(logger, voices, store, time.Minute, txm)
	configSvc := appconfig.NewService(logger, configs, store, time.Minute)
	auditSvc := auditlog.NewService(logger, audit)
	backupSvc := backup.NewService(logger, licenses, apiKeys, voices, configSvc, audit)

	client := rest.NewClientHandler(ledgerSvc, keySvc, catalogSvc, configSvc, logger)
	admin := rest.NewAdminHandler(rest.AdminServices{
		Licenses: licenseSvc,
		Credit:   ledgerSvc,
		APIKeys:  keySvc,
		Voices:   catalogSvc,
		Audit:    auditSvc,
		Config:   configSvc,
		Backup:   backupSvc,
	}, cfg.Server.MaxUploadBytes, logger)
	health := rest.NewHealthHandler(pool, store, "e2e")

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(rest.NewRouter(cfg, client, admin, health, limiter, logger))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a JSON request and decodes the JSON response into a map.
// admin selects Basic credentials for the admin API.
func (ts *testServer) do(t *testing.T, method, path string, body any, admin bool) (int, map[string]any) {
	t.Helper()
	status, raw := ts.doRaw(t, method, path, body, admin)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}

// doList is do for endpoints returning a JSON array.
func (ts *testServer) doList(t *testing.T, path string) []map[string]any {
	t.Helper()
	status, raw := ts.doRaw(t, http.MethodGet, path, nil, true)
	require.Equal(t, http.StatusOK, status, "body: %s", raw)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func (ts *testServer) doRaw(t *testing.T, method, path string, body any, admin bool) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.SetBasicAuth(adminUser, adminPass)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// num reads a JSON number field as int64.
func num(t *testing.T, m map[string]any, key string) int64 {
	t.Helper()
	v, ok := m[key].(float64)
	require.True(t, ok, "expected number at %q in %v", key, m)
	return int64(v)
}
