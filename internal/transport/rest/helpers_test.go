package rest

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/amulet-backend/internal/config"
	"github.com/heartmarshall/amulet-backend/internal/transport/middleware"
)

//go:generate moq -out ledger_service_mock_test.go -pkg rest . ledgerService
//go:generate moq -out key_pool_mock_test.go -pkg rest . keyPool
//go:generate moq -out active_voice_lister_mock_test.go -pkg rest . activeVoiceLister
//go:generate moq -out config_reader_mock_test.go -pkg rest . configReader
//go:generate moq -out license_admin_mock_test.go -pkg rest . licenseAdmin
//go:generate moq -out credit_adjuster_mock_test.go -pkg rest . creditAdjuster
//go:generate moq -out api_key_admin_mock_test.go -pkg rest . apiKeyAdmin
//go:generate moq -out voice_admin_mock_test.go -pkg rest . voiceAdmin
//go:generate moq -out audit_querier_mock_test.go -pkg rest . auditQuerier
//go:generate moq -out config_admin_mock_test.go -pkg rest . configAdmin
//go:generate moq -out backup_exporter_mock_test.go -pkg rest . backupExporter

const (
	testAdminUser = "admin"
	testAdminPass = "s3cret"
)

func testConfig() *config.Config {
	return &config.Config{
		Admin: config.AdminConfig{User: testAdminUser, Password: testAdminPass, Realm: "test"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}
}

// clientMocks bundles the dependencies of ClientHandler.
type clientMocks struct {
	ledger *ledgerServiceMock
	keys   *keyPoolMock
	voices *activeVoiceListerMock
	config *configReaderMock
}

func newClientMocks() *clientMocks {
	return &clientMocks{
		ledger: &ledgerServiceMock{},
		keys:   &keyPoolMock{},
		voices: &activeVoiceListerMock{},
		config: &configReaderMock{},
	}
}

// adminMocks bundles the dependencies of AdminHandler.
type adminMocks struct {
	licenses *licenseAdminMock
	credit   *creditAdjusterMock
	apiKeys  *apiKeyAdminMock
	voices   *voiceAdminMock
	audit    *auditQuerierMock
	config   *configAdminMock
	backup   *backupExporterMock
}

func newAdminMocks() *adminMocks {
	return &adminMocks{
		licenses: &licenseAdminMock{},
		credit:   &creditAdjusterMock{},
		apiKeys:  &apiKeyAdminMock{},
		voices:   &voiceAdminMock{},
		audit:    &auditQuerierMock{},
		config:   &configAdminMock{},
		backup:   &backupExporterMock{},
	}
}

// newTestRouter wires the full router around the given mocks.
func newTestRouter(t *testing.T, c *clientMocks, a *adminMocks) http.Handler {
	t.Helper()
	if c == nil {
		c = newClientMocks()
	}
	if a == nil {
		a = newAdminMocks()
	}

	logger := slog.New(slog.DiscardHandler)
	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	client := NewClientHandler(c.ledger, c.keys, c.voices, c.config, logger)
	admin := NewAdminHandler(AdminServices{
		Licenses: a.licenses,
		Credit:   a.credit,
		APIKeys:  a.apiKeys,
		Voices:   a.voices,
		Audit:    a.audit,
		Config:   a.config,
		Backup:   a.backup,
	}, 1<<20, logger)
	health := NewHealthHandler(&pingerMock{}, nil, "test")

	return NewRouter(testConfig(), client, admin, health, limiter, logger)
}

// do sends a request with an optional JSON body and returns the recorder.
func do(t *testing.T, h http.Handler, method, path string, body any, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.SetBasicAuth(testAdminUser, testAdminPass)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m), "body: %s", rec.Body.String())
	return m
}

func slogDiscard() *slog.Logger { return slog.New(slog.DiscardHandler) }
