package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/auth"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/database"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/storage"
)

const testSessionSecret = "test-secret"

type testEnv struct {
	router   *chi.Mux
	database database.Database
	store    *storage.DiskStore
}

// newTestEnv builds the full router over an in-memory sqlite database and a
// disk store rooted in a temp dir. extra overrides or adds config entries.
func newTestEnv(t *testing.T, extra map[string]string) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// an in-memory sqlite database exists per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	d := database.New(db)

	store, err := storage.NewDiskStore(t.TempDir(), "http://test.local")
	require.NoError(t, err)

	cfg := map[string]string{
		"SESSION_SECRET":             testSessionSecret,
		"LEAD_RATE_LIMIT_PER_MINUTE": "1000",
	}
	for k, v := range extra {
		cfg[k] = v
	}

	return testEnv{
		router:   newRouter(d, store, withConfig(cfg)),
		database: d,
		store:    store,
	}
}

// seedAdmin creates an admin account and returns a valid session token for it.
func seedAdmin(t *testing.T, d database.Database, email, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	admin := &models.AdminUser{Email: email, PasswordHash: hash}
	require.NoError(t, d.AdminUserRepo().Add(admin))

	token, err := auth.IssueToken(testSessionSecret, auth.Session{AdminID: admin.ID, Email: admin.Email}, time.Hour)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with a JSON body against the router. token, when
// non-empty, is sent as a bearer token.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}
