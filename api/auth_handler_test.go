package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourdigitalstory0-sys/liferepublic-backend/auth"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t, nil)
	seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	resp := doJSON(t, env.router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "sup3r-secret",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Token string `json:"token"`
		Email string `json:"email"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "admin@example.com", body.Email)
	require.NotEmpty(t, body.Token)

	// the returned token opens the admin surface
	session := doJSON(t, env.router, http.MethodGet, "/auth/session", body.Token, nil)
	require.Equal(t, http.StatusOK, session.Code)
	assert.Contains(t, session.Body.String(), "admin@example.com")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t, nil)
	seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	wrongPassword := doJSON(t, env.router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

	unknownAccount := doJSON(t, env.router, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, unknownAccount.Code)

	// both failures read the same so probes can't enumerate accounts
	assert.Equal(t, wrongPassword.Body.String(), unknownAccount.Body.String())

	empty := doJSON(t, env.router, http.MethodPost, "/auth/login", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, empty.Code)
}

func TestAdminRoutesRejectInvalidSessions(t *testing.T) {
	env := newTestEnv(t, nil)

	noToken := doJSON(t, env.router, http.MethodGet, "/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noToken.Code)

	garbage := doJSON(t, env.router, http.MethodGet, "/auth/session", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, garbage.Code)

	wrongSecret, err := auth.IssueToken("other-secret", auth.Session{AdminID: 1, Email: "a@b.c"}, time.Hour)
	require.NoError(t, err)
	forged := doJSON(t, env.router, http.MethodGet, "/auth/session", wrongSecret, nil)
	assert.Equal(t, http.StatusUnauthorized, forged.Code)

	expired, err := auth.IssueToken(testSessionSecret, auth.Session{AdminID: 1, Email: "a@b.c"}, -time.Minute)
	require.NoError(t, err)
	stale := doJSON(t, env.router, http.MethodGet, "/auth/session", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, stale.Code)

	// a non-bearer scheme is treated the same as no token
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t, nil)
	token := seedAdmin(t, env.database, "admin@example.com", "sup3r-secret")

	resp := doJSON(t, env.router, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	anonymous := doJSON(t, env.router, http.MethodPost, "/auth/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
}
