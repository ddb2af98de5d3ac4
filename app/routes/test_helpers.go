package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"
	"time"

	"microblog/app/config"
	"microblog/app/repositories"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		DBDriver:    "sqlite3",
		DBDSN:       ":memory:",
		JWTSecret:   testSecret,
		TokenTTL:    time.Hour,
		CORSOrigins: []string{"*"},
	}
}

// setupTestRouter builds the full application router over an in-memory
// sqlite database.
func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	cfg := testConfig()
	db, err := repositories.Open(cfg.DBDriver, cfg.DBDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.SetMaxOpenConns(1)
	require.NoError(t, repositories.EnsureSchema(db, cfg.DBDriver))

	logger := log.New(io.Discard, "", 0)
	return SetupRoutes(db, cfg, logger)
}

// doJSON performs a request against the router with an optional JSON
// body and bearer token.
func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser registers a user and returns the issued access token.
func registerUser(t *testing.T, router *mux.Router, name, email, password string) string {
	t.Helper()

	w := doJSON(t, router, "POST", "/register/", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var res struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, "bearer", res.TokenType)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}
