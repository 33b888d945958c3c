package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/finance-be/internal/config"
	"github.com/hongminglow/finance-be/internal/receipts"
	"github.com/hongminglow/finance-be/internal/storage/sqlite"
)

func newTestServer(t *testing.T, origins ...string) (*httptest.Server, string) {
	t.Helper()
	store, err := sqlite.NewStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(store.Close)

	dir := t.TempDir()
	uploads, err := receipts.NewStore(dir)
	require.NoError(t, err)

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg := config.Config{
		Port:        "0",
		DBDriver:    config.DriverSQLite,
		JWTSecret:   "test-secret",
		JWTIssuer:   "test",
		JWTTTL:      time.Hour,
		CORSOrigins: origins,
		CoinAPIURL:  "http://127.0.0.1:0",
		UploadPath:  dir,
		MaxUploadMB: 1,
	}
	ts := httptest.NewServer(New(cfg, store, uploads).Handler())
	t.Cleanup(ts.Close)
	return ts, dir
}

func get(t *testing.T, url string, header http.Header) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHealthUnderAPIPrefix(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"healthy"`)

	resp, _ = get(t, ts.URL+"/health", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProtectedRouteNeedsToken(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/assets", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"authentication required"}`, body)
}

func TestUploadsServedByExactName(t *testing.T) {
	ts, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1700000000000-receipt.png"), []byte("png-bytes"), 0o644))

	resp, body := get(t, ts.URL+"/uploads/1700000000000-receipt.png", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png-bytes", body)

	resp, body = get(t, ts.URL+"/uploads/", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, strings.Contains(body, "receipt.png"))

	resp, _ = get(t, ts.URL+"/uploads/missing.png", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := newTestServer(t, "https://app.example.com")

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/assets", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

	resp, _ = get(t, ts.URL+"/api/health", http.Header{"Origin": {"https://evil.example.com"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
