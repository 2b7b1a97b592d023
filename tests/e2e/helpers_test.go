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

	pgaudit "github.com/heartmarshall/readinglist-backend/internal/adapter/postgres/audit"
	pgentry "github.com/heartmarshall/readinglist-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/readinglist-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/readinglist-backend/internal/service/audit"
	"github.com/heartmarshall/readinglist-backend/internal/service/readinglist"
	"github.com/heartmarshall/readinglist-backend/internal/transport/middleware"
	"github.com/heartmarshall/readinglist-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

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

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	// 3. Repositories.
	entryRepo := pgentry.New(pool)
	auditSink := pgaudit.New(pool)

	// 4. Services.
	svc := readinglist.NewService(logger, entryRepo)
	auditLog := audit.NewLogger(logger, auditSink)

	// 5. Rate limiter with headroom; the 429 path is covered at router level.
	limiter := middleware.NewRateLimiter(10000, time.Minute)
	t.Cleanup(limiter.Stop)

	// 6. Router.
	handler := rest.NewRouter(
		rest.NewEntryHandler(svc, auditLog, logger),
		rest.NewHealthHandler(),
		limiter,
		65536,
		logger,
	)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// doRequest sends a request with an optional JSON body and returns the
// response with its body fully read.
func (ts *testServer) doRequest(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp, raw
}

// decodeObject decodes raw JSON into a map, failing the test on error.
func decodeObject(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode object from %q: %v", raw, err)
	}
	return m
}

// decodeArray decodes raw JSON into a slice of objects.
func decodeArray(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode array from %q: %v", raw, err)
	}
	return items
}

// createEntry creates an entry over HTTP and returns the decoded response.
func (ts *testServer) createEntry(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	resp, raw := ts.doRequest(t, http.MethodPost, "/entries", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create entry: expected 201, got %d (%s)", resp.StatusCode, raw)
	}
	return decodeObject(t, raw)
}
