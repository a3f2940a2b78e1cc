package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug, // Must be Debug to log headers
	}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, opts)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})

	handler := loggingMiddleware(next)

	req := httptest.NewRequest("GET", "/api/v1/recipes", nil)
	req.Header.Set("Cookie", "session=abc123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	logOutput := buf.String()

	if !strings.Contains(logOutput, "Request headers") {
		t.Fatalf("Log output missing headers log: %s", logOutput)
	}

	if strings.Contains(logOutput, "session=abc123") {
		t.Errorf("SECURITY FAIL: Log output contains Cookie value: %s", logOutput)
	}

	if strings.Contains(logOutput, "Bearer mytoken") {
		t.Errorf("SECURITY FAIL: Log output contains Authorization value: %s", logOutput)
	}

	if !strings.Contains(logOutput, "TestAgent") {
		t.Errorf("Log output missing non-sensitive header: %s", logOutput)
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var seen string
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/tables", nil))

		seen = rec.Header().Get(HeaderRequestID)
		if seen == "" {
			t.Fatal("expected a generated request ID")
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/tables", nil)
		req.Header.Set(HeaderRequestID, "upstream-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get(HeaderRequestID); got != "upstream-id" {
			t.Errorf("expected upstream-id, got %q", got)
		}
	})

	t.Run("quiet paths are skipped", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

		if got := rec.Header().Get(HeaderRequestID); got != "" {
			t.Errorf("expected no request ID on /healthz, got %q", got)
		}
	})
}
