package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GLATools_Go/internal/testing/leaktest"
)

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		connected  func() bool
		wantCode   int
		wantStatus string
	}{
		{"connected", func() bool { return true }, http.StatusOK, "healthy"},
		{"disconnected", func() bool { return false }, http.StatusServiceUnavailable, "degraded"},
		{"no probe", nil, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordCommand()
			srv := NewHTTPServer(0, tt.connected)

			rec := httptest.NewRecorder()
			srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var status HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.wantCode == http.StatusOK, status.Connected)
			assert.Positive(t, status.CommandsReceived)
			assert.False(t, status.LastCommandTime.IsZero())
		})
	}
}

func TestHTTPServer_Routes(t *testing.T) {
	srv := NewHTTPServer(0, func() bool { return true })

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTPServer_StartStop(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		srv := NewHTTPServer(0, func() bool { return true })

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		time.Sleep(20 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, srv.Stop(ctx))

		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("health server did not stop")
		}
	})
}
