package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().UnixNano())
}

func lastCommandTime() time.Time {
	n := lastCommandUnix.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// HTTPServer exposes the bot's health and metrics
type HTTPServer struct {
	server    *http.Server
	connected func() bool
}

// NewHTTPServer creates the health server; connected reports the gateway state
func NewHTTPServer(port int, connected func() bool) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		connected: connected,
	}

	mux.HandleFunc("GET /healthz", srv.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return srv
}

// Start serves until Stop is called
func (s *HTTPServer) Start() error {
	slog.Info("Starting Discord health server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("discord health server failed: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// HandleHealth returns the bot's health status
func (s *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := s.connected != nil && s.connected()

	status := "healthy"
	code := http.StatusOK
	if !connected {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	health := HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  lastCommandTime(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Debug("Failed to write health response", "error", err)
	}
}
