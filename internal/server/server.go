package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/format"
	"github.com/osse101/GLATools_Go/internal/handler"
	"github.com/osse101/GLATools_Go/internal/logger"
	"github.com/osse101/GLATools_Go/internal/metrics"
)

// Options configures a Server
type Options struct {
	Port           int
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration
	// Store gates /readyz; nil means the service runs without preference storage
	Store     handler.Pinger
	Formatter *format.Formatter
}

type Server struct {
	httpServer *http.Server
	service    calculator.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc calculator.Service) *Server {
	if opts.RateLimit <= 0 {
		opts.RateLimit = DefaultRateLimit
	}
	if opts.RateWindow <= 0 {
		opts.RateWindow = DefaultRateWindow
	}
	if opts.Formatter == nil {
		opts.Formatter = format.New(format.DefaultLocale)
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, NewRateLimiter(opts.RateLimit, opts.RateWindow)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Store))
	r.Get("/version", handler.HandleVersion(svc.Tables(context.Background()).Version))
	r.Handle("/metrics", promhttp.Handler())

	f := opts.Formatter
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/experience", func(r chi.Router) {
			r.Post("/", handler.HandleExperience(svc, f))
			r.Post("/potions", handler.HandlePotions(svc))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleGetRecipes(svc))
			r.Post("/calculate", handler.HandleCalculateRecipe(svc, f))
		})

		r.Route("/crystals", func(r chi.Router) {
			r.Post("/plan", handler.HandleCrystalPlan(svc, f))
			r.Get("/expected", handler.HandleExpectedCrystals(svc))
			r.Get("/transfer", handler.HandleTransferCost(svc))
			r.Post("/simulate", handler.HandleSimulate(svc, f))
		})

		r.Get("/tables", handler.HandleGetTables(svc))

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", handler.HandleGetPreferences(svc))
			r.Put("/", handler.HandleSavePreferences(svc))
			r.Put("/tab", handler.HandleSetActiveTab(svc))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		service: svc,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honor an upstream request ID so logs can be joined across hops
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
