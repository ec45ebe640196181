package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/kane/portfolio-api/pkg/logger"
	"github.com/kane/portfolio-api/pkg/metrics"
)

// correlationHeader carries the per-request trace token.
const correlationHeader = "x-correlation-id"

type contextKey string

const correlationKey contextKey = "correlation_id"

// allowedPostOrigins lists the paths that accept cross-origin POSTs
// regardless of the general CORS policy.
var allowedPostOrigins = map[string]bool{
	"/v1/contact/message": true,
	"/v1/chat/ask":        true,
	"/v1/mcp/execute":     true,
}

// openPaths are reachable without the API key.
var openPaths = map[string]bool{
	"/healthz":      true,
	"/metrics":      true,
	"/api-docs":     true,
	"/openapi.yaml": true,
}

// CorrelationID returns the request's correlation id, or "" outside a request.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey).(string)
	return id
}

// correlationMiddleware propagates the inbound correlation header or mints a
// fresh uuid, and echoes it on the response.
func correlationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(correlationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(correlationHeader, id)
		ctx := context.WithValue(r.Context(), correlationKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware emits one structured record per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		if s.log != nil {
			s.log.Info(r.Context(), "request",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", wrapped.statusCode),
				logger.Duration("duration", time.Since(start)),
				logger.String("correlation_id", CorrelationID(r.Context())),
			)
		}
	})
}

// rateLimitMiddleware rejects requests over the per-address minute budget.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := clientAddr(r)
		allowed, retryAfter := s.limiter.Allow(r.Context(), addr)
		if !allowed {
			metrics.RecordRateLimitHit()
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeError(w, r, http.StatusTooManyRequests, CodeRateLimit, "Rate limit exceeded. Try again shortly.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authMiddleware enforces the x-api-key shared secret on everything except
// the open paths and preflight requests.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if openPaths[r.URL.Path] || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if key := r.Header.Get("x-api-key"); key == "" || key != s.apiKey {
			metrics.RecordAuthFailure()
			writeError(w, r, http.StatusUnauthorized, CodeAuth, "Invalid or missing API key.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// postCORSMiddleware applies the general CORS policy and restricts
// cross-origin POSTs to the explicit allow-list.
func (s *Server) postCORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin(origin))
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "*")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Method == http.MethodPost && origin != "" && !allowedPostOrigins[r.URL.Path] {
			writeError(w, r, http.StatusMethodNotAllowed, CodeBadRequest, "Cross-origin POST not permitted for this endpoint.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// corsOrigin echoes origin when it is allow-listed, else the first
// configured origin. An empty or wildcard configuration allows any origin.
func (s *Server) corsOrigin(origin string) string {
	if len(s.origins) == 0 {
		return "*"
	}
	for _, o := range s.origins {
		if o == "*" || o == origin {
			return origin
		}
	}
	return s.origins[0]
}

// recoveryMiddleware converts panics into ERR_INTERNAL responses without
// leaking internal detail. The correlation id survives on the response.
func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if s.log != nil {
					s.log.Error(r.Context(), "handler panic",
						logger.Any("panic", rec),
						logger.String("path", r.URL.Path),
					)
				}
				writeError(w, r, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// clientAddr extracts the client address without the port.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// MetricsMiddleware wraps HTTP handlers to record Prometheus metrics.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		durationMs := float64(time.Since(start).Milliseconds())
		status := strconv.Itoa(wrapped.statusCode)
		metrics.RecordHTTPRequest(endpoint, r.Method, status)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, status, durationMs)

		if wrapped.statusCode >= http.StatusBadRequest {
			errorType := errorTypeFor(wrapped.statusCode)
			metrics.RecordErrorByEndpoint(endpoint, r.Method, errorType)
			metrics.RecordErrorByType(errorType, severityFor(wrapped.statusCode))
		}
	}
}

// errorTypeFor returns a standardized error type for an HTTP status code.
func errorTypeFor(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status == http.StatusTooManyRequests:
		return "rate_limit"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return "auth"
	default:
		return "client_error"
	}
}

// severityFor returns error severity for an HTTP status code.
func severityFor(status int) string {
	if status >= http.StatusInternalServerError {
		return "high"
	}
	return "medium"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	if err != nil {
		return n, fmt.Errorf("failed to write response: %w", err)
	}
	return n, nil
}
