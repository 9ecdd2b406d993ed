package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/petpalhq/petpal/pkg/idx"
)

// HTTPMiddleware assigns each request an ID, places a request-scoped logger
// in the context, and writes a completion line once the handler returns.
// The request ID is echoed back in the X-Request-ID response header so
// callers can quote it when reporting a problem. Probe traffic on /livez
// and /readyz is logged at debug so scrapes do not drown the owner-facing
// activity.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}
			w.Header().Set("X-Request-ID", reqID)

			logger := base.With(
				slog.String("req_id", reqID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
			)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(WithContext(r.Context(), logger)))

			level := slog.LevelInfo
			if isProbePath(r.URL.Path) {
				level = slog.LevelDebug
			}
			logger.Log(r.Context(), level, "http_request",
				slog.Int("status", rec.Status()),
				slog.Int("bytes", rec.bytes),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("user_agent", r.UserAgent()),
			)
		})
	}
}

func isProbePath(path string) bool {
	return path == "/livez" || path == "/readyz"
}

// statusRecorder captures the response status and body size for the
// completion line.
type statusRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(p []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(p)
	sr.bytes += n
	return n, err
}

// Status defaults to 200 when the handler never called WriteHeader.
func (sr *statusRecorder) Status() int {
	if sr.status == 0 {
		return http.StatusOK
	}
	return sr.status
}
