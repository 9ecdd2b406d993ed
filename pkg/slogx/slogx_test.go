package slogx

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func newCapturedLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestHTTPMiddleware_EchoesRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := HTTPMiddleware(newCapturedLogger(&buf, slog.LevelInfo))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/pets", nil))

	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "path=/v1/pets")
}

func TestHTTPMiddleware_HonoursUpstreamRequestID(t *testing.T) {
	var buf bytes.Buffer
	mw := HTTPMiddleware(newCapturedLogger(&buf, slog.LevelInfo))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/v1/pets/01X", nil)
	req.Header.Set("X-Request-ID", "upstream-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "upstream-42", rr.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "req_id=upstream-42")
	assert.Contains(t, buf.String(), "status=204")
}

func TestHTTPMiddleware_ProbeTrafficIsDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := HTTPMiddleware(newCapturedLogger(&buf, slog.LevelInfo))

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Empty(t, buf.String(), "probe request should not log at info")

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Empty(t, buf.String())
}
