package http

import (
	"net/http"
	"time"

	"github.com/petpalhq/petpal/internal/medical/store"
	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
)

// ReadyzHandler reports whether the service can serve traffic.
func ReadyzHandler(serviceName string, startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, petpalsdk.HealthResponse{
			Status:  status,
			Service: serviceName,
			Version: version,
			Uptime:  time.Since(startTime).String(),
		})
	}
}
