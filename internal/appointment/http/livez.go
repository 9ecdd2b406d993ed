package http

import (
	"net/http"
	"time"

	"github.com/petpalhq/petpal/pkg/httpx"
	"github.com/petpalhq/petpal/pkg/petpalsdk"
)

// LivezHandler reports that the process is up. It always returns 200.
func LivezHandler(serviceName string, startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, petpalsdk.HealthResponse{
			Status:  "ok",
			Service: serviceName,
			Version: version,
			Uptime:  time.Since(startTime).String(),
		})
	}
}
