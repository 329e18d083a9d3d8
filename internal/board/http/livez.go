package http

import (
	"net/http"
	"time"

	"github.com/askboard/askboard/pkg/httpx"
)

// LivezHandler is the liveness probe. It answers 200 whenever the process
// is up, with uptime and build version for operators.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
