package http

import (
	"net/http"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
	"github.com/askboard/askboard/pkg/slogx"
)

type OTPIssueHandler struct {
	OTPService *service.OTPService
}

// ServeHTTP issues a one-time password for the named user. Issuing again
// before the previous code is used replaces it; the old code dies with the
// overwrite.
func (h *OTPIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PathValue("username")
	if username == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "username is required")
		return
	}

	code, err := h.OTPService.Issue(ctx, username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("one-time password issued", "username", username)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, OTPResponse{
		Username: username,
		OTP:      code,
	})
}
