package http

import (
	"net/http"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP verifies a username/secret/role triple. The secret may be the
// account password or an outstanding one-time password; either way a
// success consumes nothing visible to the caller beyond the OTP itself.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 1. Parse form-encoded credentials
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed form body")
		return
	}

	username := r.PostFormValue("username")
	secret := r.PostFormValue("password")
	role := r.PostFormValue("role")

	if username == "" || secret == "" || role == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
			"username, password and role are required")
		return
	}

	// 2. Verify, redeeming the OTP when that is what matched
	user, err := h.AuthService.Login(ctx, username, secret, role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, UserResponse{
		Username: user.Username,
		Roles:    user.Roles.Names(),
	})
}
