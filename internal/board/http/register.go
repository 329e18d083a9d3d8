package http

import (
	"net/http"

	"github.com/askboard/askboard/internal/board/domain"
	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP creates an account behind an invitation code. The code is
// redeemed first; a bad code never leaks whether the username was free.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// 1. Parse form-encoded registration details
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	inviteCode := r.PostFormValue("invite_code")

	if username == "" || password == "" || inviteCode == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
			"username, password and invite_code are required")
		return
	}

	// Self-service registration always produces a student account. Extra
	// roles are granted afterwards by an admin through the roles endpoint.
	roles := domain.NewRoleSet(domain.RoleStudent)

	// 2. Redeem the invitation and create the account
	user, err := h.AuthService.Register(ctx, inviteCode, username, password, roles)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, UserResponse{
		Username: user.Username,
		Roles:    user.Roles.Names(),
	})
}
