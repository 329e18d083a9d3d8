package http

import (
	"net/http"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
	"github.com/askboard/askboard/pkg/slogx"
)

type BootstrapHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP creates the first admin account. It only works while the user
// table is empty; once any account exists the endpoint answers with a
// conflict and never again mutates anything.
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// 1. Parse form-encoded admin credentials
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if username == "" || password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
			"username and password are required")
		return
	}

	// 2. Perform first-run setup
	user, err := h.AuthService.Bootstrap(ctx, username, password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("system bootstrapped", "admin", user.Username)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, UserResponse{
		Username: user.Username,
		Roles:    user.Roles.Names(),
	})
}
