package http

import (
	"net/http"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
	"github.com/askboard/askboard/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleAdd grants a role to the named user. Granting a role the user
// already holds succeeds without change.
func (h *RolesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PathValue("username")
	if username == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "username is required")
		return
	}

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Malformed form body")
		return
	}
	role := r.PostFormValue("role")
	if role == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "role is required")
		return
	}

	if err := h.RolesService.AddRole(ctx, username, role); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("role granted", "username", username, "role", role)
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove revokes a role. The service refuses to strip a user's last
// role or to demote the final admin; both surface as conflicts.
func (h *RolesHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PathValue("username")
	role := r.PathValue("role")
	if username == "" || role == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
			"username and role are required")
		return
	}

	if err := h.RolesService.RemoveRole(ctx, username, role); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("role revoked", "username", username, "role", role)
	w.WriteHeader(http.StatusNoContent)
}
