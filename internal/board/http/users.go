package http

import (
	"net/http"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
	"github.com/askboard/askboard/pkg/slogx"
)

type UsersHandler struct {
	CredentialService *service.CredentialService
}

// HandleList returns every account with its roles.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.CredentialService.List(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	users := make([]UserResponse, len(summaries))
	for i, s := range summaries {
		users[i] = UserResponse{
			Username: s.Username,
			Roles:    s.Roles.Names(),
		}
	}

	httpx.WriteJSON(w, http.StatusOK, users)
}

// HandleDelete removes an account. Deleting an unknown username is not an
// error; the end state is the same either way.
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PathValue("username")
	if username == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "username is required")
		return
	}

	if err := h.CredentialService.Delete(ctx, username); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Info("user deleted", "username", username)
	w.WriteHeader(http.StatusNoContent)
}
