package http

import (
	"net/http"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
	"github.com/askboard/askboard/pkg/slogx"
)

type InviteMintHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP mints a fresh single-use invitation code. This is an admin
// operation; the code and its expiry are returned once and never again.
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	invite, err := h.InviteService.Mint(ctx)
	if err != nil {
		log.Error("failed to mint invitation code", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, InviteResponse{
		Code:      invite.Code,
		ExpiresAt: invite.ExpiresAt,
	})
}
