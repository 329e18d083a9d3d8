package http

import (
	"encoding/json"
	"net/http"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
)

type AnswersHandler struct {
	ForumService *service.ForumService
}

type answerRequest struct {
	Content string `json:"content"`
}

func (h *AnswersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	a, err := h.ForumService.PostAnswer(ctx, r.PathValue("id"), req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Content:    a.Content,
	})
}

func (h *AnswersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	answers, err := h.ForumService.ListAnswers(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]AnswerResponse, len(answers))
	for i, a := range answers {
		out[i] = AnswerResponse{ID: a.ID, QuestionID: a.QuestionID, Content: a.Content}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *AnswersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if err := h.ForumService.EditAnswer(ctx, r.PathValue("id"), req.Content); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AnswersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.ForumService.DeleteAnswer(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
