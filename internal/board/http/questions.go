package http

import (
	"encoding/json"
	"net/http"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
)

type QuestionsHandler struct {
	ForumService *service.ForumService
}

type questionRequest struct {
	Content string `json:"content"`
}

func (h *QuestionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	q, err := h.ForumService.AskQuestion(ctx, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, QuestionResponse{
		ID:      q.ID,
		Content: q.Content,
	})
}

func (h *QuestionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	questions, err := h.ForumService.ListQuestions(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = QuestionResponse{ID: q.ID, Content: q.Content}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *QuestionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, err := h.ForumService.GetQuestion(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, QuestionResponse{
		ID:      q.ID,
		Content: q.Content,
	})
}

func (h *QuestionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if err := h.ForumService.EditQuestion(ctx, r.PathValue("id"), req.Content); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a question and, through the schema's cascade, every
// answer attached to it.
func (h *QuestionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.ForumService.DeleteQuestion(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
