package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/askboard/askboard/internal/board/service"
	"github.com/askboard/askboard/pkg/httpx"
)

type UserResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type InviteResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type OTPResponse struct {
	Username string `json:"username"`
	OTP      string `json:"otp"`
}

type QuestionResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type AnswerResponse struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Content    string `json:"content"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// writeServiceError translates the service error taxonomy into HTTP
// responses. Anything unrecognized is a storage failure and must not be
// reported as a client mistake.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, service.ErrLoginFailed), errors.Is(err, service.ErrOTPInvalid):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_login", err.Error())
	case errors.Is(err, service.ErrInviteInvalid):
		httpx.WriteError(w, http.StatusForbidden, "invalid_invitation", err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRoleNotAssigned),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrAnswerNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadyBootstrapped):
		httpx.WriteError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, service.ErrInvariantViolation):
		httpx.WriteError(w, http.StatusConflict, "invariant_violation", err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "storage_error",
			"the request could not be completed")
	}
}
