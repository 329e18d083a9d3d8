package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/askboard/askboard/internal/board/store"
	"github.com/askboard/askboard/pkg/cryptox"
	"github.com/askboard/askboard/pkg/slogx"
)

const (
	// DefaultOTPLength matches the reference's 8-character codes.
	DefaultOTPLength = 8

	// issueAttempts bounds regeneration when a fresh code collides with
	// another user's outstanding one.
	issueAttempts = 5
)

// OTPService issues and redeems single-use one-time passwords. An OTP is
// two fields on the user record, not its own entity: only one may be
// outstanding per user, and issuing a new one discards the old without
// redemption. Per-user state machine: no-OTP -> outstanding -> redeemed.
type OTPService struct {
	Store store.Store

	CodeLength int // zero means DefaultOTPLength
}

func (s *OTPService) codeLength() int {
	if s.CodeLength > 0 {
		return s.CodeLength
	}
	return DefaultOTPLength
}

// Issue stores a fresh one-time password on the user row, replacing any
// outstanding one. Unknown usernames fail with ErrUserNotFound rather than
// silently succeeding — callers handing out codes need to know nobody will
// ever be able to redeem them. A generated code that collides with another
// user's outstanding code is regenerated, so a given OTP value identifies
// at most one user.
func (s *OTPService) Issue(ctx context.Context, username string) (string, error) {
	log := slogx.FromContext(ctx)

	if username == "" {
		return "", ErrInvalidRequest
	}

	for range issueAttempts {
		code, err := cryptox.GenerateCode(s.codeLength())
		if err != nil {
			log.Error("failed to generate one-time password", slog.Any("error", err))
			return "", err
		}

		err = s.Store.Users().SetUserOTP(ctx, username, code)
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			// Another user holds this exact code unconsumed.
			log.Debug("one-time password collision, regenerating")
			continue
		case errors.Is(err, store.ErrNotFound):
			log.Warn("one-time password requested for unknown user",
				slog.String("username", username),
			)
			return "", ErrUserNotFound
		case err != nil:
			log.Error("failed to store one-time password", slog.Any("error", err))
			return "", err
		}

		log.Info("one-time password issued", slog.String("username", username))
		return code, nil
	}

	return "", fmt.Errorf(
		"could not issue a unique one-time password in %d attempts", issueAttempts,
	)
}

// Redeem consumes the outstanding one-time password equal to code: the
// holder's OTP column is cleared and marked consumed in one conditional
// update, so a code redeems at most once even under concurrent attempts.
// ErrOTPInvalid when no unconsumed code matched; nothing is mutated then.
func (s *OTPService) Redeem(ctx context.Context, code string) error {
	log := slogx.FromContext(ctx)

	if code == "" {
		return ErrOTPInvalid
	}

	err := s.Store.Users().RedeemUserOTP(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("one-time password redemption rejected")
		return ErrOTPInvalid
	}
	if err != nil {
		log.Error("failed to redeem one-time password", slog.Any("error", err))
		return err
	}

	log.Info("one-time password redeemed")
	return nil
}
