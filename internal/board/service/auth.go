package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/askboard/askboard/internal/board/domain"
	"github.com/askboard/askboard/internal/board/store"
	"github.com/askboard/askboard/pkg/cryptox"
	"github.com/askboard/askboard/pkg/slogx"
)

// AuthService is the composition root for the two entry points: logging in
// and invitation-gated registration, plus first-run bootstrap.
type AuthService struct {
	Credentials *CredentialService
	Invites     *InviteService
	OTP         *OTPService
}

// Register redeems the invitation code and only then creates the account.
// A failed redemption returns ErrInviteInvalid without touching the user
// table. If the code redeems but user creation then fails (duplicate
// username), the code stays consumed — the storage contract offers no
// cross-table transaction here, and handing a failed registrant a still-live
// code is the worse trade. Callers should check Exists before burning a code.
func (s *AuthService) Register(
	ctx context.Context,
	inviteCode string,
	username string,
	password string,
	roles domain.RoleSet,
) (domain.User, error) {
	if err := s.Invites.Redeem(ctx, inviteCode); err != nil {
		return domain.User{}, err
	}
	return s.Credentials.Register(ctx, username, password, roles)
}

// Login verifies the credential triple. When the match came via the
// outstanding one-time password, the confirming redemption must also
// succeed within the same logical operation; if another redeemer got there
// first the login fails, leaving the code spent exactly once.
func (s *AuthService) Login(
	ctx context.Context,
	username string,
	secret string,
	role string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	ok, viaOTP, err := s.Credentials.VerifyLogin(ctx, username, secret, role)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		log.Warn("login rejected", slog.String("username", username))
		return domain.User{}, ErrLoginFailed
	}

	if viaOTP {
		if err := s.OTP.Redeem(ctx, secret); err != nil {
			if errors.Is(err, ErrOTPInvalid) {
				// Verification and redemption disagreed; treat as a
				// failed login rather than trusting the stale read.
				log.Warn("one-time password login lost redemption race",
					slog.String("username", username),
				)
				return domain.User{}, ErrLoginFailed
			}
			return domain.User{}, err
		}
	}

	user, err := s.Credentials.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, err
	}

	log.Info("login succeeded",
		slog.String("username", username),
		slog.String("role", role),
		slog.Bool("via_otp", viaOTP),
	)
	return user, nil
}

// Bootstrap creates the very first account, an administrator, without an
// invitation code. It only works while the user table is empty; the check
// and the insert share a transaction so two racing bootstraps cannot both
// win.
func (s *AuthService) Bootstrap(
	ctx context.Context,
	username string,
	password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if username == "" || password == "" {
		return domain.User{}, ErrInvalidRequest
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		Username:     username,
		PasswordHash: passwordHash,
		Roles:        domain.NewRoleSet(domain.RoleAdmin),
		OTPConsumed:  true,
	}

	err = s.Credentials.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrAlreadyBootstrapped
		}
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyBootstrapped) {
			log.Error("bootstrap failed", slog.Any("error", err))
		}
		return domain.User{}, err
	}

	log.Info("bootstrap administrator created", slog.String("username", username))
	return user, nil
}
