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

// CredentialService owns the user records: registration, login
// verification, role lookup, deletion, and enumeration.
type CredentialService struct {
	Store store.Store
}

// Exists reports whether a username is taken. No side effects.
func (s *CredentialService) Exists(ctx context.Context, username string) (bool, error) {
	return s.Store.Users().UserExists(ctx, username)
}

// Register creates a new account with exactly the supplied roles, no
// outstanding one-time password, and an argon2id-hashed password.
func (s *CredentialService) Register(
	ctx context.Context,
	username string,
	password string,
	roles domain.RoleSet,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input. Every user carries at least one role from birth.
	if username == "" || password == "" || roles.IsEmpty() {
		log.Warn("registration missing required fields")
		return domain.User{}, ErrInvalidRequest
	}

	// 2. Hash the password using Argon2id.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Insert; the uniqueness constraint on username is the conflict check.
	user := domain.User{
		Username:     username,
		PasswordHash: passwordHash,
		Roles:        roles,
		OTPConsumed:  true, // no active OTP
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration attempted with already-taken username",
				slog.String("username", username),
			)
			return domain.User{}, ErrUsernameTaken
		}
		log.Error("failed to create user",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("username", username),
		slog.String("roles", user.Roles.String()),
	)
	return user, nil
}

// VerifyLogin checks a credential triple without mutating anything. It
// succeeds when a record matches username and role AND either the password
// verifies or the presented secret equals the record's outstanding one-time
// password; viaOTP distinguishes the latter so the caller can run the
// confirming redemption. "Not found" is folded into a false result, never
// an error; storage failures are returned as errors so the caller can tell
// an outage from a bad password.
func (s *CredentialService) VerifyLogin(
	ctx context.Context,
	username string,
	secret string,
	role string,
) (ok bool, viaOTP bool, err error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, false, nil
		}
		log.Error("failed to fetch user for login", slog.Any("error", err))
		return false, false, err
	}

	if !user.Roles.Has(role) {
		return false, false, nil
	}

	if err := cryptox.VerifyPassword(secret, user.PasswordHash); err == nil {
		return true, false, nil
	}

	// Alternate path: the secret is the outstanding one-time password.
	if user.HasActiveOTP() && *user.OTP == secret {
		return true, true, nil
	}

	return false, false, nil
}

// GetRoles returns the user's role set, or ErrUserNotFound.
func (s *CredentialService) GetRoles(ctx context.Context, username string) (domain.RoleSet, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RoleSet{}, ErrUserNotFound
		}
		return domain.RoleSet{}, err
	}
	return user.Roles, nil
}

// Delete removes an account. Deleting a missing user is a no-op.
func (s *CredentialService) Delete(ctx context.Context, username string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().DeleteUser(ctx, username); err != nil {
		log.Error("failed to delete user",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("user deleted", slog.String("username", username))
	return nil
}

// List returns one row per user: username plus its stored role set.
func (s *CredentialService) List(ctx context.Context) ([]domain.UserSummary, error) {
	return s.Store.Users().ListUsers(ctx)
}
