package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/askboard/askboard/internal/board/domain"
	"github.com/askboard/askboard/internal/board/store"
	"github.com/askboard/askboard/pkg/slogx"
)

// RolesService maintains each user's role set and enforces two removal
// invariants: a user always keeps at least one role, and the last
// administrator can never be demoted. Role mutations read-modify-write the
// whole set, so they run inside a transaction to serialize concurrent
// changes to the same user.
type RolesService struct {
	Store store.Store
}

// HasRole reports whether the user holds the role. Unknown users are
// folded into false, matching the boolean contract of lookups.
func (s *RolesService) HasRole(ctx context.Context, username, role string) (bool, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Roles.Has(role), nil
}

// AddRole grants a role. Granting one the user already holds is a no-op,
// never a duplicate entry.
func (s *RolesService) AddRole(ctx context.Context, username, role string) error {
	log := slogx.FromContext(ctx)

	if username == "" || role == "" {
		return ErrInvalidRequest
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if user.Roles.Has(role) {
			return nil
		}

		user.Roles.Add(role)
		return tx.Users().UpdateUserRoles(ctx, username, user.Roles)
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Error("failed to add role",
				slog.String("username", username),
				slog.String("role", role),
				slog.Any("error", err),
			)
		}
		return err
	}

	log.Info("role added",
		slog.String("username", username),
		slog.String("role", role),
	)
	return nil
}

// RemoveRole revokes a role, refusing any removal that would leave the
// user roleless or vacate the administrator role entirely. On refusal the
// role set is left exactly as it was.
func (s *RolesService) RemoveRole(ctx context.Context, username, role string) error {
	log := slogx.FromContext(ctx)

	if username == "" || role == "" {
		return ErrInvalidRequest
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if !user.Roles.Has(role) {
			return ErrRoleNotAssigned
		}

		// 1. A user never ends up roleless.
		if user.Roles.Len() == 1 {
			return ErrLastRole
		}

		// 2. The administrator role is never fully vacated. The count
		// runs inside the same transaction as the write.
		if role == domain.RoleAdmin {
			admins, err := tx.Users().CountUsersWithRole(ctx, domain.RoleAdmin)
			if err != nil {
				return err
			}
			if admins == 1 {
				return ErrLastAdmin
			}
		}

		user.Roles.Remove(role)
		return tx.Users().UpdateUserRoles(ctx, username, user.Roles)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvariantViolation):
			log.Warn("role removal refused",
				slog.String("username", username),
				slog.String("role", role),
				slog.Any("reason", err),
			)
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrRoleNotAssigned):
			// expected rejections
		default:
			log.Error("failed to remove role",
				slog.String("username", username),
				slog.String("role", role),
				slog.Any("error", err),
			)
		}
		return err
	}

	log.Info("role removed",
		slog.String("username", username),
		slog.String("role", role),
	)
	return nil
}

// IsLastAdmin reports whether username is the single remaining holder of
// the administrator role.
func (s *RolesService) IsLastAdmin(ctx context.Context, username string) (bool, error) {
	admins, err := s.Store.Users().CountUsersWithRole(ctx, domain.RoleAdmin)
	if err != nil {
		return false, err
	}
	if admins != 1 {
		return false, nil
	}
	return s.HasRole(ctx, username, domain.RoleAdmin)
}
