package service

import (
	"context"
	"testing"

	"github.com/askboard/askboard/internal/board/domain"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	st := newTestStore(t)
	return &AuthService{
		Credentials: &CredentialService{Store: st},
		Invites:     &InviteService{Store: st},
		OTP:         &OTPService{Store: st},
	}
}

func TestAuthRegisterWithInvite(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	inv, err := svc.Invites.Mint(ctx)
	require.NoError(t, err)

	user, err := svc.Register(ctx, inv.Code, "alice", "pw", domain.NewRoleSet(domain.RoleStudent))
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	// The invitation is spent; a second registration cannot ride it.
	_, err = svc.Register(ctx, inv.Code, "bob", "pw", domain.NewRoleSet(domain.RoleStudent))
	require.ErrorIs(t, err, ErrInviteInvalid)

	// And bob was never created.
	exists, err := svc.Credentials.Exists(ctx, "bob")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestAuthRegisterBadInviteLeavesNoUser(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "BOGUS123", "alice", "pw", domain.NewRoleSet(domain.RoleStudent))
	require.ErrorIs(t, err, ErrInviteInvalid)

	exists, err := svc.Credentials.Exists(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestAuthLoginWithPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	registerUser(t, ctx, svc.Credentials, "alice", "correct-horse", domain.RoleAdmin)

	t.Run("valid triple", func(t *testing.T) {
		user, err := svc.Login(ctx, "alice", "correct-horse", domain.RoleAdmin)
		require.NoError(t, err)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong", domain.RoleAdmin)
		require.ErrorIs(t, err, ErrLoginFailed)
	})

	t.Run("wrong role", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "correct-horse", domain.RoleStudent)
		require.ErrorIs(t, err, ErrLoginFailed)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "mallory", "correct-horse", domain.RoleAdmin)
		require.ErrorIs(t, err, ErrLoginFailed)
	})
}

func TestAuthLoginWithOTP(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	registerUser(t, ctx, svc.Credentials, "alice", "forgotten-pw", domain.RoleStudent)

	code, err := svc.OTP.Issue(ctx, "alice")
	require.NoError(t, err)

	// First login through the one-time password succeeds and consumes it.
	user, err := svc.Login(ctx, "alice", code, domain.RoleStudent)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.False(t, user.HasActiveOTP())

	// The code is gone; replaying it is just a bad password now.
	_, err = svc.Login(ctx, "alice", code, domain.RoleStudent)
	require.ErrorIs(t, err, ErrLoginFailed)

	// The real password still works throughout.
	_, err = svc.Login(ctx, "alice", "forgotten-pw", domain.RoleStudent)
	require.NoError(t, err)
}

func TestAuthLoginOTPIsNotAWildcard(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	registerUser(t, ctx, svc.Credentials, "alice", "real-pw", domain.RoleStudent)

	_, err := svc.OTP.Issue(ctx, "alice")
	require.NoError(t, err)

	// An outstanding one-time password must not loosen the password
	// check: an arbitrary wrong secret still fails.
	_, err = svc.Login(ctx, "alice", "not-the-otp", domain.RoleStudent)
	require.ErrorIs(t, err, ErrLoginFailed)
}

func TestAuthBootstrap(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	t.Run("first account becomes admin", func(t *testing.T) {
		user, err := svc.Bootstrap(ctx, "root", "pw")
		require.NoError(t, err)
		require.True(t, user.Roles.Has(domain.RoleAdmin))

		_, err = svc.Login(ctx, "root", "pw", domain.RoleAdmin)
		require.NoError(t, err)
	})

	t.Run("second bootstrap refused", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "other", "pw")
		require.ErrorIs(t, err, ErrAlreadyBootstrapped)
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "", "pw")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

// End to end: bootstrap an admin, mint an invitation, register a student
// through it, recover their account with a one-time password, then promote
// and clean up.
func TestAuthFullLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{
		Credentials: &CredentialService{Store: st},
		Invites:     &InviteService{Store: st},
		OTP:         &OTPService{Store: st},
	}
	roles := &RolesService{Store: st}

	// Admin sets the system up.
	_, err := svc.Bootstrap(ctx, "admin", "admin-pw")
	require.NoError(t, err)

	// Admin invites a student.
	inv, err := svc.Invites.Mint(ctx)
	require.NoError(t, err)
	_, err = svc.Register(ctx, inv.Code, "student", "student-pw", domain.NewRoleSet(domain.RoleStudent))
	require.NoError(t, err)

	// Student forgets their password; admin issues a one-time password.
	code, err := svc.OTP.Issue(ctx, "student")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "student", code, domain.RoleStudent)
	require.NoError(t, err)

	// Promote the student, then step the original admin down. The admin
	// needs a second role first or the demotion would leave them roleless.
	require.NoError(t, roles.AddRole(ctx, "student", domain.RoleAdmin))
	require.NoError(t, roles.AddRole(ctx, "admin", domain.RoleStudent))
	require.NoError(t, roles.RemoveRole(ctx, "admin", domain.RoleAdmin))

	// The promoted student is now the locked-in final admin.
	require.ErrorIs(t, roles.RemoveRole(ctx, "student", domain.RoleAdmin), ErrLastAdmin)
}
