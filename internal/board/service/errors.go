package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest reports missing or malformed input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUsernameTaken reports a registration conflict on username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound reports an operation against an unknown username,
	// in contexts where the caller needs to know (vs. a boolean false).
	ErrUserNotFound = errors.New("user not found")

	// ErrInviteInvalid covers missing, expired, and already-used
	// invitation codes; callers are told no more than that.
	ErrInviteInvalid = errors.New("invitation code invalid, expired, or already used")

	// ErrOTPInvalid reports a one-time password that matched no
	// outstanding code.
	ErrOTPInvalid = errors.New("one-time password invalid or already used")

	// ErrLoginFailed reports a rejected login. Deliberately does not say
	// which of username, secret, or role was wrong.
	ErrLoginFailed = errors.New("invalid username, password, or role")

	// ErrRoleNotAssigned reports removal of a role the user does not hold.
	ErrRoleNotAssigned = errors.New("role not assigned to user")

	// ErrAlreadyBootstrapped reports a bootstrap attempt on a non-empty store.
	ErrAlreadyBootstrapped = errors.New("an account already exists")

	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
)

// ErrInvariantViolation is the common base for role mutations that would
// break a structural rule; match with errors.Is.
var ErrInvariantViolation = errors.New("invariant violation")

var (
	// ErrLastAdmin guards the rule that the administrator role is never
	// fully vacated by a role removal.
	ErrLastAdmin = fmt.Errorf("%w: cannot remove the last administrator", ErrInvariantViolation)

	// ErrLastRole guards the rule that every user holds at least one role.
	ErrLastRole = fmt.Errorf("%w: cannot remove a user's only role", ErrInvariantViolation)
)
