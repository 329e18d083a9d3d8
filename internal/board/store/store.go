package store

import (
	"context"
	"errors"
	"time"

	"github.com/askboard/askboard/internal/board/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a Tx entry point for multi-step operations that must be
// atomic.
type Store interface {
	Users() Users
	Invites() Invites
	Questions() Questions
	Answers() Answers

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying connection.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUsername returns the full record, OTP fields included.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UserExists reports whether a username is taken. No side effects.
	UserExists(ctx context.Context, username string) (bool, error)

	// CreateUser inserts a new user. The username uniqueness constraint
	// surfaces as ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserRoles writes back the full role set for a user.
	// Returns ErrNotFound if the user does not exist.
	UpdateUserRoles(ctx context.Context, username string, roles domain.RoleSet) error

	// DeleteUser removes a user. Missing users are a no-op, not an error.
	DeleteUser(ctx context.Context, username string) error

	// ListUsers returns one row per stored user: username plus role set.
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)

	// SetUserOTP stores a fresh one-time password on the user row,
	// overwriting any outstanding one and marking it unconsumed.
	// Returns ErrNotFound if the user does not exist.
	SetUserOTP(ctx context.Context, username, code string) error

	// GetUserByOTP returns the user currently holding code as an
	// unconsumed one-time password, or ErrNotFound.
	GetUserByOTP(ctx context.Context, code string) (domain.User, error)

	// RedeemUserOTP consumes an outstanding one-time password in a single
	// conditional update: the OTP column is cleared and marked consumed
	// only if code is currently unconsumed. Returns ErrNotFound when
	// nothing matched, so concurrent redeemers get at most one success.
	RedeemUserOTP(ctx context.Context, code string) error

	// CountUsersWithRole counts users whose role set contains role.
	CountUsersWithRole(ctx context.Context, role string) (int64, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Invites interface {
	// CreateInvite writes a new invitation code. Code collisions surface
	// as ErrAlreadyExists (the code is the primary key).
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetInviteByCode returns a code regardless of state, for inspection.
	GetInviteByCode(ctx context.Context, code string) (domain.Invite, error)

	// RedeemInvite marks a code used in a single conditional update: the
	// flag flips only if the code is unused and unexpired at now. Returns
	// ErrNotFound when nothing matched; the code is left exactly as it
	// was. There is no delete path — spent codes remain as an audit trail.
	RedeemInvite(ctx context.Context, code string, now time.Time) error
}

type Questions interface {
	CreateQuestion(ctx context.Context, q domain.Question) error
	GetQuestionByID(ctx context.Context, id string) (domain.Question, error)
	ListQuestions(ctx context.Context) ([]domain.Question, error)
	UpdateQuestionContent(ctx context.Context, id, content string) error
	// DeleteQuestion cascades to answers (per schema).
	DeleteQuestion(ctx context.Context, id string) error
}

type Answers interface {
	CreateAnswer(ctx context.Context, a domain.Answer) error
	GetAnswerByID(ctx context.Context, id string) (domain.Answer, error)
	ListAnswersByQuestion(ctx context.Context, questionID string) ([]domain.Answer, error)
	UpdateAnswerContent(ctx context.Context, id, content string) error
	DeleteAnswer(ctx context.Context, id string) error
}
