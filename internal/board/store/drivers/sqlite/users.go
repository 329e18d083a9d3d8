package sqlite

import (
	"context"
	"database/sql"

	"github.com/askboard/askboard/internal/board/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `username, password_hash, roles, otp, otp_consumed, created_at, updated_at`

func (r *usersRepo) scanUser(row *sql.Row) (domain.User, error) {
	var (
		u     domain.User
		roles string
		otp   sql.NullString
	)
	err := row.Scan(&u.Username, &u.PasswordHash, &roles, &otp, &u.OTPConsumed, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Roles = domain.ParseRoleSet(roles)
	u.OTP = mapNullStringPtr(otp)
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return r.scanUser(row)
}

func (r *usersRepo) UserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, roles) VALUES (?, ?, ?)`,
		u.Username, u.PasswordHash, u.Roles.String())
	return mapConstraint(err)
}

func (r *usersRepo) UpdateUserRoles(ctx context.Context, username string, roles domain.RoleSet) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET roles = ?, updated_at = CURRENT_TIMESTAMP WHERE username = ?`,
		roles.String(), username)
	return affectedOrNotFound(res, err)
}

func (r *usersRepo) DeleteUser(ctx context.Context, username string) error {
	// Deliberately no affected-row check; deleting a missing user is a no-op.
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	return err
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT username, roles FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UserSummary
	for rows.Next() {
		var (
			s     domain.UserSummary
			roles string
		)
		if err := rows.Scan(&s.Username, &roles); err != nil {
			return nil, err
		}
		s.Roles = domain.ParseRoleSet(roles)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *usersRepo) SetUserOTP(ctx context.Context, username, code string) error {
	// The partial unique index on outstanding codes surfaces a collision
	// with another user's unconsumed OTP as ErrAlreadyExists.
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET otp = ?, otp_consumed = 0, updated_at = CURRENT_TIMESTAMP WHERE username = ?`,
		code, username)
	if err != nil {
		return mapConstraint(err)
	}
	return affectedOrNotFound(res, nil)
}

func (r *usersRepo) GetUserByOTP(ctx context.Context, code string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE otp = ? AND otp_consumed = 0`, code)
	return r.scanUser(row)
}

func (r *usersRepo) RedeemUserOTP(ctx context.Context, code string) error {
	// Single conditional update: concurrent redeemers of the same code
	// cannot both see otp_consumed = 0.
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET otp = NULL, otp_consumed = 1, updated_at = CURRENT_TIMESTAMP
		 WHERE otp = ? AND otp_consumed = 0`, code)
	return affectedOrNotFound(res, err)
}

func (r *usersRepo) CountUsersWithRole(ctx context.Context, role string) (int64, error) {
	// Pad both sides with the separator for an exact set-membership match;
	// a plain LIKE '%Admin%' would also match longer role names.
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE instr(',' || roles || ',', ',' || ? || ',') > 0`,
		role).Scan(&count)
	return count, err
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
