package sqlite

import (
	"context"
	"time"

	"github.com/askboard/askboard/internal/board/domain"
)

type invitesRepo struct {
	db dbtx
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitation_codes (code, is_used, start_time, expires_at) VALUES (?, 0, ?, ?)`,
		inv.Code, inv.StartTime.UTC(), inv.ExpiresAt.UTC())
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByCode(ctx context.Context, code string) (domain.Invite, error) {
	var inv domain.Invite
	err := r.db.QueryRowContext(ctx,
		`SELECT code, is_used, start_time, expires_at FROM invitation_codes WHERE code = ?`,
		code).Scan(&inv.Code, &inv.Used, &inv.StartTime, &inv.ExpiresAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) RedeemInvite(ctx context.Context, code string, now time.Time) error {
	// The unused-and-unexpired check and the flag flip are one statement,
	// so at most one of any set of concurrent redeemers succeeds.
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitation_codes SET is_used = 1 WHERE code = ? AND is_used = 0 AND expires_at > ?`,
		code, now.UTC())
	return affectedOrNotFound(res, err)
}
