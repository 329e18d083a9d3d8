package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/askboard/askboard/internal/board/domain"
	"github.com/askboard/askboard/internal/board/store"
	"github.com/askboard/askboard/pkg/cryptox"
	"github.com/askboard/askboard/pkg/slogx"
)

const (
	// DefaultInviteTTL is how long a freshly minted code stays redeemable.
	DefaultInviteTTL = 5 * time.Minute

	// DefaultInviteCodeLength doubles the historical 4-character floor.
	DefaultInviteCodeLength = 8

	// mintAttempts bounds collision retries against the code primary key.
	mintAttempts = 5
)

// InviteService issues and redeems the single-use invitation codes that
// gate registration. Codes transition issued -> redeemed or issued ->
// expired, both terminal; spent codes are never deleted.
type InviteService struct {
	Store store.Store

	TTL        time.Duration // zero means DefaultInviteTTL
	CodeLength int           // zero means DefaultInviteCodeLength
}

func (s *InviteService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultInviteTTL
}

func (s *InviteService) codeLength() int {
	if s.CodeLength > 0 {
		return s.CodeLength
	}
	return DefaultInviteCodeLength
}

// Mint generates a new invitation code valid from now until now+TTL.
// A collision with an existing code regenerates rather than fails.
func (s *InviteService) Mint(ctx context.Context) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	for range mintAttempts {
		code, err := cryptox.GenerateCode(s.codeLength())
		if err != nil {
			log.Error("failed to generate invitation code", slog.Any("error", err))
			return domain.Invite{}, err
		}

		now := time.Now().UTC()
		inv := domain.Invite{
			Code:      code,
			Used:      false,
			StartTime: now,
			ExpiresAt: now.Add(s.ttl()),
		}

		err = s.Store.Invites().CreateInvite(ctx, inv)
		if errors.Is(err, store.ErrAlreadyExists) {
			// Code already in the table (spent or live); try another.
			log.Debug("invitation code collision, regenerating")
			continue
		}
		if err != nil {
			log.Error("failed to store invitation code", slog.Any("error", err))
			return domain.Invite{}, err
		}

		log.Info("invitation code minted", slog.Time("expires_at", inv.ExpiresAt))
		return inv, nil
	}

	return domain.Invite{}, fmt.Errorf(
		"could not mint a unique invitation code in %d attempts; widen the code length",
		mintAttempts,
	)
}

// Redeem consumes a code. The unused-and-unexpired check and the used flag
// flip happen in one conditional update, so concurrent redemptions of the
// same code yield exactly one success. On failure the code is untouched.
func (s *InviteService) Redeem(ctx context.Context, code string) error {
	log := slogx.FromContext(ctx)

	if code == "" {
		return ErrInviteInvalid
	}

	err := s.Store.Invites().RedeemInvite(ctx, code, time.Now().UTC())
	if errors.Is(err, store.ErrNotFound) {
		// Unknown, expired, or already used; callers learn no more than that.
		log.Warn("invitation code redemption rejected")
		return ErrInviteInvalid
	}
	if err != nil {
		log.Error("failed to redeem invitation code", slog.Any("error", err))
		return err
	}

	log.Info("invitation code redeemed")
	return nil
}
