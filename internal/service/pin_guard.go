package service

import (
	"context"
	"fmt"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Attempt limiter scopes.
const (
	scopePin = "pin"
	scopeOtp = "otp"
)

// pinGuard checks PINs in a fixed order: format, attempt budget, hash.
// A failing format never spends an attempt.
type pinGuard struct {
	hash    ports.HashService
	limiter ports.AttemptLimiter
	log     zerolog.Logger
}

func newPinGuard(hash ports.HashService, limiter ports.AttemptLimiter, log zerolog.Logger) pinGuard {
	return pinGuard{hash: hash, limiter: limiter, log: log}
}

// allow spends one attempt of scope. A limiter outage lets the attempt through.
func (g pinGuard) allow(ctx context.Context, scope string, merchantID uuid.UUID) error {
	if g.limiter == nil {
		return nil
	}
	ok, err := g.limiter.Allow(ctx, scope, merchantID)
	if err != nil {
		g.log.Warn().Err(err).Str("scope", scope).Msg("attempt limiter unavailable, allowing attempt (degraded mode)")
		return nil
	}
	if !ok {
		return apperror.ErrTooManyAttempts()
	}
	return nil
}

// verify runs the full PIN check against the account's stored hash.
func (g pinGuard) verify(ctx context.Context, account *domain.MerchantAccount, pin string) error {
	if err := domain.ValidatePinFormat(pin); err != nil {
		return apperror.ErrInvalidPinFormat()
	}
	if err := g.allow(ctx, scopePin, account.MerchantID); err != nil {
		return err
	}
	return g.matches(account, pin)
}

// matches compares pin with the stored hash without spending an attempt.
func (g pinGuard) matches(account *domain.MerchantAccount, pin string) error {
	ok, err := g.hash.Verify(pin, account.PinHash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("verify pin hash: %w", err))
	}
	if !ok {
		return apperror.ErrInvalidPin()
	}
	return nil
}
