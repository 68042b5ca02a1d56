package service

import (
	"context"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/loanscore"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LoanServiceImpl scores merchants over a trailing window of settled orders.
type LoanServiceImpl struct {
	totals   ports.OrderTotalsProvider
	policy   loanscore.Policy
	lookback time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

// NewLoanService creates a new LoanServiceImpl.
func NewLoanService(totals ports.OrderTotalsProvider, policy loanscore.Policy, lookback time.Duration, log zerolog.Logger) *LoanServiceImpl {
	return &LoanServiceImpl{
		totals:   totals,
		policy:   policy,
		lookback: lookback,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GetLoanEligibility scores orders settled in [now-lookback, now).
func (s *LoanServiceImpl) GetLoanEligibility(ctx context.Context, merchantID uuid.UUID) (*ports.LoanEligibility, error) {
	now := s.now()
	rng := domain.DateRange{From: now.Add(-s.lookback), To: now}

	totals, err := s.totals.GetOrderTotals(ctx, merchantID, rng)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get order totals: %w", err))
	}
	if totals == nil {
		totals = &domain.OrderTotals{}
	}

	in := loanscore.Input{
		TotalVolume:      totals.TotalRevenue,
		TotalEarnings:    totals.TotalMerchantPayout,
		TotalCommissions: totals.TotalCommissions,
		TransactionCount: totals.TotalTransactions,
	}
	result := s.policy.Evaluate(in)

	s.log.Debug().
		Str("merchant_id", merchantID.String()).
		Str("score", result.Score.String()).
		Str("tier", string(result.Tier)).
		Msg("loan eligibility evaluated")

	return &ports.LoanEligibility{
		MerchantID: merchantID,
		Input:      in,
		Result:     result,
		Range:      rng,
	}, nil
}
