package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/loanscore"
	"merchant-settlement/internal/core/ports/mocks"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoanService_GetLoanEligibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	totals := mocks.NewMockOrderTotalsProvider(ctrl)
	svc := NewLoanService(totals, loanscore.DefaultPolicy(), 365*24*time.Hour, newTestLogger())
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	merchantID := uuid.New()

	totals.EXPECT().GetOrderTotals(gomock.Any(), merchantID, domain.DateRange{
		From: now.Add(-365 * 24 * time.Hour),
		To:   now,
	}).Return(&domain.OrderTotals{
		TotalRevenue:        money.FromMajor(1_000_000),
		TotalMerchantPayout: money.FromMajor(500_000),
		TotalCommissions:    money.FromMajor(50_000),
		TotalTransactions:   100,
	}, nil)

	got, err := svc.GetLoanEligibility(context.Background(), merchantID)
	require.NoError(t, err)
	assert.Equal(t, loanscore.TierPremium, got.Result.Tier)
	assert.True(t, got.Result.Score.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, money.FromMajor(750_000), got.Result.MaxLoanAmount)
	assert.Equal(t, money.FromMajor(500_000), got.Input.TotalEarnings)
}

func TestLoanService_NoHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	totals := mocks.NewMockOrderTotalsProvider(ctrl)
	svc := NewLoanService(totals, loanscore.DefaultPolicy(), time.Hour, newTestLogger())

	totals.EXPECT().GetOrderTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.OrderTotals{}, nil)

	got, err := svc.GetLoanEligibility(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, loanscore.TierNotEligible, got.Result.Tier)
	assert.Equal(t, money.Amount(0), got.Result.MaxLoanAmount)
}

func TestLoanService_TotalsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	totals := mocks.NewMockOrderTotalsProvider(ctrl)
	svc := NewLoanService(totals, loanscore.DefaultPolicy(), time.Hour, newTestLogger())

	totals.EXPECT().GetOrderTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.GetLoanEligibility(context.Background(), uuid.New())
	assertAppError(t, err, "SYS_001")
}
