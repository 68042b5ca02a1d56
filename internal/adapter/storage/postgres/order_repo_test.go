package postgres

import (
	"context"
	"testing"
	"time"

	"merchant-settlement/internal/core/commission"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() (*domain.SettledOrder, commission.Split) {
	o := &domain.SettledOrder{
		OrderID:              "ORD-1001",
		MerchantID:           uuid.New(),
		TotalPrice:           money.FromMajor(10_000),
		CommissionPercentage: decimal.NewFromInt(10),
		IsPaid:               true,
		CreatedAt:            time.Now().UTC().Truncate(time.Microsecond),
	}
	split := commission.Split{
		Total:           o.TotalPrice,
		MerchantEarning: money.FromMajor(9_000),
		PlatformEarning: money.FromMajor(1_000),
	}
	return o, split
}

func TestOrderRepo_Record(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o, split := newTestOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO settled_orders").
		WithArgs(o.OrderID, o.MerchantID, o.TotalPrice, o.CommissionPercentage,
			split.MerchantEarning, split.PlatformEarning, o.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Record(context.Background(), tx, o, split))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_Record_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o, split := newTestOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO settled_orders").
		WithArgs(o.OrderID, o.MerchantID, o.TotalPrice, o.CommissionPercentage,
			split.MerchantEarning, split.PlatformEarning, o.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Record(context.Background(), tx, o, split)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestOrderRepo_GetOrderTotals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	merchantID := uuid.New()
	rng := domain.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery("SELECT .+ FROM settled_orders").
		WithArgs(merchantID, rng.From, rng.To).
		WillReturnRows(pgxmock.NewRows([]string{"total", "revenue", "payout", "commissions"}).
			AddRow(int64(42), money.FromMajor(300_000), money.FromMajor(270_000), money.FromMajor(30_000)))

	got, err := repo.GetOrderTotals(context.Background(), merchantID, rng)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.TotalTransactions)
	assert.Equal(t, money.FromMajor(300_000), got.TotalRevenue)
	assert.Equal(t, money.FromMajor(270_000), got.TotalMerchantPayout)
	assert.Equal(t, money.FromMajor(30_000), got.TotalCommissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
