package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"merchant-settlement/internal/core/commission"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for merchant accounts.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type AccountRepository interface {
	// Create inserts the account. It returns false if an account already exists for the merchant.
	Create(ctx context.Context, account *domain.MerchantAccount) (bool, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantAccount, error)
	GetByMerchantIDForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (*domain.MerchantAccount, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, shop, wallet money.Amount) error
	UpdateLinkedBank(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, bank *domain.LinkedBank) error
}

// TransferRepository defines persistence for the append-only transfer ledger.
type TransferRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transfer *domain.Transfer) error
	List(ctx context.Context, params TransferListParams) ([]domain.Transfer, int64, error)
}

// TransferListParams holds filter + pagination for listing transfers.
type TransferListParams struct {
	MerchantID uuid.UUID
	Type       *domain.TransferType
	From       *int64 // Unix timestamp
	To         *int64 // Unix timestamp
	Page       int
	PageSize   int
}

// WithdrawalRepository persists withdrawal sessions. At most one non-terminal
// session exists per merchant.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, session *domain.WithdrawalSession) error
	GetActive(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error)
	GetActiveForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (*domain.WithdrawalSession, error)
	Update(ctx context.Context, tx pgx.Tx, session *domain.WithdrawalSession) error
	// FailStale moves every non-terminal session last touched before cutoff to FAILED.
	FailStale(ctx context.Context, cutoff time.Time, reason string) (int64, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// OrderTotalsProvider aggregates a merchant's settled orders.
type OrderTotalsProvider interface {
	GetOrderTotals(ctx context.Context, merchantID uuid.UUID, rng domain.DateRange) (*domain.OrderTotals, error)
}

// OrderRepository records settled orders with the split applied at settlement
// time, so later aggregates never re-round.
type OrderRepository interface {
	Record(ctx context.Context, tx pgx.Tx, order *domain.SettledOrder, split commission.Split) error
	GetOrderTotals(ctx context.Context, merchantID uuid.UUID, rng domain.DateRange) (*domain.OrderTotals, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
