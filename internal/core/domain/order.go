package domain

import (
	"time"

	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettledOrder is a paid order handed over by the order collaborator.
type SettledOrder struct {
	OrderID              string          `json:"order_id"`
	MerchantID           uuid.UUID       `json:"merchant_id"`
	TotalPrice           money.Amount    `json:"total_price"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	IsPaid               bool            `json:"is_paid"`
	CreatedAt            time.Time       `json:"created_at"`
}

// OrderTotals is the aggregate of a merchant's settled orders over a range.
type OrderTotals struct {
	TotalRevenue        money.Amount
	TotalMerchantPayout money.Amount
	TotalCommissions    money.Amount
	TotalTransactions   int64
}

// DateRange is a half-open [From, To) interval.
type DateRange struct {
	From time.Time
	To   time.Time
}
