package postgres

import (
	"context"
	"fmt"

	"merchant-settlement/internal/core/commission"
	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository over the settled_orders table.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Record stores a settled order and the split credited for it.
func (r *OrderRepo) Record(ctx context.Context, tx pgx.Tx, o *domain.SettledOrder, split commission.Split) error {
	query := `INSERT INTO settled_orders (order_id, merchant_id, total_price, commission_percentage,
		merchant_earning, platform_earning, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		o.OrderID, o.MerchantID, o.TotalPrice, o.CommissionPercentage,
		split.MerchantEarning, split.PlatformEarning, o.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert settled order %s: %w", o.OrderID, domain.ErrDuplicateKey)
		}
		return fmt.Errorf("insert settled order: %w", err)
	}
	return nil
}

// GetOrderTotals aggregates settled orders created in [rng.From, rng.To).
func (r *OrderRepo) GetOrderTotals(ctx context.Context, merchantID uuid.UUID, rng domain.DateRange) (*domain.OrderTotals, error) {
	query := `SELECT
		COUNT(*) AS total,
		COALESCE(SUM(total_price), 0)::BIGINT AS revenue,
		COALESCE(SUM(merchant_earning), 0)::BIGINT AS payout,
		COALESCE(SUM(platform_earning), 0)::BIGINT AS commissions
		FROM settled_orders
		WHERE merchant_id = $1 AND created_at >= $2 AND created_at < $3`

	totals := &domain.OrderTotals{}
	err := r.pool.QueryRow(ctx, query, merchantID, rng.From, rng.To).Scan(
		&totals.TotalTransactions, &totals.TotalRevenue, &totals.TotalMerchantPayout, &totals.TotalCommissions,
	)
	if err != nil {
		return nil, fmt.Errorf("get order totals: %w", err)
	}
	return totals, nil
}
