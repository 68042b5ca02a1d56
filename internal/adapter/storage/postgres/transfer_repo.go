package postgres

import (
	"context"
	"fmt"
	"strings"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const transferColumns = `id, merchant_id, transfer_type, amount, reference, shop_balance_after, wallet_balance_after, created_at`

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

// Create appends a transfer within a database transaction.
func (r *TransferRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transfer) error {
	query := `INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.MerchantID, t.Type, t.Amount, t.Reference,
		t.ShopBalanceAfter, t.WalletBalanceAfter, t.CreatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("insert %s transfer of %d: %w", t.Type, t.Amount, domain.ErrInvalidTransferAmount)
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// List fetches a merchant's transfers with filtering and pagination, newest first.
func (r *TransferRepo) List(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", argIdx))
	args = append(args, params.MerchantID)
	argIdx++

	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("transfer_type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= to_timestamp($%d)", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= to_timestamp($%d)", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transfers %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM transfers %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		transferColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		t := domain.Transfer{}
		err := rows.Scan(
			&t.ID, &t.MerchantID, &t.Type, &t.Amount, &t.Reference,
			&t.ShopBalanceAfter, &t.WalletBalanceAfter, &t.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transfer rows: %w", err)
	}
	return transfers, total, nil
}
