package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `merchant_id, shop_balance, wallet_balance, pin_hash,
		bank_name, bank_code, bank_id, account_number_enc, account_number_last4, account_name, bank_verified_at,
		created_at, updated_at`

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a zero-balance account. It reports false if the merchant already has one.
func (r *AccountRepo) Create(ctx context.Context, a *domain.MerchantAccount) (bool, error) {
	query := `INSERT INTO merchant_accounts (merchant_id, shop_balance, wallet_balance, pin_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (merchant_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		a.MerchantID, a.ShopBalance, a.WalletBalance, a.PinHash, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert merchant account: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByMerchantID fetches an account without locking.
func (r *AccountRepo) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM merchant_accounts WHERE merchant_id = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, merchantID))
	if err != nil {
		return nil, fmt.Errorf("get merchant account: %w", err)
	}
	return a, nil
}

// GetByMerchantIDForUpdate fetches an account with a row lock.
// This MUST be called within a transaction.
func (r *AccountRepo) GetByMerchantIDForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (*domain.MerchantAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM merchant_accounts WHERE merchant_id = $1 FOR UPDATE`

	a, err := scanAccount(tx.QueryRow(ctx, query, merchantID))
	if err != nil {
		return nil, fmt.Errorf("get merchant account for update: %w", err)
	}
	return a, nil
}

// UpdateBalances writes both balances. The table's CHECK constraints reject
// negative values; that is reported as domain.ErrBalanceInvariant.
func (r *AccountRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, shop, wallet money.Amount) error {
	query := `UPDATE merchant_accounts SET shop_balance = $1, wallet_balance = $2, updated_at = NOW() WHERE merchant_id = $3`

	tag, err := tx.Exec(ctx, query, shop, wallet, merchantID)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update balances for %s: %w", merchantID, domain.ErrBalanceInvariant)
		}
		return fmt.Errorf("update balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant account not found: %s", merchantID)
	}
	return nil
}

// UpdateLinkedBank replaces the merchant's payout destination as a whole.
func (r *AccountRepo) UpdateLinkedBank(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, b *domain.LinkedBank) error {
	query := `UPDATE merchant_accounts SET bank_name = $1, bank_code = $2, bank_id = $3, account_number_enc = $4,
		account_number_last4 = $5, account_name = $6, bank_verified_at = $7, updated_at = NOW()
		WHERE merchant_id = $8`

	tag, err := tx.Exec(ctx, query,
		b.BankName, b.BankCode, b.BankID, b.AccountNumberEnc,
		b.AccountNumberLast4, b.AccountName, b.VerifiedAt, merchantID,
	)
	if err != nil {
		return fmt.Errorf("update linked bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant account not found: %s", merchantID)
	}
	return nil
}

// scanAccount reads one account row. The bank columns are NULL until a bank is linked.
func scanAccount(row pgx.Row) (*domain.MerchantAccount, error) {
	var (
		a                                      domain.MerchantAccount
		bankName, bankCode, bankID, accountEnc *string
		accountLast4, accountName              *string
		verifiedAt                             *time.Time
	)
	err := row.Scan(
		&a.MerchantID, &a.ShopBalance, &a.WalletBalance, &a.PinHash,
		&bankName, &bankCode, &bankID, &accountEnc, &accountLast4, &accountName, &verifiedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if bankCode != nil && accountEnc != nil {
		a.LinkedBank = &domain.LinkedBank{
			BankName:           deref(bankName),
			BankCode:           *bankCode,
			BankID:             deref(bankID),
			AccountNumberEnc:   *accountEnc,
			AccountNumberLast4: deref(accountLast4),
			AccountName:        deref(accountName),
		}
		if verifiedAt != nil {
			a.LinkedBank.VerifiedAt = *verifiedAt
		}
	}
	return &a, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
