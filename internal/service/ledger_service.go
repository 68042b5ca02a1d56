package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/logger"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. Every movement is one
// locked read-validate-write block on the merchant's account row followed by
// an appended Transfer carrying the balances it produced.
type LedgerServiceImpl struct {
	accounts   ports.AccountRepository
	transfers  ports.TransferRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accounts ports.AccountRepository,
	transfers ports.TransferRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts:   accounts,
		transfers:  transfers,
		transactor: transactor,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreditShopAccount adds a settled order's merchant share to the shop balance.
func (s *LedgerServiceImpl) CreditShopAccount(ctx context.Context, merchantID uuid.UUID, amount money.Amount, reference string) (*domain.Transfer, error) {
	return s.inTx(ctx, func(tx pgx.Tx) (*domain.Transfer, error) {
		return s.CreditShopAccountTx(ctx, tx, merchantID, amount, reference)
	})
}

// CreditShopAccountTx is CreditShopAccount inside the caller's transaction.
func (s *LedgerServiceImpl) CreditShopAccountTx(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, amount money.Amount, reference string) (*domain.Transfer, error) {
	if amount < 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	account, err := s.lockAccount(ctx, tx, merchantID)
	if err != nil {
		return nil, err
	}

	return s.apply(ctx, tx, account, domain.TransferTypeOrderCredit, amount, reference,
		account.ShopBalance+amount, account.WalletBalance)
}

// TransferShopToWallet moves amount from the shop balance to the wallet
// balance. Both balances are written by one statement.
func (s *LedgerServiceImpl) TransferShopToWallet(ctx context.Context, merchantID uuid.UUID, amount money.Amount) (*domain.Transfer, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	return s.inTx(ctx, func(tx pgx.Tx) (*domain.Transfer, error) {
		account, err := s.lockAccount(ctx, tx, merchantID)
		if err != nil {
			return nil, err
		}
		if amount > account.ShopBalance {
			return nil, apperror.ErrInsufficientFunds()
		}

		return s.apply(ctx, tx, account, domain.TransferTypeShopToWallet, amount, "",
			account.ShopBalance-amount, account.WalletBalance+amount)
	})
}

// DebitWallet removes amount from the wallet balance.
func (s *LedgerServiceImpl) DebitWallet(ctx context.Context, merchantID uuid.UUID, amount money.Amount, reference string) (*domain.Transfer, error) {
	return s.inTx(ctx, func(tx pgx.Tx) (*domain.Transfer, error) {
		return s.DebitWalletTx(ctx, tx, merchantID, amount, reference)
	})
}

// DebitWalletTx is DebitWallet inside the caller's transaction.
func (s *LedgerServiceImpl) DebitWalletTx(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, amount money.Amount, reference string) (*domain.Transfer, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	account, err := s.lockAccount(ctx, tx, merchantID)
	if err != nil {
		return nil, err
	}
	if amount > account.WalletBalance {
		return nil, apperror.ErrInsufficientFunds()
	}

	return s.apply(ctx, tx, account, domain.TransferTypeWalletWithdrawal, amount, reference,
		account.ShopBalance, account.WalletBalance-amount)
}

func (s *LedgerServiceImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) (*domain.Transfer, error)) (*domain.Transfer, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	transfer, err := fn(dbTx)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("merchant_id", transfer.MerchantID.String()).
		Str("type", string(transfer.Type)).
		Int64("amount", transfer.Amount.Int64()).
		Msg("ledger transfer applied")

	return transfer, nil
}

func (s *LedgerServiceImpl) lockAccount(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (*domain.MerchantAccount, error) {
	account, err := s.accounts.GetByMerchantIDForUpdate(ctx, tx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("merchant account")
	}
	return account, nil
}

// apply writes the new balances and appends the transfer record.
func (s *LedgerServiceImpl) apply(
	ctx context.Context,
	tx pgx.Tx,
	account *domain.MerchantAccount,
	kind domain.TransferType,
	amount money.Amount,
	reference string,
	shop, wallet money.Amount,
) (*domain.Transfer, error) {
	if shop < 0 || wallet < 0 {
		return nil, s.invariantViolation(account.MerchantID, kind, fmt.Errorf("%w: shop=%d wallet=%d", domain.ErrBalanceInvariant, shop, wallet))
	}

	if err := s.accounts.UpdateBalances(ctx, tx, account.MerchantID, shop, wallet); err != nil {
		if errors.Is(err, domain.ErrBalanceInvariant) {
			return nil, s.invariantViolation(account.MerchantID, kind, err)
		}
		return nil, apperror.InternalError(fmt.Errorf("update balances: %w", err))
	}

	transfer := &domain.Transfer{
		ID:                 uuid.New(),
		MerchantID:         account.MerchantID,
		Type:               kind,
		Amount:             amount,
		Reference:          reference,
		ShopBalanceAfter:   shop,
		WalletBalanceAfter: wallet,
		CreatedAt:          s.now(),
	}
	if err := s.transfers.Create(ctx, tx, transfer); err != nil {
		if errors.Is(err, domain.ErrInvalidTransferAmount) {
			return nil, s.invariantViolation(account.MerchantID, kind, err)
		}
		return nil, apperror.InternalError(fmt.Errorf("create transfer: %w", err))
	}

	return transfer, nil
}

func (s *LedgerServiceImpl) invariantViolation(merchantID uuid.UUID, kind domain.TransferType, err error) error {
	logger.Alert(&s.log).
		Err(err).
		Str("merchant_id", merchantID.String()).
		Str("type", string(kind)).
		Msg("ledger invariant violated")
	return apperror.ErrInvariantViolation(err)
}
