package service

import (
	"context"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	accounts  ports.AccountRepository
	transfers ports.TransferRepository
	hashSvc   ports.HashService
	currency  string
	log       zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(
	accounts ports.AccountRepository,
	transfers ports.TransferRepository,
	hashSvc ports.HashService,
	currency string,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accounts:  accounts,
		transfers: transfers,
		hashSvc:   hashSvc,
		currency:  currency,
		log:       log,
	}
}

// ProvisionAccount opens a zero-balance account for a newly onboarded
// merchant. Provisioning an existing merchant returns the stored account
// with created=false and leaves its PIN untouched.
func (s *AccountServiceImpl) ProvisionAccount(ctx context.Context, merchantID uuid.UUID, pin string) (*domain.MerchantAccount, bool, error) {
	if merchantID == uuid.Nil {
		return nil, false, apperror.Validation("merchant_id is required")
	}
	if err := domain.ValidatePinFormat(pin); err != nil {
		return nil, false, apperror.ErrInvalidPinFormat()
	}

	pinHash, err := s.hashSvc.Hash(pin)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("hash pin: %w", err))
	}

	now := time.Now().UTC()
	account := &domain.MerchantAccount{
		MerchantID: merchantID,
		PinHash:    pinHash,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}
	if !created {
		existing, err := s.accounts.GetByMerchantID(ctx, merchantID)
		if err != nil {
			return nil, false, apperror.InternalError(fmt.Errorf("get account: %w", err))
		}
		if existing == nil {
			return nil, false, apperror.InternalError(fmt.Errorf("account for %s vanished after conflict", merchantID))
		}
		return existing, false, nil
	}

	s.log.Info().Str("merchant_id", merchantID.String()).Msg("merchant account provisioned")
	return account, true, nil
}

// GetBalances returns the shop and wallet balances.
func (s *AccountServiceImpl) GetBalances(ctx context.Context, merchantID uuid.UUID) (*ports.Balances, error) {
	account, err := s.getAccount(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return &ports.Balances{
		MerchantID:    account.MerchantID,
		ShopBalance:   account.ShopBalance,
		WalletBalance: account.WalletBalance,
		Currency:      s.currency,
	}, nil
}

// GetLinkedBank returns the merchant's payout account, or nil if none is linked.
func (s *AccountServiceImpl) GetLinkedBank(ctx context.Context, merchantID uuid.UUID) (*domain.LinkedBank, error) {
	account, err := s.getAccount(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return account.LinkedBank, nil
}

// ListTransfers returns a page of the merchant's ledger, newest first.
func (s *AccountServiceImpl) ListTransfers(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}
	if params.Type != nil && !domain.IsValidTransferType(*params.Type) {
		return nil, 0, apperror.Validation("invalid transfer type")
	}
	if params.From != nil && params.To != nil && *params.From > *params.To {
		return nil, 0, apperror.Validation("from must not be after to")
	}

	transfers, total, err := s.transfers.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return transfers, total, nil
}

func (s *AccountServiceImpl) getAccount(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantAccount, error) {
	account, err := s.accounts.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("merchant account")
	}
	return account, nil
}
