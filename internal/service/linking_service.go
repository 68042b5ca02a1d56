package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LinkingDeps groups the collaborators of LinkingServiceImpl.
type LinkingDeps struct {
	Accounts     ports.AccountRepository
	Attempts     ports.LinkingAttemptStore
	Resolver     ports.AccountResolver
	Transactor   ports.DBTransactor
	EncSvc       ports.EncryptionService
	HashSvc      ports.HashService
	SigSvc       ports.SignatureService
	Limiter      ports.AttemptLimiter
	AttemptTTL   time.Duration
	DigestSecret string
	Logger       zerolog.Logger
}

// LinkingServiceImpl implements ports.LinkingService. A verified candidate
// lives only in the attempt store until the merchant confirms it.
type LinkingServiceImpl struct {
	accounts     ports.AccountRepository
	attempts     ports.LinkingAttemptStore
	resolver     ports.AccountResolver
	transactor   ports.DBTransactor
	encSvc       ports.EncryptionService
	sig          ports.SignatureService
	pins         pinGuard
	attemptTTL   time.Duration
	digestSecret string
	log          zerolog.Logger
	now          func() time.Time
}

// NewLinkingService creates a new LinkingServiceImpl.
func NewLinkingService(d LinkingDeps) *LinkingServiceImpl {
	return &LinkingServiceImpl{
		accounts:     d.Accounts,
		attempts:     d.Attempts,
		resolver:     d.Resolver,
		transactor:   d.Transactor,
		encSvc:       d.EncSvc,
		sig:          d.SigSvc,
		pins:         newPinGuard(d.HashSvc, d.Limiter, d.Logger),
		attemptTTL:   d.AttemptTTL,
		digestSecret: d.DigestSecret,
		log:          d.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// StartBankLinking verifies the candidate with the account resolver and
// stores the result as the merchant's pending attempt, replacing any earlier one.
func (s *LinkingServiceImpl) StartBankLinking(ctx context.Context, req ports.StartLinkingRequest) (*domain.LinkingAttempt, error) {
	if err := domain.ValidateBankCandidate(req.Candidate, req.Pin, req.ConsentGiven); err != nil {
		return nil, validationError(err)
	}

	account, err := s.accounts.GetByMerchantID(ctx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("merchant account")
	}
	if err := s.pins.verify(ctx, account, req.Pin); err != nil {
		return nil, err
	}

	resolved, err := s.resolver.ResolveAccountNumber(ctx, req.Candidate.AccountNumber, req.Candidate.BankCode)
	if err != nil {
		var rejection *domain.ResolutionError
		if errors.As(err, &rejection) {
			return nil, apperror.ErrAccountResolution(rejection.Message)
		}
		s.log.Warn().Err(err).Str("bank_code", req.Candidate.BankCode).Msg("account resolver unavailable")
		return nil, apperror.ErrResolverUnavailable(err)
	}

	accountNumberEnc, err := s.encSvc.Encrypt(req.Candidate.AccountNumber)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt account number: %w", err))
	}

	now := s.now()
	attempt := &domain.LinkingAttempt{
		ID:                 uuid.New(),
		MerchantID:         req.MerchantID,
		BankName:           req.Candidate.BankName,
		BankCode:           req.Candidate.BankCode,
		AccountNumberEnc:   accountNumberEnc,
		AccountNumberLast4: domain.Last4(req.Candidate.AccountNumber),
		AccountName:        resolved.AccountName,
		BankID:             resolved.BankID,
		PinDigest:          Digest(s.sig, s.digestSecret, req.MerchantID, req.Pin),
		ConsentGiven:       req.ConsentGiven,
		VerifiedAt:         now,
		ExpiresAt:          now.Add(s.attemptTTL),
	}
	if err := s.attempts.Save(ctx, attempt, s.attemptTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save linking attempt: %w", err))
	}

	s.log.Info().
		Str("merchant_id", req.MerchantID.String()).
		Str("attempt_id", attempt.ID.String()).
		Str("bank_code", attempt.BankCode).
		Msg("bank account verified")

	return attempt, nil
}

// ConfirmBankLinking writes the verified account to the merchant in one
// locked update. The PIN must be the one used at verification and must
// still be the merchant's current PIN.
func (s *LinkingServiceImpl) ConfirmBankLinking(ctx context.Context, merchantID, attemptID uuid.UUID, pin string) (*domain.LinkedBank, error) {
	if err := domain.ValidatePinFormat(pin); err != nil {
		return nil, apperror.ErrInvalidPinFormat()
	}

	attempt, err := s.attempts.Get(ctx, merchantID, attemptID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get linking attempt: %w", err))
	}
	if attempt == nil {
		return nil, apperror.ErrLinkingAttemptNotFound()
	}

	if err := s.pins.allow(ctx, scopePin, merchantID); err != nil {
		return nil, err
	}
	if !DigestMatches(s.sig, s.digestSecret, merchantID, pin, attempt.PinDigest) {
		return nil, apperror.ErrLinkingPinMismatch()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	account, err := s.accounts.GetByMerchantIDForUpdate(ctx, dbTx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("merchant account")
	}
	if err := s.pins.matches(account, pin); err != nil {
		return nil, err
	}

	bank := attempt.ToLinkedBank()
	if err := s.accounts.UpdateLinkedBank(ctx, dbTx, merchantID, bank); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update linked bank: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.attempts.Delete(ctx, merchantID); err != nil {
		s.log.Warn().Err(err).Str("merchant_id", merchantID.String()).Msg("failed to delete linking attempt")
	}

	s.log.Info().
		Str("merchant_id", merchantID.String()).
		Str("bank_code", bank.BankCode).
		Msg("bank account linked")

	return bank, nil
}

// validationError maps domain validation failures to their API errors.
func validationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAccountNumber):
		return apperror.ErrInvalidAccountNumber()
	case errors.Is(err, domain.ErrInvalidPinFormat):
		return apperror.ErrInvalidPinFormat()
	case errors.Is(err, domain.ErrConsentRequired):
		return apperror.ErrConsentRequired()
	case errors.Is(err, domain.ErrInvalidCommissionRate):
		return apperror.ErrInvalidCommission()
	case errors.Is(err, domain.ErrNegativeAmount), errors.Is(err, domain.ErrNonPositiveAmount):
		return apperror.ErrInvalidAmount()
	default:
		return apperror.Validation(err.Error())
	}
}
