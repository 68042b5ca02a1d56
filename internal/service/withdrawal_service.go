package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	reasonOtpAttempts  = "too many invalid otp attempts"
	reasonOtpResends   = "otp resend limit reached"
	reasonInsufficient = "wallet balance changed before confirmation"
	reasonExpired      = "session expired"
	reasonSuperseded   = "superseded by a new withdrawal"
)

// WithdrawalPolicy holds the limits of the withdrawal flow.
type WithdrawalPolicy struct {
	MinAmount      money.Amount
	OtpTTL         time.Duration
	MaxOtpAttempts int
	MaxOtpResends  int
	StaleAfter     time.Duration // untouched non-terminal sessions older than this are failed
	DigestSecret   string
}

// WithdrawalDeps groups the collaborators of WithdrawalServiceImpl.
type WithdrawalDeps struct {
	Accounts    ports.AccountRepository
	Withdrawals ports.WithdrawalRepository
	Ledger      ports.LedgerService
	Transactor  ports.DBTransactor
	HashSvc     ports.HashService
	Limiter     ports.AttemptLimiter
	SigSvc      ports.SignatureService
	OtpGen      ports.OtpGenerator
	OtpSender   ports.OtpSender
	Publisher   ports.EventPublisher
	Policy      WithdrawalPolicy
	Logger      zerolog.Logger
}

// WithdrawalServiceImpl implements ports.WithdrawalService. Sessions are
// persisted so a merchant can resume a withdrawal from any device, and every
// state change happens under the session's row lock. When the account is
// also needed it is locked after the session.
type WithdrawalServiceImpl struct {
	accounts    ports.AccountRepository
	withdrawals ports.WithdrawalRepository
	ledger      ports.LedgerService
	transactor  ports.DBTransactor
	pins        pinGuard
	sig         ports.SignatureService
	otpGen      ports.OtpGenerator
	otpSender   ports.OtpSender
	publisher   ports.EventPublisher
	policy      WithdrawalPolicy
	log         zerolog.Logger
	now         func() time.Time
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(d WithdrawalDeps) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		accounts:    d.Accounts,
		withdrawals: d.Withdrawals,
		ledger:      d.Ledger,
		transactor:  d.Transactor,
		pins:        newPinGuard(d.HashSvc, d.Limiter, d.Logger),
		sig:         d.SigSvc,
		otpGen:      d.OtpGen,
		otpSender:   d.OtpSender,
		publisher:   d.Publisher,
		policy:      d.Policy,
		log:         d.Logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// TransferToWallet moves funds from the shop balance to the wallet after a
// PIN check. It has no intermediate states.
func (s *WithdrawalServiceImpl) TransferToWallet(ctx context.Context, merchantID uuid.UUID, amount money.Amount, pin string) (*domain.Transfer, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	account, err := s.getAccount(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateWalletTransferAmount(amount, account.ShopBalance); err != nil {
		return nil, apperror.ErrAmountExceedsBalance()
	}
	if err := s.pins.verify(ctx, account, pin); err != nil {
		return nil, err
	}

	return s.ledger.TransferShopToWallet(ctx, merchantID, amount)
}

// StartWithdrawal validates the amount and PIN, opens a session and sends
// the first OTP. Nothing is persisted when validation fails. If the OTP
// cannot be delivered the session is kept in PIN_VERIFIED so the merchant
// can ask for a resend.
func (s *WithdrawalServiceImpl) StartWithdrawal(ctx context.Context, merchantID uuid.UUID, amount money.Amount, pin string) (*domain.WithdrawalSession, error) {
	account, err := s.getAccount(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if !account.HasLinkedBank() {
		return nil, apperror.ErrNoLinkedBank()
	}
	if err := domain.ValidateWithdrawalAmount(amount, s.policy.MinAmount, account.WalletBalance); err != nil {
		if errors.Is(err, domain.ErrAmountTooLow) {
			return nil, apperror.ErrAmountTooLow(s.policy.MinAmount.String())
		}
		return nil, apperror.ErrAmountExceedsBalance()
	}
	if err := s.pins.verify(ctx, account, pin); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := s.now()
	existing, err := s.withdrawals.GetActiveForUpdate(ctx, dbTx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock active withdrawal: %w", err))
	}
	if existing != nil {
		if !s.isAbandoned(existing, now) {
			return nil, apperror.ErrWithdrawalInProgress()
		}
		if err := s.failSession(ctx, dbTx, existing, reasonSuperseded, now); err != nil {
			return nil, err
		}
	}

	session := &domain.WithdrawalSession{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Amount:     amount,
		State:      domain.WithdrawalStateAmountEntry,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := session.TransitionTo(domain.WithdrawalStatePinVerified, now); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := s.withdrawals.Create(ctx, dbTx, session); err != nil {
		if errors.Is(err, domain.ErrActiveWithdrawalExists) {
			return nil, apperror.ErrWithdrawalInProgress()
		}
		return nil, apperror.InternalError(fmt.Errorf("create withdrawal: %w", err))
	}

	prior := *session
	code, err := s.issueOtp(ctx, dbTx, session)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("session_id", session.ID.String()).
		Str("merchant_id", merchantID.String()).
		Int64("amount", amount.Int64()).
		Str("state", string(session.State)).
		Msg("withdrawal started")

	if err := s.deliverOtp(ctx, session, code, prior); err != nil {
		return session, err
	}
	return session, nil
}

// ResendOtp replaces the pending OTP with a fresh one. A session whose first
// delivery failed is retried without spending a resend.
func (s *WithdrawalServiceImpl) ResendOtp(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	session, err := s.lockActive(ctx, dbTx, merchantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	prior := *session
	switch session.State {
	case domain.WithdrawalStatePinVerified:
	case domain.WithdrawalStateOtpIssued:
		if session.OtpResends >= s.policy.MaxOtpResends {
			if err := s.failSession(ctx, dbTx, session, reasonOtpResends, now); err != nil {
				return nil, err
			}
			if err := dbTx.Commit(ctx); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
			}
			return nil, apperror.ErrOtpResendsExhausted()
		}
		session.OtpResends++
	default:
		return nil, apperror.ErrInvalidTransition(string(session.State), string(domain.WithdrawalStateOtpIssued))
	}

	code, err := s.issueOtp(ctx, dbTx, session)
	if err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.deliverOtp(ctx, session, code, prior); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("session_id", session.ID.String()).
		Int("otp_resends", session.OtpResends).
		Msg("withdrawal otp reissued")

	return session, nil
}

// ConfirmWithdrawal verifies the OTP and debits the wallet in the same
// transaction, so a code can complete at most one withdrawal.
func (s *WithdrawalServiceImpl) ConfirmWithdrawal(ctx context.Context, merchantID uuid.UUID, otp string) (*ports.WithdrawalResult, error) {
	if err := s.pins.allow(ctx, scopeOtp, merchantID); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	session, err := s.lockActive(ctx, dbTx, merchantID)
	if err != nil {
		return nil, err
	}
	if session.State != domain.WithdrawalStateOtpIssued {
		return nil, apperror.ErrInvalidTransition(string(session.State), string(domain.WithdrawalStateOtpVerified))
	}

	now := s.now()
	var rejection error
	switch {
	case session.OtpExpired(now):
		rejection = apperror.ErrOtpExpired()
	case !DigestMatches(s.sig, s.policy.DigestSecret, merchantID, otp, session.OtpDigest):
		rejection = apperror.ErrOtpMismatch()
	}
	if rejection != nil {
		return nil, s.rejectOtp(ctx, dbTx, session, rejection, now)
	}

	if err := session.ConsumeOtp(now); err != nil {
		return nil, apperror.InternalError(err)
	}

	transfer, err := s.ledger.DebitWalletTx(ctx, dbTx, merchantID, session.Amount, "withdrawal:"+session.ID.String())
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.ErrInsufficientFunds().Code {
			if err := s.failSession(ctx, dbTx, session, reasonInsufficient, now); err != nil {
				return nil, err
			}
			if err := dbTx.Commit(ctx); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
			}
			return nil, apperror.ErrBalanceChanged()
		}
		return nil, err
	}

	if err := session.TransitionTo(domain.WithdrawalStateCompleted, now); err != nil {
		return nil, apperror.InternalError(err)
	}
	session.TransferID = &transfer.ID
	if err := s.withdrawals.Update(ctx, dbTx, session); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("session_id", session.ID.String()).
		Str("transfer_id", transfer.ID.String()).
		Str("merchant_id", merchantID.String()).
		Int64("amount", session.Amount.Int64()).
		Msg("withdrawal completed")

	s.publishCompleted(ctx, session, transfer)

	return &ports.WithdrawalResult{Session: session, Transfer: transfer}, nil
}

// CancelWithdrawal abandons the active session.
func (s *WithdrawalServiceImpl) CancelWithdrawal(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	session, err := s.lockActive(ctx, dbTx, merchantID)
	if err != nil {
		return nil, err
	}

	if err := session.TransitionTo(domain.WithdrawalStateCancelledByUser, s.now()); err != nil {
		return nil, apperror.ErrInvalidTransition(string(session.State), string(domain.WithdrawalStateCancelledByUser))
	}
	session.OtpDigest = ""
	if err := s.withdrawals.Update(ctx, dbTx, session); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("session_id", session.ID.String()).Msg("withdrawal cancelled by user")
	return session, nil
}

// GetCurrentWithdrawal returns the merchant's resumable session.
func (s *WithdrawalServiceImpl) GetCurrentWithdrawal(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error) {
	session, err := s.withdrawals.GetActive(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get active withdrawal: %w", err))
	}
	if session == nil {
		return nil, apperror.ErrNoActiveWithdrawal()
	}
	return session, nil
}

// FailStaleSessions fails sessions nobody has touched for StaleAfter.
func (s *WithdrawalServiceImpl) FailStaleSessions(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.policy.StaleAfter)
	n, err := s.withdrawals.FailStale(ctx, cutoff, reasonExpired)
	if err != nil {
		return 0, fmt.Errorf("fail stale withdrawals: %w", err)
	}
	return n, nil
}

// issueOtp generates a code and stores its digest in tx. The caller sends
// the returned code once tx has committed.
func (s *WithdrawalServiceImpl) issueOtp(ctx context.Context, tx pgx.Tx, session *domain.WithdrawalSession) (string, error) {
	code, err := s.otpGen.Generate()
	if err != nil {
		return "", apperror.InternalError(err)
	}

	now := s.now()
	digest := Digest(s.sig, s.policy.DigestSecret, session.MerchantID, code)
	if err := session.IssueOtp(digest, now.Add(s.policy.OtpTTL), now); err != nil {
		return "", apperror.ErrInvalidTransition(string(session.State), string(domain.WithdrawalStateOtpIssued))
	}
	if err := s.withdrawals.Update(ctx, tx, session); err != nil {
		return "", apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}
	return code, nil
}

// deliverOtp sends a committed code. When delivery fails the session is put
// back to prior, so the previous code (if any) stays valid and a resend is
// not charged.
func (s *WithdrawalServiceImpl) deliverOtp(ctx context.Context, session *domain.WithdrawalSession, code string, prior domain.WithdrawalSession) error {
	sendErr := s.otpSender.SendOtp(ctx, session.MerchantID, code)
	if sendErr == nil {
		return nil
	}
	s.log.Warn().Err(sendErr).Str("session_id", session.ID.String()).Msg("otp delivery failed")

	if err := s.restoreOtp(context.WithoutCancel(ctx), session, prior); err != nil {
		s.log.Error().Err(err).Str("session_id", session.ID.String()).Msg("restore withdrawal after failed otp delivery")
	}
	return apperror.ErrOtpDeliveryFailed(sendErr)
}

// restoreOtp reverts the OTP fields of session to prior, unless the session
// has since moved on to another code or state.
func (s *WithdrawalServiceImpl) restoreOtp(ctx context.Context, session *domain.WithdrawalSession, prior domain.WithdrawalSession) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	current, err := s.withdrawals.GetActiveForUpdate(ctx, dbTx, session.MerchantID)
	if err != nil {
		return fmt.Errorf("lock active withdrawal: %w", err)
	}
	if current == nil || current.ID != session.ID || current.OtpDigest != session.OtpDigest {
		return nil
	}

	current.State = prior.State
	current.OtpDigest = prior.OtpDigest
	current.OtpExpiresAt = prior.OtpExpiresAt
	current.OtpResends = prior.OtpResends
	current.UpdatedAt = s.now()
	if err := s.withdrawals.Update(ctx, dbTx, current); err != nil {
		return fmt.Errorf("update withdrawal: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	*session = *current
	return nil
}

// rejectOtp counts a failed attempt and commits it, failing the session
// once the budget is spent.
func (s *WithdrawalServiceImpl) rejectOtp(ctx context.Context, tx pgx.Tx, session *domain.WithdrawalSession, rejection error, now time.Time) error {
	session.OtpAttempts++
	session.UpdatedAt = now

	if session.OtpAttempts >= s.policy.MaxOtpAttempts {
		if err := s.failSession(ctx, tx, session, reasonOtpAttempts, now); err != nil {
			return err
		}
		rejection = apperror.ErrOtpAttemptsExhausted()
	} else if err := s.withdrawals.Update(ctx, tx, session); err != nil {
		return apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("session_id", session.ID.String()).
		Int("otp_attempts", session.OtpAttempts).
		Str("state", string(session.State)).
		Msg("withdrawal otp rejected")

	return rejection
}

func (s *WithdrawalServiceImpl) failSession(ctx context.Context, tx pgx.Tx, session *domain.WithdrawalSession, reason string, now time.Time) error {
	if err := session.Fail(reason, now); err != nil {
		return apperror.InternalError(err)
	}
	if err := s.withdrawals.Update(ctx, tx, session); err != nil {
		return apperror.InternalError(fmt.Errorf("update withdrawal: %w", err))
	}
	s.log.Info().
		Str("session_id", session.ID.String()).
		Str("reason", reason).
		Msg("withdrawal failed")
	return nil
}

// isAbandoned reports whether an active session may be replaced by a new one.
func (s *WithdrawalServiceImpl) isAbandoned(session *domain.WithdrawalSession, now time.Time) bool {
	if session.State == domain.WithdrawalStateOtpIssued && session.OtpExpired(now) {
		return true
	}
	return s.policy.StaleAfter > 0 && now.Sub(session.UpdatedAt) >= s.policy.StaleAfter
}

func (s *WithdrawalServiceImpl) lockActive(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (*domain.WithdrawalSession, error) {
	session, err := s.withdrawals.GetActiveForUpdate(ctx, tx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock active withdrawal: %w", err))
	}
	if session == nil {
		return nil, apperror.ErrNoActiveWithdrawal()
	}
	return session, nil
}

func (s *WithdrawalServiceImpl) getAccount(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantAccount, error) {
	account, err := s.accounts.GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("merchant account")
	}
	return account, nil
}

// publishCompleted hands the payout to the downstream processor. The debit is
// already committed, so a failure here is logged for reconciliation.
func (s *WithdrawalServiceImpl) publishCompleted(ctx context.Context, session *domain.WithdrawalSession, transfer *domain.Transfer) {
	if s.publisher == nil {
		return
	}

	event := ports.WithdrawalCompletedEvent{
		WithdrawalID: session.ID,
		TransferID:   transfer.ID,
		MerchantID:   session.MerchantID,
		Amount:       session.Amount,
		CompletedAt:  session.UpdatedAt,
	}
	account, err := s.accounts.GetByMerchantID(ctx, session.MerchantID)
	if err == nil && account != nil && account.LinkedBank != nil {
		event.BankCode = account.LinkedBank.BankCode
		event.BankID = account.LinkedBank.BankID
		event.AccountName = account.LinkedBank.AccountName
		event.AccountNumberLast4 = account.LinkedBank.AccountNumberLast4
	}

	if err := s.publisher.PublishWithdrawalCompleted(ctx, event); err != nil {
		s.log.Error().Err(err).
			Str("session_id", session.ID.String()).
			Str("transfer_id", transfer.ID.String()).
			Msg("failed to publish withdrawal completed event")
	}
}
