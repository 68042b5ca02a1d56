package domain

import (
	"fmt"
	"time"

	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
)

// WithdrawalState is a step of the wallet-to-bank withdrawal flow.
type WithdrawalState string

const (
	WithdrawalStateAmountEntry     WithdrawalState = "AMOUNT_ENTRY"
	WithdrawalStatePinVerified     WithdrawalState = "PIN_VERIFIED"
	WithdrawalStateOtpIssued       WithdrawalState = "OTP_ISSUED"
	WithdrawalStateOtpVerified     WithdrawalState = "OTP_VERIFIED"
	WithdrawalStateCompleted       WithdrawalState = "COMPLETED"
	WithdrawalStateFailed          WithdrawalState = "FAILED"
	WithdrawalStateCancelledByUser WithdrawalState = "CANCELLED_BY_USER"
)

// withdrawalTransitions lists the forward edges of the flow. FAILED and
// CANCELLED_BY_USER are reachable from every non-terminal state and are
// handled in CanTransition.
var withdrawalTransitions = map[WithdrawalState][]WithdrawalState{
	WithdrawalStateAmountEntry: {WithdrawalStatePinVerified},
	WithdrawalStatePinVerified: {WithdrawalStateOtpIssued},
	WithdrawalStateOtpIssued:   {WithdrawalStateOtpIssued, WithdrawalStateOtpVerified},
	WithdrawalStateOtpVerified: {WithdrawalStateCompleted},
}

// IsTerminal returns true for states that end the flow.
func (s WithdrawalState) IsTerminal() bool {
	return s == WithdrawalStateCompleted ||
		s == WithdrawalStateFailed ||
		s == WithdrawalStateCancelledByUser
}

// CanTransition reports whether the flow may move from one state to another.
func CanTransition(from, to WithdrawalState) bool {
	if from.IsTerminal() {
		return false
	}
	if to == WithdrawalStateFailed || to == WithdrawalStateCancelledByUser {
		return true
	}
	for _, next := range withdrawalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// WithdrawalSession is the persisted, resumable state of one withdrawal.
// The OTP itself is never stored, only its keyed digest.
type WithdrawalSession struct {
	ID            uuid.UUID       `json:"id"`
	MerchantID    uuid.UUID       `json:"merchant_id"`
	Amount        money.Amount    `json:"amount"`
	State         WithdrawalState `json:"state"`
	OtpDigest     string          `json:"-"`
	OtpExpiresAt  *time.Time      `json:"otp_expires_at,omitempty"`
	OtpAttempts   int             `json:"otp_attempts"`
	OtpResends    int             `json:"otp_resends"`
	FailureReason *string         `json:"failure_reason,omitempty"`
	TransferID    *uuid.UUID      `json:"transfer_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransitionTo moves the session to the next state or returns ErrInvalidTransition.
func (w *WithdrawalSession) TransitionTo(to WithdrawalState, now time.Time) error {
	if !CanTransition(w.State, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.State, to)
	}
	w.State = to
	w.UpdatedAt = now
	return nil
}

// Fail moves the session to FAILED with a reason.
func (w *WithdrawalSession) Fail(reason string, now time.Time) error {
	if err := w.TransitionTo(WithdrawalStateFailed, now); err != nil {
		return err
	}
	w.FailureReason = &reason
	w.OtpDigest = ""
	return nil
}

// OtpExpired reports whether the pending OTP can no longer be accepted.
func (w *WithdrawalSession) OtpExpired(now time.Time) bool {
	return w.OtpExpiresAt == nil || !now.Before(*w.OtpExpiresAt)
}

// IssueOtp records a new OTP digest, replacing and invalidating any prior one.
func (w *WithdrawalSession) IssueOtp(digest string, expiresAt, now time.Time) error {
	if err := w.TransitionTo(WithdrawalStateOtpIssued, now); err != nil {
		return err
	}
	w.OtpDigest = digest
	w.OtpExpiresAt = &expiresAt
	return nil
}

// ConsumeOtp marks the OTP as verified and clears it so it cannot be reused.
func (w *WithdrawalSession) ConsumeOtp(now time.Time) error {
	if err := w.TransitionTo(WithdrawalStateOtpVerified, now); err != nil {
		return err
	}
	w.OtpDigest = ""
	return nil
}
