package domain

import (
	"errors"
	"testing"
	"time"

	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawalState_IsTerminal(t *testing.T) {
	tests := []struct {
		state WithdrawalState
		want  bool
	}{
		{WithdrawalStateAmountEntry, false},
		{WithdrawalStatePinVerified, false},
		{WithdrawalStateOtpIssued, false},
		{WithdrawalStateOtpVerified, false},
		{WithdrawalStateCompleted, true},
		{WithdrawalStateFailed, true},
		{WithdrawalStateCancelledByUser, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.IsTerminal())
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from WithdrawalState
		to   WithdrawalState
		want bool
	}{
		{"amount to pin", WithdrawalStateAmountEntry, WithdrawalStatePinVerified, true},
		{"pin to otp issued", WithdrawalStatePinVerified, WithdrawalStateOtpIssued, true},
		{"resend re-enters otp issued", WithdrawalStateOtpIssued, WithdrawalStateOtpIssued, true},
		{"otp issued to verified", WithdrawalStateOtpIssued, WithdrawalStateOtpVerified, true},
		{"verified to completed", WithdrawalStateOtpVerified, WithdrawalStateCompleted, true},
		{"skip pin", WithdrawalStateAmountEntry, WithdrawalStateOtpIssued, false},
		{"skip otp", WithdrawalStatePinVerified, WithdrawalStateCompleted, false},
		{"issued straight to completed", WithdrawalStateOtpIssued, WithdrawalStateCompleted, false},
		{"backwards", WithdrawalStateOtpVerified, WithdrawalStateOtpIssued, false},
		{"fail from any", WithdrawalStateOtpIssued, WithdrawalStateFailed, true},
		{"cancel from amount entry", WithdrawalStateAmountEntry, WithdrawalStateCancelledByUser, true},
		{"nothing leaves completed", WithdrawalStateCompleted, WithdrawalStateFailed, false},
		{"nothing leaves cancelled", WithdrawalStateCancelledByUser, WithdrawalStateAmountEntry, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestWithdrawalSession_FullPath(t *testing.T) {
	now := time.Now()
	w := &WithdrawalSession{ID: uuid.New(), State: WithdrawalStateAmountEntry}

	require.NoError(t, w.TransitionTo(WithdrawalStatePinVerified, now))
	require.NoError(t, w.IssueOtp("digest-1", now.Add(10*time.Minute), now))
	assert.Equal(t, "digest-1", w.OtpDigest)

	require.NoError(t, w.IssueOtp("digest-2", now.Add(10*time.Minute), now))
	assert.Equal(t, "digest-2", w.OtpDigest, "resend replaces the pending digest")

	require.NoError(t, w.ConsumeOtp(now))
	assert.Empty(t, w.OtpDigest, "consumed otp is cleared")
	require.NoError(t, w.TransitionTo(WithdrawalStateCompleted, now))

	err := w.ConsumeOtp(now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestWithdrawalSession_SkipIsRejected(t *testing.T) {
	w := &WithdrawalSession{State: WithdrawalStatePinVerified}
	err := w.TransitionTo(WithdrawalStateCompleted, time.Now())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, WithdrawalStatePinVerified, w.State)
}

func TestWithdrawalSession_Fail(t *testing.T) {
	w := &WithdrawalSession{State: WithdrawalStateOtpIssued, OtpDigest: "d"}
	require.NoError(t, w.Fail("balance changed", time.Now()))
	assert.Equal(t, WithdrawalStateFailed, w.State)
	require.NotNil(t, w.FailureReason)
	assert.Equal(t, "balance changed", *w.FailureReason)
	assert.Empty(t, w.OtpDigest)
}

func TestWithdrawalSession_OtpExpired(t *testing.T) {
	now := time.Now()
	exp := now.Add(time.Minute)
	w := &WithdrawalSession{OtpExpiresAt: &exp}

	assert.False(t, w.OtpExpired(now))
	assert.True(t, w.OtpExpired(exp))
	assert.True(t, w.OtpExpired(exp.Add(time.Second)))
	assert.True(t, (&WithdrawalSession{}).OtpExpired(now))
}

func TestValidatePinFormat(t *testing.T) {
	assert.NoError(t, ValidatePinFormat("0420"))
	assert.ErrorIs(t, ValidatePinFormat("123"), ErrInvalidPinFormat)
	assert.ErrorIs(t, ValidatePinFormat("12345"), ErrInvalidPinFormat)
	assert.ErrorIs(t, ValidatePinFormat("12a4"), ErrInvalidPinFormat)
	assert.ErrorIs(t, ValidatePinFormat("١٢٣٤"), ErrInvalidPinFormat)
}

func TestValidateAccountNumber(t *testing.T) {
	assert.NoError(t, ValidateAccountNumber("0123456789"))
	assert.ErrorIs(t, ValidateAccountNumber("012345678"), ErrInvalidAccountNumber)
	assert.ErrorIs(t, ValidateAccountNumber("01234567890"), ErrInvalidAccountNumber)
	assert.ErrorIs(t, ValidateAccountNumber("01234-6789"), ErrInvalidAccountNumber)
}

func TestValidateWithdrawalAmount(t *testing.T) {
	min := money.FromMajor(100)
	wallet := money.FromMajor(5000)

	assert.NoError(t, ValidateWithdrawalAmount(money.FromMajor(100), min, wallet))
	assert.NoError(t, ValidateWithdrawalAmount(wallet, min, wallet))
	assert.ErrorIs(t, ValidateWithdrawalAmount(money.FromMajor(99), min, wallet), ErrAmountTooLow)
	assert.ErrorIs(t, ValidateWithdrawalAmount(money.FromMajor(6000), min, wallet), ErrAmountExceedsBalance)
}

func TestValidateWalletTransferAmount(t *testing.T) {
	shop := money.FromMajor(1000)
	assert.NoError(t, ValidateWalletTransferAmount(1, shop))
	assert.ErrorIs(t, ValidateWalletTransferAmount(0, shop), ErrNonPositiveAmount)
	assert.ErrorIs(t, ValidateWalletTransferAmount(shop+1, shop), ErrAmountExceedsBalance)
}

func TestValidateBankCandidate(t *testing.T) {
	good := BankCandidate{BankName: "GTBank", BankCode: "058", AccountNumber: "0123456789"}

	assert.NoError(t, ValidateBankCandidate(good, "1234", true))
	assert.ErrorIs(t, ValidateBankCandidate(good, "1234", false), ErrConsentRequired)
	assert.ErrorIs(t, ValidateBankCandidate(good, "12", true), ErrInvalidPinFormat)

	bad := good
	bad.AccountNumber = "123"
	assert.ErrorIs(t, ValidateBankCandidate(bad, "1234", true), ErrInvalidAccountNumber)

	noCode := good
	noCode.BankCode = ""
	assert.ErrorIs(t, ValidateBankCandidate(noCode, "1234", true), ErrMissingBankCode)
}

func TestLinkingAttempt_ToLinkedBank(t *testing.T) {
	at := time.Now().UTC()
	a := &LinkingAttempt{
		BankName: "GTBank", BankCode: "058", BankID: "bank-1",
		AccountNumberEnc: "enc", AccountNumberLast4: "6789",
		AccountName: "ADA STORES", VerifiedAt: at,
	}
	lb := a.ToLinkedBank()
	assert.Equal(t, "ADA STORES", lb.AccountName)
	assert.Equal(t, "******6789", lb.MaskedAccountNumber())
	assert.Equal(t, at, lb.VerifiedAt)
}

func TestLast4(t *testing.T) {
	assert.Equal(t, "6789", Last4("0123456789"))
	assert.Equal(t, "12", Last4("12"))
}

func TestBuildSettlementKey(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	assert.Equal(t, "settle:550e8400-e29b-41d4-a716-446655440000:ORD-001", BuildSettlementKey(id, "ORD-001"))
}

func TestValidTransferAmount(t *testing.T) {
	assert.True(t, ValidTransferAmount(TransferTypeOrderCredit, 0))
	assert.True(t, ValidTransferAmount(TransferTypeOrderCredit, 1))
	assert.False(t, ValidTransferAmount(TransferTypeOrderCredit, -1))
	assert.False(t, ValidTransferAmount(TransferTypeShopToWallet, 0))
	assert.False(t, ValidTransferAmount(TransferTypeWalletWithdrawal, 0))
	assert.True(t, ValidTransferAmount(TransferTypeWalletWithdrawal, 5))
}

func TestIsValidTransferType(t *testing.T) {
	assert.True(t, IsValidTransferType(TransferTypeShopToWallet))
	assert.False(t, IsValidTransferType("REFUND"))
}
