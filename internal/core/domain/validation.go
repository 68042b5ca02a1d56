package domain

import (
	"errors"

	"merchant-settlement/pkg/money"
)

// Validation failures shared by every entry point that accepts money movement
// or bank details.
var (
	ErrAmountTooLow          = errors.New("amount below minimum")
	ErrAmountExceedsBalance  = errors.New("amount exceeds balance")
	ErrNonPositiveAmount     = errors.New("amount must be positive")
	ErrNegativeAmount        = errors.New("amount must not be negative")
	ErrInvalidPinFormat      = errors.New("pin must be exactly 4 digits")
	ErrInvalidAccountNumber  = errors.New("account number must be exactly 10 digits")
	ErrConsentRequired       = errors.New("ownership consent required")
	ErrMissingBankCode       = errors.New("bank code required")
	ErrInvalidTransition     = errors.New("invalid withdrawal transition")
	ErrInvalidCommissionRate = errors.New("commission percentage out of range")
)

// Storage-level conflicts surfaced by repositories.
var (
	ErrBalanceInvariant       = errors.New("balance would become negative")
	ErrActiveWithdrawalExists = errors.New("active withdrawal session exists")
	ErrDuplicateKey           = errors.New("duplicate key")
	ErrInvalidTransferAmount  = errors.New("transfer amount out of range for its type")
)

const (
	PinLength           = 4
	AccountNumberLength = 10
)

// ValidatePinFormat checks that pin is exactly four ASCII digits.
func ValidatePinFormat(pin string) error {
	if !isDigits(pin, PinLength) {
		return ErrInvalidPinFormat
	}
	return nil
}

// ValidateAccountNumber checks that n is exactly ten ASCII digits.
func ValidateAccountNumber(n string) error {
	if !isDigits(n, AccountNumberLength) {
		return ErrInvalidAccountNumber
	}
	return nil
}

// ValidateWithdrawalAmount enforces min <= amount <= walletBalance.
func ValidateWithdrawalAmount(amount, min, walletBalance money.Amount) error {
	if amount < min {
		return ErrAmountTooLow
	}
	if amount > walletBalance {
		return ErrAmountExceedsBalance
	}
	return nil
}

// ValidateWalletTransferAmount enforces 0 < amount <= shopBalance.
func ValidateWalletTransferAmount(amount, shopBalance money.Amount) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > shopBalance {
		return ErrAmountExceedsBalance
	}
	return nil
}

// ValidateBankCandidate checks the linking inputs before any external call.
func ValidateBankCandidate(c BankCandidate, pin string, consent bool) error {
	if err := ValidateAccountNumber(c.AccountNumber); err != nil {
		return err
	}
	if c.BankCode == "" {
		return ErrMissingBankCode
	}
	if err := ValidatePinFormat(pin); err != nil {
		return err
	}
	if !consent {
		return ErrConsentRequired
	}
	return nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
