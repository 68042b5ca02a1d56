package domain

import (
	"time"

	"github.com/google/uuid"
)

// BankCandidate is the bank account a merchant asks to link.
type BankCandidate struct {
	BankName      string
	BankCode      string
	AccountNumber string
}

// ResolvedAccount is what the external account resolver returns for a candidate.
type ResolvedAccount struct {
	AccountName string
	BankID      string
}

// LinkingAttempt is a verified but not yet linked bank account. It lives in
// a TTL store and never touches MerchantAccount until confirmed.
type LinkingAttempt struct {
	ID                 uuid.UUID `json:"id"`
	MerchantID         uuid.UUID `json:"merchant_id"`
	BankName           string    `json:"bank_name"`
	BankCode           string    `json:"bank_code"`
	AccountNumberEnc   string    `json:"account_number_enc"`
	AccountNumberLast4 string    `json:"account_number_last4"`
	AccountName        string    `json:"account_name"`
	BankID             string    `json:"bank_id"`
	PinDigest          string    `json:"pin_digest"` // HMAC of the PIN used at verification
	ConsentGiven       bool      `json:"consent_given"`
	VerifiedAt         time.Time `json:"verified_at"`
	ExpiresAt          time.Time `json:"expires_at"`
}

// ToLinkedBank builds the durable link written on confirmation.
func (a *LinkingAttempt) ToLinkedBank() *LinkedBank {
	return &LinkedBank{
		BankName:           a.BankName,
		BankCode:           a.BankCode,
		BankID:             a.BankID,
		AccountNumberEnc:   a.AccountNumberEnc,
		AccountNumberLast4: a.AccountNumberLast4,
		AccountName:        a.AccountName,
		VerifiedAt:         a.VerifiedAt,
	}
}

// ResolutionError is a rejection returned by the account resolver. Its
// message is shown to the merchant unchanged.
type ResolutionError struct {
	Message string
}

func (e *ResolutionError) Error() string {
	return e.Message
}
