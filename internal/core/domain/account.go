package domain

import (
	"time"

	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
)

// MerchantAccount holds a merchant's two settlement balances and payout destination.
// Balances change only through the ledger's locked read-validate-write blocks.
type MerchantAccount struct {
	MerchantID    uuid.UUID    `json:"merchant_id"`
	ShopBalance   money.Amount `json:"shop_balance"`
	WalletBalance money.Amount `json:"wallet_balance"`
	LinkedBank    *LinkedBank  `json:"linked_bank,omitempty"`
	PinHash       string       `json:"-"` // Argon2id, never expose
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// HasLinkedBank returns true if a verified payout account is attached.
func (a *MerchantAccount) HasLinkedBank() bool {
	return a.LinkedBank != nil
}

// LinkedBank is a verified external bank account. It is written as a whole
// and only ever replaced by a new linking flow.
type LinkedBank struct {
	BankName           string    `json:"bank_name"`
	BankCode           string    `json:"bank_code"`
	BankID             string    `json:"bank_id"`
	AccountNumberEnc   string    `json:"-"` // AES-256-GCM
	AccountNumberLast4 string    `json:"account_number_last4"`
	AccountName        string    `json:"account_name"`
	VerifiedAt         time.Time `json:"verified_at"`
}

// MaskedAccountNumber renders the account number with all but the last four digits hidden.
func (b *LinkedBank) MaskedAccountNumber() string {
	return "******" + b.AccountNumberLast4
}

// Last4 returns the trailing four characters of an account number.
func Last4(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return accountNumber
	}
	return accountNumber[len(accountNumber)-4:]
}
