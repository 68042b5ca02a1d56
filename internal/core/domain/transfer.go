package domain

import (
	"time"

	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
)

// TransferType represents the kind of ledger movement.
type TransferType string

const (
	TransferTypeOrderCredit      TransferType = "ORDER_CREDIT"
	TransferTypeShopToWallet     TransferType = "SHOP_TO_WALLET"
	TransferTypeWalletWithdrawal TransferType = "WALLET_WITHDRAWAL"
)

// Transfer is an append-only ledger record. Balance snapshots are taken
// inside the same transaction that applied the movement.
type Transfer struct {
	ID                 uuid.UUID    `json:"id"`
	MerchantID         uuid.UUID    `json:"merchant_id"`
	Type               TransferType `json:"type"`
	Amount             money.Amount `json:"amount"`
	Reference          string       `json:"reference"`
	ShopBalanceAfter   money.Amount `json:"shop_balance_after"`
	WalletBalanceAfter money.Amount `json:"wallet_balance_after"`
	CreatedAt          time.Time    `json:"created_at"`
}

// ValidTransferAmount reports whether amount may be recorded for kind. Only
// an order credit may be zero: a fully commissioned order still settles.
func ValidTransferAmount(kind TransferType, amount money.Amount) bool {
	if kind == TransferTypeOrderCredit {
		return amount >= 0
	}
	return amount > 0
}

// IsValidTransferType reports whether t names a known transfer type.
func IsValidTransferType(t TransferType) bool {
	switch t {
	case TransferTypeOrderCredit, TransferTypeShopToWallet, TransferTypeWalletWithdrawal:
		return true
	}
	return false
}
