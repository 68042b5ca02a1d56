package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProvisionAccountRequest is the onboarding service's request to open a
// merchant's settlement account.
type ProvisionAccountRequest struct {
	MerchantID string `json:"merchant_id" binding:"required,uuid"`
	Pin        string `json:"pin" binding:"required,pin4"`
}

// AccountResponse describes a provisioned account.
type AccountResponse struct {
	MerchantID    string `json:"merchant_id"`
	Created       bool   `json:"created"`
	HasLinkedBank bool   `json:"has_linked_bank"`
	CreatedAt     string `json:"created_at"`
}

// SettleOrderRequest is a paid order handed over by the order service.
type SettleOrderRequest struct {
	OrderID              string          `json:"order_id" binding:"required,max=100,safe_id"`
	MerchantID           string          `json:"merchant_id" binding:"required,uuid"`
	TotalPrice           int64           `json:"total_price" binding:"min=0"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	IsPaid               bool            `json:"is_paid"`
	CreatedAt            *time.Time      `json:"created_at"` // defaults to the time of settlement
}

// SettlementResponse is the result of settling one order.
type SettlementResponse struct {
	OrderID         string `json:"order_id"`
	TransferID      string `json:"transfer_id"`
	TotalPrice      int64  `json:"total_price"`
	MerchantEarning int64  `json:"merchant_earning"`
	PlatformEarning int64  `json:"platform_earning"`
}

// BalancesResponse is the response for the balance query.
type BalancesResponse struct {
	ShopBalance          int64  `json:"shop_balance"`
	ShopBalanceDisplay   string `json:"shop_balance_display"`
	WalletBalance        int64  `json:"wallet_balance"`
	WalletBalanceDisplay string `json:"wallet_balance_display"`
	Currency             string `json:"currency"`
}

// LinkedBankResponse describes the merchant's payout account.
type LinkedBankResponse struct {
	BankName            string `json:"bank_name"`
	BankCode            string `json:"bank_code"`
	AccountName         string `json:"account_name"`
	MaskedAccountNumber string `json:"account_number"`
	VerifiedAt          string `json:"verified_at"`
}

// WalletTransferRequest moves funds from the shop balance to the wallet.
type WalletTransferRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Pin    string `json:"pin" binding:"required,pin4"`
}

// TransferResponse is one ledger movement.
type TransferResponse struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Amount             int64  `json:"amount"`
	Reference          string `json:"reference"`
	ShopBalanceAfter   int64  `json:"shop_balance_after"`
	WalletBalanceAfter int64  `json:"wallet_balance_after"`
	CreatedAt          string `json:"created_at"`
}

// TransferListResponse wraps a paginated transfer list.
type TransferListResponse struct {
	Items      []TransferResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// StartWithdrawalRequest opens a withdrawal session.
type StartWithdrawalRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Pin    string `json:"pin" binding:"required,pin4"`
}

// ConfirmWithdrawalRequest carries the OTP sent to the merchant.
type ConfirmWithdrawalRequest struct {
	Otp string `json:"otp" binding:"required,len=6,numeric"`
}

// WithdrawalResponse is the resumable view of a withdrawal session.
type WithdrawalResponse struct {
	ID            string  `json:"id"`
	Amount        int64   `json:"amount"`
	State         string  `json:"state"`
	OtpExpiresAt  *string `json:"otp_expires_at,omitempty"`
	OtpAttempts   int     `json:"otp_attempts"`
	OtpResends    int     `json:"otp_resends"`
	FailureReason *string `json:"failure_reason,omitempty"`
	TransferID    *string `json:"transfer_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// WithdrawalConfirmResponse is returned once funds leave the wallet.
type WithdrawalConfirmResponse struct {
	Withdrawal WithdrawalResponse `json:"withdrawal"`
	Transfer   TransferResponse   `json:"transfer"`
}

// StartBankLinkRequest asks to verify a bank account before linking it.
type StartBankLinkRequest struct {
	BankName      string `json:"bank_name" binding:"required,max=100"`
	BankCode      string `json:"bank_code" binding:"required,max=20,safe_id"`
	AccountNumber string `json:"account_number" binding:"required,nuban"`
	Pin           string `json:"pin" binding:"required,pin4"`
	ConsentGiven  bool   `json:"consent_given"`
}

// LinkingAttemptResponse shows the verified account holder for confirmation.
type LinkingAttemptResponse struct {
	AttemptID           string `json:"attempt_id"`
	BankName            string `json:"bank_name"`
	BankCode            string `json:"bank_code"`
	AccountName         string `json:"account_name"`
	MaskedAccountNumber string `json:"account_number"`
	ExpiresAt           string `json:"expires_at"`
}

// ConfirmBankLinkRequest repeats the PIN used at verification.
type ConfirmBankLinkRequest struct {
	Pin string `json:"pin" binding:"required,pin4"`
}

// LoanEligibilityResponse is the loan offer and the totals behind it.
type LoanEligibilityResponse struct {
	Score                string `json:"score"`
	Tier                 string `json:"tier"`
	MaxLoanAmount        int64  `json:"max_loan_amount"`
	MaxLoanAmountDisplay string `json:"max_loan_amount_display"`
	TotalVolume          int64  `json:"total_volume"`
	TotalEarnings        int64  `json:"total_earnings"`
	TotalCommissions     int64  `json:"total_commissions"`
	TransactionCount     int64  `json:"transaction_count"`
	From                 string `json:"from"`
	To                   string `json:"to"`
}

// EarningsPreviewResponse is the split a settlement would apply.
type EarningsPreviewResponse struct {
	Total                int64  `json:"total"`
	CommissionPercentage string `json:"commission_percentage"`
	MerchantEarning      int64  `json:"merchant_earning"`
	PlatformEarning      int64  `json:"platform_earning"`
}
