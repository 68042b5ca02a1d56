package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionProvisionAccount    AuditAction = "PROVISION_ACCOUNT"
	AuditActionSettleOrder         AuditAction = "SETTLE_ORDER"
	AuditActionWalletTransfer      AuditAction = "WALLET_TRANSFER"
	AuditActionWithdrawalStart     AuditAction = "WITHDRAWAL_START"
	AuditActionWithdrawalResendOtp AuditAction = "WITHDRAWAL_RESEND_OTP"
	AuditActionWithdrawalConfirm   AuditAction = "WITHDRAWAL_CONFIRM"
	AuditActionWithdrawalCancel    AuditAction = "WITHDRAWAL_CANCEL"
	AuditActionBankLinkStart       AuditAction = "BANK_LINK_START"
	AuditActionBankLinkConfirm     AuditAction = "BANK_LINK_CONFIRM"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	MerchantID   *uuid.UUID  `json:"merchant_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
