package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxAuditResourceID lets a handler name the resource it created or changed.
const CtxAuditResourceID = "audit_resource_id"

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and route templates to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var merchantID *uuid.UUID
		if id, ok := MerchantID(c); ok {
			merchantID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(response.CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			MerchantID:   merchantID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxAuditResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/internal/v1/accounts" && method == http.MethodPost:
		return domain.AuditActionProvisionAccount, "account"
	case route == "/internal/v1/orders/settled" && method == http.MethodPost:
		return domain.AuditActionSettleOrder, "order"
	case route == "/api/v1/wallet/transfers" && method == http.MethodPost:
		return domain.AuditActionWalletTransfer, "transfer"
	case route == "/api/v1/withdrawals" && method == http.MethodPost:
		return domain.AuditActionWithdrawalStart, "withdrawal"
	case route == "/api/v1/withdrawals/current/resend-otp" && method == http.MethodPost:
		return domain.AuditActionWithdrawalResendOtp, "withdrawal"
	case route == "/api/v1/withdrawals/current/confirm" && method == http.MethodPost:
		return domain.AuditActionWithdrawalConfirm, "withdrawal"
	case route == "/api/v1/withdrawals/current" && method == http.MethodDelete:
		return domain.AuditActionWithdrawalCancel, "withdrawal"
	case route == "/api/v1/bank-links" && method == http.MethodPost:
		return domain.AuditActionBankLinkStart, "bank_link"
	case route == "/api/v1/bank-links/:attempt_id/confirm" && method == http.MethodPost:
		return domain.AuditActionBankLinkConfirm, "bank_link"
	}
	return "", ""
}
