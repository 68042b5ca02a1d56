package handler

import (
	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/adapter/http/middleware"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/money"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InternalHandler serves the service-to-service endpoints used by
// onboarding and the order service.
type InternalHandler struct {
	accountSvc    ports.AccountService
	settlementSvc ports.SettlementService
}

// NewInternalHandler creates a new InternalHandler.
func NewInternalHandler(accountSvc ports.AccountService, settlementSvc ports.SettlementService) *InternalHandler {
	return &InternalHandler{accountSvc: accountSvc, settlementSvc: settlementSvc}
}

// ProvisionAccount handles POST /internal/v1/accounts. Provisioning an
// existing merchant returns the existing account with 200.
func (h *InternalHandler) ProvisionAccount(c *gin.Context) {
	var req dto.ProvisionAccountRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	mid := uuid.MustParse(req.MerchantID) // validated by binding

	account, created, err := h.accountSvc.ProvisionAccount(c.Request.Context(), mid, req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxMerchantID, mid)
	c.Set(middleware.CtxAuditResourceID, mid.String())
	resp := dto.AccountResponse{
		MerchantID:    account.MerchantID.String(),
		Created:       created,
		HasLinkedBank: account.HasLinkedBank(),
		CreatedAt:     formatTime(account.CreatedAt),
	}
	if created {
		response.Created(c, resp)
		return
	}
	response.OK(c, resp)
}

// SettleOrder handles POST /internal/v1/orders/settled.
func (h *InternalHandler) SettleOrder(c *gin.Context) {
	var req dto.SettleOrderRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	mid := uuid.MustParse(req.MerchantID) // validated by binding

	order := domain.SettledOrder{
		OrderID:              req.OrderID,
		MerchantID:           mid,
		TotalPrice:           money.Amount(req.TotalPrice),
		CommissionPercentage: req.CommissionPercentage,
		IsPaid:               req.IsPaid,
	}
	if req.CreatedAt != nil {
		order.CreatedAt = req.CreatedAt.UTC()
	}

	result, err := h.settlementSvc.SettleOrder(c.Request.Context(), order)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxMerchantID, mid)
	c.Set(middleware.CtxAuditResourceID, result.OrderID)
	response.OK(c, dto.SettlementResponse{
		OrderID:         result.OrderID,
		TransferID:      result.TransferID.String(),
		TotalPrice:      result.Split.Total.Int64(),
		MerchantEarning: result.Split.MerchantEarning.Int64(),
		PlatformEarning: result.Split.PlatformEarning.Int64(),
	})
}
