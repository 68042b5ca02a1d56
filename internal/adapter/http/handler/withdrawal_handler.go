package handler

import (
	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/adapter/http/middleware"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/money"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler drives the wallet withdrawal flow. Each endpoint acts on
// the merchant's single active session, so a reload can resume from
// GET /withdrawals/current.
type WithdrawalHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(withdrawalSvc ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc}
}

// Start handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) Start(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.StartWithdrawalRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.withdrawalSvc.StartWithdrawal(c.Request.Context(), mid, money.Amount(req.Amount), req.Pin)
	if err != nil {
		// On an OTP delivery failure the session exists and can be resumed
		// with resend-otp; the error tells the client to retry.
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, session.ID.String())
	response.Created(c, toWithdrawalResponse(session))
}

// Current handles GET /api/v1/withdrawals/current.
func (h *WithdrawalHandler) Current(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.withdrawalSvc.GetCurrentWithdrawal(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawalResponse(session))
}

// ResendOtp handles POST /api/v1/withdrawals/current/resend-otp.
func (h *WithdrawalHandler) ResendOtp(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.withdrawalSvc.ResendOtp(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, session.ID.String())
	response.OK(c, toWithdrawalResponse(session))
}

// Confirm handles POST /api/v1/withdrawals/current/confirm.
func (h *WithdrawalHandler) Confirm(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ConfirmWithdrawalRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.withdrawalSvc.ConfirmWithdrawal(c.Request.Context(), mid, req.Otp)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, result.Session.ID.String())
	response.OK(c, dto.WithdrawalConfirmResponse{
		Withdrawal: toWithdrawalResponse(result.Session),
		Transfer:   toTransferResponse(result.Transfer),
	})
}

// Cancel handles DELETE /api/v1/withdrawals/current.
func (h *WithdrawalHandler) Cancel(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.withdrawalSvc.CancelWithdrawal(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, session.ID.String())
	response.OK(c, toWithdrawalResponse(session))
}
