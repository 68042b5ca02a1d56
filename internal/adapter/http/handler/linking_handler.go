package handler

import (
	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/adapter/http/middleware"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LinkingHandler handles bank account verification and linking.
type LinkingHandler struct {
	linkingSvc ports.LinkingService
}

// NewLinkingHandler creates a new LinkingHandler.
func NewLinkingHandler(linkingSvc ports.LinkingService) *LinkingHandler {
	return &LinkingHandler{linkingSvc: linkingSvc}
}

// Start handles POST /api/v1/bank-links.
func (h *LinkingHandler) Start(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.StartBankLinkRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	attempt, err := h.linkingSvc.StartBankLinking(c.Request.Context(), ports.StartLinkingRequest{
		MerchantID: mid,
		Candidate: domain.BankCandidate{
			BankName:      req.BankName,
			BankCode:      req.BankCode,
			AccountNumber: req.AccountNumber,
		},
		Pin:          req.Pin,
		ConsentGiven: req.ConsentGiven,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, attempt.ID.String())
	response.Created(c, dto.LinkingAttemptResponse{
		AttemptID:           attempt.ID.String(),
		BankName:            attempt.BankName,
		BankCode:            attempt.BankCode,
		AccountName:         attempt.AccountName,
		MaskedAccountNumber: attempt.ToLinkedBank().MaskedAccountNumber(),
		ExpiresAt:           formatTime(attempt.ExpiresAt),
	})
}

// Confirm handles POST /api/v1/bank-links/:attempt_id/confirm.
func (h *LinkingHandler) Confirm(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	attemptID, err := uuid.Parse(c.Param("attempt_id"))
	if err != nil {
		response.Error(c, apperror.ErrLinkingAttemptNotFound())
		return
	}

	var req dto.ConfirmBankLinkRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	bank, err := h.linkingSvc.ConfirmBankLinking(c.Request.Context(), mid, attemptID, req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, attemptID.String())
	response.OK(c, toLinkedBankResponse(bank))
}
