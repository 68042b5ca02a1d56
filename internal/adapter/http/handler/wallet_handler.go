package handler

import (
	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/adapter/http/middleware"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/money"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles shop-to-wallet transfers.
type WalletHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(withdrawalSvc ports.WithdrawalService) *WalletHandler {
	return &WalletHandler{withdrawalSvc: withdrawalSvc}
}

// TransferToWallet handles POST /api/v1/wallet/transfers.
func (h *WalletHandler) TransferToWallet(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.WalletTransferRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	transfer, err := h.withdrawalSvc.TransferToWallet(c.Request.Context(), mid, money.Amount(req.Amount), req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResourceID, transfer.ID.String())
	response.Created(c, toTransferResponse(transfer))
}
