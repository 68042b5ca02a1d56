package handler

import (
	"math"
	"strconv"

	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/money"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles balance, payout account and transfer history endpoints.
type AccountHandler struct {
	accountSvc     ports.AccountService
	currencySymbol string
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService, currencySymbol string) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc, currencySymbol: currencySymbol}
}

// GetBalances handles GET /api/v1/accounts/me/balances.
func (h *AccountHandler) GetBalances(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	balances, err := h.accountSvc.GetBalances(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalancesResponse{
		ShopBalance:          balances.ShopBalance.Int64(),
		ShopBalanceDisplay:   money.Format(balances.ShopBalance, h.currencySymbol),
		WalletBalance:        balances.WalletBalance.Int64(),
		WalletBalanceDisplay: money.Format(balances.WalletBalance, h.currencySymbol),
		Currency:             balances.Currency,
	})
}

// GetLinkedBank handles GET /api/v1/accounts/me/bank.
func (h *AccountHandler) GetLinkedBank(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bank, err := h.accountSvc.GetLinkedBank(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}
	if bank == nil {
		response.Error(c, apperror.ErrNotFound("linked bank account"))
		return
	}

	response.OK(c, toLinkedBankResponse(bank))
}

// ListTransfers handles GET /api/v1/transfers.
func (h *AccountHandler) ListTransfers(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.TransferListParams{
		MerchantID: mid,
		Page:       page,
		PageSize:   pageSize,
	}

	if t := c.Query("type"); t != "" {
		transferType := domain.TransferType(t)
		params.Type = &transferType
	}
	if f := c.Query("from"); f != "" {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("from must be a unix timestamp"))
			return
		}
		params.From = &v
	}
	if t := c.Query("to"); t != "" {
		v, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("to must be a unix timestamp"))
			return
		}
		params.To = &v
	}

	transfers, total, err := h.accountSvc.ListTransfers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransferResponse, 0, len(transfers))
	for i := range transfers {
		items = append(items, toTransferResponse(&transfers[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	response.OK(c, dto.TransferListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}
