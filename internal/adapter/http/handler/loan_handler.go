package handler

import (
	"strconv"
	"strings"

	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/money"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LoanHandler serves loan eligibility and the earnings preview.
type LoanHandler struct {
	loanSvc        ports.LoanService
	settlementSvc  ports.SettlementService
	currencySymbol string
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanSvc ports.LoanService, settlementSvc ports.SettlementService, currencySymbol string) *LoanHandler {
	return &LoanHandler{loanSvc: loanSvc, settlementSvc: settlementSvc, currencySymbol: currencySymbol}
}

// GetEligibility handles GET /api/v1/loans/eligibility.
func (h *LoanHandler) GetEligibility(c *gin.Context) {
	mid, err := merchantID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	elig, err := h.loanSvc.GetLoanEligibility(c.Request.Context(), mid)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoanEligibilityResponse{
		Score:                elig.Result.Score.StringFixed(2),
		Tier:                 string(elig.Result.Tier),
		MaxLoanAmount:        elig.Result.MaxLoanAmount.Int64(),
		MaxLoanAmountDisplay: money.Format(elig.Result.MaxLoanAmount, h.currencySymbol),
		TotalVolume:          elig.Input.TotalVolume.Int64(),
		TotalEarnings:        elig.Input.TotalEarnings.Int64(),
		TotalCommissions:     elig.Input.TotalCommissions.Int64(),
		TransactionCount:     elig.Input.TransactionCount,
		From:                 formatTime(elig.Range.From),
		To:                   formatTime(elig.Range.To),
	})
}

// PreviewEarnings handles GET /api/v1/earnings/preview?total=&commission_percentage=.
// A missing or empty total previews as 0.
func (h *LoanHandler) PreviewEarnings(c *gin.Context) {
	var total int64
	if raw := strings.TrimSpace(c.Query("total")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, apperror.ErrInvalidAmount())
			return
		}
		total = parsed
	}
	pct, err := decimal.NewFromString(c.Query("commission_percentage"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidCommission())
		return
	}

	split, err := h.settlementSvc.PreviewEarnings(money.Amount(total), pct)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EarningsPreviewResponse{
		Total:                split.Total.Int64(),
		CommissionPercentage: pct.String(),
		MerchantEarning:      split.MerchantEarning.Int64(),
		PlatformEarning:      split.PlatformEarning.Int64(),
	})
}
