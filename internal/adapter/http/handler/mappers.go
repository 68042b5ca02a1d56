package handler

import (
	"errors"
	"time"

	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/adapter/http/middleware"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// bindJSON binds and sanitizes a request body. Failures of the PIN and
// account number rules keep their dedicated error codes.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.Tag() {
				case "pin4":
					return apperror.ErrInvalidPinFormat()
				case "nuban":
					return apperror.ErrInvalidAccountNumber()
				}
			}
		}
		return apperror.Validation(err.Error())
	}
	dto.SanitizeStruct(req)
	return nil
}

// merchantID returns the authenticated merchant or aborts with AUTH_003.
func merchantID(c *gin.Context) (uuid.UUID, error) {
	id, ok := middleware.MerchantID(c)
	if !ok {
		return uuid.Nil, apperror.ErrInvalidToken()
	}
	return id, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toTransferResponse(t *domain.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:                 t.ID.String(),
		Type:               string(t.Type),
		Amount:             t.Amount.Int64(),
		Reference:          t.Reference,
		ShopBalanceAfter:   t.ShopBalanceAfter.Int64(),
		WalletBalanceAfter: t.WalletBalanceAfter.Int64(),
		CreatedAt:          formatTime(t.CreatedAt),
	}
}

func toWithdrawalResponse(s *domain.WithdrawalSession) dto.WithdrawalResponse {
	resp := dto.WithdrawalResponse{
		ID:            s.ID.String(),
		Amount:        s.Amount.Int64(),
		State:         string(s.State),
		OtpAttempts:   s.OtpAttempts,
		OtpResends:    s.OtpResends,
		FailureReason: s.FailureReason,
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
	if s.OtpExpiresAt != nil {
		exp := formatTime(*s.OtpExpiresAt)
		resp.OtpExpiresAt = &exp
	}
	if s.TransferID != nil {
		id := s.TransferID.String()
		resp.TransferID = &id
	}
	return resp
}

func toLinkedBankResponse(b *domain.LinkedBank) dto.LinkedBankResponse {
	return dto.LinkedBankResponse{
		BankName:            b.BankName,
		BankCode:            b.BankCode,
		AccountName:         b.AccountName,
		MaskedAccountNumber: b.MaskedAccountNumber(),
		VerifiedAt:          formatTime(b.VerifiedAt),
	}
}
