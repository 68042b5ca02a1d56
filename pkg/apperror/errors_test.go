package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PAY_001", "Insufficient balance", http.StatusUnprocessableEntity),
			expected: "[PAY_001] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("PAY_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestErrorCatalogue(t *testing.T) {
	inner := errors.New("boom")
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
		kind       Kind
	}{
		{"InvalidServiceCredentials", ErrInvalidServiceCredentials(), "SEC_001", 401, KindAuthorization},
		{"NonceUsed", ErrNonceUsed(), "SEC_004", 403, KindAuthorization},
		{"AmountTooLow", ErrAmountTooLow("100.00"), "VAL_001", 422, KindValidation},
		{"AmountExceedsBalance", ErrAmountExceedsBalance(), "VAL_002", 422, KindValidation},
		{"InvalidPinFormat", ErrInvalidPinFormat(), "VAL_003", 400, KindValidation},
		{"InvalidAccountNumber", ErrInvalidAccountNumber(), "VAL_004", 400, KindValidation},
		{"ConsentRequired", ErrConsentRequired(), "VAL_005", 400, KindValidation},
		{"InvalidCommission", ErrInvalidCommission(), "VAL_006", 400, KindValidation},
		{"InsufficientFunds", ErrInsufficientFunds(), "PAY_001", 422, KindValidation},
		{"DuplicateTransaction", ErrDuplicateTransaction(), "PAY_003", 409, KindConflict},
		{"NotFound", ErrNotFound("Account"), "PAY_004", 404, KindValidation},
		{"InvalidPin", ErrInvalidPin(), "PIN_001", 401, KindAuthorization},
		{"OtpMismatch", ErrOtpMismatch(), "OTP_001", 401, KindAuthorization},
		{"OtpExpired", ErrOtpExpired(), "OTP_002", 401, KindAuthorization},
		{"OtpAttemptsExhausted", ErrOtpAttemptsExhausted(), "OTP_003", 409, KindConflict},
		{"WithdrawalInProgress", ErrWithdrawalInProgress(), "WD_001", 409, KindConflict},
		{"BalanceChanged", ErrBalanceChanged(), "WD_004", 409, KindConflict},
		{"AccountResolution", ErrAccountResolution("account not found"), "LINK_002", 422, KindValidation},
		{"TooManyAttempts", ErrTooManyAttempts(), "RATE_002", 429, KindAuthorization},
		{"ResolverUnavailable", ErrResolverUnavailable(inner), "EXT_001", 503, KindExternal},
		{"OtpDeliveryFailed", ErrOtpDeliveryFailed(inner), "EXT_002", 502, KindExternal},
		{"InvariantViolation", ErrInvariantViolation(inner), "SYS_004", 500, KindInvariant},
		{"Internal", InternalError(inner), "SYS_001", 500, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.kind, tt.err.Kind)
		})
	}
}

func TestAppError_Retryable(t *testing.T) {
	assert.True(t, ErrResolverUnavailable(nil).Retryable())
	assert.True(t, ErrOtpDeliveryFailed(nil).Retryable())
	assert.False(t, ErrInvalidPin().Retryable())
	assert.False(t, ErrBalanceChanged().Retryable())
}

func TestAccountResolution_KeepsMessageVerbatim(t *testing.T) {
	err := ErrAccountResolution("Account not found for bank 058")
	assert.Equal(t, "Account not found for bank 058", err.Message)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrOtpMismatch())
	assert.Equal(t, KindAuthorization, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Merchant account")
	assert.Contains(t, err.Message, "Merchant account")
	assert.Equal(t, "PAY_004", err.Code)
}
