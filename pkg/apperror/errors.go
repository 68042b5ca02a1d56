package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the caller: whether it is fixable by the user,
// retryable, or a sign of a bug.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindConflict      Kind = "conflict"
	KindExternal      Kind = "external"
	KindInvariant     Kind = "invariant"
	KindInternal      Kind = "internal"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Kind       Kind   `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same request may succeed if sent again unchanged.
func (e *AppError) Retryable() bool {
	return e.Kind == KindExternal
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Kind:       kindFor(httpStatus),
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Kind:       kindFor(httpStatus),
		Err:        err,
	}
}

func (e *AppError) withKind(k Kind) *AppError {
	e.Kind = k
	return e
}

func kindFor(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden || status == http.StatusTooManyRequests:
		return KindAuthorization
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		return KindExternal
	case status >= http.StatusInternalServerError:
		return KindInternal
	default:
		return KindValidation
	}
}

// KindOf returns the Kind of err, or KindInternal for non-AppError values.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidServiceCredentials() *AppError {
	return New("SEC_001", "Missing or unknown service credentials", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Request timestamp expired", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("SEC_004", "Nonce has already been used", http.StatusForbidden)
}

// ---- Validation (VAL) ----

func ErrAmountTooLow(min string) *AppError {
	return New("VAL_001", fmt.Sprintf("Amount must be at least %s", min), http.StatusUnprocessableEntity)
}

func ErrAmountExceedsBalance() *AppError {
	return New("VAL_002", "Amount exceeds available balance", http.StatusUnprocessableEntity)
}

func ErrInvalidPinFormat() *AppError {
	return New("VAL_003", "PIN must be exactly 4 digits", http.StatusBadRequest)
}

func ErrInvalidAccountNumber() *AppError {
	return New("VAL_004", "Account number must be exactly 10 digits", http.StatusBadRequest)
}

func ErrConsentRequired() *AppError {
	return New("VAL_005", "Account ownership consent is required", http.StatusBadRequest)
}

func ErrInvalidCommission() *AppError {
	return New("VAL_006", "Commission percentage must be between 0 and 100", http.StatusBadRequest)
}

// ---- Ledger (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New("PAY_001", "Insufficient balance", http.StatusUnprocessableEntity)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrDuplicateTransaction() *AppError {
	return New("PAY_003", "Duplicate transaction", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("PAY_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- PIN & OTP (PIN, OTP) ----

func ErrInvalidPin() *AppError {
	return New("PIN_001", "Invalid PIN", http.StatusUnauthorized)
}

func ErrOtpMismatch() *AppError {
	return New("OTP_001", "Invalid OTP", http.StatusUnauthorized)
}

func ErrOtpExpired() *AppError {
	return New("OTP_002", "OTP has expired, request a new one", http.StatusUnauthorized)
}

func ErrOtpAttemptsExhausted() *AppError {
	return New("OTP_003", "Too many invalid OTP attempts, start a new withdrawal", http.StatusConflict)
}

func ErrOtpResendsExhausted() *AppError {
	return New("OTP_004", "OTP resend limit reached, start a new withdrawal", http.StatusConflict)
}

// ---- Withdrawal (WD) ----

func ErrWithdrawalInProgress() *AppError {
	return New("WD_001", "A withdrawal is already in progress", http.StatusConflict)
}

func ErrNoActiveWithdrawal() *AppError {
	return New("WD_002", "No active withdrawal", http.StatusNotFound)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New("WD_003", fmt.Sprintf("Cannot move withdrawal from %s to %s", from, to), http.StatusConflict)
}

func ErrBalanceChanged() *AppError {
	return New("WD_004", "Balance changed, start a new withdrawal", http.StatusConflict)
}

func ErrNoLinkedBank() *AppError {
	return New("WD_005", "Link a bank account before withdrawing", http.StatusUnprocessableEntity)
}

// ---- Bank linking (LINK) ----

func ErrLinkingAttemptNotFound() *AppError {
	return New("LINK_001", "Bank linking attempt not found or expired", http.StatusNotFound)
}

// ErrAccountResolution carries the resolver's message verbatim.
func ErrAccountResolution(message string) *AppError {
	return New("LINK_002", message, http.StatusUnprocessableEntity)
}

func ErrLinkingPinMismatch() *AppError {
	return New("LINK_003", "PIN does not match the one used for verification", http.StatusUnauthorized)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrTooManyAttempts() *AppError {
	return New("RATE_002", "Too many attempts, try again later", http.StatusTooManyRequests)
}

// ---- External dependencies (EXT) ----

func ErrResolverUnavailable(err error) *AppError {
	return Wrap("EXT_001", "Account verification is temporarily unavailable, please retry", http.StatusServiceUnavailable, err)
}

func ErrOtpDeliveryFailed(err error) *AppError {
	return Wrap("EXT_002", "Could not send OTP, please retry", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// ErrInvariantViolation signals a state that the ledger should have made impossible.
func ErrInvariantViolation(err error) *AppError {
	return Wrap("SYS_004", "Internal consistency error", http.StatusInternalServerError, err).withKind(KindInvariant)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New("PAY_002", message, http.StatusBadRequest)
}
