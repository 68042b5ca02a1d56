package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"merchant-settlement/internal/core/commission"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/loanscore"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// HashService handles PIN hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// TokenService handles JWT token operations. Tokens are issued by the
// dashboard's identity provider; this service only needs to validate them.
type TokenService interface {
	Generate(merchantID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MerchantID uuid.UUID
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// LinkingAttemptStore keeps verified-but-unlinked bank accounts until they
// are confirmed or expire. Saving replaces the merchant's previous attempt.
type LinkingAttemptStore interface {
	Save(ctx context.Context, attempt *domain.LinkingAttempt, ttl time.Duration) error
	Get(ctx context.Context, merchantID, attemptID uuid.UUID) (*domain.LinkingAttempt, error)
	Delete(ctx context.Context, merchantID uuid.UUID) error
}

// AttemptLimiter throttles secret guesses (PIN, OTP) per merchant.
type AttemptLimiter interface {
	Allow(ctx context.Context, scope string, merchantID uuid.UUID) (bool, error)
}

// AccountResolver looks up the registered holder of a bank account.
// A rejection by the resolver is returned as *domain.ResolutionError;
// any other error means the resolver could not be reached.
type AccountResolver interface {
	ResolveAccountNumber(ctx context.Context, accountNumber, bankCode string) (*domain.ResolvedAccount, error)
}

// OtpSender delivers a one-time code to the merchant's registered channel.
type OtpSender interface {
	SendOtp(ctx context.Context, merchantID uuid.UUID, otp string) error
}

// OtpGenerator produces fresh numeric codes.
type OtpGenerator interface {
	Generate() (string, error)
}

// EventPublisher announces completed ledger movements to downstream processors.
type EventPublisher interface {
	PublishWithdrawalCompleted(ctx context.Context, event WithdrawalCompletedEvent) error
}

// WithdrawalCompletedEvent tells the payout processor to send funds to the bank.
type WithdrawalCompletedEvent struct {
	WithdrawalID       uuid.UUID    `json:"withdrawal_id"`
	TransferID         uuid.UUID    `json:"transfer_id"`
	MerchantID         uuid.UUID    `json:"merchant_id"`
	Amount             money.Amount `json:"amount"`
	BankCode           string       `json:"bank_code"`
	BankID             string       `json:"bank_id"`
	AccountName        string       `json:"account_name"`
	AccountNumberLast4 string       `json:"account_number_last4"`
	CompletedAt        time.Time    `json:"completed_at"`
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// LedgerService applies balance movements. Each call locks the merchant's
// account for the duration of its read-validate-write block.
type LedgerService interface {
	CreditShopAccount(ctx context.Context, merchantID uuid.UUID, amount money.Amount, reference string) (*domain.Transfer, error)
	CreditShopAccountTx(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, amount money.Amount, reference string) (*domain.Transfer, error)
	TransferShopToWallet(ctx context.Context, merchantID uuid.UUID, amount money.Amount) (*domain.Transfer, error)
	DebitWallet(ctx context.Context, merchantID uuid.UUID, amount money.Amount, reference string) (*domain.Transfer, error)
	DebitWalletTx(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, amount money.Amount, reference string) (*domain.Transfer, error)
}

// AccountService exposes merchant account provisioning and read models.
type AccountService interface {
	ProvisionAccount(ctx context.Context, merchantID uuid.UUID, pin string) (*domain.MerchantAccount, bool, error)
	GetBalances(ctx context.Context, merchantID uuid.UUID) (*Balances, error)
	GetLinkedBank(ctx context.Context, merchantID uuid.UUID) (*domain.LinkedBank, error)
	ListTransfers(ctx context.Context, params TransferListParams) ([]domain.Transfer, int64, error)
}

// Balances is the read model behind GetBalances.
type Balances struct {
	MerchantID    uuid.UUID
	ShopBalance   money.Amount
	WalletBalance money.Amount
	Currency      string
}

// WithdrawalService drives the wallet withdrawal state machine and the
// shop-to-wallet transfer.
type WithdrawalService interface {
	TransferToWallet(ctx context.Context, merchantID uuid.UUID, amount money.Amount, pin string) (*domain.Transfer, error)
	StartWithdrawal(ctx context.Context, merchantID uuid.UUID, amount money.Amount, pin string) (*domain.WithdrawalSession, error)
	ResendOtp(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error)
	ConfirmWithdrawal(ctx context.Context, merchantID uuid.UUID, otp string) (*WithdrawalResult, error)
	CancelWithdrawal(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error)
	GetCurrentWithdrawal(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error)
	FailStaleSessions(ctx context.Context) (int64, error)
}

// WithdrawalResult is returned by a successful confirmation.
type WithdrawalResult struct {
	Session  *domain.WithdrawalSession
	Transfer *domain.Transfer
}

// LinkingService drives bank account verification and linking.
type LinkingService interface {
	StartBankLinking(ctx context.Context, req StartLinkingRequest) (*domain.LinkingAttempt, error)
	ConfirmBankLinking(ctx context.Context, merchantID, attemptID uuid.UUID, pin string) (*domain.LinkedBank, error)
}

// StartLinkingRequest holds input for the verification step.
type StartLinkingRequest struct {
	MerchantID   uuid.UUID
	Candidate    domain.BankCandidate
	Pin          string
	ConsentGiven bool
}

// LoanService scores loan eligibility from order history.
type LoanService interface {
	GetLoanEligibility(ctx context.Context, merchantID uuid.UUID) (*LoanEligibility, error)
}

// LoanEligibility pairs the score with the totals it was computed from.
type LoanEligibility struct {
	MerchantID uuid.UUID
	Input      loanscore.Input
	Result     loanscore.Result
	Range      domain.DateRange
}

// SettlementService credits merchants for settled orders.
type SettlementService interface {
	SettleOrder(ctx context.Context, order domain.SettledOrder) (*SettlementResult, error)
	PreviewEarnings(total money.Amount, pct decimal.Decimal) (commission.Split, error)
}

// SettlementResult is the (idempotent) outcome of crediting one order.
type SettlementResult struct {
	OrderID    string           `json:"order_id"`
	TransferID uuid.UUID        `json:"transfer_id"`
	Split      commission.Split `json:"split"`
}
