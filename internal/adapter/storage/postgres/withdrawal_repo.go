package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, merchant_id, amount, state, otp_digest, otp_expires_at, otp_attempts, otp_resends,
		failure_reason, transfer_id, created_at, updated_at`

// activeStates restricts a query to sessions that have not reached a terminal state.
const activeStates = `state NOT IN ('COMPLETED', 'FAILED', 'CANCELLED_BY_USER')`

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

// Create inserts a new session. The partial unique index on active sessions
// turns a second concurrent session into domain.ErrActiveWithdrawalExists.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.WithdrawalSession) error {
	query := `INSERT INTO withdrawal_sessions (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		s.ID, s.MerchantID, s.Amount, s.State, s.OtpDigest, s.OtpExpiresAt,
		s.OtpAttempts, s.OtpResends, s.FailureReason, s.TransferID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert withdrawal session: %w", domain.ErrActiveWithdrawalExists)
		}
		return fmt.Errorf("insert withdrawal session: %w", err)
	}
	return nil
}

// GetActive returns the merchant's non-terminal session, or nil.
func (r *WithdrawalRepo) GetActive(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_sessions
		WHERE merchant_id = $1 AND ` + activeStates

	s, err := scanWithdrawal(r.pool.QueryRow(ctx, query, merchantID))
	if err != nil {
		return nil, fmt.Errorf("get active withdrawal: %w", err)
	}
	return s, nil
}

// GetActiveForUpdate returns the merchant's non-terminal session with a row lock.
// This MUST be called within a transaction.
func (r *WithdrawalRepo) GetActiveForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (*domain.WithdrawalSession, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_sessions
		WHERE merchant_id = $1 AND ` + activeStates + ` FOR UPDATE`

	s, err := scanWithdrawal(tx.QueryRow(ctx, query, merchantID))
	if err != nil {
		return nil, fmt.Errorf("get active withdrawal for update: %w", err)
	}
	return s, nil
}

// Update persists every mutable field of the session.
func (r *WithdrawalRepo) Update(ctx context.Context, tx pgx.Tx, s *domain.WithdrawalSession) error {
	query := `UPDATE withdrawal_sessions SET state = $1, otp_digest = $2, otp_expires_at = $3, otp_attempts = $4,
		otp_resends = $5, failure_reason = $6, transfer_id = $7, updated_at = $8
		WHERE id = $9`

	tag, err := tx.Exec(ctx, query,
		s.State, s.OtpDigest, s.OtpExpiresAt, s.OtpAttempts,
		s.OtpResends, s.FailureReason, s.TransferID, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update withdrawal session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal session not found: %s", s.ID)
	}
	return nil
}

// FailStale moves abandoned sessions to FAILED and returns how many were touched.
func (r *WithdrawalRepo) FailStale(ctx context.Context, cutoff time.Time, reason string) (int64, error) {
	query := `UPDATE withdrawal_sessions SET state = 'FAILED', failure_reason = $1, otp_digest = '', updated_at = NOW()
		WHERE ` + activeStates + ` AND updated_at < $2`

	tag, err := r.pool.Exec(ctx, query, reason, cutoff)
	if err != nil {
		return 0, fmt.Errorf("fail stale withdrawals: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalSession, error) {
	s := &domain.WithdrawalSession{}
	err := row.Scan(
		&s.ID, &s.MerchantID, &s.Amount, &s.State, &s.OtpDigest, &s.OtpExpiresAt,
		&s.OtpAttempts, &s.OtpResends, &s.FailureReason, &s.TransferID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}
