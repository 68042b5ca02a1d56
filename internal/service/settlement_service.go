package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"merchant-settlement/internal/core/commission"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/money"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const idempotencyTTL = 24 * time.Hour

// SettlementServiceImpl credits merchants for paid orders exactly once.
type SettlementServiceImpl struct {
	ledger     ports.LedgerService
	orders     ports.OrderRepository
	idempRepo  ports.IdempotencyRepository
	idempCache ports.IdempotencyCache
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	ledger ports.LedgerService,
	orders ports.OrderRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		ledger:     ledger,
		orders:     orders,
		idempRepo:  idempRepo,
		idempCache: idempCache,
		transactor: transactor,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SettleOrder credits the merchant's earning from order to the shop balance.
// Settling the same order again returns the first result without moving money.
func (s *SettlementServiceImpl) SettleOrder(ctx context.Context, order domain.SettledOrder) (*ports.SettlementResult, error) {
	if strings.TrimSpace(order.OrderID) == "" {
		return nil, apperror.Validation("order_id is required")
	}
	if !order.IsPaid {
		return nil, apperror.Validation("order is not paid")
	}
	split, err := commission.Compute(order.TotalPrice, order.CommissionPercentage)
	if err != nil {
		return nil, validationError(err)
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now()
	}

	idempKey := domain.BuildSettlementKey(order.MerchantID, order.OrderID)

	// Layer 1: Redis idempotency check
	cached, err := s.idempCache.Get(ctx, idempKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return decodeSettlement(cached)
	}

	// Layer 2: DB idempotency check
	if prior, err := s.storedResult(ctx, idempKey); prior != nil || err != nil {
		return prior, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	transfer, err := s.ledger.CreditShopAccountTx(ctx, dbTx, order.MerchantID, split.MerchantEarning, "order:"+order.OrderID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Record(ctx, dbTx, &order, split); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			// A concurrent settlement of the same order won the race.
			_ = dbTx.Rollback(ctx)
			return s.concurrentResult(ctx, idempKey)
		}
		return nil, apperror.InternalError(fmt.Errorf("record order: %w", err))
	}

	result := &ports.SettlementResult{
		OrderID:    order.OrderID,
		TransferID: transfer.ID,
		Split:      split,
	}
	respJSON, err := json.Marshal(result)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal settlement: %w", err))
	}
	if err := s.idempRepo.Create(ctx, dbTx, &domain.IdempotencyLog{
		Key:          idempKey,
		TransferID:   transfer.ID,
		ResponseJSON: respJSON,
		CreatedAt:    s.now(),
	}); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			_ = dbTx.Rollback(ctx)
			return s.concurrentResult(ctx, idempKey)
		}
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.idempCache.Set(ctx, idempKey, respJSON, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
	}

	s.log.Info().
		Str("merchant_id", order.MerchantID.String()).
		Str("order_id", order.OrderID).
		Int64("merchant_earning", split.MerchantEarning.Int64()).
		Int64("platform_earning", split.PlatformEarning.Int64()).
		Msg("order settled")

	return result, nil
}

// PreviewEarnings returns the split a settlement of total would apply.
func (s *SettlementServiceImpl) PreviewEarnings(total money.Amount, pct decimal.Decimal) (commission.Split, error) {
	split, err := commission.Compute(total, pct)
	if err != nil {
		return commission.Split{}, validationError(err)
	}
	return split, nil
}

func (s *SettlementServiceImpl) storedResult(ctx context.Context, key string) (*ports.SettlementResult, error) {
	idempLog, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if idempLog == nil {
		return nil, nil
	}
	return decodeSettlement(idempLog.ResponseJSON)
}

func (s *SettlementServiceImpl) concurrentResult(ctx context.Context, key string) (*ports.SettlementResult, error) {
	prior, err := s.storedResult(ctx, key)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, apperror.ErrDuplicateTransaction()
	}
	return prior, nil
}

func decodeSettlement(data []byte) (*ports.SettlementResult, error) {
	var result ports.SettlementResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached settlement: %w", err))
	}
	return &result, nil
}
