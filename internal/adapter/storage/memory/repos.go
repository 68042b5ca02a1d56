package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"merchant-settlement/internal/core/commission"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func copyAccount(a *domain.MerchantAccount) *domain.MerchantAccount {
	c := *a
	if a.LinkedBank != nil {
		b := *a.LinkedBank
		c.LinkedBank = &b
	}
	return &c
}

func copySession(s *domain.WithdrawalSession) *domain.WithdrawalSession {
	c := *s
	if s.OtpExpiresAt != nil {
		t := *s.OtpExpiresAt
		c.OtpExpiresAt = &t
	}
	if s.FailureReason != nil {
		r := *s.FailureReason
		c.FailureReason = &r
	}
	if s.TransferID != nil {
		id := *s.TransferID
		c.TransferID = &id
	}
	return &c
}

func accountKey(id uuid.UUID) string    { return "account:" + id.String() }
func withdrawalKey(id uuid.UUID) string { return "withdrawal:" + id.String() }

// --- Accounts ---

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct{ s *Store }

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(s *Store) *AccountRepo { return &AccountRepo{s: s} }

// Create inserts the account unless one already exists.
func (r *AccountRepo) Create(ctx context.Context, a *domain.MerchantAccount) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.accounts[a.MerchantID]; ok {
		return false, nil
	}
	r.s.accounts[a.MerchantID] = copyAccount(a)
	return true, nil
}

// GetByMerchantID returns a copy of the account or nil.
func (r *AccountRepo) GetByMerchantID(ctx context.Context, merchantID uuid.UUID) (*domain.MerchantAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.accounts[merchantID]
	if !ok {
		return nil, nil
	}
	return copyAccount(a), nil
}

// GetByMerchantIDForUpdate locks the account row for the rest of tx.
func (r *AccountRepo) GetByMerchantIDForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (*domain.MerchantAccount, error) {
	t, err := r.s.asTx(tx)
	if err != nil {
		return nil, err
	}
	t.lock(accountKey(merchantID))
	return r.GetByMerchantID(ctx, merchantID)
}

// UpdateBalances writes both balances, refusing negatives like the table CHECKs do.
func (r *AccountRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, shop, wallet money.Amount) error {
	t, err := r.s.asTx(tx)
	if err != nil {
		return err
	}
	if shop.IsNegative() || wallet.IsNegative() {
		return fmt.Errorf("update balances for %s: %w", merchantID, domain.ErrBalanceInvariant)
	}

	r.s.mu.Lock()
	a, ok := r.s.accounts[merchantID]
	if !ok {
		r.s.mu.Unlock()
		return fmt.Errorf("merchant account not found: %s", merchantID)
	}
	prevShop, prevWallet, prevUpdated := a.ShopBalance, a.WalletBalance, a.UpdatedAt
	a.ShopBalance, a.WalletBalance, a.UpdatedAt = shop, wallet, time.Now().UTC()
	r.s.mu.Unlock()

	t.onRollback(func() {
		a.ShopBalance, a.WalletBalance, a.UpdatedAt = prevShop, prevWallet, prevUpdated
	})
	return nil
}

// UpdateLinkedBank replaces the payout destination.
func (r *AccountRepo) UpdateLinkedBank(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, b *domain.LinkedBank) error {
	t, err := r.s.asTx(tx)
	if err != nil {
		return err
	}

	r.s.mu.Lock()
	a, ok := r.s.accounts[merchantID]
	if !ok {
		r.s.mu.Unlock()
		return fmt.Errorf("merchant account not found: %s", merchantID)
	}
	prev := a.LinkedBank
	nb := *b
	a.LinkedBank = &nb
	r.s.mu.Unlock()

	t.onRollback(func() { a.LinkedBank = prev })
	return nil
}

// --- Transfers ---

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct{ s *Store }

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(s *Store) *TransferRepo { return &TransferRepo{s: s} }

// Create appends a transfer.
func (r *TransferRepo) Create(ctx context.Context, tx pgx.Tx, tr *domain.Transfer) error {
	t, err := r.s.asTx(tx)
	if err != nil {
		return err
	}
	if !domain.ValidTransferAmount(tr.Type, tr.Amount) {
		return fmt.Errorf("insert %s transfer of %d: %w", tr.Type, tr.Amount, domain.ErrInvalidTransferAmount)
	}

	r.s.mu.Lock()
	r.s.transfers = append(r.s.transfers, *tr)
	r.s.mu.Unlock()

	id := tr.ID
	t.onRollback(func() {
		for i := len(r.s.transfers) - 1; i >= 0; i-- {
			if r.s.transfers[i].ID == id {
				r.s.transfers = append(r.s.transfers[:i], r.s.transfers[i+1:]...)
				return
			}
		}
	})
	return nil
}

// List filters, sorts newest first and paginates.
func (r *TransferRepo) List(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	r.s.mu.Lock()
	var result []domain.Transfer
	for _, tr := range r.s.transfers {
		if tr.MerchantID != params.MerchantID {
			continue
		}
		if params.Type != nil && tr.Type != *params.Type {
			continue
		}
		if params.From != nil && tr.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && tr.CreatedAt.Unix() > *params.To {
			continue
		}
		result = append(result, tr)
	}
	r.s.mu.Unlock()

	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	total := int64(len(result))

	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.Transfer{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

// --- Withdrawals ---

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct{ s *Store }

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(s *Store) *WithdrawalRepo { return &WithdrawalRepo{s: s} }

func (r *WithdrawalRepo) activeLocked(merchantID uuid.UUID) *domain.WithdrawalSession {
	for _, w := range r.s.withdrawals {
		if w.MerchantID == merchantID && !w.State.IsTerminal() {
			return w
		}
	}
	return nil
}

// Create inserts a session, allowing one non-terminal session per merchant.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, ws *domain.WithdrawalSession) error {
	t, err := r.s.asTx(tx)
	if err != nil {
		return err
	}
	t.lock(withdrawalKey(ws.MerchantID))

	r.s.mu.Lock()
	if r.activeLocked(ws.MerchantID) != nil {
		r.s.mu.Unlock()
		return fmt.Errorf("insert withdrawal session: %w", domain.ErrActiveWithdrawalExists)
	}
	r.s.withdrawals[ws.ID] = copySession(ws)
	r.s.mu.Unlock()

	id := ws.ID
	t.onRollback(func() { delete(r.s.withdrawals, id) })
	return nil
}

// GetActive returns a copy of the merchant's non-terminal session or nil.
func (r *WithdrawalRepo) GetActive(ctx context.Context, merchantID uuid.UUID) (*domain.WithdrawalSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if w := r.activeLocked(merchantID); w != nil {
		return copySession(w), nil
	}
	return nil, nil
}

// GetActiveForUpdate locks the merchant's withdrawal slot for the rest of tx.
func (r *WithdrawalRepo) GetActiveForUpdate(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID) (*domain.WithdrawalSession, error) {
	t, err := r.s.asTx(tx)
	if err != nil {
		return nil, err
	}
	t.lock(withdrawalKey(merchantID))
	return r.GetActive(ctx, merchantID)
}

// Update persists the session.
func (r *WithdrawalRepo) Update(ctx context.Context, tx pgx.Tx, ws *domain.WithdrawalSession) error {
	t, err := r.s.asTx(tx)
	if err != nil {
		return err
	}

	r.s.mu.Lock()
	prev, ok := r.s.withdrawals[ws.ID]
	if !ok {
		r.s.mu.Unlock()
		return fmt.Errorf("withdrawal session not found: %s", ws.ID)
	}
	r.s.withdrawals[ws.ID] = copySession(ws)
	r.s.mu.Unlock()

	t.onRollback(func() { r.s.withdrawals[prev.ID] = prev })
	return nil
}

// FailStale fails abandoned sessions, taking each merchant's slot lock in turn.
func (r *WithdrawalRepo) FailStale(ctx context.Context, cutoff time.Time, reason string) (int64, error) {
	r.s.mu.Lock()
	var merchants []uuid.UUID
	for _, w := range r.s.withdrawals {
		if !w.State.IsTerminal() && w.UpdatedAt.Before(cutoff) {
			merchants = append(merchants, w.MerchantID)
		}
	}
	r.s.mu.Unlock()

	var n int64
	for _, id := range merchants {
		m := r.s.rowLock(withdrawalKey(id))
		m.Lock()
		r.s.mu.Lock()
		if w := r.activeLocked(id); w != nil && w.UpdatedAt.Before(cutoff) {
			now := time.Now().UTC()
			if err := w.Fail(reason, now); err == nil {
				n++
			}
		}
		r.s.mu.Unlock()
		m.Unlock()
	}
	return n, nil
}

// --- Settled orders ---

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct{ s *Store }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(s *Store) *OrderRepo { return &OrderRepo{s: s} }

// Record stores a settled order and its split.
func (r *OrderRepo) Record(ctx context.Context, tx pgx.Tx, o *domain.SettledOrder, split commission.Split) error {
	t, err := r.s.asTx(tx)
	if err != nil {
		return err
	}
	key := domain.BuildSettlementKey(o.MerchantID, o.OrderID)

	r.s.mu.Lock()
	if _, ok := r.s.orders[key]; ok {
		r.s.mu.Unlock()
		return fmt.Errorf("insert settled order %s: %w", o.OrderID, domain.ErrDuplicateKey)
	}
	r.s.orders[key] = orderRecord{
		order:    *o,
		merchant: split.MerchantEarning.Int64(),
		platform: split.PlatformEarning.Int64(),
	}
	r.s.mu.Unlock()

	t.onRollback(func() { delete(r.s.orders, key) })
	return nil
}

// GetOrderTotals aggregates settled orders created in [rng.From, rng.To).
func (r *OrderRepo) GetOrderTotals(ctx context.Context, merchantID uuid.UUID, rng domain.DateRange) (*domain.OrderTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	totals := &domain.OrderTotals{}
	for _, rec := range r.s.orders {
		o := rec.order
		if o.MerchantID != merchantID || o.CreatedAt.Before(rng.From) || !o.CreatedAt.Before(rng.To) {
			continue
		}
		totals.TotalTransactions++
		totals.TotalRevenue += o.TotalPrice
		totals.TotalMerchantPayout += money.Amount(rec.merchant)
		totals.TotalCommissions += money.Amount(rec.platform)
	}
	return totals, nil
}

// --- Idempotency ---

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct{ s *Store }

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(s *Store) *IdempotencyRepo { return &IdempotencyRepo{s: s} }

// Create stores the log, rejecting a second write for the same key.
func (r *IdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	t, err := r.s.asTx(tx)
	if err != nil {
		return err
	}

	r.s.mu.Lock()
	if _, ok := r.s.idempotency[log.Key]; ok {
		r.s.mu.Unlock()
		return fmt.Errorf("insert idempotency log: %w", domain.ErrDuplicateKey)
	}
	l := *log
	r.s.idempotency[log.Key] = &l
	r.s.mu.Unlock()

	key := log.Key
	t.onRollback(func() { delete(r.s.idempotency, key) })
	return nil
}

// Get returns the log for key or nil.
func (r *IdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.idempotency[key]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

// --- Audit ---

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{ s *Store }

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(s *Store) *AuditRepo { return &AuditRepo{s: s} }

// Create appends an audit entry.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audits = append(r.s.audits, *log)
	return nil
}

// Entries returns a snapshot of every audit entry.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.AuditLog, len(r.s.audits))
	copy(out, r.s.audits)
	return out
}
