// Package memory is an in-process storage driver with the same locking
// contract as the Postgres adapter: rows fetched "for update" stay locked
// until the owning transaction commits or rolls back, and writes are undone
// on rollback. Uncommitted writes are visible to non-locking reads.
package memory

import (
	"context"
	"errors"
	"sync"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errForeignTx = errors.New("memory: transaction was not started by this store")

type orderRecord struct {
	order    domain.SettledOrder
	merchant int64
	platform int64
}

// Store holds every table of the memory driver.
type Store struct {
	mu          sync.Mutex
	accounts    map[uuid.UUID]*domain.MerchantAccount
	transfers   []domain.Transfer
	withdrawals map[uuid.UUID]*domain.WithdrawalSession
	orders      map[string]orderRecord
	idempotency map[string]*domain.IdempotencyLog
	audits      []domain.AuditLog

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts:    make(map[uuid.UUID]*domain.MerchantAccount),
		withdrawals: make(map[uuid.UUID]*domain.WithdrawalSession),
		orders:      make(map[string]orderRecord),
		idempotency: make(map[string]*domain.IdempotencyLog),
		locks:       make(map[string]*sync.Mutex),
	}
}

// Begin starts a transaction. It implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Tx{store: s, held: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) rowLock(key string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}

// Tx is the memory driver's transaction. Only Commit and Rollback are
// meaningful; the embedded pgx.Tx is nil and the SQL methods are unused.
type Tx struct {
	pgx.Tx

	store *Store
	mu    sync.Mutex
	held  map[string]*sync.Mutex
	order []string
	undo  []func()
	done  bool
}

// lock acquires the row lock for key unless this transaction already holds it.
func (t *Tx) lock(key string) {
	t.mu.Lock()
	if _, ok := t.held[key]; ok {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	m := t.store.rowLock(key)
	m.Lock()

	t.mu.Lock()
	t.held[key] = m
	t.order = append(t.order, key)
	t.mu.Unlock()
}

func (t *Tx) onRollback(fn func()) {
	t.mu.Lock()
	t.undo = append(t.undo, fn)
	t.mu.Unlock()
}

func (t *Tx) release() {
	for i := len(t.order) - 1; i >= 0; i-- {
		t.held[t.order[i]].Unlock()
	}
	t.held = make(map[string]*sync.Mutex)
	t.order = nil
	t.undo = nil
	t.done = true
}

// Commit keeps the writes and releases every lock.
func (t *Tx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return pgx.ErrTxClosed
	}
	t.release()
	return nil
}

// Rollback undoes the writes in reverse order and releases every lock.
func (t *Tx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return pgx.ErrTxClosed
	}
	t.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.store.mu.Unlock()
	t.release()
	return nil
}

// Exec is a no-op so that health checks and stray statements do not panic.
func (t *Tx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}

func (s *Store) asTx(tx pgx.Tx) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok || t.store != s {
		return nil, errForeignTx
	}
	return t, nil
}

// HealthCheck implements ports.HealthChecker for the memory driver.
type HealthCheck struct{}

// Ping always succeeds.
func (HealthCheck) Ping(ctx context.Context) error { return nil }

// Name returns the dependency name.
func (HealthCheck) Name() string { return "memory" }
