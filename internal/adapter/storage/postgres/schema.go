package postgres

import (
	"context"
	"fmt"
)

// schema is applied at start-up when database.auto_migrate is set. Balances
// are BIGINT minor units guarded by CHECK constraints; the ledger code never
// relies on them, they catch bugs.
const schema = `
CREATE TABLE IF NOT EXISTS merchant_accounts (
	merchant_id          UUID PRIMARY KEY,
	shop_balance         BIGINT NOT NULL DEFAULT 0 CONSTRAINT shop_balance_non_negative CHECK (shop_balance >= 0),
	wallet_balance       BIGINT NOT NULL DEFAULT 0 CONSTRAINT wallet_balance_non_negative CHECK (wallet_balance >= 0),
	pin_hash             TEXT NOT NULL,
	bank_name            TEXT,
	bank_code            TEXT,
	bank_id              TEXT,
	account_number_enc   TEXT,
	account_number_last4 VARCHAR(4),
	account_name         TEXT,
	bank_verified_at     TIMESTAMPTZ,
	created_at           TIMESTAMPTZ NOT NULL,
	updated_at           TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS transfers (
	id                   UUID PRIMARY KEY,
	merchant_id          UUID NOT NULL REFERENCES merchant_accounts (merchant_id),
	transfer_type        VARCHAR(32) NOT NULL,
	amount               BIGINT NOT NULL CONSTRAINT transfer_amount_valid
		CHECK (amount > 0 OR (transfer_type = 'ORDER_CREDIT' AND amount = 0)),
	reference            TEXT NOT NULL,
	shop_balance_after   BIGINT NOT NULL,
	wallet_balance_after BIGINT NOT NULL,
	created_at           TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transfers_merchant_created ON transfers (merchant_id, created_at DESC);
ALTER TABLE transfers DROP CONSTRAINT IF EXISTS transfers_amount_check;
DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'transfer_amount_valid') THEN
		ALTER TABLE transfers ADD CONSTRAINT transfer_amount_valid
			CHECK (amount > 0 OR (transfer_type = 'ORDER_CREDIT' AND amount = 0));
	END IF;
END $$;

CREATE TABLE IF NOT EXISTS withdrawal_sessions (
	id             UUID PRIMARY KEY,
	merchant_id    UUID NOT NULL REFERENCES merchant_accounts (merchant_id),
	amount         BIGINT NOT NULL CHECK (amount > 0),
	state          VARCHAR(32) NOT NULL,
	otp_digest     TEXT NOT NULL DEFAULT '',
	otp_expires_at TIMESTAMPTZ,
	otp_attempts   INTEGER NOT NULL DEFAULT 0,
	otp_resends    INTEGER NOT NULL DEFAULT 0,
	failure_reason TEXT,
	transfer_id    UUID REFERENCES transfers (id),
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS uq_withdrawal_sessions_active ON withdrawal_sessions (merchant_id)
	WHERE state NOT IN ('COMPLETED', 'FAILED', 'CANCELLED_BY_USER');

CREATE TABLE IF NOT EXISTS settled_orders (
	order_id              TEXT NOT NULL,
	merchant_id           UUID NOT NULL REFERENCES merchant_accounts (merchant_id),
	total_price           BIGINT NOT NULL CHECK (total_price >= 0),
	commission_percentage NUMERIC(5,2) NOT NULL,
	merchant_earning      BIGINT NOT NULL,
	platform_earning      BIGINT NOT NULL,
	created_at            TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (merchant_id, order_id)
);

CREATE TABLE IF NOT EXISTS idempotency_logs (
	key           TEXT PRIMARY KEY,
	transfer_id   UUID NOT NULL,
	response_json JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS audit_logs (
	id            UUID PRIMARY KEY,
	merchant_id   UUID,
	action        VARCHAR(64) NOT NULL,
	resource_type VARCHAR(64),
	resource_id   TEXT,
	details       JSONB,
	ip_address    TEXT,
	created_at    TIMESTAMPTZ NOT NULL
);`

// Migrate creates the tables if they do not exist.
func Migrate(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
