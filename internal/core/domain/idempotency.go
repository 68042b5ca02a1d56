package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog stores the result of an already-processed request.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "settle:merchant_id:order_id"
	TransferID   uuid.UUID `json:"transfer_id"`
	ResponseJSON []byte    `json:"response_json"` // Cached response to return
	CreatedAt    time.Time `json:"created_at"`
}

// BuildSettlementKey constructs the key guarding a settled order against double credit.
func BuildSettlementKey(merchantID uuid.UUID, orderID string) string {
	return "settle:" + merchantID.String() + ":" + orderID
}
