package rabbitmq

import (
	"context"
	"time"

	"merchant-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Routing keys published by this service.
const (
	RoutingKeyOtpRequested        = "notification.otp.requested"
	RoutingKeyWithdrawalCompleted = "settlement.withdrawal.completed"
)

// Publisher is the part of Producer the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

// OtpRequestedEvent asks the notification service to deliver a code.
type OtpRequestedEvent struct {
	MerchantID  uuid.UUID `json:"merchant_id"`
	Purpose     string    `json:"purpose"`
	Code        string    `json:"code"`
	RequestedAt time.Time `json:"requested_at"`
}

// Notifier implements ports.OtpSender and ports.EventPublisher on a Publisher.
type Notifier struct {
	pub Publisher
}

// NewNotifier creates a Notifier.
func NewNotifier(pub Publisher) *Notifier {
	return &Notifier{pub: pub}
}

// SendOtp publishes an OTP delivery request.
func (n *Notifier) SendOtp(ctx context.Context, merchantID uuid.UUID, otp string) error {
	return n.pub.Publish(ctx, RoutingKeyOtpRequested, OtpRequestedEvent{
		MerchantID:  merchantID,
		Purpose:     "withdrawal",
		Code:        otp,
		RequestedAt: time.Now().UTC(),
	})
}

// PublishWithdrawalCompleted tells the payout processor to send funds out.
func (n *Notifier) PublishWithdrawalCompleted(ctx context.Context, event ports.WithdrawalCompletedEvent) error {
	return n.pub.Publish(ctx, RoutingKeyWithdrawalCompleted, event)
}

// FallbackNotifier is used when no broker is configured. It logs instead of
// publishing and never logs the code itself.
type FallbackNotifier struct {
	log zerolog.Logger
}

// NewFallbackNotifier creates a FallbackNotifier.
func NewFallbackNotifier(log zerolog.Logger) *FallbackNotifier {
	return &FallbackNotifier{log: log}
}

// SendOtp logs that an OTP would have been delivered.
func (f *FallbackNotifier) SendOtp(ctx context.Context, merchantID uuid.UUID, otp string) error {
	f.log.Warn().Str("merchant_id", merchantID.String()).Msg("No broker configured, OTP not delivered")
	return nil
}

// PublishWithdrawalCompleted logs the event.
func (f *FallbackNotifier) PublishWithdrawalCompleted(ctx context.Context, event ports.WithdrawalCompletedEvent) error {
	f.log.Warn().
		Str("merchant_id", event.MerchantID.String()).
		Str("withdrawal_id", event.WithdrawalID.String()).
		Int64("amount", event.Amount.Int64()).
		Msg("No broker configured, withdrawal event not published")
	return nil
}
