// Package payments proxies payment-intent creation to the payment provider.
// Unlike notifications, a gateway failure here is the caller's problem: an
// order must never claim success when the payment did not authorize.
package payments

import (
	"context"

	"pacmac_mobile_backend/platform/config"
	"pacmac_mobile_backend/platform/logger"
)

// Intent is the provider-agnostic result of authorizing a payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway authorizes a payment for the given amount in minor units.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency, description string) (Intent, error)
}

// NewGateway picks a Gateway implementation from configuration: Stripe when
// credentials are present, the simulated gateway otherwise.
func NewGateway(cfg config.PaymentConfig, log *logger.Logger) (Gateway, error) {
	if cfg.GetStripeSecretKey() == "" {
		return NewMockGateway(log), nil
	}
	return NewStripeGateway(cfg, log)
}
