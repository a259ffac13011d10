package payments

import (
	"context"

	"github.com/google/uuid"

	"pacmac_mobile_backend/platform/logger"
)

// MockGateway fabricates payment intents without contacting a provider. It is
// selected when no Stripe credentials are configured, so the storefront keeps
// working end to end in demo and local environments. The real-failure
// contract is untouched: a configured StripeGateway still propagates errors.
type MockGateway struct {
	log *logger.Logger
}

// NewMockGateway creates a gateway that simulates successful authorizations.
func NewMockGateway(log *logger.Logger) *MockGateway {
	return &MockGateway{log: log}
}

// CreateIntent returns a fresh simulated intent. It never fails.
func (g *MockGateway) CreateIntent(_ context.Context, amountCents int64, _, _ string) (Intent, error) {
	id := "pi_mock_" + uuid.NewString()
	g.log.PaymentEvent("create_intent_mock", id, amountCents, nil)
	return Intent{
		ID:           id,
		ClientSecret: id + "_secret",
	}, nil
}

var _ Gateway = (*MockGateway)(nil)
