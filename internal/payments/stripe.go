package payments

import (
	"context"
	"errors"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"pacmac_mobile_backend/platform/config"
	"pacmac_mobile_backend/platform/logger"
)

// ErrMissingStripeSecretKey is returned when the gateway is constructed
// without credentials.
var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway creates payment intents through the Stripe API.
type StripeGateway struct {
	api     *client.API
	timeout time.Duration
	log     *logger.Logger
}

// NewStripeGateway initializes a Stripe client from payment configuration.
func NewStripeGateway(cfg config.PaymentConfig, log *logger.Logger) (*StripeGateway, error) {
	key := cfg.GetStripeSecretKey()
	if key == "" {
		return nil, ErrMissingStripeSecretKey
	}

	api := &client.API{}
	api.Init(key, nil)

	return &StripeGateway{
		api:     api,
		timeout: cfg.GetPaymentTimeout(),
		log:     log,
	}, nil
}

// CreateIntent authorizes a payment with automatic payment methods enabled.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency, description string) (Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.log.PaymentEvent("create_intent", "", amountCents, err)
		return Intent{}, err
	}

	g.log.PaymentEvent("create_intent", pi.ID, amountCents, nil)
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

var _ Gateway = (*StripeGateway)(nil)
