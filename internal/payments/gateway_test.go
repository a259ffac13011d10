package payments

import (
	"context"
	"strings"
	"testing"
	"time"

	"pacmac_mobile_backend/platform/logger"
)

type testPaymentConfig struct {
	key string
}

func (c testPaymentConfig) GetStripeSecretKey() string       { return c.key }
func (c testPaymentConfig) GetPaymentTimeout() time.Duration { return 15 * time.Second }

func TestNewGatewayWithoutCredentials(t *testing.T) {
	gw, err := NewGateway(testPaymentConfig{}, logger.New("development"))
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	if _, ok := gw.(*MockGateway); !ok {
		t.Fatalf("gateway = %T, want *MockGateway", gw)
	}
}

func TestNewGatewayWithCredentials(t *testing.T) {
	gw, err := NewGateway(testPaymentConfig{key: "sk_test_abc"}, logger.New("development"))
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	if _, ok := gw.(*StripeGateway); !ok {
		t.Fatalf("gateway = %T, want *StripeGateway", gw)
	}
}

func TestMockGatewayCreateIntent(t *testing.T) {
	gw := NewMockGateway(logger.New("development"))

	first, err := gw.CreateIntent(context.Background(), 64999, "usd", "storefront order")
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	second, err := gw.CreateIntent(context.Background(), 64999, "usd", "storefront order")
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}

	if !strings.HasPrefix(first.ID, "pi_mock_") {
		t.Errorf("id = %q, want pi_mock_ prefix", first.ID)
	}
	if first.ClientSecret != first.ID+"_secret" {
		t.Errorf("clientSecret = %q", first.ClientSecret)
	}
	if first.ID == second.ID {
		t.Error("successive intents must not share an id")
	}
}
