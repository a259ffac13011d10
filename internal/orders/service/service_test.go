package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"pacmac_mobile_backend/internal/events"
	"pacmac_mobile_backend/platform/logger"
)

type recorderBus struct {
	published []events.Event
}

func (b *recorderBus) Publish(_ context.Context, e events.Event) {
	b.published = append(b.published, e)
}

func (b *recorderBus) PublishSync(ctx context.Context, e events.Event) error {
	b.Publish(ctx, e)
	return nil
}

func (b *recorderBus) Subscribe(string, events.Handler) {}

func TestCreate(t *testing.T) {
	bus := &recorderBus{}
	svc := New(bus, logger.New("development"))
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	items := []Item{
		{Name: "iPhone 16 Pro", Price: 99900, Quantity: 1},
		{Name: "MagSafe Charger", Price: 3900, Quantity: 2},
	}
	order := svc.Create(context.Background(), items, Customer{
		Name:  "Dana Smith",
		Email: "dana@example.com",
	}, 107700, "pi_test_123")

	if !strings.HasPrefix(order.OrderID, "PMM-") {
		t.Errorf("orderId %q missing PMM prefix", order.OrderID)
	}
	if order.Status != "confirmed" {
		t.Errorf("status = %q", order.Status)
	}
	if order.TotalCents != 107700 {
		t.Errorf("totalCents = %d", order.TotalCents)
	}
	if order.PaymentIntentID != "pi_test_123" {
		t.Errorf("paymentIntentId = %q", order.PaymentIntentID)
	}
	if want := fixed.Add(2 * 24 * time.Hour); !order.EstimatedShipping.Equal(want) {
		t.Errorf("estimatedShipping = %v, want %v", order.EstimatedShipping, want)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	ev, ok := bus.published[0].(events.OrderConfirmed)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
	if ev.OrderID != order.OrderID || ev.TotalCents != 107700 {
		t.Errorf("event = %+v", ev)
	}
}
