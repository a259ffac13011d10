package service

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"pacmac_mobile_backend/internal/events"
	"pacmac_mobile_backend/platform/decision"
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

func newTestService(src decision.Source, bus events.Bus) *Service {
	return New(src, bus, logger.New("development"))
}

func TestQuoteVariationBounds(t *testing.T) {
	tests := []struct {
		draw float64
		want int64
	}{
		{0.0, 585},      // 650 * 0.90
		{0.5, 650},      // 650 * 1.00
		{0.999999, 715}, // just under 650 * 1.10
	}

	for _, tt := range tests {
		svc := newTestService(decision.NewSequence(tt.draw), &recorderBus{})
		q := svc.Quote("iPhone 15", ConditionLikeNew)
		if q.Amount != tt.want {
			t.Errorf("draw %v: amount = %d, want %d", tt.draw, q.Amount, tt.want)
		}
		if q.BaseAmount != 650 {
			t.Errorf("draw %v: base = %d, want 650", tt.draw, q.BaseAmount)
		}
		if q.Currency != "USD" {
			t.Errorf("currency = %q, want USD", q.Currency)
		}
	}
}

func TestQuoteWithinTenPercentOfBase(t *testing.T) {
	conditions := []Condition{ConditionLikeNew, ConditionGood, ConditionFair, ConditionBroken}
	draws := []float64{0.0, 0.25, 0.5, 0.75, 0.999999}

	for _, device := range CatalogDevices() {
		for _, condition := range conditions {
			base := BasePrice(device, condition)
			lo := int64(math.Round(float64(base) * 0.9))
			hi := int64(math.Round(float64(base) * 1.1))
			for _, draw := range draws {
				svc := newTestService(decision.NewSequence(draw), &recorderBus{})
				q := svc.Quote(device, condition)
				if q.Amount < lo || q.Amount > hi {
					t.Errorf("%s/%s draw %v: amount %d outside [%d, %d]", device, condition, draw, q.Amount, lo, hi)
				}
				if q.BaseAmount != base {
					t.Errorf("%s/%s: base = %d, want %d", device, condition, q.BaseAmount, base)
				}
			}
		}
	}
}

func TestQuoteValiditySevenDays(t *testing.T) {
	svc := newTestService(decision.NewSequence(0.5), &recorderBus{})
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	q := svc.Quote("iPhone 14", ConditionFair)
	if want := fixed.Add(7 * 24 * time.Hour); !q.ValidUntil.Equal(want) {
		t.Fatalf("validUntil = %v, want %v", q.ValidUntil, want)
	}
	if !strings.HasPrefix(q.Reference, "TIN-") {
		t.Fatalf("reference %q missing TIN prefix", q.Reference)
	}
}

func TestSubmitProcessingWindow(t *testing.T) {
	bus := &recorderBus{}
	svc := newTestService(decision.NewSequence(0.5), bus)
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	quote := svc.Quote("iPhone 15", ConditionLikeNew)
	record := svc.Submit(context.Background(), quote, Customer{
		Name:  "Dana Smith",
		Email: "dana@example.com",
	})

	if record.Status != "submitted" {
		t.Errorf("status = %q, want submitted", record.Status)
	}
	if !record.CreatedAt.Equal(fixed) {
		t.Errorf("createdAt = %v, want %v", record.CreatedAt, fixed)
	}
	if want := fixed.Add(24 * time.Hour); !record.EstimatedProcessing.Equal(want) {
		t.Errorf("estimatedProcessing = %v, want %v", record.EstimatedProcessing, want)
	}
	if !strings.HasPrefix(record.ID, "TIN-") {
		t.Errorf("id %q missing TIN prefix", record.ID)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	ev, ok := bus.published[0].(events.TradeInSubmitted)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
	if ev.TradeInID != record.ID {
		t.Errorf("event tradeInId = %q, want %q", ev.TradeInID, record.ID)
	}
	if ev.CustomerEmail != "dana@example.com" {
		t.Errorf("event customerEmail = %q", ev.CustomerEmail)
	}
}
