package service

import (
	"context"
	"strings"
	"testing"

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

type testLeasingConfig struct{}

func (testLeasingConfig) GetLeaseMinAmount() int64 { return 150 }
func (testLeasingConfig) GetLeaseMaxAmount() int64 { return 3000 }

func newTestService(src decision.Source, bus events.Bus) *Service {
	return New(testLeasingConfig{}, src, bus, logger.New("development"))
}

func validApplicant(amount int64) Applicant {
	return Applicant{
		Name:   "Dana Smith",
		Phone:  "+14025551234",
		Zip:    "68102",
		Email:  "dana@example.com",
		Amount: amount,
	}
}

// Score draw 0.5 maps to 650 (> 580), secondary draw 0.9 clears 0.3.
func approvingSource() decision.Source {
	return decision.NewSequence(0.5, 0.9)
}

func TestPrequalifyMissingFields(t *testing.T) {
	svc := newTestService(approvingSource(), &recorderBus{})

	tests := []struct {
		name      string
		applicant Applicant
	}{
		{"no name", Applicant{Phone: "+14025551234", Zip: "68102", Amount: 500}},
		{"no phone", Applicant{Name: "Dana", Zip: "68102", Amount: 500}},
		{"no zip", Applicant{Name: "Dana", Phone: "+14025551234", Amount: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := svc.Prequalify(tt.applicant)
			if dec.Approved() {
				t.Fatal("expected decline")
			}
			if dec.Reason != "Missing required information" {
				t.Errorf("reason = %q", dec.Reason)
			}
			if len(dec.Suggestions) != 3 {
				t.Errorf("expected 3 suggestions, got %d", len(dec.Suggestions))
			}
		})
	}
}

func TestPrequalifyAmountRange(t *testing.T) {
	svc := newTestService(approvingSource(), &recorderBus{})

	for _, amount := range []int64{0, 149, 3001, 100000} {
		dec := svc.Prequalify(validApplicant(amount))
		if dec.Approved() {
			t.Fatalf("amount %d: expected decline", amount)
		}
		if !strings.Contains(dec.Reason, "$150.00") || !strings.Contains(dec.Reason, "$3000.00") {
			t.Errorf("amount %d: reason %q does not state both formatted bounds", amount, dec.Reason)
		}
	}

	// Boundary amounts are in range.
	for _, amount := range []int64{150, 3000} {
		dec := newTestService(approvingSource(), &recorderBus{}).Prequalify(validApplicant(amount))
		if !dec.Approved() {
			t.Fatalf("amount %d: expected approval, got reason %q", amount, dec.Reason)
		}
	}
}

func TestPrequalifyCreditGate(t *testing.T) {
	tests := []struct {
		name     string
		draws    []float64
		approved bool
	}{
		{"high score, secondary passes", []float64{0.5, 0.9}, true},
		{"score just below threshold", []float64{0.25, 0.9}, false}, // 500 + 0.25*300 = 575
		{"low score", []float64{0.1, 0.9}, false},
		{"high score, secondary fails", []float64{0.9, 0.2}, false},
		{"secondary exactly at threshold", []float64{0.9, 0.3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(decision.NewSequence(tt.draws...), &recorderBus{})
			dec := svc.Prequalify(validApplicant(1000))
			if dec.Approved() != tt.approved {
				t.Fatalf("approved = %v, want %v (reason %q)", dec.Approved(), tt.approved, dec.Reason)
			}
			if !tt.approved && dec.Reason != "Credit score below minimum requirement" {
				t.Errorf("reason = %q", dec.Reason)
			}
		})
	}
}

func TestPrequalifyApprovalTerms(t *testing.T) {
	tests := []struct {
		amount      int64
		wantLimit   int64
		wantMonthly int64
	}{
		{1000, 1200, 100},
		{150, 180, 15},
		{3000, 3600, 300},
		{155, 186, 16}, // round(186/12) = round(15.5) = 16
	}

	for _, tt := range tests {
		svc := newTestService(approvingSource(), &recorderBus{})
		dec := svc.Prequalify(validApplicant(tt.amount))
		if !dec.Approved() {
			t.Fatalf("amount %d: expected approval, got %q", tt.amount, dec.Reason)
		}
		if dec.Limit != tt.wantLimit {
			t.Errorf("amount %d: limit = %d, want %d", tt.amount, dec.Limit, tt.wantLimit)
		}
		if dec.MonthlyPayment != tt.wantMonthly {
			t.Errorf("amount %d: monthly = %d, want %d", tt.amount, dec.MonthlyPayment, tt.wantMonthly)
		}
		if dec.Terms != "12-month lease-to-own" {
			t.Errorf("terms = %q", dec.Terms)
		}
		if !strings.HasPrefix(dec.Reference, "PL-") {
			t.Errorf("reference %q missing PL prefix", dec.Reference)
		}
	}
}

func TestStartLeaseApproved(t *testing.T) {
	bus := &recorderBus{}
	svc := newTestService(approvingSource(), bus)

	items := []Item{{Name: "iPhone 16", Price: 999, Quantity: 1}}
	record, dec := svc.StartLease(context.Background(), items, validApplicant(1000))

	if !dec.Approved() {
		t.Fatalf("expected approval, got %q", dec.Reason)
	}
	if record == nil {
		t.Fatal("expected record")
	}
	if !strings.HasPrefix(record.OrderID, "PL-") {
		t.Errorf("orderId %q missing PL prefix", record.OrderID)
	}
	if len(record.Items) != 1 {
		t.Errorf("items = %d, want 1", len(record.Items))
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	ev, ok := bus.published[0].(events.LeaseApproved)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
	if ev.OrderID != record.OrderID || ev.Limit != 1200 {
		t.Errorf("event = %+v", ev)
	}
}

func TestStartLeaseDeclinedPublishesNothing(t *testing.T) {
	bus := &recorderBus{}
	svc := newTestService(decision.NewSequence(0.1), bus)

	record, dec := svc.StartLease(context.Background(), nil, validApplicant(1000))
	if record != nil {
		t.Fatal("expected nil record on decline")
	}
	if dec.Approved() {
		t.Fatal("expected decline")
	}
	if len(bus.published) != 0 {
		t.Fatalf("expected no events, got %d", len(bus.published))
	}
}
