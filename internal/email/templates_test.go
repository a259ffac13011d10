package email

import (
	"strings"
	"testing"
)

func TestBuildTradeInSubmitted(t *testing.T) {
	msg, err := buildTradeInSubmitted(TradeInSubmittedParams{
		TradeInID:      "TIN-ABC123",
		Device:         "iPhone 15",
		Condition:      "Good",
		EstimatedValue: 520,
		ProcessingDate: "March 11, 2026",
	}, "402.302.2197", "orders@pacmacmobile.com")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if msg.Subject != "Trade-In Submitted - PacMac Mobile" {
		t.Errorf("subject = %q", msg.Subject)
	}
	for _, want := range []string{"TIN-ABC123", "iPhone 15", "Good", "$520.00", "March 11, 2026", "402.302.2197"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("html missing %q", want)
		}
		if !strings.Contains(msg.Text, want) {
			t.Errorf("text missing %q", want)
		}
	}
}

func TestBuildLeaseApproved(t *testing.T) {
	msg, err := buildLeaseApproved(LeaseApprovedParams{
		OrderID:        "PL-XYZ789",
		Limit:          1200,
		MonthlyPayment: 100,
		Terms:          "12-month lease-to-own",
	}, "402.302.2197", "orders@pacmacmobile.com")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{"PL-XYZ789", "$1200.00", "$100.00", "12-month lease-to-own"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestBuildOrderConfirmedUsesPreformattedTotal(t *testing.T) {
	msg, err := buildOrderConfirmed(OrderConfirmedParams{
		OrderID:      "PMM-123",
		Total:        FormatUSDCents(107700),
		ShippingDate: "March 12, 2026",
	}, "402.302.2197", "orders@pacmacmobile.com")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(msg.Text, "$1077.00") {
		t.Errorf("text missing formatted total: %q", msg.Text)
	}
}

func TestFormatUSDCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{64999, "$649.99"},
		{100, "$1.00"},
		{5, "$0.05"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		if got := FormatUSDCents(tt.cents); got != tt.want {
			t.Errorf("FormatUSDCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
