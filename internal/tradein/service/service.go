// Package service implements trade-in quoting and submission.
package service

import (
	"context"
	"math"
	"time"

	"pacmac_mobile_backend/internal/events"
	"pacmac_mobile_backend/platform/decision"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/refid"
)

const (
	quotePrefix   = "TIN"
	quoteValidity = 7 * 24 * time.Hour
	processingLag = 24 * time.Hour
)

// Quote is a priced, time-bounded offer for a trade-in device. Immutable once
// returned; expiry is advisory, nothing enforces it.
type Quote struct {
	Device     string    `json:"device"`
	Condition  Condition `json:"condition"`
	BaseAmount int64     `json:"baseAmount"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	Reference  string    `json:"reference"`
	ValidUntil time.Time `json:"validUntil"`
}

// Customer identifies the person submitting a trade-in. All fields optional.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Record is a submitted trade-in. It lives only in the response; nothing
// retains it server-side.
type Record struct {
	ID                  string    `json:"id"`
	Quote               Quote     `json:"quote"`
	Customer            Customer  `json:"customer"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	EstimatedProcessing time.Time `json:"estimatedProcessing"`
}

// Service produces trade-in quotes and submission records.
type Service struct {
	src decision.Source
	bus events.Bus
	log *logger.Logger
	now func() time.Time
}

// New creates a trade-in service.
func New(src decision.Source, bus events.Bus, log *logger.Logger) *Service {
	return &Service{src: src, bus: bus, log: log, now: time.Now}
}

// Quote prices a device. The amount varies uniformly within ±10% of the
// catalog base price on every call; repeated calls returning different
// amounts is intended, it simulates market variation.
func (s *Service) Quote(device string, condition Condition) Quote {
	base := BasePrice(device, condition)
	variation := 0.9 + s.src.Float64()*0.2
	amount := int64(math.Round(float64(base) * variation))

	return Quote{
		Device:     device,
		Condition:  condition,
		BaseAmount: base,
		Amount:     amount,
		Currency:   "USD",
		Reference:  refid.Short(quotePrefix),
		ValidUntil: s.now().Add(quoteValidity),
	}
}

// Submit turns an accepted quote into a submitted trade-in record and
// publishes the notification event. The record is returned regardless of
// what happens to the notification.
func (s *Service) Submit(ctx context.Context, quote Quote, customer Customer) Record {
	createdAt := s.now()
	record := Record{
		ID:                  refid.New(quotePrefix),
		Quote:               quote,
		Customer:            customer,
		Status:              "submitted",
		CreatedAt:           createdAt,
		EstimatedProcessing: createdAt.Add(processingLag),
	}

	s.bus.Publish(ctx, events.TradeInSubmitted{
		BaseEvent:           events.NewBaseEvent(),
		TradeInID:           record.ID,
		Device:              quote.Device,
		Condition:           string(quote.Condition),
		EstimatedValue:      quote.Amount,
		EstimatedProcessing: record.EstimatedProcessing,
		CustomerName:        customer.Name,
		CustomerEmail:       customer.Email,
	})

	s.log.Info("trade-in submitted",
		"id", record.ID,
		"device", quote.Device,
		"condition", quote.Condition,
		"amount", quote.Amount,
	)

	return record
}
