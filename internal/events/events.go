// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"pacmac_mobile_backend/platform/events"
	"pacmac_mobile_backend/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
// This is a convenience re-export from platform/events.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Trade-In Domain Events
// =============================================================================

// TradeInSubmitted is published when an accepted trade-in quote becomes a
// submitted record.
type TradeInSubmitted struct {
	BaseEvent
	TradeInID           string    `json:"tradeInId"`
	Device              string    `json:"device"`
	Condition           string    `json:"condition"`
	EstimatedValue      int64     `json:"estimatedValue"`
	EstimatedProcessing time.Time `json:"estimatedProcessing"`
	CustomerName        string    `json:"customerName,omitempty"`
	CustomerEmail       string    `json:"customerEmail,omitempty"`
}

func (e TradeInSubmitted) EventName() string { return "tradein.submitted" }

// =============================================================================
// Leasing Domain Events
// =============================================================================

// LeaseApproved is published when a pre-qualified applicant starts a lease.
type LeaseApproved struct {
	BaseEvent
	OrderID        string `json:"orderId"`
	Reference      string `json:"reference"`
	Limit          int64  `json:"limit"`
	MonthlyPayment int64  `json:"monthlyPayment"`
	Terms          string `json:"terms"`
	CustomerName   string `json:"customerName,omitempty"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
}

func (e LeaseApproved) EventName() string { return "leasing.lease.approved" }

// =============================================================================
// Connectivity Domain Events
// =============================================================================

// ConnectivityOrderPlaced is published when an internet plan order is placed.
type ConnectivityOrderPlaced struct {
	BaseEvent
	OrderID             string    `json:"orderId"`
	PlanID              string    `json:"planId"`
	PlanName            string    `json:"planName"`
	SpeedLabel          string    `json:"speedLabel"`
	MonthlyPrice        int64     `json:"monthlyPrice"`
	EstimatedActivation time.Time `json:"estimatedActivation"`
	CustomerEmail       string    `json:"customerEmail,omitempty"`
}

func (e ConnectivityOrderPlaced) EventName() string { return "connectivity.order.placed" }

// =============================================================================
// Storefront Order Events
// =============================================================================

// OrderConfirmed is published when a storefront order is recorded.
type OrderConfirmed struct {
	BaseEvent
	OrderID           string    `json:"orderId"`
	TotalCents        int64     `json:"totalCents"`
	EstimatedShipping time.Time `json:"estimatedShipping"`
	CustomerEmail     string    `json:"customerEmail,omitempty"`
}

func (e OrderConfirmed) EventName() string { return "orders.order.confirmed" }
