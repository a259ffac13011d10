// Package service implements wireless internet availability checks and plan
// orders for the connectivity module.
package service

import (
	"context"
	"regexp"
	"time"

	"pacmac_mobile_backend/internal/events"
	"pacmac_mobile_backend/platform/apperr"
	"pacmac_mobile_backend/platform/decision"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/refid"
)

const (
	orderPrefix   = "NOM"
	activationLag = 3 * 24 * time.Hour

	// Simulated coverage footprint: draws above this threshold have service.
	coverageThreshold = 0.2
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ErrInvalidPlan is returned by PlaceOrder for unknown plan IDs.
var ErrInvalidPlan = apperr.Validation("Invalid plan selected")

// Availability is the result of a coverage check. OK false is a routine
// answer, not an error.
type Availability struct {
	OK      bool   `json:"ok"`
	Zip     string `json:"zip"`
	Plans   []Plan `json:"plans,omitempty"`
	Message string `json:"message,omitempty"`
}

// Customer identifies who placed a connectivity order.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Zip   string `json:"zip,omitempty"`
}

// Order is a placed connectivity order.
type Order struct {
	OrderID             string    `json:"orderId"`
	Plan                Plan      `json:"plan"`
	Customer            Customer  `json:"customer"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	EstimatedActivation time.Time `json:"estimatedActivation"`
}

// Service runs the simulated connectivity partner's flows.
type Service struct {
	src decision.Source
	bus events.Bus
	log *logger.Logger
	now func() time.Time
}

// New creates a connectivity service.
func New(src decision.Source, bus events.Bus, log *logger.Logger) *Service {
	return &Service{src: src, bus: bus, log: log, now: time.Now}
}

// CheckAvailability validates the ZIP format and runs the simulated coverage
// lookup. Covered areas get the full plan catalog.
func (s *Service) CheckAvailability(zip string) Availability {
	if !zipPattern.MatchString(zip) {
		return Availability{OK: false, Zip: zip, Message: "Invalid ZIP code format"}
	}
	if s.src.Float64() <= coverageThreshold {
		return Availability{OK: false, Zip: zip, Message: "No coverage available in this area"}
	}
	return Availability{OK: true, Zip: zip, Plans: Plans()}
}

// PlaceOrder creates an order for the given plan. An unknown plan ID returns
// ErrInvalidPlan and publishes nothing.
func (s *Service) PlaceOrder(ctx context.Context, planID string, customer Customer) (*Order, error) {
	plan, ok := PlanByID(planID)
	if !ok {
		return nil, ErrInvalidPlan
	}

	createdAt := s.now()
	order := &Order{
		OrderID:             refid.New(orderPrefix),
		Plan:                plan,
		Customer:            customer,
		Status:              "submitted",
		CreatedAt:           createdAt,
		EstimatedActivation: createdAt.Add(activationLag),
	}

	s.bus.Publish(ctx, events.ConnectivityOrderPlaced{
		BaseEvent:           events.NewBaseEvent(),
		OrderID:             order.OrderID,
		PlanID:              plan.ID,
		PlanName:            plan.Name,
		SpeedLabel:          plan.Speed,
		MonthlyPrice:        plan.Price,
		EstimatedActivation: order.EstimatedActivation,
		CustomerEmail:       customer.Email,
	})

	s.log.Info("connectivity order placed",
		"orderId", order.OrderID,
		"planId", plan.ID,
	)

	return order, nil
}
