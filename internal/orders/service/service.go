// Package service records confirmed storefront orders.
package service

import (
	"context"
	"time"

	"pacmac_mobile_backend/internal/events"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/refid"
)

const (
	orderPrefix = "PMM"
	shippingLag = 2 * 24 * time.Hour
)

// Item is a purchased storefront item.
type Item struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
}

// Customer identifies the purchaser.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Order is a confirmed storefront order. Payment has already settled by the
// time one is created; the record exists for fulfillment and notification.
type Order struct {
	OrderID           string    `json:"orderId"`
	Items             []Item    `json:"items"`
	Customer          Customer  `json:"customer"`
	TotalCents        int64     `json:"totalCents"`
	PaymentIntentID   string    `json:"paymentIntentId,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	EstimatedShipping time.Time `json:"estimatedShipping"`
}

// Service records storefront orders.
type Service struct {
	bus events.Bus
	log *logger.Logger
	now func() time.Time
}

// New creates an orders service.
func New(bus events.Bus, log *logger.Logger) *Service {
	return &Service{bus: bus, log: log, now: time.Now}
}

// Create records a confirmed order and publishes the confirmation event.
func (s *Service) Create(ctx context.Context, items []Item, customer Customer, totalCents int64, paymentIntentID string) *Order {
	createdAt := s.now()
	order := &Order{
		OrderID:           refid.New(orderPrefix),
		Items:             items,
		Customer:          customer,
		TotalCents:        totalCents,
		PaymentIntentID:   paymentIntentID,
		Status:            "confirmed",
		CreatedAt:         createdAt,
		EstimatedShipping: createdAt.Add(shippingLag),
	}

	s.bus.Publish(ctx, events.OrderConfirmed{
		BaseEvent:         events.NewBaseEvent(),
		OrderID:           order.OrderID,
		TotalCents:        totalCents,
		EstimatedShipping: order.EstimatedShipping,
		CustomerEmail:     customer.Email,
	})

	s.log.Info("order confirmed",
		"orderId", order.OrderID,
		"totalCents", totalCents,
	)

	return order
}
