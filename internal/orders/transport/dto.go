// Package transport defines the HTTP request DTOs for the orders module.
package transport

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Items           []OrderItem  `json:"items" validate:"required,min=1,dive"`
	Customer        CustomerInfo `json:"customer"`
	Total           int64        `json:"total" validate:"required,gt=0"`
	PaymentIntentID string       `json:"paymentIntentId"`
}

// OrderItem is one line of the order.
type OrderItem struct {
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// CustomerInfo identifies the purchaser.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}
