// Package transport defines the HTTP request DTOs for the connectivity module.
package transport

// OrderRequest is the body of POST /api/connectivity/orders.
type OrderRequest struct {
	PlanID   string       `json:"planId" validate:"required"`
	Customer CustomerInfo `json:"customer"`
}

// CustomerInfo identifies the ordering customer.
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	Zip   string `json:"zip"`
}
