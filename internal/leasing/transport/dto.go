// Package transport defines the HTTP request DTOs for the leasing module.
package transport

// PrequalifyRequest is the body of POST /api/leasing/prequalify.
type PrequalifyRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Zip    string `json:"zip"`
	Email  string `json:"email" validate:"omitempty,email"`
	Amount int64  `json:"amount"`
}

// StartLeaseRequest is the body of POST /api/leasing.
type StartLeaseRequest struct {
	Items    []LeaseItem       `json:"items"`
	Customer PrequalifyRequest `json:"customer"`
}

// LeaseItem is a storefront item included in the lease request.
type LeaseItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}
