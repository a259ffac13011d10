// Package service implements lease pre-qualification and lease creation.
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"pacmac_mobile_backend/internal/events"
	"pacmac_mobile_backend/platform/config"
	"pacmac_mobile_backend/platform/decision"
	"pacmac_mobile_backend/platform/logger"
	"pacmac_mobile_backend/platform/phone"
	"pacmac_mobile_backend/platform/refid"
)

const (
	referencePrefix = "PL"
	leaseTerms      = "12-month lease-to-own"
	termMonths      = 12
	limitMultiplier = 1.2

	// The credit gate is two-stage on purpose: the synthetic score must clear
	// 580 AND an independent 70% draw must pass, capping the overall approval
	// rate below what the score threshold alone would produce.
	minApprovalScore   = 580
	scoreFloor         = 500
	scoreSpan          = 300
	secondaryThreshold = 0.3
)

// Decision statuses.
const (
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

var declineSuggestions = []string{
	"Try a smaller amount",
	"Add a co-signer",
	"Improve credit score",
}

// Applicant is the customer requesting pre-qualification.
type Applicant struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Zip    string `json:"zip"`
	Email  string `json:"email,omitempty"`
	Amount int64  `json:"amount"`
}

// Item is a storefront item covered by a lease.
type Item struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
}

// Decision is the outcome of a pre-qualification. Declines are ordinary
// values, not errors; they carry a reason and suggestions instead of the
// approval fields.
type Decision struct {
	Status         string   `json:"status"`
	Reference      string   `json:"reference,omitempty"`
	Limit          int64    `json:"limit,omitempty"`
	MonthlyPayment int64    `json:"monthlyPayment,omitempty"`
	Terms          string   `json:"terms,omitempty"`
	Reason         string   `json:"reason,omitempty"`
	Suggestions    []string `json:"suggestions,omitempty"`
}

// Approved reports whether the decision grants a lease.
func (d Decision) Approved() bool { return d.Status == StatusApproved }

// Record is a started lease, created only from an approved decision.
type Record struct {
	OrderID   string    `json:"orderId"`
	Decision  Decision  `json:"decision"`
	Items     []Item    `json:"items"`
	Customer  Applicant `json:"customer"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service runs the simulated leasing partner's pre-qualification flow.
type Service struct {
	cfg config.LeasingConfig
	src decision.Source
	bus events.Bus
	log *logger.Logger
	now func() time.Time
}

// New creates a leasing service.
func New(cfg config.LeasingConfig, src decision.Source, bus events.Bus, log *logger.Logger) *Service {
	return &Service{cfg: cfg, src: src, bus: bus, log: log, now: time.Now}
}

// Prequalify validates the applicant, applies the amount range gate, and runs
// the simulated credit decision. Every outcome is a Decision value.
func (s *Service) Prequalify(applicant Applicant) Decision {
	if applicant.Name == "" || applicant.Phone == "" || applicant.Zip == "" {
		return declined("Missing required information")
	}

	minAmount := s.cfg.GetLeaseMinAmount()
	maxAmount := s.cfg.GetLeaseMaxAmount()
	if applicant.Amount < minAmount || applicant.Amount > maxAmount {
		return declined(fmt.Sprintf("Amount must be between $%d.00 and $%d.00", minAmount, maxAmount))
	}

	score := float64(scoreFloor) + s.src.Float64()*float64(scoreSpan)
	approved := score > minApprovalScore && s.src.Float64() > secondaryThreshold
	if !approved {
		return declined("Credit score below minimum requirement")
	}

	limit := int64(math.Round(math.Max(float64(applicant.Amount)*limitMultiplier, float64(minAmount))))
	return Decision{
		Status:         StatusApproved,
		Reference:      refid.Short(referencePrefix),
		Limit:          limit,
		MonthlyPayment: int64(math.Round(float64(limit) / termMonths)),
		Terms:          leaseTerms,
	}
}

// StartLease pre-qualifies the applicant and, on approval, creates the lease
// record and publishes the approval notification. A non-approved decision is
// propagated unchanged with a nil record.
func (s *Service) StartLease(ctx context.Context, items []Item, applicant Applicant) (*Record, Decision) {
	dec := s.Prequalify(applicant)
	if !dec.Approved() {
		return nil, dec
	}

	applicant.Phone = phone.NormalizeE164(applicant.Phone)
	record := &Record{
		OrderID:   refid.New(referencePrefix),
		Decision:  dec,
		Items:     items,
		Customer:  applicant,
		CreatedAt: s.now(),
	}

	s.bus.Publish(ctx, events.LeaseApproved{
		BaseEvent:      events.NewBaseEvent(),
		OrderID:        record.OrderID,
		Reference:      dec.Reference,
		Limit:          dec.Limit,
		MonthlyPayment: dec.MonthlyPayment,
		Terms:          dec.Terms,
		CustomerName:   applicant.Name,
		CustomerEmail:  applicant.Email,
	})

	s.log.Info("lease started",
		"orderId", record.OrderID,
		"reference", dec.Reference,
		"limit", dec.Limit,
	)

	return record, dec
}

func declined(reason string) Decision {
	return Decision{
		Status:      StatusDeclined,
		Reason:      reason,
		Suggestions: declineSuggestions,
	}
}
