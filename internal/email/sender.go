// Package email delivers transactional storefront emails. Implementations
// exist for the SendGrid HTTP API and direct SMTP; a NoopSender is used when
// email is disabled so callers never branch on configuration.
package email

import (
	"context"
	"fmt"

	"pacmac_mobile_backend/platform/config"
)

// Sender is the notification gateway contract. Every send is best-effort from
// the caller's point of view: the notification module logs failures and the
// business operation that triggered the send never observes them.
type Sender interface {
	SendTradeInSubmittedEmail(ctx context.Context, toEmail string, p TradeInSubmittedParams) error
	SendLeaseApprovedEmail(ctx context.Context, toEmail string, p LeaseApprovedParams) error
	SendConnectivityOrderEmail(ctx context.Context, toEmail string, p ConnectivityOrderParams) error
	SendOrderConfirmedEmail(ctx context.Context, toEmail string, p OrderConfirmedParams) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent, textContent string) error
}

// TradeInSubmittedParams carries the fields interpolated into the trade-in
// confirmation email.
type TradeInSubmittedParams struct {
	TradeInID      string
	Device         string
	Condition      string
	EstimatedValue int64 // whole USD
	ProcessingDate string
}

// LeaseApprovedParams carries the fields for the lease approval email.
type LeaseApprovedParams struct {
	OrderID        string
	Limit          int64 // whole USD
	MonthlyPayment int64 // whole USD
	Terms          string
}

// ConnectivityOrderParams carries the fields for the internet order email.
type ConnectivityOrderParams struct {
	OrderID        string
	PlanName       string
	SpeedLabel     string
	MonthlyPrice   int64 // whole USD
	ActivationDate string
}

// OrderConfirmedParams carries the fields for the storefront order email.
type OrderConfirmedParams struct {
	OrderID      string
	Total        string // pre-formatted, the caller knows the unit
	ShippingDate string
}

// NoopSender drops every message. Used when email is disabled.
type NoopSender struct{}

func (NoopSender) SendTradeInSubmittedEmail(context.Context, string, TradeInSubmittedParams) error {
	return nil
}

func (NoopSender) SendLeaseApprovedEmail(context.Context, string, LeaseApprovedParams) error {
	return nil
}

func (NoopSender) SendConnectivityOrderEmail(context.Context, string, ConnectivityOrderParams) error {
	return nil
}

func (NoopSender) SendOrderConfirmedEmail(context.Context, string, OrderConfirmedParams) error {
	return nil
}

func (NoopSender) SendCustomEmail(context.Context, string, string, string, string) error {
	return nil
}

// NewSender picks a Sender implementation from configuration.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	switch cfg.GetEmailProvider() {
	case "sendgrid":
		return NewSendGridSender(cfg), nil
	case "smtp":
		return NewSMTPSender(cfg), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.GetEmailProvider())
	}
}
