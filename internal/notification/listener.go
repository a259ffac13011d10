// Package notification turns domain events into customer emails. Delivery is
// strictly best-effort: a failed or skipped send is logged and the triggering
// operation never finds out.
package notification

import (
	"context"

	"pacmac_mobile_backend/internal/email"
	"pacmac_mobile_backend/internal/events"
	"pacmac_mobile_backend/platform/logger"
)

const dateLayout = "January 2, 2006"

// Listener subscribes to domain events and dispatches the matching email.
type Listener struct {
	sender email.Sender
	log    *logger.Logger
}

// NewListener creates an event listener dispatching to the given sender.
func NewListener(sender email.Sender, log *logger.Logger) *Listener {
	return &Listener{sender: sender, log: log}
}

// Subscribe registers the listener on the bus for every event it handles.
func (l *Listener) Subscribe(bus events.Bus) {
	bus.Subscribe("tradein.submitted", events.HandlerFunc(l.onTradeInSubmitted))
	bus.Subscribe("leasing.lease.approved", events.HandlerFunc(l.onLeaseApproved))
	bus.Subscribe("connectivity.order.placed", events.HandlerFunc(l.onConnectivityOrderPlaced))
	bus.Subscribe("orders.order.confirmed", events.HandlerFunc(l.onOrderConfirmed))
}

func (l *Listener) onTradeInSubmitted(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.TradeInSubmitted)
	if !ok {
		return nil
	}
	if ev.CustomerEmail == "" {
		return nil
	}
	err := l.sender.SendTradeInSubmittedEmail(ctx, ev.CustomerEmail, email.TradeInSubmittedParams{
		TradeInID:      ev.TradeInID,
		Device:         ev.Device,
		Condition:      ev.Condition,
		EstimatedValue: ev.EstimatedValue,
		ProcessingDate: ev.EstimatedProcessing.Format(dateLayout),
	})
	l.report("tradein.submitted", ev.CustomerEmail, err)
	return nil
}

func (l *Listener) onLeaseApproved(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.LeaseApproved)
	if !ok {
		return nil
	}
	if ev.CustomerEmail == "" {
		return nil
	}
	err := l.sender.SendLeaseApprovedEmail(ctx, ev.CustomerEmail, email.LeaseApprovedParams{
		OrderID:        ev.OrderID,
		Limit:          ev.Limit,
		MonthlyPayment: ev.MonthlyPayment,
		Terms:          ev.Terms,
	})
	l.report("leasing.lease.approved", ev.CustomerEmail, err)
	return nil
}

func (l *Listener) onConnectivityOrderPlaced(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.ConnectivityOrderPlaced)
	if !ok {
		return nil
	}
	if ev.CustomerEmail == "" {
		return nil
	}
	err := l.sender.SendConnectivityOrderEmail(ctx, ev.CustomerEmail, email.ConnectivityOrderParams{
		OrderID:        ev.OrderID,
		PlanName:       ev.PlanName,
		SpeedLabel:     ev.SpeedLabel,
		MonthlyPrice:   ev.MonthlyPrice,
		ActivationDate: ev.EstimatedActivation.Format(dateLayout),
	})
	l.report("connectivity.order.placed", ev.CustomerEmail, err)
	return nil
}

func (l *Listener) onOrderConfirmed(ctx context.Context, e events.Event) error {
	ev, ok := e.(events.OrderConfirmed)
	if !ok {
		return nil
	}
	if ev.CustomerEmail == "" {
		return nil
	}
	err := l.sender.SendOrderConfirmedEmail(ctx, ev.CustomerEmail, email.OrderConfirmedParams{
		OrderID:      ev.OrderID,
		Total:        email.FormatUSDCents(ev.TotalCents),
		ShippingDate: ev.EstimatedShipping.Format(dateLayout),
	})
	l.report("orders.order.confirmed", ev.CustomerEmail, err)
	return nil
}

func (l *Listener) report(event, toEmail string, err error) {
	if err != nil {
		l.log.NotificationEvent(event, toEmail, false, err.Error())
		return
	}
	l.log.NotificationEvent(event, toEmail, true, "")
}
