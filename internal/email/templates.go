package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title        string
	Heading      string
	SupportPhone string
	SupportEmail string
}

type tradeInSubmittedEmailData struct {
	baseEmailData
	TradeInID      string
	Device         string
	Condition      string
	EstimatedValue string
	ProcessingDate string
}

type leaseApprovedEmailData struct {
	baseEmailData
	OrderID        string
	Limit          string
	MonthlyPayment string
	Terms          string
}

type connectivityOrderEmailData struct {
	baseEmailData
	OrderID        string
	PlanName       string
	SpeedLabel     string
	MonthlyPrice   string
	ActivationDate string
}

type orderConfirmedEmailData struct {
	baseEmailData
	OrderID      string
	Total        string
	ShippingDate string
}

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func renderEmailTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// message is a fully rendered email ready for any transport.
type message struct {
	Subject string
	HTML    string
	Text    string
}

func buildTradeInSubmitted(p TradeInSubmittedParams, supportPhone, supportEmail string) (message, error) {
	html, err := renderEmailTemplate("trade_in_submitted.html", tradeInSubmittedEmailData{
		baseEmailData: baseEmailData{
			Title:        subjectTradeInSubmitted,
			Heading:      "Trade-In Submitted - PacMac Mobile",
			SupportPhone: supportPhone,
			SupportEmail: supportEmail,
		},
		TradeInID:      p.TradeInID,
		Device:         p.Device,
		Condition:      p.Condition,
		EstimatedValue: formatUSD(p.EstimatedValue),
		ProcessingDate: p.ProcessingDate,
	})
	if err != nil {
		return message{}, err
	}
	text := fmt.Sprintf(
		"Trade-In Submitted!\n\nTrade-In ID: %s\nDevice: %s\nCondition: %s\nEstimated Value: %s\nEstimated Processing: %s\n\nWe'll contact you within 24 hours with next steps.\nQuestions? Call us at %s or email %s",
		p.TradeInID, p.Device, p.Condition, formatUSD(p.EstimatedValue), p.ProcessingDate, supportPhone, supportEmail,
	)
	return message{Subject: subjectTradeInSubmitted, HTML: html, Text: text}, nil
}

func buildLeaseApproved(p LeaseApprovedParams, supportPhone, supportEmail string) (message, error) {
	html, err := renderEmailTemplate("lease_approved.html", leaseApprovedEmailData{
		baseEmailData: baseEmailData{
			Title:        subjectLeaseApproved,
			Heading:      "Lease Application Approved - PacMac Mobile",
			SupportPhone: supportPhone,
			SupportEmail: supportEmail,
		},
		OrderID:        p.OrderID,
		Limit:          formatUSD(p.Limit),
		MonthlyPayment: formatUSD(p.MonthlyPayment),
		Terms:          p.Terms,
	})
	if err != nil {
		return message{}, err
	}
	text := fmt.Sprintf(
		"Lease Application Approved!\n\nLease ID: %s\nCredit Limit: %s\nMonthly Payment: %s\nTerms: %s\n\nWe'll contact you within 24 hours to complete your order.\nQuestions? Call us at %s or email %s",
		p.OrderID, formatUSD(p.Limit), formatUSD(p.MonthlyPayment), p.Terms, supportPhone, supportEmail,
	)
	return message{Subject: subjectLeaseApproved, HTML: html, Text: text}, nil
}

func buildConnectivityOrder(p ConnectivityOrderParams, supportPhone, supportEmail string) (message, error) {
	html, err := renderEmailTemplate("connectivity_order.html", connectivityOrderEmailData{
		baseEmailData: baseEmailData{
			Title:        subjectConnectivityOrder,
			Heading:      "Nomad Internet Order Confirmed - PacMac Mobile",
			SupportPhone: supportPhone,
			SupportEmail: supportEmail,
		},
		OrderID:        p.OrderID,
		PlanName:       p.PlanName,
		SpeedLabel:     p.SpeedLabel,
		MonthlyPrice:   formatUSD(p.MonthlyPrice),
		ActivationDate: p.ActivationDate,
	})
	if err != nil {
		return message{}, err
	}
	text := fmt.Sprintf(
		"Nomad Internet Order Confirmed!\n\nOrder ID: %s\nPlan: %s\nSpeed: %s\nMonthly Price: %s\nEstimated Activation: %s\n\nWe'll contact you within 24 hours with activation details.\nQuestions? Call us at %s or email %s",
		p.OrderID, p.PlanName, p.SpeedLabel, formatUSD(p.MonthlyPrice), p.ActivationDate, supportPhone, supportEmail,
	)
	return message{Subject: subjectConnectivityOrder, HTML: html, Text: text}, nil
}

func buildOrderConfirmed(p OrderConfirmedParams, supportPhone, supportEmail string) (message, error) {
	html, err := renderEmailTemplate("order_confirmed.html", orderConfirmedEmailData{
		baseEmailData: baseEmailData{
			Title:        subjectOrderConfirmed,
			Heading:      "Order Confirmed - PacMac Mobile",
			SupportPhone: supportPhone,
			SupportEmail: supportEmail,
		},
		OrderID:      p.OrderID,
		Total:        p.Total,
		ShippingDate: p.ShippingDate,
	})
	if err != nil {
		return message{}, err
	}
	text := fmt.Sprintf(
		"Order Confirmed!\n\nOrder ID: %s\nTotal: %s\nEstimated Shipping: %s\n\nWe'll send you tracking information once your order ships.\nQuestions? Call us at %s or email %s",
		p.OrderID, p.Total, p.ShippingDate, supportPhone, supportEmail,
	)
	return message{Subject: subjectOrderConfirmed, HTML: html, Text: text}, nil
}

// formatUSD formats a whole-dollar amount, e.g. 650 -> "$650.00".
func formatUSD(amount int64) string {
	return fmt.Sprintf("$%d.00", amount)
}

// FormatUSDCents formats a minor-unit amount, e.g. 64999 -> "$649.99".
func FormatUSDCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
