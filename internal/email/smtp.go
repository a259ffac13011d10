package email

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"pacmac_mobile_backend/platform/config"
)

// SMTPSender implements the Sender interface using a direct SMTP connection
// via go-mail. It renders the same templates as SendGridSender but delivers
// through the retailer's own SMTP server.
type SMTPSender struct {
	host         string
	port         int
	username     string
	password     string
	fromName     string
	fromEmail    string
	supportPhone string
}

// NewSMTPSender creates a new SMTPSender from email configuration.
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:         cfg.GetSMTPHost(),
		port:         cfg.GetSMTPPort(),
		username:     cfg.GetSMTPUsername(),
		password:     cfg.GetSMTPPassword(),
		fromName:     cfg.GetEmailFromName(),
		fromEmail:    cfg.GetEmailFromAddress(),
		supportPhone: cfg.GetSupportPhone(),
	}
}

func (s *SMTPSender) SendTradeInSubmittedEmail(ctx context.Context, toEmail string, p TradeInSubmittedParams) error {
	msg, err := buildTradeInSubmitted(p, s.supportPhone, s.fromEmail)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, msg)
}

func (s *SMTPSender) SendLeaseApprovedEmail(ctx context.Context, toEmail string, p LeaseApprovedParams) error {
	msg, err := buildLeaseApproved(p, s.supportPhone, s.fromEmail)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, msg)
}

func (s *SMTPSender) SendConnectivityOrderEmail(ctx context.Context, toEmail string, p ConnectivityOrderParams) error {
	msg, err := buildConnectivityOrder(p, s.supportPhone, s.fromEmail)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, msg)
}

func (s *SMTPSender) SendOrderConfirmedEmail(ctx context.Context, toEmail string, p OrderConfirmedParams) error {
	msg, err := buildOrderConfirmed(p, s.supportPhone, s.fromEmail)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, msg)
}

func (s *SMTPSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent, textContent string) error {
	return s.send(ctx, toEmail, message{Subject: subject, HTML: htmlContent, Text: textContent})
}

func (s *SMTPSender) send(ctx context.Context, toEmail string, m message) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(m.Subject)
	if m.Text != "" {
		msg.SetBodyString(gomail.TypeTextPlain, m.Text)
		msg.AddAlternativeString(gomail.TypeTextHTML, m.HTML)
	} else {
		msg.SetBodyString(gomail.TypeTextHTML, m.HTML)
	}

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

var _ Sender = (*SMTPSender)(nil)
