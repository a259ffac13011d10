package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pacmac_mobile_backend/platform/config"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGridSender delivers mail through the SendGrid v3 HTTP API.
type SendGridSender struct {
	apiKey       string
	fromName     string
	fromEmail    string
	supportPhone string
	client       *http.Client
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	} `json:"personalizations"`
	From struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"from"`
	Subject string            `json:"subject"`
	Content []sendGridContent `json:"content"`
}

// NewSendGridSender creates a SendGridSender from email configuration.
func NewSendGridSender(cfg config.EmailConfig) *SendGridSender {
	return &SendGridSender{
		apiKey:       cfg.GetSendGridAPIKey(),
		fromName:     cfg.GetEmailFromName(),
		fromEmail:    cfg.GetEmailFromAddress(),
		supportPhone: cfg.GetSupportPhone(),
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SendGridSender) SendTradeInSubmittedEmail(ctx context.Context, toEmail string, p TradeInSubmittedParams) error {
	msg, err := buildTradeInSubmitted(p, s.supportPhone, s.fromEmail)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, msg)
}

func (s *SendGridSender) SendLeaseApprovedEmail(ctx context.Context, toEmail string, p LeaseApprovedParams) error {
	msg, err := buildLeaseApproved(p, s.supportPhone, s.fromEmail)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, msg)
}

func (s *SendGridSender) SendConnectivityOrderEmail(ctx context.Context, toEmail string, p ConnectivityOrderParams) error {
	msg, err := buildConnectivityOrder(p, s.supportPhone, s.fromEmail)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, msg)
}

func (s *SendGridSender) SendOrderConfirmedEmail(ctx context.Context, toEmail string, p OrderConfirmedParams) error {
	msg, err := buildOrderConfirmed(p, s.supportPhone, s.fromEmail)
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, msg)
}

func (s *SendGridSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent, textContent string) error {
	return s.send(ctx, toEmail, message{Subject: subject, HTML: htmlContent, Text: textContent})
}

func (s *SendGridSender) send(ctx context.Context, toEmail string, msg message) error {
	payload := sendGridRequest{Subject: msg.Subject}
	payload.From.Email = s.fromEmail
	payload.From.Name = s.fromName
	payload.Personalizations = []struct {
		To []struct {
			Email string `json:"email"`
		} `json:"to"`
	}{{To: []struct {
		Email string `json:"email"`
	}{{Email: toEmail}}}}

	// SendGrid requires text/plain before text/html.
	if msg.Text != "" {
		payload.Content = append(payload.Content, sendGridContent{Type: "text/plain", Value: msg.Text})
	}
	payload.Content = append(payload.Content, sendGridContent{Type: "text/html", Value: msg.HTML})

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, string(data))
	}

	return nil
}

var _ Sender = (*SendGridSender)(nil)
