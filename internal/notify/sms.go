// Package notify holds the outbound channels (Twilio SMS, SMTP mail) used
// by the notification service.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/laundrahub/admin-service/internal/config"
)

// SMSSender delivers a text message and returns the provider message ID.
type SMSSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// TwilioSender sends SMS through a Twilio messaging service.
type TwilioSender struct {
	cfg    config.SMSConfig
	client *http.Client
}

// NewTwilioSender builds the sender. Returns nil when credentials are not
// configured, which callers treat as SMS disabled.
func NewTwilioSender(cfg config.SMSConfig) *TwilioSender {
	if !cfg.Enabled() {
		return nil
	}
	return &TwilioSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts the message to the Twilio Messages endpoint.
func (t *TwilioSender) Send(ctx context.Context, to, body string) (string, error) {
	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", t.cfg.AccountSID)

	form := url.Values{}
	form.Set("MessagingServiceSid", t.cfg.MessagingServiceSID)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(t.cfg.AccountSID, t.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		SID     string `json:"sid"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("twilio: %s (status %d)", payload.Message, resp.StatusCode)
	}
	return payload.SID, nil
}
