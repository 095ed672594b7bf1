// Package payments wraps the Safaricom Daraja API for M-Pesa STK push.
package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/laundrahub/admin-service/internal/config"
)

const (
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"
)

// MpesaClient initiates STK push requests against Daraja.
type MpesaClient struct {
	cfg    config.MpesaConfig
	client *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewMpesaClient builds the client. Returns nil when credentials are not
// configured, which callers treat as payments disabled.
func NewMpesaClient(cfg config.MpesaConfig) *MpesaClient {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil
	}
	return &MpesaClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (m *MpesaClient) baseURL() string {
	if m.cfg.Environment == "sandbox" {
		return sandboxBaseURL
	}
	return productionBaseURL
}

// token fetches (and caches) the OAuth access token.
func (m *MpesaClient) token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.accessToken != "" && time.Now().Before(m.tokenExpiry) {
		return m.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		m.baseURL()+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(m.cfg.ConsumerKey, m.cfg.ConsumerSecret)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   string `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 || payload.AccessToken == "" {
		return "", fmt.Errorf("daraja auth failed (status %d)", resp.StatusCode)
	}

	m.accessToken = payload.AccessToken
	// Daraja tokens last an hour; refresh a little early.
	m.tokenExpiry = time.Now().Add(50 * time.Minute)
	return m.accessToken, nil
}

// STKPushResult is the Daraja response relayed to the caller.
type STKPushResult struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResponseCode      string `json:"ResponseCode"`
	CustomerMessage   string `json:"CustomerMessage"`
	ErrorCode         string `json:"errorCode"`
	ErrorMessage      string `json:"errorMessage"`
}

// stkPassword builds the Lipa Na M-Pesa password for a timestamp.
func stkPassword(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

// STKPush prompts the customer's phone to authorize a payment.
func (m *MpesaClient) STKPush(ctx context.Context, phone string, amount int) (*STKPushResult, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be greater than 0")
	}
	if m.cfg.CallbackURL == "" {
		return nil, errors.New("MPESA_CALLBACK_URL not configured")
	}

	token, err := m.token(ctx)
	if err != nil {
		return nil, err
	}

	transactionType := "CustomerPayBillOnline"
	if m.cfg.ShortCodeType == "till_number" {
		transactionType = "CustomerBuyGoodsOnline"
	}

	timestamp := time.Now().Format("20060102150405")
	body := map[string]any{
		"BusinessShortCode": m.cfg.ShortCode,
		"Password":          stkPassword(m.cfg.ShortCode, m.cfg.Passkey, timestamp),
		"Timestamp":         timestamp,
		"TransactionType":   transactionType,
		"Amount":            amount,
		"PartyA":            phone,
		"PartyB":            m.cfg.ShortCode,
		"PhoneNumber":       phone,
		"CallBackURL":       m.cfg.CallbackURL,
		"AccountReference":  "reference",
		"TransactionDesc":   "LaundryPay",
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.baseURL()+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result STKPushResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.ErrorCode != "" {
		return &result, fmt.Errorf("daraja: %s (%s)", result.ErrorMessage, result.ErrorCode)
	}
	return &result, nil
}
