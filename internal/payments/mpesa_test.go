package payments

import (
	"encoding/base64"
	"testing"

	"github.com/laundrahub/admin-service/internal/config"
)

func TestStkPassword(t *testing.T) {
	got := stkPassword("174379", "passkey", "20260829120000")
	decoded, err := base64.StdEncoding.DecodeString(got)
	if err != nil {
		t.Fatalf("password is not valid base64: %v", err)
	}
	if want := "174379passkey20260829120000"; string(decoded) != want {
		t.Errorf("decoded = %q; want %q", decoded, want)
	}
}

func TestNewMpesaClientWithoutCredentials(t *testing.T) {
	if c := NewMpesaClient(config.MpesaConfig{}); c != nil {
		t.Error("expected nil client when credentials are absent")
	}
}
