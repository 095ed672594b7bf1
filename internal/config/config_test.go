package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q; want 8080", cfg.App.Port)
	}
	if cfg.Session.CookieName != "sid" {
		t.Errorf("Session.CookieName = %q; want sid", cfg.Session.CookieName)
	}
	if cfg.Mpesa.Environment != "sandbox" {
		t.Errorf("Mpesa.Environment = %q; want sandbox", cfg.Mpesa.Environment)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL_HOURS", "1")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "9999" {
		t.Errorf("App.Port = %q; want 9999", cfg.App.Port)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("Redis.DB = %d; want 3", cfg.Redis.DB)
	}
	if got := cfg.Session.SessionTTL(); got != time.Hour {
		t.Errorf("SessionTTL = %v; want 1h", got)
	}
	if cfg.Postgres.RunMigrations {
		t.Error("RunMigrations should be false")
	}
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed REDIS_DB")
	}
}

func TestSMSEnabled(t *testing.T) {
	if (SMSConfig{}).Enabled() {
		t.Error("empty config should be disabled")
	}
	full := SMSConfig{AccountSID: "AC1", AuthToken: "tok", MessagingServiceSID: "MG1"}
	if !full.Enabled() {
		t.Error("full config should be enabled")
	}
	partial := SMSConfig{AccountSID: "AC1"}
	if partial.Enabled() {
		t.Error("partial config should be disabled")
	}
}

func TestRequestTimeout(t *testing.T) {
	if got := (AppConfig{RequestTimeoutSeconds: 15}).RequestTimeout(); got != 15*time.Second {
		t.Errorf("RequestTimeout = %v; want 15s", got)
	}
	if got := (AppConfig{}).RequestTimeout(); got != 0 {
		t.Errorf("RequestTimeout on zero = %v; want 0", got)
	}
}
