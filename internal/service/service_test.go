package service

import (
	"strings"
	"testing"
	"time"

	"github.com/laundrahub/admin-service/internal/domain"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"e164 passes through", "+254712345678", "+254712345678", false},
		{"local mobile is converted", "0712345678", "+254712345678", false},
		{"local landline is converted", "0112345678", "+254112345678", false},
		{"spaces are stripped", " +254 712 345 678 ", "+254712345678", false},
		{"missing plus", "254712345678", "", true},
		{"too short", "+25471", "", true},
		{"too long", "+2547123456789012345", "", true},
		{"letters", "+2547abc45678", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v; wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q; want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestItemsSummary(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.OrderItem
		want  string
	}{
		{
			name: "plain names",
			items: []domain.OrderItem{
				{ItemName: "Shirt, Towel", Quantity: 1},
			},
			want: "Shirt, Towel",
		},
		{
			name: "quantity prefixes each name",
			items: []domain.OrderItem{
				{ItemName: "Shirt", Quantity: 2},
				{ItemName: "Duvet", Quantity: 1},
			},
			want: "2x Shirt, Duvet",
		},
		{
			name: "overflow is folded into a count",
			items: []domain.OrderItem{
				{ItemName: "a, b, c, d, e, f, g, h", Quantity: 1},
			},
			want: "a, b, c, d, e, f, +2 more",
		},
		{
			name:  "no items",
			items: nil,
			want:  "items not specified",
		},
		{
			name: "blank names",
			items: []domain.OrderItem{
				{ItemName: " , ", Quantity: 3},
			},
			want: "items not specified",
		},
		{
			name: "zero quantity counts as one",
			items: []domain.OrderItem{
				{ItemName: "Blanket", Quantity: 0},
			},
			want: "Blanket",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := itemsSummary(tt.items); got != tt.want {
				t.Errorf("itemsSummary = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := formatCurrency(1500); got != "KSh 1500.00" {
		t.Errorf("formatCurrency(1500) = %q", got)
	}
	if got := formatCurrency(99.9); got != "KSh 99.90" {
		t.Errorf("formatCurrency(99.9) = %q", got)
	}
}

func TestParseDateRange(t *testing.T) {
	t.Run("explicit bounds", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-01-01", "2026-01-31")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if !from.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("from = %v", from)
		}
		// The end bound covers its whole day.
		if to.Day() != 31 || to.Hour() != 23 || to.Minute() != 59 {
			t.Errorf("to = %v; want end of Jan 31", to)
		}
	})

	t.Run("defaults to a trailing window", func(t *testing.T) {
		from, to, err := ParseDateRange("", "")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if !from.Before(to) {
			t.Errorf("from %v is not before to %v", from, to)
		}
		if days := to.Sub(from).Hours() / 24; days < 29 || days > 31 {
			t.Errorf("default window spans %.1f days", days)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		if _, _, err := ParseDateRange("2026-02-01", "2026-01-01"); err == nil {
			t.Fatal("expected error for inverted range")
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		if _, _, err := ParseDateRange("01/02/2026", ""); err == nil {
			t.Fatal("expected error for malformed from date")
		}
	})
}

func TestGeneratedOrderCodeShape(t *testing.T) {
	code := newOrderCode()
	if !strings.HasPrefix(code, "ORD-") {
		t.Fatalf("code %q lacks prefix", code)
	}
	suffix := strings.TrimPrefix(code, "ORD-")
	if len(suffix) != 5 {
		t.Errorf("suffix %q has length %d; want 5", suffix, len(suffix))
	}
	if suffix != strings.ToUpper(suffix) {
		t.Errorf("suffix %q is not upper case", suffix)
	}
}
