package domain

import (
	"reflect"
	"testing"
)

func TestShopDomainBijection(t *testing.T) {
	tests := []struct {
		shop Shop
		dom  ShopDomain
	}{
		{ShopA, ShopDomainLaundry},
		{ShopB, ShopDomainHotel},
		{ShopNone, ShopDomainNone},
		{Shop("Shop C"), ShopDomainNone},
	}
	for _, tt := range tests {
		if got := DomainOf(tt.shop); got != tt.dom {
			t.Errorf("DomainOf(%q) = %q; want %q", tt.shop, got, tt.dom)
		}
	}
	if got := ShopFor(ShopDomainLaundry); got != ShopA {
		t.Errorf("ShopFor(laundry) = %q; want %q", got, ShopA)
	}
	if got := ShopFor(ShopDomainHotel); got != ShopB {
		t.Errorf("ShopFor(hotel) = %q; want %q", got, ShopB)
	}
	if got := ShopFor(ShopDomainNone); got != ShopNone {
		t.Errorf("ShopFor(none) = %q; want empty", got)
	}
}

func TestParseShop(t *testing.T) {
	tests := []struct {
		raw  string
		want Shop
	}{
		{"Shop A", ShopA},
		{"Shop B", ShopB},
		{"", ShopNone},
		{"shop a", ShopNone},
		{"Shop C", ShopNone},
	}
	for _, tt := range tests {
		if got := ParseShop(tt.raw); got != tt.want {
			t.Errorf("ParseShop(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRoleOf(t *testing.T) {
	tests := []struct {
		name string
		user *SessionUser
		want Role
	}{
		{"nil user", nil, RoleNone},
		{"superuser", &SessionUser{IsSuperuser: true}, RoleAdmin},
		{"admin type", &SessionUser{UserType: UserTypeAdmin}, RoleAdmin},
		{"superuser staff type is still admin", &SessionUser{IsSuperuser: true, UserType: UserTypeStaff}, RoleAdmin},
		{"staff type", &SessionUser{UserType: UserTypeStaff}, RoleStaff},
		{"is_staff flag", &SessionUser{IsStaff: true}, RoleStaff},
		{"no markers", &SessionUser{Email: "x@example.com"}, RoleNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleOf(tt.user); got != tt.want {
				t.Errorf("RoleOf = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	tests := []struct {
		name       string
		order      Order
		wantStatus PaymentStatus
		wantType   PaymentType
	}{
		{
			name:       "nothing paid is pending and drops the payment type",
			order:      Order{TotalPrice: 500, Balance: 500, PaymentType: PaymentTypeCash},
			wantStatus: PaymentStatusPending,
			wantType:   PaymentTypeNone,
		},
		{
			name:       "partial payment",
			order:      Order{TotalPrice: 500, AmountPaid: 200, Balance: 300, PaymentType: PaymentTypeMpesa},
			wantStatus: PaymentStatusPartial,
			wantType:   PaymentTypeMpesa,
		},
		{
			name:       "settled in full",
			order:      Order{TotalPrice: 500, AmountPaid: 500, Balance: 0, PaymentType: PaymentTypeCash},
			wantStatus: PaymentStatusCompleted,
			wantType:   PaymentTypeCash,
		},
		{
			name:       "overpayment clamps at completed",
			order:      Order{TotalPrice: 500, AmountPaid: 600, Balance: 0, PaymentType: PaymentTypeCard},
			wantStatus: PaymentStatusCompleted,
			wantType:   PaymentTypeCard,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.order
			o.DerivePaymentStatus()
			if o.PaymentStatus != tt.wantStatus {
				t.Errorf("PaymentStatus = %q; want %q", o.PaymentStatus, tt.wantStatus)
			}
			if o.PaymentType != tt.wantType {
				t.Errorf("PaymentType = %q; want %q", o.PaymentType, tt.wantType)
			}
		})
	}
}

func TestNormalizeItemName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"shirt, trousers", "shirt, trousers"},
		{" shirt ,, trousers ,", "shirt, trousers"},
		{"", ""},
		{" , ,", ""},
		{"duvet", "duvet"},
	}
	for _, tt := range tests {
		if got := NormalizeItemName(tt.raw); got != tt.want {
			t.Errorf("NormalizeItemName(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestItemList(t *testing.T) {
	item := OrderItem{ItemName: "shirt, trousers , ,socks"}
	want := []string{"shirt", "trousers", "socks"}
	if got := item.ItemList(); !reflect.DeepEqual(got, want) {
		t.Errorf("ItemList = %v; want %v", got, want)
	}

	empty := OrderItem{}
	if got := empty.ItemList(); got != nil {
		t.Errorf("ItemList on empty name = %v; want nil", got)
	}
}
