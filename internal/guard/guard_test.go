package guard

import (
	"testing"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/session"
)

func adminSnap(shop domain.Shop) session.Snapshot {
	return session.Snapshot{
		Token:      "tok",
		User:       &domain.SessionUser{ID: "a", IsSuperuser: true},
		Role:       domain.RoleAdmin,
		Shop:       shop,
		ShopDomain: domain.DomainOf(shop),
	}
}

func staffSnap(shop domain.Shop) session.Snapshot {
	return session.Snapshot{
		Token:      "tok",
		User:       &domain.SessionUser{ID: "s", UserType: domain.UserTypeStaff},
		Role:       domain.RoleStaff,
		Shop:       shop,
		ShopDomain: domain.DomainOf(shop),
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		req        Requirement
		snap       session.Snapshot
		wantAllow  bool
		wantTarget string
	}{
		{
			name:       "anonymous always goes to login",
			req:        Requirement{AdminOnly: true, ShopType: domain.ShopDomainLaundry},
			snap:       session.Snapshot{},
			wantTarget: PathLogin,
		},
		{
			name:       "staff without shop goes to shop selection",
			req:        Requirement{},
			snap:       staffSnap(domain.ShopNone),
			wantTarget: PathLoginSelectShop,
		},
		{
			name:       "staff without shop on admin page still selects shop first",
			req:        Requirement{AdminOnly: true},
			snap:       staffSnap(domain.ShopNone),
			wantTarget: PathLoginSelectShop,
		},
		{
			name:       "staff on admin page is forbidden",
			req:        Requirement{AdminOnly: true},
			snap:       staffSnap(domain.ShopA),
			wantTarget: PathUnauthorized,
		},
		{
			name:       "laundry staff on hotel page bounces home",
			req:        Requirement{ShopType: domain.ShopDomainHotel},
			snap:       staffSnap(domain.ShopA),
			wantTarget: PathLaundryDashboard,
		},
		{
			name:       "hotel staff on laundry page bounces to hotel items",
			req:        Requirement{ShopType: domain.ShopDomainLaundry},
			snap:       staffSnap(domain.ShopB),
			wantTarget: PathHotelItems,
		},
		{
			name:      "staff on own shop page is allowed",
			req:       Requirement{ShopType: domain.ShopDomainLaundry},
			snap:      staffSnap(domain.ShopA),
			wantAllow: true,
		},
		{
			name:      "admin passes shop-typed pages without a selection",
			req:       Requirement{ShopType: domain.ShopDomainHotel},
			snap:      adminSnap(domain.ShopNone),
			wantAllow: true,
		},
		{
			name:      "admin passes admin pages",
			req:       Requirement{AdminOnly: true},
			snap:      adminSnap(domain.ShopNone),
			wantAllow: true,
		},
		{
			name:      "plain page allows any live session",
			req:       Requirement{},
			snap:      adminSnap(domain.ShopNone),
			wantAllow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.req, tt.snap)
			if got.Allow != tt.wantAllow {
				t.Fatalf("Allow = %v; want %v (target %q)", got.Allow, tt.wantAllow, got.Target)
			}
			if !tt.wantAllow && got.Target != tt.wantTarget {
				t.Errorf("Target = %q; want %q", got.Target, tt.wantTarget)
			}
			if tt.wantAllow && got.Target != "" {
				t.Errorf("allowed decision carries target %q", got.Target)
			}
		})
	}
}

func TestEvaluateRuleOrder(t *testing.T) {
	// A staff session with no shop hitting an admin-only page matches both
	// the select-shop rule and the forbidden rule; select-shop must win.
	decision := Evaluate(Requirement{AdminOnly: true}, staffSnap(domain.ShopNone))
	if decision.Target != PathLoginSelectShop {
		t.Errorf("Target = %q; want %q", decision.Target, PathLoginSelectShop)
	}
	if decision.Reason != ReasonShopNotSelected {
		t.Errorf("Reason = %q; want %q", decision.Reason, ReasonShopNotSelected)
	}
}

func TestResolveRoot(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want string
	}{
		{"anonymous", session.Snapshot{}, PathLanding},
		{"admin", adminSnap(domain.ShopNone), PathAdminDashboard},
		{"admin ignores selected shop", adminSnap(domain.ShopB), PathAdminDashboard},
		{"laundry staff", staffSnap(domain.ShopA), PathLaundryDashboard},
		{"hotel staff", staffSnap(domain.ShopB), PathHotelItems},
		{"staff without shop falls back to landing", staffSnap(domain.ShopNone), PathLanding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRoot(tt.snap); got != tt.want {
				t.Errorf("ResolveRoot = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestHomeFor(t *testing.T) {
	if got := HomeFor(domain.ShopDomainHotel); got != PathHotelItems {
		t.Errorf("HomeFor(hotel) = %q", got)
	}
	if got := HomeFor(domain.ShopDomainLaundry); got != PathLaundryDashboard {
		t.Errorf("HomeFor(laundry) = %q", got)
	}
}
