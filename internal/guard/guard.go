// Package guard decides, per navigation to a protected page, whether the
// page may render or where to send the caller instead. It is a pure
// function of the page's declared requirements and a fresh session
// snapshot; it never errors and never writes to the session store.
package guard

import (
	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/session"
)

// Page paths the guard redirects to.
const (
	PathLanding          = "/landing"
	PathLogin            = "/login"
	PathLoginSelectShop  = "/login?select_shop=1"
	PathUnauthorized     = "/unauthorized"
	PathAdminDashboard   = "/admin/dashboard"
	PathLaundryDashboard = "/laundry/dashboard"
	PathHotelItems       = "/hotel/items"
)

// Reason explains why a navigation was redirected.
type Reason string

const (
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonShopNotSelected Reason = "select_shop"
	ReasonForbidden       Reason = "forbidden"
	ReasonWrongShop       Reason = "wrong_shop"
)

// Requirement declares what a page needs from the session.
type Requirement struct {
	AdminOnly bool
	ShopType  domain.ShopDomain
}

// Decision is the guard's verdict for one navigation. A denied navigation
// always carries a renderable redirect target; redirecting is the guard's
// only form of error reporting.
type Decision struct {
	Allow  bool
	Target string
	Reason Reason
}

func redirect(target string, reason Reason) Decision {
	return Decision{Target: target, Reason: reason}
}

// Evaluate applies the access rules in fixed order; the first matching rule
// wins.
//
// An incomplete staff session (no shop picked yet) is bounced to login with
// the select-shop flag even when the page itself needs no shop: every staff
// member must pick a shop before doing anything.
func Evaluate(req Requirement, snap session.Snapshot) Decision {
	if snap.Token == "" {
		return redirect(PathLogin, ReasonUnauthenticated)
	}
	if snap.Role == domain.RoleStaff && snap.Shop == domain.ShopNone {
		return redirect(PathLoginSelectShop, ReasonShopNotSelected)
	}
	if req.AdminOnly && snap.Role != domain.RoleAdmin {
		return redirect(PathUnauthorized, ReasonForbidden)
	}
	if req.ShopType != domain.ShopDomainNone &&
		snap.Role == domain.RoleStaff &&
		snap.ShopDomain != req.ShopType {
		// Bounced to the staff member's own landing page, never to the
		// page they tried to reach.
		return redirect(HomeFor(snap.ShopDomain), ReasonWrongShop)
	}
	return Decision{Allow: true}
}

// HomeFor returns the default landing page of a shop domain.
func HomeFor(d domain.ShopDomain) string {
	if d == domain.ShopDomainHotel {
		return PathHotelItems
	}
	return PathLaundryDashboard
}

// ResolveRoot decides where the application root sends the caller. It is
// independent of the per-page rules; any unrecognized combination falls
// back to the public landing page.
func ResolveRoot(snap session.Snapshot) string {
	switch {
	case snap.Token == "":
		return PathLanding
	case snap.Role == domain.RoleAdmin:
		return PathAdminDashboard
	case snap.Role == domain.RoleStaff && snap.ShopDomain == domain.ShopDomainLaundry:
		return PathLaundryDashboard
	case snap.Role == domain.RoleStaff && snap.ShopDomain == domain.ShopDomainHotel:
		return PathHotelItems
	}
	return PathLanding
}
