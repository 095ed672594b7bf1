package guard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/session"
)

func newTestApp(kv session.KV) (*fiber.App, *Resolver) {
	resolver := NewResolver(kv, "sid")
	app := fiber.New()
	app.Get("/", resolver.Root())
	app.Get("/admin/dashboard", resolver.Protect(Requirement{AdminOnly: true}), func(c *fiber.Ctx) error {
		return c.SendString("admin")
	})
	app.Get("/laundry/dashboard", resolver.Protect(Requirement{ShopType: domain.ShopDomainLaundry}), func(c *fiber.Ctx) error {
		snap, ok := SnapshotFromContext(c)
		if !ok || snap.User == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(snap.User.Email)
	})
	return app, resolver
}

func seedSession(t *testing.T, kv session.KV, sid string, user *domain.SessionUser, shop domain.Shop) {
	t.Helper()
	sess := session.New(kv, sid)
	ctx := context.Background()
	sess.SetAuthTokens(ctx, "access", "refresh")
	sess.SetUserData(ctx, user)
	if shop != domain.ShopNone {
		sess.SetSelectedShop(ctx, shop)
	}
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" {
			return ck
		}
	}
	return nil
}

func TestResolverIssuesCookieOnFirstContact(t *testing.T) {
	app, _ := newTestApp(session.NewMemoryKV())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	ck := sessionCookie(resp)
	if ck == nil {
		t.Fatal("no sid cookie issued")
	}
	if ck.Value == "" || !ck.HttpOnly {
		t.Errorf("cookie = %+v; want non-empty HttpOnly", ck)
	}
	if resp.StatusCode != http.StatusFound {
		t.Errorf("status = %d; want %d", resp.StatusCode, http.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != PathLanding {
		t.Errorf("Location = %q; want %q", loc, PathLanding)
	}
}

func TestProtectRedirectsAnonymousToLogin(t *testing.T) {
	app, _ := newTestApp(session.NewMemoryKV())

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d; want %d", resp.StatusCode, http.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != PathLogin {
		t.Errorf("Location = %q; want %q", loc, PathLogin)
	}
}

func TestProtectAllowsSeededAdmin(t *testing.T) {
	kv := session.NewMemoryKV()
	seedSession(t, kv, "admin-sid", &domain.SessionUser{ID: "u1", Email: "boss@example.com", IsSuperuser: true}, domain.ShopNone)
	app, _ := newTestApp(kv)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "admin-sid"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d; want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestProtectBouncesWrongShopStaff(t *testing.T) {
	kv := session.NewMemoryKV()
	seedSession(t, kv, "staff-sid", &domain.SessionUser{ID: "u2", UserType: domain.UserTypeStaff}, domain.ShopB)
	app, _ := newTestApp(kv)

	req := httptest.NewRequest(http.MethodGet, "/laundry/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "staff-sid"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d; want %d", resp.StatusCode, http.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != PathHotelItems {
		t.Errorf("Location = %q; want %q", loc, PathHotelItems)
	}
}

func TestProtectStoresSnapshotForHandlers(t *testing.T) {
	kv := session.NewMemoryKV()
	seedSession(t, kv, "staff-sid", &domain.SessionUser{ID: "u3", Email: "staff@example.com", UserType: domain.UserTypeStaff}, domain.ShopA)
	app, _ := newTestApp(kv)

	req := httptest.NewRequest(http.MethodGet, "/laundry/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "staff-sid"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d; want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestRootRedirectsByRole(t *testing.T) {
	kv := session.NewMemoryKV()
	seedSession(t, kv, "staff-sid", &domain.SessionUser{ID: "u4", UserType: domain.UserTypeStaff}, domain.ShopA)
	app, _ := newTestApp(kv)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "staff-sid"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if loc := resp.Header.Get("Location"); loc != PathLaundryDashboard {
		t.Errorf("Location = %q; want %q", loc, PathLaundryDashboard)
	}
}

func TestLogoutInAnotherTabTakesEffect(t *testing.T) {
	kv := session.NewMemoryKV()
	user := &domain.SessionUser{ID: "u5", Email: "staff@example.com", UserType: domain.UserTypeStaff}
	seedSession(t, kv, "staff-sid", user, domain.ShopA)
	app, _ := newTestApp(kv)

	req := httptest.NewRequest(http.MethodGet, "/laundry/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "staff-sid"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status before logout = %d; want %d", resp.StatusCode, http.StatusOK)
	}

	session.New(kv, "staff-sid").ClearAuthData(context.Background())

	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status after logout = %d; want %d", resp.StatusCode, http.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != PathLogin {
		t.Errorf("Location = %q; want %q", loc, PathLogin)
	}
}
