package session

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/laundrahub/admin-service/internal/domain"
)

func signedToken(t *testing.T, exp time.Time, includeExp bool) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1"}
	if includeExp {
		claims["exp"] = exp.Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func testUser() *domain.SessionUser {
	return &domain.SessionUser{ID: "u1", Email: "staff@example.com", UserType: domain.UserTypeStaff}
}

func TestTokenRoundTripAndLegacyFallback(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	sess := New(kv, "sid-1")

	if got := sess.AccessToken(ctx); got != "" {
		t.Fatalf("empty session returned token %q", got)
	}

	sess.SetAuthTokens(ctx, "access-1", "refresh-1")
	if got := sess.AccessToken(ctx); got != "access-1" {
		t.Errorf("AccessToken = %q; want access-1", got)
	}
	if got := sess.RefreshToken(ctx); got != "refresh-1" {
		t.Errorf("RefreshToken = %q; want refresh-1", got)
	}

	// Legacy spellings are honoured on read but never written.
	legacy := New(kv, "sid-legacy")
	kv.Set(ctx, "sid-legacy", legacyKeyAccessToken, "old-access")
	kv.Set(ctx, "sid-legacy", legacyKeyRefreshToken, "old-refresh")
	if got := legacy.AccessToken(ctx); got != "old-access" {
		t.Errorf("legacy AccessToken = %q; want old-access", got)
	}
	if got := legacy.RefreshToken(ctx); got != "old-refresh" {
		t.Errorf("legacy RefreshToken = %q; want old-refresh", got)
	}

	// The canonical key wins when both spellings are present.
	kv.Set(ctx, "sid-legacy", KeyAccessToken, "new-access")
	if got := legacy.AccessToken(ctx); got != "new-access" {
		t.Errorf("AccessToken with both keys = %q; want new-access", got)
	}
}

func TestUserDataCorruptionIsAbsence(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	sess := New(kv, "sid-1")

	if sess.UserData(ctx) != nil {
		t.Fatal("empty session returned a user")
	}

	kv.Set(ctx, "sid-1", KeyCurrentUser, "{not json")
	if sess.UserData(ctx) != nil {
		t.Error("corrupt user record should read as nil")
	}
	if got := sess.Role(ctx); got != domain.RoleNone {
		t.Errorf("Role with corrupt user = %q; want none", got)
	}

	sess.SetUserData(ctx, testUser())
	user := sess.UserData(ctx)
	if user == nil || user.Email != "staff@example.com" {
		t.Fatalf("UserData = %+v; want stored user", user)
	}
	if got := sess.Role(ctx); got != domain.RoleStaff {
		t.Errorf("Role = %q; want staff", got)
	}

	sess.SetUserData(ctx, nil)
	if sess.UserData(ctx) != nil {
		t.Error("SetUserData(nil) should remove the record")
	}
}

func TestSelectedShop(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	sess := New(kv, "sid-1")

	if got := sess.SelectedShop(ctx); got != domain.ShopNone {
		t.Fatalf("SelectedShop on empty session = %q", got)
	}

	sess.SetSelectedShop(ctx, domain.ShopB)
	if got := sess.SelectedShop(ctx); got != domain.ShopB {
		t.Errorf("SelectedShop = %q; want Shop B", got)
	}
	if got := sess.SelectedShopType(ctx); got != domain.ShopDomainHotel {
		t.Errorf("SelectedShopType = %q; want hotel", got)
	}

	// Unknown stored values degrade instead of failing.
	kv.Set(ctx, "sid-1", KeySelectedShop, "Shop C")
	if got := sess.SelectedShop(ctx); got != domain.ShopNone {
		t.Errorf("unknown shop value read as %q; want none", got)
	}

	sess.SetSelectedShop(ctx, domain.ShopNone)
	if _, ok := kv.Get(ctx, "sid-1", KeySelectedShop); ok {
		t.Error("SetSelectedShop(none) should remove the key")
	}
}

func TestClearAuthDataRemovesEverything(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	sess := New(kv, "sid-1")

	sess.SetAuthTokens(ctx, "a", "r")
	sess.SetUserData(ctx, testUser())
	sess.SetSelectedShop(ctx, domain.ShopA)

	sess.ClearAuthData(ctx)
	if sess.AccessToken(ctx) != "" || sess.UserData(ctx) != nil || sess.SelectedShop(ctx) != domain.ShopNone {
		t.Error("ClearAuthData left session state behind")
	}

	// Clearing an already empty session is a no-op.
	sess.ClearAuthData(ctx)
}

func TestValidateAuthState(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
		user  bool
		want  bool
	}{
		{"no token no user", "", false, false},
		{"token without user", "x", false, false},
		{"undecodable token", "not-a-jwt", true, false},
		{"expired token", "", true, false},
		{"live token", "", true, true},
		{"token without exp claim", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryKV()
			sess := New(kv, "sid")

			token := tt.token
			switch tt.name {
			case "expired token":
				token = signedToken(t, time.Now().Add(-time.Hour), true)
			case "live token":
				token = signedToken(t, time.Now().Add(time.Hour), true)
			case "token without exp claim":
				token = signedToken(t, time.Time{}, false)
			}
			if token != "" {
				sess.SetAuthTokens(ctx, token, "refresh")
			}
			if tt.user {
				sess.SetUserData(ctx, testUser())
			}

			if got := sess.ValidateAuthState(ctx); got != tt.want {
				t.Errorf("ValidateAuthState = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotConsistency(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	sess := New(kv, "sid-1")

	sess.SetAuthTokens(ctx, "tok", "ref")
	admin := &domain.SessionUser{ID: "u2", IsSuperuser: true}
	sess.SetUserData(ctx, admin)
	sess.SetSelectedShop(ctx, domain.ShopA)

	snap := sess.Snapshot(ctx)
	if snap.Token != "tok" {
		t.Errorf("snapshot token = %q", snap.Token)
	}
	if snap.Role != domain.RoleAdmin {
		t.Errorf("snapshot role = %q; want admin", snap.Role)
	}
	if snap.Shop != domain.ShopA || snap.ShopDomain != domain.ShopDomainLaundry {
		t.Errorf("snapshot shop = %q/%q; want Shop A/laundry", snap.Shop, snap.ShopDomain)
	}
}
