package auth

import (
	"testing"

	"github.com/laundrahub/admin-service/internal/domain"
)

func testProfile() *domain.UserProfile {
	return &domain.UserProfile{
		ID:       "u1",
		Email:    "boss@example.com",
		UserType: domain.UserTypeAdmin,
	}
}

func TestTokenPairRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 24)
	access, refresh, exp, err := tm.GeneratePair(testProfile())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if exp.IsZero() {
		t.Error("access expiry is zero")
	}

	claims, err := tm.ParseToken(access, TokenTypeAccess)
	if err != nil {
		t.Fatalf("ParseToken(access): %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "boss@example.com" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("Role = %q; want admin", claims.Role)
	}
	if claims.ID == "" {
		t.Error("jti is empty")
	}

	if _, err := tm.ParseToken(refresh, TokenTypeRefresh); err != nil {
		t.Fatalf("ParseToken(refresh): %v", err)
	}
}

func TestParseTokenRejectsWrongType(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 24)
	access, refresh, _, err := tm.GeneratePair(testProfile())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if _, err := tm.ParseToken(access, TokenTypeRefresh); err == nil {
		t.Error("access token accepted as refresh")
	}
	if _, err := tm.ParseToken(refresh, TokenTypeAccess); err == nil {
		t.Error("refresh token accepted as access")
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60, 24)
	verifier := NewTokenManager("secret-b", 60, 24)
	access, _, _, err := issuer.GeneratePair(testProfile())
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if _, err := verifier.ParseToken(access, TokenTypeAccess); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", 60, 24)
	signed, _, err := tm.generate("u1", "x@example.com", domain.RoleStaff, TokenTypeAccess, -1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := tm.ParseToken(signed, TokenTypeAccess); err == nil {
		t.Error("expired token was accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash equals plaintext")
	}
	if err := ComparePassword(hash, "s3cret-password"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := ComparePassword(hash, "wrong-password"); err == nil {
		t.Error("wrong password accepted")
	}
}
