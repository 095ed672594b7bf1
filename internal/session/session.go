package session

import (
	"context"
	"encoding/json"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/laundrahub/admin-service/internal/domain"
)

// Session is a view over one browser session's key/value bag. Every read
// accessor is total: corrupt or absent values come back as zero values,
// never as errors, so the route guard can make a decision on every render.
type Session struct {
	kv  KV
	sid string
}

// New binds a session view to a session ID.
func New(kv KV, sid string) *Session {
	return &Session{kv: kv, sid: sid}
}

// SID returns the opaque session identifier.
func (s *Session) SID() string {
	return s.sid
}

// AccessToken returns the stored bearer token, or "" if absent. Legacy key
// spellings are honoured on read.
func (s *Session) AccessToken(ctx context.Context) string {
	if v, ok := s.kv.Get(ctx, s.sid, KeyAccessToken); ok {
		return v
	}
	v, _ := s.kv.Get(ctx, s.sid, legacyKeyAccessToken)
	return v
}

// RefreshToken returns the stored refresh token, or "".
func (s *Session) RefreshToken(ctx context.Context) string {
	if v, ok := s.kv.Get(ctx, s.sid, KeyRefreshToken); ok {
		return v
	}
	v, _ := s.kv.Get(ctx, s.sid, legacyKeyRefreshToken)
	return v
}

// UserData returns the parsed stored user record. Parse failures are
// swallowed and treated as absence.
func (s *Session) UserData(ctx context.Context) *domain.SessionUser {
	raw, ok := s.kv.Get(ctx, s.sid, KeyCurrentUser)
	if !ok || raw == "" {
		return nil
	}
	var user domain.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// Role derives the session's role from the stored user record.
func (s *Session) Role(ctx context.Context) domain.Role {
	return domain.RoleOf(s.UserData(ctx))
}

// SelectedShop returns the stored shop identifier, or ShopNone. Values that
// match no known shop degrade to ShopNone rather than failing.
func (s *Session) SelectedShop(ctx context.Context) domain.Shop {
	raw, _ := s.kv.Get(ctx, s.sid, KeySelectedShop)
	return domain.ParseShop(raw)
}

// SelectedShopType maps the selected shop through the fixed shop/domain
// table.
func (s *Session) SelectedShopType(ctx context.Context) domain.ShopDomain {
	return domain.DomainOf(s.SelectedShop(ctx))
}

// SetAuthTokens writes both bearer tokens.
func (s *Session) SetAuthTokens(ctx context.Context, access, refresh string) {
	s.kv.Set(ctx, s.sid, KeyAccessToken, access)
	s.kv.Set(ctx, s.sid, KeyRefreshToken, refresh)
}

// SetUserData writes the user record. A nil user removes it.
func (s *Session) SetUserData(ctx context.Context, user *domain.SessionUser) {
	if user == nil {
		s.kv.Delete(ctx, s.sid, KeyCurrentUser)
		return
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	s.kv.Set(ctx, s.sid, KeyCurrentUser, string(raw))
}

// SetSelectedShop writes the shop selection. ShopNone removes the stored
// value rather than storing an empty marker.
func (s *Session) SetSelectedShop(ctx context.Context, shop domain.Shop) {
	if shop == domain.ShopNone {
		s.kv.Delete(ctx, s.sid, KeySelectedShop)
		return
	}
	s.kv.Set(ctx, s.sid, KeySelectedShop, string(shop))
}

// ClearAuthData removes token, user record and shop selection in a single
// atomic operation. Safe to call when already logged out.
func (s *Session) ClearAuthData(ctx context.Context) {
	s.kv.Clear(ctx, s.sid)
}

// ValidateAuthState reports whether the session holds a usable login: both
// a token and a user record present, and the token's embedded expiry claim,
// when decodable, still in the future. A token that cannot be decoded at
// all is treated as invalid.
func (s *Session) ValidateAuthState(ctx context.Context) bool {
	token := s.AccessToken(ctx)
	if token == "" || s.UserData(ctx) == nil {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	if exp == nil {
		return true
	}
	return exp.After(time.Now())
}

// Snapshot is one consistent read of the session handed to the route guard.
type Snapshot struct {
	Token      string
	User       *domain.SessionUser
	Role       domain.Role
	Shop       domain.Shop
	ShopDomain domain.ShopDomain
}

// Snapshot reads the fields the guard consults in one pass.
func (s *Session) Snapshot(ctx context.Context) Snapshot {
	user := s.UserData(ctx)
	shop := s.SelectedShop(ctx)
	return Snapshot{
		Token:      s.AccessToken(ctx),
		User:       user,
		Role:       domain.RoleOf(user),
		Shop:       shop,
		ShopDomain: domain.DomainOf(shop),
	}
}
