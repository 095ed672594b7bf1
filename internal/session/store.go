// Package session is the single source of truth for "who is logged in and
// in what capacity". It mirrors the key/value layout the legacy dashboard
// kept in browser local storage, moved server-side behind a session cookie.
// No other package touches the underlying keys directly.
package session

import "context"

// Storage keys. The snake_case names are authoritative; the camelCase ones
// are legacy spellings still accepted on read.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyCurrentUser  = "current_user"
	KeySelectedShop = "selected_shop"

	legacyKeyAccessToken  = "accessToken"
	legacyKeyRefreshToken = "refreshToken"
)

// KV is the raw per-session key/value backing: Redis in production, a map
// in tests. Reads report absence instead of failing; writes are best-effort
// and never surface storage errors to callers.
type KV interface {
	Get(ctx context.Context, sid, key string) (string, bool)
	Set(ctx context.Context, sid, key, value string)
	Delete(ctx context.Context, sid string, keys ...string)
	// Clear removes every key of the session in one atomic operation.
	Clear(ctx context.Context, sid string)
}
