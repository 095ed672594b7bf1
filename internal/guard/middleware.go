package guard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/laundrahub/admin-service/internal/session"
)

const snapshotLocal = "session_snapshot"

// Resolver attaches each request to its browser session, issuing the
// session cookie on first contact, and adapts guard decisions to HTTP
// redirects.
type Resolver struct {
	kv         session.KV
	cookieName string
}

// NewResolver builds a resolver over the given session backing.
func NewResolver(kv session.KV, cookieName string) *Resolver {
	if cookieName == "" {
		cookieName = "sid"
	}
	return &Resolver{kv: kv, cookieName: cookieName}
}

// Resolve returns the session for the request, creating the cookie if the
// browser has none yet.
func (r *Resolver) Resolve(c *fiber.Ctx) *session.Session {
	sid := c.Cookies(r.cookieName)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     r.cookieName,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	return session.New(r.kv, sid)
}

// Protect guards a page route with the declared requirement. The guard is
// re-evaluated from a fresh snapshot on every navigation, so a logout in
// another tab takes effect on the next request.
func (r *Resolver) Protect(req Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := r.Resolve(c).Snapshot(c.Context())
		decision := Evaluate(req, snap)
		if !decision.Allow {
			return c.Redirect(decision.Target, fiber.StatusFound)
		}
		c.Locals(snapshotLocal, snap)
		return c.Next()
	}
}

// Root serves the application root by redirecting to the caller's landing
// page.
func (r *Resolver) Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := r.Resolve(c).Snapshot(c.Context())
		return c.Redirect(ResolveRoot(snap), fiber.StatusFound)
	}
}

// SnapshotFromContext retrieves the snapshot stored by Protect.
func SnapshotFromContext(c *fiber.Ctx) (session.Snapshot, bool) {
	snap, ok := c.Locals(snapshotLocal).(session.Snapshot)
	return snap, ok
}
