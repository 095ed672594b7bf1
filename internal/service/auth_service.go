package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/laundrahub/admin-service/internal/auth"
	"github.com/laundrahub/admin-service/internal/config"
	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/notify"
	"github.com/laundrahub/admin-service/internal/repository"
	"github.com/laundrahub/admin-service/internal/session"
	"github.com/laundrahub/admin-service/pkg/util"
)

// revokedKeyPrefix namespaces refresh-token revocation entries in Redis.
const revokedKeyPrefix = "revoked:"

// AuthService coordinates login, session writes, token refresh and password
// management for the dashboard.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	tokens     *auth.TokenManager
	redis      *redis.Client
	mailer     notify.Mailer
	logger     *zap.Logger
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies bundles what the auth service needs beyond config.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Tokens            *auth.TokenManager
	Redis             *redis.Client
	Mailer            notify.Mailer
	Logger            *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		tokens:     deps.Tokens,
		redis:      deps.Redis,
		mailer:     deps.Mailer,
		logger:     deps.Logger,
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// Login authenticates by email and password and writes the token pair plus
// the user record into the browser session. A previously selected shop is
// left untouched so staff do not have to re-pick after a token expiry.
func (s *AuthService) Login(ctx context.Context, sess *session.Session, email, password string) (*domain.UserProfile, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, util.NewForbidden("account disabled")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, util.NewUnauthorized("invalid credentials")
	}

	access, refresh, _, err := s.tokens.GeneratePair(user)
	if err != nil {
		return nil, err
	}
	sess.SetAuthTokens(ctx, access, refresh)
	sess.SetUserData(ctx, user.SessionUser())

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(domain.RoleOf(user.SessionUser()))))
	return user, nil
}

// Refresh exchanges the session's refresh token for a fresh pair. Revoked or
// expired refresh tokens clear nothing; the guard redirects on the next
// request once the access token lapses.
func (s *AuthService) Refresh(ctx context.Context, sess *session.Session) error {
	refresh := sess.RefreshToken(ctx)
	if refresh == "" {
		return util.NewUnauthorized("no refresh token")
	}

	claims, err := s.tokens.ParseToken(refresh, auth.TokenTypeRefresh)
	if err != nil {
		return util.NewUnauthorized("invalid refresh token")
	}
	revoked, err := s.redis.Exists(ctx, revokedKeyPrefix+claims.ID).Result()
	if err == nil && revoked > 0 {
		return util.NewUnauthorized("refresh token revoked")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return util.NewUnauthorized("account no longer exists")
	}
	if !user.IsActive {
		return util.NewForbidden("account disabled")
	}

	access, newRefresh, _, err := s.tokens.GeneratePair(user)
	if err != nil {
		return err
	}
	s.revoke(ctx, claims)
	sess.SetAuthTokens(ctx, access, newRefresh)
	sess.SetUserData(ctx, user.SessionUser())
	return nil
}

// SelectShop records the caller's shop choice in the session. Only live
// sessions may select, and the value must name a known shop.
func (s *AuthService) SelectShop(ctx context.Context, sess *session.Session, raw string) (domain.Shop, error) {
	if !sess.ValidateAuthState(ctx) {
		return domain.ShopNone, util.NewUnauthorized("not logged in")
	}
	shop := domain.ParseShop(raw)
	if shop == domain.ShopNone {
		return domain.ShopNone, util.NewValidationError("unknown shop", map[string]any{"shop": raw})
	}
	sess.SetSelectedShop(ctx, shop)
	return shop, nil
}

// Logout revokes the session's refresh token and wipes the whole session
// bag. The wipe happens regardless of revocation success, and logging out an
// already logged-out session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) {
	if refresh := sess.RefreshToken(ctx); refresh != "" {
		if claims, err := s.tokens.ParseToken(refresh, auth.TokenTypeRefresh); err == nil {
			s.revoke(ctx, claims)
		}
	}
	sess.ClearAuthData(ctx)
}

// revoke denylists a refresh token until its natural expiry.
func (s *AuthService) revoke(ctx context.Context, claims *auth.Claims) {
	ttl := s.tokens.RefreshTTL()
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.redis.Set(ctx, revokedKeyPrefix+claims.ID, "1", ttl).Err(); err != nil {
		s.logger.Warn("failed to revoke refresh token", zap.Error(err))
	}
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(user.PasswordHash, current); err != nil {
		return util.NewUnauthorized("current password is incorrect")
	}
	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// RequestPasswordReset issues a reset token and mails it. The response never
// reveals whether the email exists.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     hex.EncodeToString(raw),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return err
	}

	if s.mailer == nil {
		s.logger.Warn("mailer not configured, password reset token not sent",
			zap.String("user_id", user.ID))
		return nil
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nUse the token below to reset your dashboard password. It expires in %d minutes.\n\n%s\n\nIf you did not request this, ignore this message.",
		user.FirstName, int(s.resetTTL.Minutes()), token.Token)
	if err := s.mailer.Send(user.Email, "Password reset", body); err != nil {
		s.logger.Error("failed to send password reset mail", zap.Error(err))
	}
	return nil
}

// ConfirmPasswordReset redeems a reset token and stores the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if err == pgx.ErrNoRows {
			return util.NewUnauthorized("invalid reset token")
		}
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return util.NewUnauthorized("reset token expired")
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, token.ID)
}
