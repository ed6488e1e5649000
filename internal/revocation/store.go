package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"account-api/pkg/cerror"
)

// Scope separates user and admin blacklist namespaces so an id collision
// between the two identity kinds can never cross-revoke.
type Scope string

const (
	ScopeUser  Scope = "user"
	ScopeAdmin Scope = "admin"
)

const blacklistSentinel = "1"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=revocation

// Store records blacklisted tokens and blanket per-identity revocations.
//
// Reads fail open: when the underlying store is unreachable they report "not
// blacklisted" instead of failing the request. Availability of authentication
// is deliberately prioritized over strict revocation enforcement; the token
// signature and expiry checks remain the primary guard. Writes do propagate
// errors so callers can decide how loudly to fail.
type Store interface {
	BlacklistToken(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) bool
	BlacklistIdentity(ctx context.Context, identityId string, scope Scope, ttl time.Duration) error
	IsIdentityBlacklisted(ctx context.Context, identityId string, scope Scope) bool
	ClearIdentity(ctx context.Context, identityId string, scope Scope) error
}

type store struct {
	client *redis.Client
	log    *zap.SugaredLogger
}

func NewStore(client *redis.Client, log *zap.SugaredLogger) Store {
	return &store{
		client: client,
		log:    log,
	}
}

func (s *store) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	err := s.client.Set(ctx, tokenKey(token), blacklistSentinel, ttl).Err()
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while blacklist token",
			zap.Error(err),
		)
	}

	return nil
}

func (s *store) IsTokenBlacklisted(ctx context.Context, token string) bool {
	err := s.client.Get(ctx, tokenKey(token)).Err()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnw(
				"revocation store unreachable, token check fails open",
				zap.Error(err),
			)
		}
		return false
	}

	return true
}

func (s *store) BlacklistIdentity(
	ctx context.Context,
	identityId string,
	scope Scope,
	ttl time.Duration,
) error {
	if ttl <= 0 {
		return nil
	}

	err := s.client.Set(ctx, identityKey(identityId, scope), blacklistSentinel, ttl).Err()
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while blacklist identity tokens",
			zap.Error(err),
		)
	}

	return nil
}

func (s *store) IsIdentityBlacklisted(ctx context.Context, identityId string, scope Scope) bool {
	err := s.client.Get(ctx, identityKey(identityId, scope)).Err()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnw(
				"revocation store unreachable, identity check fails open",
				zap.Error(err),
			)
		}
		return false
	}

	return true
}

func (s *store) ClearIdentity(ctx context.Context, identityId string, scope Scope) error {
	err := s.client.Del(ctx, identityKey(identityId, scope)).Err()
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while clear identity blacklist",
			zap.Error(err),
		)
	}

	return nil
}

func tokenKey(token string) string {
	return fmt.Sprintf("revoked:token:%s", token)
}

func identityKey(identityId string, scope Scope) string {
	return fmt.Sprintf("revoked:%s:%s", scope, identityId)
}
