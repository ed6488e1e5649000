package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"account-api/internal/identity"
	"account-api/internal/revocation"
	"account-api/pkg/cerror"
	"account-api/pkg/jwt_generator"
)

type accountLookup func(ctx context.Context, accountId string) (*identity.Account, error)

type credentialLookup func(ctx context.Context, email string) (*identity.Account, string, error)

// GuardConfig parameterizes the authentication state machine so the same
// guard serves both identity kinds: the revocation namespace, the account
// lookups and the basic-auth fallback differ, nothing else.
type GuardConfig struct {
	Scope            revocation.Scope
	BasicAuthEnabled bool
	FindAccount      accountLookup
	FindCredential   credentialLookup
}

type guard struct {
	jwtGenerator    jwt_generator.JwtGenerator
	revocationStore revocation.Store
	config          GuardConfig
}

func NewGuard(
	jwtGenerator jwt_generator.JwtGenerator,
	revocationStore revocation.Store,
	config GuardConfig,
) fiber.Handler {
	g := &guard{
		jwtGenerator:    jwtGenerator,
		revocationStore: revocationStore,
		config:          config,
	}
	return g.handle
}

// NewUserGuard authenticates regular identities. The basic-auth fallback is
// only wired here, never for the admin guard.
func NewUserGuard(
	jwtGenerator jwt_generator.JwtGenerator,
	revocationStore revocation.Store,
	repository identity.Repository,
	basicAuthEnabled bool,
) fiber.Handler {
	return NewGuard(jwtGenerator, revocationStore, GuardConfig{
		Scope:            revocation.ScopeUser,
		BasicAuthEnabled: basicAuthEnabled,
		FindAccount: func(ctx context.Context, accountId string) (*identity.Account, error) {
			user, err := repository.FindUserWithId(ctx, accountId)
			if err != nil {
				return nil, err
			}
			return user.ToAccount(), nil
		},
		FindCredential: func(ctx context.Context, email string) (*identity.Account, string, error) {
			user, err := repository.FindUserWithEmail(ctx, email)
			if err != nil {
				return nil, "", err
			}
			return user.ToAccount(), user.Password, nil
		},
	})
}

func NewAdminGuard(
	jwtGenerator jwt_generator.JwtGenerator,
	revocationStore revocation.Store,
	repository identity.Repository,
) fiber.Handler {
	return NewGuard(jwtGenerator, revocationStore, GuardConfig{
		Scope: revocation.ScopeAdmin,
		FindAccount: func(ctx context.Context, accountId string) (*identity.Account, error) {
			admin, err := repository.FindAdminWithId(ctx, accountId)
			if err != nil {
				return nil, err
			}
			return admin.ToAccount(), nil
		},
	})
}

func (g *guard) handle(ctx *fiber.Ctx) error {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			"authorization header is missing",
		).SetSeverity(zapcore.WarnLevel)
	}

	scheme, value, found := strings.Cut(authHeader, " ")
	if found && scheme == "Basic" && g.config.BasicAuthEnabled {
		return g.handleBasicAuth(ctx, value)
	}

	if !found || scheme != "Bearer" || value == "" {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			"invalid authorization type",
		).SetSeverity(zapcore.WarnLevel)
	}

	if g.revocationStore.IsTokenBlacklisted(ctx.Context(), value) {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			"token has been revoked",
		).SetSeverity(zapcore.WarnLevel)
	}

	claims, err := g.jwtGenerator.VerifyAccessToken(value)
	if err != nil {
		switch {
		case errors.Is(err, jwt_generator.ErrTokenExpired):
			return cerror.NewError(
				fiber.StatusUnauthorized,
				"token expired",
			).SetSeverity(zapcore.WarnLevel)
		case errors.Is(err, jwt_generator.ErrTokenMalformed):
			return cerror.NewError(
				fiber.StatusUnauthorized,
				"malformed token",
			).SetSeverity(zapcore.WarnLevel)
		default:
			return cerror.NewError(
				fiber.StatusUnauthorized,
				"authentication failed",
				zap.Error(err),
			).SetSeverity(zapcore.WarnLevel)
		}
	}

	accountId := claims.Subject
	if accountId == "" {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			"invalid token",
		).SetSeverity(zapcore.WarnLevel)
	}

	if g.revocationStore.IsIdentityBlacklisted(ctx.Context(), accountId, g.config.Scope) {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			string(g.config.Scope)+" tokens have been revoked",
		).SetSeverity(zapcore.WarnLevel)
	}

	account, err := g.config.FindAccount(ctx.Context(), accountId)
	if err != nil {
		return cerror.ErrorAccountGone
	}

	if err = checkAccountRules(account); err != nil {
		return err
	}

	ctx.Locals(LocalAccountId, account.Id)
	ctx.Locals(LocalAccountEmail, account.Email)
	ctx.Locals(LocalAccountRole, account.Role)

	return ctx.Next()
}

func (g *guard) handleBasicAuth(ctx *fiber.Ctx, encodedCredentials string) error {
	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			"invalid authorization type",
		).SetSeverity(zapcore.WarnLevel)
	}

	email, password, found := strings.Cut(string(decodedCredentials), ":")
	if !found || email == "" {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			"invalid authorization type",
		).SetSeverity(zapcore.WarnLevel)
	}

	account, hashedPassword, err := g.config.FindCredential(ctx.Context(), email)
	if err != nil {
		return cerror.ErrorInvalidCredentials
	}

	if err = checkAccountRules(account); err != nil {
		return err
	}

	err = bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		return cerror.ErrorInvalidCredentials
	}

	ctx.Locals(LocalAccountId, account.Id)
	ctx.Locals(LocalAccountEmail, account.Email)
	ctx.Locals(LocalAccountRole, account.Role)

	return ctx.Next()
}

func checkAccountRules(account *identity.Account) error {
	if account.IsDeleted || account.Status == identity.StatusDeleted {
		return cerror.ErrorAccountGone
	}

	if account.Status != identity.StatusActive {
		return cerror.ErrorAccountInactive
	}

	return nil
}
