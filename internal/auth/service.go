package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"account-api/internal/identity"
	"account-api/internal/notification"
	"account-api/internal/revocation"
	"account-api/pkg/cerror"
	"account-api/pkg/jwt_generator"
	"account-api/pkg/logger"
)

const (
	UserOtpCodeLength  = 6
	AdminOtpCodeLength = 4
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=auth

type Service interface {
	RegisterUser(ctx context.Context, payload *RegisterPayload) error
	LoginUser(ctx context.Context, payload *LoginPayload) (*LoginResult, error)
	VerifyUserEmail(ctx context.Context, email, code string) (*jwt_generator.Tokens, error)
	ResendUserVerification(ctx context.Context, email string) error
	RefreshUserTokens(ctx context.Context, refreshToken string) (*jwt_generator.Tokens, error)
	LogoutUser(ctx context.Context, accessToken, refreshToken string)
	ForgotUserPassword(ctx context.Context, email string) error
	VerifyUserResetCode(ctx context.Context, email, code string) (string, error)
	ResetUserPassword(ctx context.Context, resetToken, newPassword string) error

	LoginAdmin(ctx context.Context, payload *LoginPayload) (*jwt_generator.Tokens, error)
	RefreshAdminTokens(ctx context.Context, refreshToken string) (*jwt_generator.Tokens, error)
	LogoutAdmin(ctx context.Context, accessToken, refreshToken string)
	ForgotAdminPassword(ctx context.Context, email string) error
	VerifyAdminResetCode(ctx context.Context, email, code string) error
	ResetAdminPassword(ctx context.Context, email, newPassword string) error
}

type service struct {
	repository      identity.Repository
	revocationStore revocation.Store
	jwtGenerator    jwt_generator.JwtGenerator
	dispatcher      notification.Dispatcher
	otpExpiry       time.Duration
}

func NewService(
	repository identity.Repository,
	revocationStore revocation.Store,
	jwtGenerator jwt_generator.JwtGenerator,
	dispatcher notification.Dispatcher,
	otpExpiryMinutes int,
) Service {
	return &service{
		repository:      repository,
		revocationStore: revocationStore,
		jwtGenerator:    jwtGenerator,
		dispatcher:      dispatcher,
		otpExpiry:       time.Duration(otpExpiryMinutes) * time.Minute,
	}
}

func generateOtpCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			code[i] = '0'
			continue
		}
		code[i] = byte('0' + digit.Int64())
	}

	return string(code)
}

// sendCodeEmail dispatches best-effort: a broken email pipeline must never
// fail the auth flow that triggered it.
func (s *service) sendCodeEmail(ctx context.Context, email, templateKey, code string) {
	err := s.dispatcher.SendEmail(ctx, email, templateKey, map[string]string{
		"code": code,
	})
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"failed to dispatch email",
			zap.String("templateKey", templateKey),
			zap.Error(err),
		)
	}
}

func (s *service) upsertAndSendOtp(ctx context.Context, email, otpType, templateKey string, codeLength int) error {
	code := generateOtpCode(codeLength)
	err := s.repository.UpsertOtp(ctx, &identity.OtpDocument{
		Id:        uuid.New().String(),
		Email:     email,
		Type:      otpType,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(s.otpExpiry).Unix(),
		CreatedAt: time.Now().UTC().Unix(),
	})
	if err != nil {
		return err
	}

	s.sendCodeEmail(ctx, email, templateKey, code)
	return nil
}

// checkOtpCode enforces the one-shot code semantics: expired codes and codes
// past the attempt cap delete the record so the caller has to request a fresh
// one, and a wrong code burns an attempt.
func (s *service) checkOtpCode(ctx context.Context, email, otpType, code string) error {
	otp, err := s.repository.FindOtp(ctx, email, otpType)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"invalid or expired verification code",
		).SetSeverity(zapcore.WarnLevel)
	}

	now := time.Now().UTC().Unix()
	if now > otp.ExpiresAt {
		_ = s.repository.DeleteOtp(ctx, email, otpType)
		return cerror.NewError(
			fiber.StatusBadRequest,
			"verification code expired",
		).SetSeverity(zapcore.WarnLevel)
	}

	if otp.Attempts >= identity.OtpMaxAttempts {
		_ = s.repository.DeleteOtp(ctx, email, otpType)
		return cerror.NewError(
			fiber.StatusBadRequest,
			"too many attempts",
		).SetSeverity(zapcore.WarnLevel)
	}

	if otp.Code != code {
		if err = s.repository.IncrementOtpAttempts(ctx, email, otpType); err != nil {
			return err
		}

		if otp.Attempts+1 >= identity.OtpMaxAttempts {
			_ = s.repository.DeleteOtp(ctx, email, otpType)
			return cerror.NewError(
				fiber.StatusBadRequest,
				"too many attempts",
			).SetSeverity(zapcore.WarnLevel)
		}

		return cerror.NewError(
			fiber.StatusBadRequest,
			"invalid verification code",
		).SetSeverity(zapcore.WarnLevel)
	}

	return nil
}

// blacklistTokens powers logout: each presented token is blacklisted for its
// remaining lifetime, read via a non-verifying decode. Failures are logged
// and swallowed, logout stays best-effort for the caller.
func (s *service) blacklistTokens(ctx context.Context, tokens ...string) {
	log := logger.FromContext(ctx)
	now := time.Now().UTC().Unix()

	for _, token := range tokens {
		claims, err := s.jwtGenerator.DecodeToken(token)
		if err != nil || claims.ExpiresAt == nil {
			continue
		}

		remaining := claims.ExpiresAt.Unix() - now
		if remaining <= 0 {
			continue
		}

		err = s.revocationStore.BlacklistToken(ctx, token, time.Duration(remaining)*time.Second)
		if err != nil {
			log.Warnw(
				"failed to blacklist token on logout",
				zap.Error(err),
			)
		}
	}
}

// revokeIdentitySessions issues a blanket revocation sized to the refresh
// token lifetime, the longest-lived token the identity could present.
func (s *service) revokeIdentitySessions(ctx context.Context, identityId string, scope revocation.Scope) {
	err := s.revocationStore.BlacklistIdentity(ctx, identityId, scope, s.jwtGenerator.RefreshTokenLifetime())
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"failed to revoke identity sessions",
			zap.String("identityId", identityId),
			zap.Error(err),
		)
	}
}

// maskNotFound hides account existence behind the generic credentials error.
func maskNotFound(err error) error {
	var cerr *cerror.CustomError
	if errors.As(err, &cerr) && cerr.HttpStatusCode == fiber.StatusNotFound {
		return cerror.ErrorInvalidCredentials
	}

	return err
}

func checkCredentialRules(status string, isDeleted bool) error {
	if isDeleted || status == identity.StatusDeleted {
		return cerror.ErrorAccountGone
	}

	if status != identity.StatusActive {
		return cerror.ErrorAccountInactive
	}

	return nil
}
