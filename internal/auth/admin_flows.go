package auth

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"account-api/internal/identity"
	"account-api/internal/notification"
	"account-api/internal/revocation"
	"account-api/pkg/cerror"
	"account-api/pkg/jwt_generator"
)

func (s *service) LoginAdmin(ctx context.Context, payload *LoginPayload) (*jwt_generator.Tokens, error) {
	admin, err := s.repository.FindAdminWithEmail(ctx, payload.Email)
	if err != nil {
		return nil, maskNotFound(err)
	}

	if err = checkCredentialRules(admin.Status, admin.IsDeleted); err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password))
	if err != nil {
		return nil, cerror.ErrorInvalidCredentials
	}

	tokens, err := s.jwtGenerator.GenerateTokenPair(admin.Id, admin.Email, admin.Role)
	if err != nil {
		return nil, cerror.ErrorGenerateTokens
	}

	return tokens, nil
}

func (s *service) RefreshAdminTokens(ctx context.Context, refreshToken string) (*jwt_generator.Tokens, error) {
	return s.refreshTokens(ctx, refreshToken, revocation.ScopeAdmin, func(adminId string) (*identity.Account, error) {
		admin, err := s.repository.FindAdminWithId(ctx, adminId)
		if err != nil {
			return nil, err
		}
		return admin.ToAccount(), nil
	})
}

func (s *service) LogoutAdmin(ctx context.Context, accessToken, refreshToken string) {
	s.blacklistTokens(ctx, accessToken, refreshToken)
}

func (s *service) ForgotAdminPassword(ctx context.Context, email string) error {
	admin, err := s.repository.FindAdminWithEmail(ctx, email)
	if err != nil {
		return err
	}

	return s.upsertAndSendOtp(
		ctx,
		admin.Email,
		identity.OtpTypeAdminPasswordReset,
		notification.TemplatePasswordResetCode,
		AdminOtpCodeLength,
	)
}

// VerifyAdminResetCode marks the record verified; unlike the user flow there
// is no intermediate reset token, ResetAdminPassword checks the marker.
func (s *service) VerifyAdminResetCode(ctx context.Context, email, code string) error {
	err := s.checkOtpCode(ctx, email, identity.OtpTypeAdminPasswordReset, code)
	if err != nil {
		return err
	}

	return s.repository.MarkOtpVerified(ctx, email, identity.OtpTypeAdminPasswordReset)
}

func (s *service) ResetAdminPassword(ctx context.Context, email, newPassword string) error {
	otp, err := s.repository.FindOtp(ctx, email, identity.OtpTypeAdminPasswordReset)
	if err != nil || otp.VerifiedAt == 0 || time.Now().UTC().Unix() > otp.ExpiresAt {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"password reset request expired",
		).SetSeverity(zapcore.WarnLevel)
	}

	admin, err := s.repository.FindAdminWithEmail(ctx, email)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	err = s.repository.UpdateAdminPassword(ctx, admin.Id, string(hashedPassword))
	if err != nil {
		return err
	}

	_ = s.repository.DeleteOtp(ctx, email, identity.OtpTypeAdminPasswordReset)

	s.revokeIdentitySessions(ctx, admin.Id, revocation.ScopeAdmin)

	return nil
}
