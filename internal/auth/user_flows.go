package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"account-api/internal/identity"
	"account-api/internal/notification"
	"account-api/internal/revocation"
	"account-api/pkg/cerror"
	"account-api/pkg/jwt_generator"
)

func (s *service) RegisterUser(ctx context.Context, payload *RegisterPayload) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	now := time.Now().UTC().Unix()
	_, err = s.repository.InsertUser(ctx, &identity.UserDocument{
		Id:            uuid.New().String(),
		Name:          payload.Name,
		Email:         payload.Email,
		Password:      string(hashedPassword),
		Role:          identity.RoleUser,
		Status:        identity.StatusActive,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return err
	}

	return s.upsertAndSendOtp(
		ctx,
		payload.Email,
		identity.OtpTypeUserSignup,
		notification.TemplateVerificationCode,
		UserOtpCodeLength,
	)
}

func (s *service) LoginUser(ctx context.Context, payload *LoginPayload) (*LoginResult, error) {
	user, err := s.repository.FindUserWithEmail(ctx, payload.Email)
	if err != nil {
		return nil, maskNotFound(err)
	}

	if err = checkCredentialRules(user.Status, user.IsDeleted); err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return nil, cerror.ErrorInvalidCredentials
	}

	// An unverified email is not a login failure: resend the code and let the
	// client steer into the verification flow.
	if !user.EmailVerified {
		err = s.upsertAndSendOtp(
			ctx,
			user.Email,
			identity.OtpTypeUserSignup,
			notification.TemplateVerificationCode,
			UserOtpCodeLength,
		)
		if err != nil {
			return nil, err
		}

		return &LoginResult{
			Tokens:        nil,
			EmailVerified: false,
		}, nil
	}

	tokens, err := s.jwtGenerator.GenerateTokenPair(user.Id, user.Email, user.Role)
	if err != nil {
		return nil, cerror.ErrorGenerateTokens
	}

	return &LoginResult{
		Tokens:        tokens,
		EmailVerified: true,
	}, nil
}

func (s *service) VerifyUserEmail(ctx context.Context, email, code string) (*jwt_generator.Tokens, error) {
	err := s.checkOtpCode(ctx, email, identity.OtpTypeUserSignup, code)
	if err != nil {
		return nil, err
	}

	user, err := s.repository.FindUserWithEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	err = s.repository.MarkUserEmailVerified(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	_ = s.repository.DeleteOtp(ctx, email, identity.OtpTypeUserSignup)

	// Verification doubles as login.
	tokens, err := s.jwtGenerator.GenerateTokenPair(user.Id, user.Email, user.Role)
	if err != nil {
		return nil, cerror.ErrorGenerateTokens
	}

	return tokens, nil
}

func (s *service) ResendUserVerification(ctx context.Context, email string) error {
	user, err := s.repository.FindUserWithEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"email already verified",
		).SetSeverity(zapcore.WarnLevel)
	}

	return s.upsertAndSendOtp(
		ctx,
		user.Email,
		identity.OtpTypeUserSignup,
		notification.TemplateVerificationCode,
		UserOtpCodeLength,
	)
}

func (s *service) RefreshUserTokens(ctx context.Context, refreshToken string) (*jwt_generator.Tokens, error) {
	return s.refreshTokens(ctx, refreshToken, revocation.ScopeUser, func(userId string) (*identity.Account, error) {
		user, err := s.repository.FindUserWithId(ctx, userId)
		if err != nil {
			return nil, err
		}
		return user.ToAccount(), nil
	})
}

func (s *service) LogoutUser(ctx context.Context, accessToken, refreshToken string) {
	s.blacklistTokens(ctx, accessToken, refreshToken)
}

func (s *service) ForgotUserPassword(ctx context.Context, email string) error {
	user, err := s.repository.FindUserWithEmail(ctx, email)
	if err != nil {
		return err
	}

	return s.upsertAndSendOtp(
		ctx,
		user.Email,
		identity.OtpTypeUserPasswordReset,
		notification.TemplatePasswordResetCode,
		UserOtpCodeLength,
	)
}

// VerifyUserResetCode completes the first phase of the two-phase reset: the
// code is checked and exchanged for a short-lived purpose-scoped token that
// ResetUserPassword requires.
func (s *service) VerifyUserResetCode(ctx context.Context, email, code string) (string, error) {
	err := s.checkOtpCode(ctx, email, identity.OtpTypeUserPasswordReset, code)
	if err != nil {
		return "", err
	}

	err = s.repository.MarkOtpVerified(ctx, email, identity.OtpTypeUserPasswordReset)
	if err != nil {
		return "", err
	}

	user, err := s.repository.FindUserWithEmail(ctx, email)
	if err != nil {
		return "", err
	}

	resetToken, err := s.jwtGenerator.GenerateResetToken(user.Id, user.Email)
	if err != nil {
		return "", cerror.ErrorGenerateTokens
	}

	return resetToken, nil
}

func (s *service) ResetUserPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.jwtGenerator.VerifyResetToken(resetToken)
	if err != nil {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			"invalid or expired reset token",
		).SetSeverity(zapcore.WarnLevel)
	}

	otp, err := s.repository.FindOtp(ctx, claims.Email, identity.OtpTypeUserPasswordReset)
	if err != nil || otp.VerifiedAt == 0 || time.Now().UTC().Unix() > otp.ExpiresAt {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"password reset request expired",
		).SetSeverity(zapcore.WarnLevel)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	err = s.repository.UpdateUserPassword(ctx, claims.Subject, string(hashedPassword))
	if err != nil {
		return err
	}

	_ = s.repository.DeleteOtp(ctx, claims.Email, identity.OtpTypeUserPasswordReset)

	s.revokeIdentitySessions(ctx, claims.Subject, revocation.ScopeUser)

	return nil
}

// refreshTokens applies the guard's checks to the refresh token and issues a
// fresh pair. The presented refresh token stays valid until it expires
// naturally; there is no rotation-reuse detection.
func (s *service) refreshTokens(
	ctx context.Context,
	refreshToken string,
	scope revocation.Scope,
	findAccount func(accountId string) (*identity.Account, error),
) (*jwt_generator.Tokens, error) {
	if s.revocationStore.IsTokenBlacklisted(ctx, refreshToken) {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"token has been revoked",
		).SetSeverity(zapcore.WarnLevel)
	}

	claims, err := s.jwtGenerator.VerifyRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt_generator.ErrTokenExpired) {
			return nil, cerror.NewError(
				fiber.StatusUnauthorized,
				"refresh token expired",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"invalid refresh token",
		).SetSeverity(zapcore.WarnLevel)
	}

	if s.revocationStore.IsIdentityBlacklisted(ctx, claims.Subject, scope) {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			string(scope)+" tokens have been revoked",
		).SetSeverity(zapcore.WarnLevel)
	}

	account, err := findAccount(claims.Subject)
	if err != nil {
		return nil, cerror.ErrorAccountGone
	}

	if err = checkCredentialRules(account.Status, account.IsDeleted); err != nil {
		return nil, err
	}

	tokens, err := s.jwtGenerator.GenerateTokenPair(account.Id, account.Email, account.Role)
	if err != nil {
		return nil, cerror.ErrorGenerateTokens
	}

	return tokens, nil
}
