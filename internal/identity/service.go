package identity

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"account-api/internal/revocation"
	"account-api/pkg/cerror"
	"account-api/pkg/jwt_generator"
	"account-api/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_service.go -package=identity

type Service interface {
	GetUserProfile(ctx context.Context, userId string) (*ProfileView, error)
	UpdateUserProfile(ctx context.Context, userId string, payload *UpdateProfilePayload) error
	ChangeUserPassword(ctx context.Context, userId, currentPassword, newPassword string) error
	CreateAdmin(ctx context.Context, payload *CreateAdminPayload) (string, error)
	SetUserStatus(ctx context.Context, userId, status string) error
}

type service struct {
	repository      Repository
	revocationStore revocation.Store
	jwtGenerator    jwt_generator.JwtGenerator
}

func NewService(
	repository Repository,
	revocationStore revocation.Store,
	jwtGenerator jwt_generator.JwtGenerator,
) Service {
	return &service{
		repository:      repository,
		revocationStore: revocationStore,
		jwtGenerator:    jwtGenerator,
	}
}

func (s *service) GetUserProfile(ctx context.Context, userId string) (*ProfileView, error) {
	user, err := s.repository.FindUserWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		Id:            user.Id,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		Status:        user.Status,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}, nil
}

func (s *service) UpdateUserProfile(ctx context.Context, userId string, payload *UpdateProfilePayload) error {
	if payload.Name == "" && payload.Email == "" {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"nothing to update",
		).SetSeverity(zapcore.WarnLevel)
	}

	return s.repository.UpdateUserProfile(ctx, userId, payload.Name, payload.Email)
}

// ChangeUserPassword verifies the current password before persisting the new
// hash, then revokes every outstanding session of the user.
func (s *service) ChangeUserPassword(ctx context.Context, userId, currentPassword, newPassword string) error {
	user, err := s.repository.FindUserWithId(ctx, userId)
	if err != nil {
		return err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword))
	if err != nil {
		return cerror.NewError(
			fiber.StatusUnauthorized,
			"current password is incorrect",
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

	err = s.repository.UpdateUserPassword(ctx, userId, string(hashedPassword))
	if err != nil {
		return err
	}

	err = s.revocationStore.BlacklistIdentity(
		ctx,
		userId,
		revocation.ScopeUser,
		s.jwtGenerator.RefreshTokenLifetime(),
	)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"failed to revoke user sessions after password change",
			zap.String("userId", userId),
			zap.Error(err),
		)
	}

	return nil
}

func (s *service) CreateAdmin(ctx context.Context, payload *CreateAdminPayload) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	now := time.Now().UTC().Unix()
	return s.repository.InsertAdmin(ctx, &AdminDocument{
		Id:        uuid.New().String(),
		Name:      payload.Name,
		Email:     payload.Email,
		Password:  string(hashedPassword),
		Role:      payload.Role,
		IsSuper:   payload.Role == RoleSuperAdmin,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// SetUserStatus suspends, soft-deletes or reactivates a user. Suspension and
// deletion blanket-revoke the user's tokens; reactivation clears the entry.
func (s *service) SetUserStatus(ctx context.Context, userId, status string) error {
	if _, err := s.repository.FindUserWithId(ctx, userId); err != nil {
		return err
	}

	err := s.repository.UpdateUserStatus(ctx, userId, status)
	if err != nil {
		return err
	}

	if status == StatusActive {
		return s.revocationStore.ClearIdentity(ctx, userId, revocation.ScopeUser)
	}

	return s.revocationStore.BlacklistIdentity(
		ctx,
		userId,
		revocation.ScopeUser,
		s.jwtGenerator.RefreshTokenLifetime(),
	)
}
