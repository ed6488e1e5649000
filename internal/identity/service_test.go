//go:build unit

package identity

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"account-api/internal/revocation"
	"account-api/pkg/cerror"
	"account-api/pkg/jwt_generator"
)

const (
	TestUserId   = "7815c4c9-fa5c-4045-9df0-468cb958bbaf"
	TestEmail    = "test@test.com"
	TestPassword = "test-password"
)

type identityServiceMocks struct {
	repository      *MockRepository
	revocationStore *revocation.MockStore
	jwtGenerator    *jwt_generator.MockJwtGenerator
}

func buildTestService(mockController *gomock.Controller) (Service, *identityServiceMocks) {
	mocks := &identityServiceMocks{
		repository:      NewMockRepository(mockController),
		revocationStore: revocation.NewMockStore(mockController),
		jwtGenerator:    jwt_generator.NewMockJwtGenerator(mockController),
	}

	identityService := NewService(mocks.repository, mocks.revocationStore, mocks.jwtGenerator)

	return identityService, mocks
}

func buildUserDocument(password string) *UserDocument {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return &UserDocument{
		Id:            TestUserId,
		Name:          "test-user",
		Email:         TestEmail,
		Password:      string(hashedPassword),
		Role:          RoleUser,
		Status:        StatusActive,
		EmailVerified: true,
		CreatedAt:     time.Now().UTC().Unix(),
	}
}

func TestService_GetUserProfile(t *testing.T) {
	ctx := context.Background()
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(buildUserDocument(TestPassword), nil)

		profile, err := identityService.GetUserProfile(ctx, TestUserId)

		require.NoError(t, err)
		assert.Equal(t, TestUserId, profile.Id)
		assert.Equal(t, TestEmail, profile.Email)
		assert.True(t, profile.EmailVerified)
	})

	t.Run("when user not found should return error", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(nil, cerror.NewError(fiber.StatusNotFound, "user not found"))

		profile, err := identityService.GetUserProfile(ctx, TestUserId)

		assert.Error(t, err)
		assert.Nil(t, profile)
	})
}

func TestService_UpdateUserProfile(t *testing.T) {
	ctx := context.Background()
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			UpdateUserProfile(gomock.Any(), TestUserId, "new-name", "").
			Return(nil)

		err := identityService.UpdateUserProfile(ctx, TestUserId, &UpdateProfilePayload{
			Name: "new-name",
		})

		assert.NoError(t, err)
	})

	t.Run("empty payload should return bad request", func(t *testing.T) {
		identityService, _ := buildTestService(mockController)

		err := identityService.UpdateUserProfile(ctx, TestUserId, &UpdateProfilePayload{})

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusBadRequest, cerr.HttpStatusCode)
	})
}

func TestService_ChangeUserPassword(t *testing.T) {
	ctx := context.Background()
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path revokes every session of the user", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(buildUserDocument(TestPassword), nil)
		mocks.repository.EXPECT().
			UpdateUserPassword(gomock.Any(), TestUserId, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hashedPassword string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte("new-password-123")))
				return nil
			})
		mocks.jwtGenerator.EXPECT().RefreshTokenLifetime().Return(7 * 24 * time.Hour)
		mocks.revocationStore.EXPECT().
			BlacklistIdentity(gomock.Any(), TestUserId, revocation.ScopeUser, 7*24*time.Hour).
			Return(nil)

		err := identityService.ChangeUserPassword(ctx, TestUserId, TestPassword, "new-password-123")

		assert.NoError(t, err)
	})

	t.Run("wrong current password should return unauthorized", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(buildUserDocument(TestPassword), nil)

		err := identityService.ChangeUserPassword(ctx, TestUserId, "wrong-password", "new-password-123")

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusUnauthorized, cerr.HttpStatusCode)
	})

	t.Run("revocation failure does not fail the password change", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(buildUserDocument(TestPassword), nil)
		mocks.repository.EXPECT().
			UpdateUserPassword(gomock.Any(), TestUserId, gomock.Any()).
			Return(nil)
		mocks.jwtGenerator.EXPECT().RefreshTokenLifetime().Return(7 * 24 * time.Hour)
		mocks.revocationStore.EXPECT().
			BlacklistIdentity(gomock.Any(), TestUserId, revocation.ScopeUser, 7*24*time.Hour).
			Return(cerror.NewError(fiber.StatusInternalServerError, "store down"))

		err := identityService.ChangeUserPassword(ctx, TestUserId, TestPassword, "new-password-123")

		assert.NoError(t, err)
	})
}

func TestService_CreateAdmin(t *testing.T) {
	ctx := context.Background()
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("super admin role sets the isSuper marker", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			InsertAdmin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin *AdminDocument) (string, error) {
				assert.True(t, admin.IsSuper)
				assert.Equal(t, StatusActive, admin.Status)
				assert.NotEqual(t, TestPassword, admin.Password)
				return admin.Id, nil
			})

		adminId, err := identityService.CreateAdmin(ctx, &CreateAdminPayload{
			Name:     "test-admin",
			Email:    TestEmail,
			Password: TestPassword,
			Role:     RoleSuperAdmin,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, adminId)
	})

	t.Run("moderator role does not set the isSuper marker", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			InsertAdmin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin *AdminDocument) (string, error) {
				assert.False(t, admin.IsSuper)
				return admin.Id, nil
			})

		_, err := identityService.CreateAdmin(ctx, &CreateAdminPayload{
			Name:     "test-admin",
			Email:    TestEmail,
			Password: TestPassword,
			Role:     RoleModerator,
		})

		assert.NoError(t, err)
	})
}

func TestService_SetUserStatus(t *testing.T) {
	ctx := context.Background()
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("deactivation blanket-revokes the user", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(buildUserDocument(TestPassword), nil)
		mocks.repository.EXPECT().
			UpdateUserStatus(gomock.Any(), TestUserId, StatusDeactivated).
			Return(nil)
		mocks.jwtGenerator.EXPECT().RefreshTokenLifetime().Return(7 * 24 * time.Hour)
		mocks.revocationStore.EXPECT().
			BlacklistIdentity(gomock.Any(), TestUserId, revocation.ScopeUser, 7*24*time.Hour).
			Return(nil)

		assert.NoError(t, identityService.SetUserStatus(ctx, TestUserId, StatusDeactivated))
	})

	t.Run("soft delete blanket-revokes the user", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(buildUserDocument(TestPassword), nil)
		mocks.repository.EXPECT().
			UpdateUserStatus(gomock.Any(), TestUserId, StatusDeleted).
			Return(nil)
		mocks.jwtGenerator.EXPECT().RefreshTokenLifetime().Return(7 * 24 * time.Hour)
		mocks.revocationStore.EXPECT().
			BlacklistIdentity(gomock.Any(), TestUserId, revocation.ScopeUser, 7*24*time.Hour).
			Return(nil)

		assert.NoError(t, identityService.SetUserStatus(ctx, TestUserId, StatusDeleted))
	})

	t.Run("reactivation clears the blacklist entry", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(buildUserDocument(TestPassword), nil)
		mocks.repository.EXPECT().
			UpdateUserStatus(gomock.Any(), TestUserId, StatusActive).
			Return(nil)
		mocks.revocationStore.EXPECT().
			ClearIdentity(gomock.Any(), TestUserId, revocation.ScopeUser).
			Return(nil)

		assert.NoError(t, identityService.SetUserStatus(ctx, TestUserId, StatusActive))
	})

	t.Run("revocation write failure fails the operation", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(buildUserDocument(TestPassword), nil)
		mocks.repository.EXPECT().
			UpdateUserStatus(gomock.Any(), TestUserId, StatusDeactivated).
			Return(nil)
		mocks.jwtGenerator.EXPECT().RefreshTokenLifetime().Return(7 * 24 * time.Hour)
		mocks.revocationStore.EXPECT().
			BlacklistIdentity(gomock.Any(), TestUserId, revocation.ScopeUser, 7*24*time.Hour).
			Return(cerror.NewError(fiber.StatusInternalServerError, "store down"))

		assert.Error(t, identityService.SetUserStatus(ctx, TestUserId, StatusDeactivated))
	})

	t.Run("unknown user should return not found", func(t *testing.T) {
		identityService, mocks := buildTestService(mockController)

		mocks.repository.EXPECT().
			FindUserWithId(gomock.Any(), TestUserId).
			Return(nil, cerror.NewError(fiber.StatusNotFound, "user not found"))

		err := identityService.SetUserStatus(ctx, TestUserId, StatusDeactivated)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusNotFound, cerr.HttpStatusCode)
	})
}
