//go:build unit

package identity

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"account-api/pkg/cerror"
	"account-api/pkg/config"
)

const TestDatabase = "account-api"

func buildTestRepository(mt *mtest.T) Repository {
	return NewRepository(mt.Client, config.MongodbConfig{
		Database: TestDatabase,
	})
}

func userBson(user *UserDocument) bson.D {
	return bson.D{
		{Key: "_id", Value: user.Id},
		{Key: "name", Value: user.Name},
		{Key: "email", Value: user.Email},
		{Key: "password", Value: user.Password},
		{Key: "role", Value: user.Role},
		{Key: "status", Value: user.Status},
		{Key: "isDeleted", Value: user.IsDeleted},
		{Key: "emailVerified", Value: user.EmailVerified},
	}
}

func TestRepository_InsertUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	testUser := &UserDocument{
		Id:       TestUserId,
		Email:    TestEmail,
		Password: "hashed-password",
		Role:     RoleUser,
		Status:   StatusActive,
	}

	mt.Run("happy path", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, TestDatabase+".users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		repository := buildTestRepository(mt)

		userId, err := repository.InsertUser(context.Background(), testUser)

		require.NoError(mt, err)
		assert.Equal(mt, TestUserId, userId)
	})

	mt.Run("when email is taken should return conflict", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, TestDatabase+".users", mtest.FirstBatch, userBson(testUser)),
		)

		repository := buildTestRepository(mt)

		_, err := repository.InsertUser(context.Background(), testUser)

		var cerr *cerror.CustomError
		require.ErrorAs(mt, err, &cerr)
		assert.Equal(mt, fiber.StatusConflict, cerr.HttpStatusCode)
	})
}

func TestRepository_FindUserWithEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("happy path", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, TestDatabase+".users", mtest.FirstBatch, userBson(&UserDocument{
				Id:     TestUserId,
				Email:  TestEmail,
				Role:   RoleUser,
				Status: StatusActive,
			})),
		)

		repository := buildTestRepository(mt)

		user, err := repository.FindUserWithEmail(context.Background(), TestEmail)

		require.NoError(mt, err)
		assert.Equal(mt, TestUserId, user.Id)
		assert.Equal(mt, TestEmail, user.Email)
	})

	mt.Run("when user does not exist should return not found", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, TestDatabase+".users", mtest.FirstBatch),
		)

		repository := buildTestRepository(mt)

		user, err := repository.FindUserWithEmail(context.Background(), TestEmail)

		var cerr *cerror.CustomError
		require.ErrorAs(mt, err, &cerr)
		assert.Equal(mt, fiber.StatusNotFound, cerr.HttpStatusCode)
		assert.Nil(mt, user)
	})
}

func TestRepository_UpdateUserStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("happy path", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
		)

		repository := buildTestRepository(mt)

		err := repository.UpdateUserStatus(context.Background(), TestUserId, StatusDeactivated)

		assert.NoError(mt, err)
	})

	mt.Run("when user does not exist should return not found", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 0},
				bson.E{Key: "nModified", Value: 0},
			),
		)

		repository := buildTestRepository(mt)

		err := repository.UpdateUserStatus(context.Background(), TestUserId, StatusDeleted)

		var cerr *cerror.CustomError
		require.ErrorAs(mt, err, &cerr)
		assert.Equal(mt, fiber.StatusNotFound, cerr.HttpStatusCode)
	})
}

func TestRepository_MarkUserEmailVerified(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("happy path", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
		)

		repository := buildTestRepository(mt)

		assert.NoError(mt, repository.MarkUserEmailVerified(context.Background(), TestUserId))
	})
}

func TestRepository_Otp(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	testOtp := &OtpDocument{
		Id:        "otp-id",
		Email:     TestEmail,
		Type:      OtpTypeUserSignup,
		Code:      "123456",
		ExpiresAt: time.Now().UTC().Add(5 * time.Minute).Unix(),
		CreatedAt: time.Now().UTC().Unix(),
	}

	mt.Run("upsert happy path", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
		)

		repository := buildTestRepository(mt)

		assert.NoError(mt, repository.UpsertOtp(context.Background(), testOtp))
	})

	mt.Run("find happy path", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, TestDatabase+".otps", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: testOtp.Id},
				{Key: "email", Value: testOtp.Email},
				{Key: "type", Value: testOtp.Type},
				{Key: "code", Value: testOtp.Code},
				{Key: "expiresAt", Value: testOtp.ExpiresAt},
				{Key: "attempts", Value: 1},
			}),
		)

		repository := buildTestRepository(mt)

		otp, err := repository.FindOtp(context.Background(), TestEmail, OtpTypeUserSignup)

		require.NoError(mt, err)
		assert.Equal(mt, testOtp.Code, otp.Code)
		assert.Equal(mt, 1, otp.Attempts)
	})

	mt.Run("find missing code should return not found", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, TestDatabase+".otps", mtest.FirstBatch),
		)

		repository := buildTestRepository(mt)

		otp, err := repository.FindOtp(context.Background(), TestEmail, OtpTypeUserSignup)

		var cerr *cerror.CustomError
		require.ErrorAs(mt, err, &cerr)
		assert.Equal(mt, fiber.StatusNotFound, cerr.HttpStatusCode)
		assert.Nil(mt, otp)
	})

	mt.Run("increment attempts happy path", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
		)

		repository := buildTestRepository(mt)

		assert.NoError(mt, repository.IncrementOtpAttempts(context.Background(), TestEmail, OtpTypeUserSignup))
	})

	mt.Run("delete happy path", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		repository := buildTestRepository(mt)

		assert.NoError(mt, repository.DeleteOtp(context.Background(), TestEmail, OtpTypeUserSignup))
	})
}
