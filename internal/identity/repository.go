package identity

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"account-api/pkg/cerror"
	"account-api/pkg/config"
)

const (
	UserCollection  = "users"
	AdminCollection = "admins"
	OtpCollection   = "otps"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=identity

type Repository interface {
	InsertUser(ctx context.Context, user *UserDocument) (string, error)
	FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error)
	FindUserWithId(ctx context.Context, userId string) (*UserDocument, error)
	UpdateUserProfile(ctx context.Context, userId, name, email string) error
	UpdateUserPassword(ctx context.Context, userId, hashedPassword string) error
	UpdateUserStatus(ctx context.Context, userId, status string) error
	MarkUserEmailVerified(ctx context.Context, userId string) error

	InsertAdmin(ctx context.Context, admin *AdminDocument) (string, error)
	FindAdminWithEmail(ctx context.Context, email string) (*AdminDocument, error)
	FindAdminWithId(ctx context.Context, adminId string) (*AdminDocument, error)
	UpdateAdminPassword(ctx context.Context, adminId, hashedPassword string) error

	UpsertOtp(ctx context.Context, otp *OtpDocument) error
	FindOtp(ctx context.Context, email, otpType string) (*OtpDocument, error)
	IncrementOtpAttempts(ctx context.Context, email, otpType string) error
	MarkOtpVerified(ctx context.Context, email, otpType string) error
	DeleteOtp(ctx context.Context, email, otpType string) error
}

type repository struct {
	database *mongo.Database
}

func NewRepository(mongodbClient *mongo.Client, mongodbConfig config.MongodbConfig) Repository {
	return &repository{
		database: mongodbClient.Database(mongodbConfig.Database),
	}
}

func (r *repository) InsertUser(ctx context.Context, user *UserDocument) (string, error) {
	collection := r.database.Collection(UserCollection)

	var foundUser bson.D
	filter := bson.D{{Key: "email", Value: user.Email}}
	err := collection.FindOne(ctx, &filter).Decode(&foundUser)
	if err != nil && err != mongo.ErrNoDocuments {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while user existing check",
			zap.Error(err),
		)
	}

	if len(foundUser) > 0 {
		return "", cerror.NewError(
			fiber.StatusConflict,
			"user already exists",
		).SetSeverity(zapcore.WarnLevel)
	}

	result, err := collection.InsertOne(ctx, user)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(err),
		)
	}

	userId, ok := result.InsertedID.(string)
	if !ok {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while type casting for user id",
		)
	}

	return userId, nil
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error) {
	collection := r.database.Collection(UserCollection)

	var user UserDocument
	filter := bson.D{{Key: "email", Value: email}}
	err := collection.FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"user not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with email",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId string) (*UserDocument, error) {
	collection := r.database.Collection(UserCollection)

	var user UserDocument
	filter := bson.D{{Key: "_id", Value: userId}}
	err := collection.FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"user not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with id",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) UpdateUserProfile(ctx context.Context, userId, name, email string) error {
	update := bson.M{
		"updatedAt": time.Now().UTC().Unix(),
	}
	if name != "" {
		update["name"] = name
	}
	if email != "" {
		update["email"] = email
	}

	return r.updateOne(ctx, UserCollection, userId, update, "error occurred while update user profile")
}

func (r *repository) UpdateUserPassword(ctx context.Context, userId, hashedPassword string) error {
	update := bson.M{
		"password":  hashedPassword,
		"updatedAt": time.Now().UTC().Unix(),
	}

	return r.updateOne(ctx, UserCollection, userId, update, "error occurred while update user password")
}

func (r *repository) UpdateUserStatus(ctx context.Context, userId, status string) error {
	update := bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC().Unix(),
	}
	if status == StatusDeleted {
		update["isDeleted"] = true
	}

	return r.updateOne(ctx, UserCollection, userId, update, "error occurred while update user status")
}

func (r *repository) MarkUserEmailVerified(ctx context.Context, userId string) error {
	update := bson.M{
		"emailVerified": true,
		"updatedAt":     time.Now().UTC().Unix(),
	}

	return r.updateOne(ctx, UserCollection, userId, update, "error occurred while mark user email verified")
}

func (r *repository) InsertAdmin(ctx context.Context, admin *AdminDocument) (string, error) {
	collection := r.database.Collection(AdminCollection)

	var foundAdmin bson.D
	filter := bson.D{{Key: "email", Value: admin.Email}}
	err := collection.FindOne(ctx, &filter).Decode(&foundAdmin)
	if err != nil && err != mongo.ErrNoDocuments {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while admin existing check",
			zap.Error(err),
		)
	}

	if len(foundAdmin) > 0 {
		return "", cerror.NewError(
			fiber.StatusConflict,
			"admin already exists",
		).SetSeverity(zapcore.WarnLevel)
	}

	result, err := collection.InsertOne(ctx, admin)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert admin",
			zap.Error(err),
		)
	}

	adminId, ok := result.InsertedID.(string)
	if !ok {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while type casting for admin id",
		)
	}

	return adminId, nil
}

func (r *repository) FindAdminWithEmail(ctx context.Context, email string) (*AdminDocument, error) {
	collection := r.database.Collection(AdminCollection)

	var admin AdminDocument
	filter := bson.D{{Key: "email", Value: email}}
	err := collection.FindOne(ctx, &filter).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"admin not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find admin with email",
			zap.Error(err),
		)
	}

	return &admin, nil
}

func (r *repository) FindAdminWithId(ctx context.Context, adminId string) (*AdminDocument, error) {
	collection := r.database.Collection(AdminCollection)

	var admin AdminDocument
	filter := bson.D{{Key: "_id", Value: adminId}}
	err := collection.FindOne(ctx, &filter).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"admin not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find admin with id",
			zap.Error(err),
		)
	}

	return &admin, nil
}

func (r *repository) UpdateAdminPassword(ctx context.Context, adminId, hashedPassword string) error {
	update := bson.M{
		"password":  hashedPassword,
		"updatedAt": time.Now().UTC().Unix(),
	}

	return r.updateOne(ctx, AdminCollection, adminId, update, "error occurred while update admin password")
}

func (r *repository) UpsertOtp(ctx context.Context, otp *OtpDocument) error {
	collection := r.database.Collection(OtpCollection)

	filter := bson.D{
		{Key: "email", Value: otp.Email},
		{Key: "type", Value: otp.Type},
	}
	replaceOptions := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, &filter, otp, replaceOptions)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while upsert otp",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) FindOtp(ctx context.Context, email, otpType string) (*OtpDocument, error) {
	collection := r.database.Collection(OtpCollection)

	var otp OtpDocument
	filter := bson.D{
		{Key: "email", Value: email},
		{Key: "type", Value: otpType},
	}
	err := collection.FindOne(ctx, &filter).Decode(&otp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"verification code not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find otp",
			zap.Error(err),
		)
	}

	return &otp, nil
}

func (r *repository) IncrementOtpAttempts(ctx context.Context, email, otpType string) error {
	collection := r.database.Collection(OtpCollection)

	filter := bson.D{
		{Key: "email", Value: email},
		{Key: "type", Value: otpType},
	}
	update := bson.M{"$inc": bson.M{"attempts": 1}}
	_, err := collection.UpdateOne(ctx, &filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while increment otp attempts",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) MarkOtpVerified(ctx context.Context, email, otpType string) error {
	collection := r.database.Collection(OtpCollection)

	filter := bson.D{
		{Key: "email", Value: email},
		{Key: "type", Value: otpType},
	}
	update := bson.M{"$set": bson.M{"verifiedAt": time.Now().UTC().Unix()}}
	_, err := collection.UpdateOne(ctx, &filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while mark otp verified",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) DeleteOtp(ctx context.Context, email, otpType string) error {
	collection := r.database.Collection(OtpCollection)

	filter := bson.D{
		{Key: "email", Value: email},
		{Key: "type", Value: otpType},
	}
	_, err := collection.DeleteOne(ctx, &filter)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while delete otp",
			zap.Error(err),
		)
	}

	return nil
}

func (r *repository) updateOne(
	ctx context.Context,
	collectionName, documentId string,
	update bson.M,
	errorMessage string,
) error {
	collection := r.database.Collection(collectionName)

	filter := bson.D{{Key: "_id", Value: documentId}}
	result, err := collection.UpdateOne(ctx, &filter, bson.M{"$set": update})
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			errorMessage,
			zap.Error(err),
		)
	}

	if result.MatchedCount == 0 {
		return cerror.NewError(
			fiber.StatusNotFound,
			"document not found",
		).SetSeverity(zapcore.WarnLevel)
	}

	return nil
}
