package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"account-api/internal/auth"
	"account-api/internal/identity"
	"account-api/internal/notification"
	"account-api/internal/revocation"
	"account-api/pkg/config"
	"account-api/pkg/jwt_generator"
	"account-api/pkg/logger"
	"account-api/pkg/server"
)

func main() {
	log := logger.NewLogger()
	defer func(l *zap.SugaredLogger) {
		err := l.Sync()
		if err != nil {
			panic(err)
		}
	}(log)

	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		err := godotenv.Load()
		if err != nil {
			log.Fatalw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		panic(err)
	}
	cfg.Print()

	jwtGenerator := jwt_generator.NewJwtGenerator(cfg.Jwt)

	ctx := context.Background()
	mongodbClient, err := setupMongodbClient(cfg)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}

	defer func(client *mongo.Client, ctx context.Context) {
		err := client.Disconnect(ctx)
		if err != nil {
			log.Fatalw(
				"failed to disconnect mongodb client",
				zap.Error(err),
			)
		}
	}(mongodbClient, ctx)

	redisClient, err := revocation.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warnw(
			"revocation store is unreachable, blacklist checks will fail open",
			zap.Error(err),
		)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	revocationStore := revocation.NewStore(redisClient, log)
	emailDispatcher := notification.NewAmqpDispatcher(cfg.Amqp, log)

	identityRepository := identity.NewRepository(mongodbClient, cfg.Mongodb)
	authService := auth.NewService(
		identityRepository,
		revocationStore,
		jwtGenerator,
		emailDispatcher,
		cfg.OtpExpiryMinutes,
	)
	identityService := identity.NewService(identityRepository, revocationStore, jwtGenerator)

	userGuard := auth.NewUserGuard(jwtGenerator, revocationStore, identityRepository, cfg.BasicAuthEnabled)
	adminGuard := auth.NewAdminGuard(jwtGenerator, revocationStore, identityRepository)

	var handlers []server.Handler
	handlers = append(handlers, auth.NewHandler(authService))
	handlers = append(handlers, identity.NewHandler(
		identityService,
		userGuard,
		adminGuard,
		auth.RequireRoles(identity.RoleSuperAdmin, identity.RoleAdmin),
		auth.RequireRoles(identity.RoleSuperAdmin),
	))
	srv := server.NewServer(cfg, handlers)

	logMiddleware := logger.Middleware(log)
	app := srv.GetFiberInstance()
	app.Use(cors.New())
	app.Use(logMiddleware)
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	srv.RegisterRoutes()

	if isAtRemote == "" {
		err = srv.Start()
		if err != nil {
			panic(err)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}

func setupMongodbClient(cfg *config.Config) (*mongo.Client, error) {
	mongodbCredential := options.Credential{
		Username: cfg.Mongodb.Username,
		Password: cfg.Mongodb.Password,
	}
	mongodbServerAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	credentials := options.Client().
		ApplyURI(cfg.Mongodb.Uri).
		SetAuth(mongodbCredential).
		SetServerAPIOptions(mongodbServerAPIOptions)

	ctx := context.Background()
	mongodbClient, err := mongo.Connect(ctx, credentials)
	if err != nil {
		return nil, err
	}

	return mongodbClient, nil
}
