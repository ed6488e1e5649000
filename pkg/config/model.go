package config

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	IsAtRemote = "IS_AT_REMOTE"
	ServerPort = "SERVER_PORT"

	MongodbUri      = "MONGODB_URI"
	MongodbUsername = "MONGODB_USERNAME"
	MongodbPassword = "MONGODB_PASSWORD"
	MongodbDatabase = "MONGODB_DATABASE"

	RedisAddr     = "REDIS_ADDR"
	RedisPassword = "REDIS_PASSWORD"
	RedisDb       = "REDIS_DB"

	JwtAccessSecret  = "JWT_ACCESS_SECRET"
	JwtRefreshSecret = "JWT_REFRESH_SECRET"
	JwtAccessExpiry  = "JWT_ACCESS_EXPIRY"
	JwtRefreshExpiry = "JWT_REFRESH_EXPIRY"

	BasicAuthEnabled = "BASIC_AUTH_ENABLED"
	OtpExpiryMinutes = "OTP_EXPIRY_MINUTES"

	AmqpUrl        = "AMQP_URL"
	AmqpEmailQueue = "AMQP_EMAIL_QUEUE"
)

type MongodbConfig struct {
	Uri      string
	Username string
	Password string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	Db       int
}

type JwtConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessExpiry  string
	RefreshExpiry string
}

type AmqpConfig struct {
	Url        string
	EmailQueue string
}
