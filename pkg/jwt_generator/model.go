package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const IssuerDefault = "account-api"

const PurposePasswordReset = "password-reset"

const (
	DefaultAccessExpiry  = 12 * time.Hour
	DefaultRefreshExpiry = 7 * 24 * time.Hour
	ResetTokenExpiry     = 10 * time.Minute
)

var (
	ErrTokenExpired   = errors.New("expired jwt token")
	ErrTokenMalformed = errors.New("malformed jwt token")
	ErrTokenInvalid   = errors.New("invalid jwt token")
)

type Claims struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
