package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"account-api/pkg/config"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt_generator.go -package=jwt_generator

type JwtGenerator interface {
	GenerateTokenPair(userId, email, role string) (*Tokens, error)
	GenerateResetToken(userId, email string) (string, error)
	VerifyAccessToken(rawJwtToken string) (*Claims, error)
	VerifyRefreshToken(rawJwtToken string) (*Claims, error)
	VerifyResetToken(rawJwtToken string) (*Claims, error)
	DecodeToken(rawJwtToken string) (*Claims, error)
	RefreshTokenLifetime() time.Duration
}

type jwtGenerator struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewJwtGenerator(jwtConfig config.JwtConfig) JwtGenerator {
	return &jwtGenerator{
		accessSecret:  jwtConfig.AccessSecret,
		refreshSecret: jwtConfig.RefreshSecret,
		accessExpiry:  ParseExpiry(jwtConfig.AccessExpiry, DefaultAccessExpiry),
		refreshExpiry: ParseExpiry(jwtConfig.RefreshExpiry, DefaultRefreshExpiry),
	}
}

func (jwtGenerator *jwtGenerator) GenerateTokenPair(userId, email, role string) (*Tokens, error) {
	now := time.Now().UTC()

	accessToken, err := jwtGenerator.signToken(
		userId, email, role, "",
		now.Add(jwtGenerator.accessExpiry),
		jwtGenerator.accessSecret,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwtGenerator.signToken(
		userId, email, role, "",
		now.Add(jwtGenerator.refreshExpiry),
		jwtGenerator.refreshSecret,
	)
	if err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateResetToken(userId, email string) (string, error) {
	expiresAt := time.Now().UTC().Add(ResetTokenExpiry)
	return jwtGenerator.signToken(
		userId, email, "", PurposePasswordReset,
		expiresAt,
		jwtGenerator.accessSecret,
	)
}

func (jwtGenerator *jwtGenerator) VerifyAccessToken(rawJwtToken string) (*Claims, error) {
	return jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.accessSecret)
}

func (jwtGenerator *jwtGenerator) VerifyRefreshToken(rawJwtToken string) (*Claims, error) {
	return jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.refreshSecret)
}

func (jwtGenerator *jwtGenerator) VerifyResetToken(rawJwtToken string) (*Claims, error) {
	claims, err := jwtGenerator.verifyToken(rawJwtToken, jwtGenerator.accessSecret)
	if err != nil {
		return nil, err
	}

	if claims.Purpose != PurposePasswordReset {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// DecodeToken reads claims without verifying the signature or expiry. It is
// only used to compute the remaining lifetime of a token during logout, never
// as an authorization decision.
func (jwtGenerator *jwtGenerator) DecodeToken(rawJwtToken string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	_, _, err := parser.ParseUnverified(rawJwtToken, &claims)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	return &claims, nil
}

func (jwtGenerator *jwtGenerator) RefreshTokenLifetime() time.Duration {
	return jwtGenerator.refreshExpiry
}

func (jwtGenerator *jwtGenerator) signToken(
	userId, email, role, purpose string,
	expiresAt time.Time,
	secret []byte,
) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:   email,
		Role:    role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userId,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (jwtGenerator *jwtGenerator) verifyToken(rawJwtToken string, secret []byte) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("jwt token is not valid signature")
		}

		return secret, nil
	})
	if err != nil {
		var validationError *jwt.ValidationError
		if errors.As(err, &validationError) {
			if validationError.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, ErrTokenExpired
			}

			if validationError.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, ErrTokenMalformed
			}
		}

		return nil, ErrTokenInvalid
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, ErrTokenInvalid
	}

	return &claims, nil
}
