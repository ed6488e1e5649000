package auth

import (
	"account-api/pkg/jwt_generator"
)

// Fiber locals populated by the guard after successful authentication.
const (
	LocalAccountId    = "accountId"
	LocalAccountEmail = "accountEmail"
	LocalAccountRole  = "accountRole"
)

type RegisterPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,gte=8"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshPayload struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LogoutPayload struct {
	AccessToken  string `json:"accessToken" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type EmailPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodePayload struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,numeric"`
}

type ResetPasswordPayload struct {
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,gte=8"`
}

type AdminResetPasswordPayload struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,gte=8"`
}

// LoginResult distinguishes a login blocked on email verification from a
// completed one: tokens stay null and a fresh verification code is sent.
type LoginResult struct {
	Tokens        *jwt_generator.Tokens `json:"tokens"`
	EmailVerified bool                  `json:"emailVerified"`
}
