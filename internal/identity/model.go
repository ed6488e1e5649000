package identity

const (
	StatusActive      = "ACTIVE"
	StatusDeactivated = "DEACTIVATED"
	StatusDeleted     = "DELETED"
)

const (
	RoleUser       = "USER"
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleModerator  = "MODERATOR"
)

const (
	OtpTypeUserSignup         = "USER_SIGNUP"
	OtpTypeUserPasswordReset  = "USER_PASSWORD_RESET"
	OtpTypeAdminPasswordReset = "ADMIN_PASSWORD_RESET"
)

const OtpMaxAttempts = 3

type UserDocument struct {
	Id            string `bson:"_id"`
	Name          string `bson:"name"`
	Email         string `bson:"email"`
	Password      string `bson:"password,omitempty"`
	Role          string `bson:"role"`
	Status        string `bson:"status"`
	IsDeleted     bool   `bson:"isDeleted"`
	EmailVerified bool   `bson:"emailVerified"`
	CreatedAt     int64  `bson:"createdAt"`
	UpdatedAt     int64  `bson:"updatedAt"`
}

type AdminDocument struct {
	Id        string `bson:"_id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	IsSuper   bool   `bson:"isSuper"`
	Status    string `bson:"status"`
	IsDeleted bool   `bson:"isDeleted"`
	CreatedAt int64  `bson:"createdAt"`
	UpdatedAt int64  `bson:"updatedAt"`
}

// OtpDocument holds a short-lived verification code. At most one document
// exists per (email, type) pair; a new request overwrites the previous one.
type OtpDocument struct {
	Id         string `bson:"_id"`
	Email      string `bson:"email"`
	Type       string `bson:"type"`
	Code       string `bson:"code"`
	ExpiresAt  int64  `bson:"expiresAt"`
	Attempts   int    `bson:"attempts"`
	VerifiedAt int64  `bson:"verifiedAt,omitempty"`
	CreatedAt  int64  `bson:"createdAt"`
}

type UpdateProfilePayload struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type ChangePasswordPayload struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,gte=8"`
}

type CreateAdminPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,gte=8"`
	Role     string `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN MODERATOR"`
}

type SetUserStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE DEACTIVATED DELETED"`
}

type ProfileView struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	EmailVerified bool   `json:"emailVerified"`
	CreatedAt     int64  `json:"createdAt"`
}

// Account is the identity view attached to a request after authentication.
type Account struct {
	Id        string
	Email     string
	Role      string
	Status    string
	IsDeleted bool
}

func (user *UserDocument) ToAccount() *Account {
	return &Account{
		Id:        user.Id,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		IsDeleted: user.IsDeleted,
	}
}

func (admin *AdminDocument) ToAccount() *Account {
	return &Account{
		Id:        admin.Id,
		Email:     admin.Email,
		Role:      admin.Role,
		Status:    admin.Status,
		IsDeleted: admin.IsDeleted,
	}
}
