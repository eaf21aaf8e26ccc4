package service

import (
	"errors"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"paisleygames_backend/internals/configs"
	"paisleygames_backend/internals/constants"
	authHelper "paisleygames_backend/internals/features/users/auth/helper"
	userModel "paisleygames_backend/internals/features/users/user/model"
)

// LoginResult is the identity handed back to the SPA.
type LoginResult struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
}

// Login checks the admins table first, then users by username or email.
// An admin row only wins when its password matches; otherwise the user
// lookup still runs, so a user sharing an admin's username can sign in.
func Login(db *gorm.DB, username, password string) (*LoginResult, error) {
	var admin userModel.AdminModel
	if err := db.Where("username = ?", username).First(&admin).Error; err == nil &&
		authHelper.CheckPasswordHash(admin.Password, password) == nil {
		return &LoginResult{Username: admin.Username, Role: constants.RoleAdmin}, nil
	}

	var user userModel.UserModel
	if err := db.Where("email = ? OR username = ?", username, username).First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if authHelper.CheckPasswordHash(user.Password, password) != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	return &LoginResult{Username: user.Username, Role: constants.RoleUser, Email: user.Email}, nil
}

// Signup creates a user; a taken email is a conflict.
func Signup(db *gorm.DB, username, email, password string) error {
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{Username: username, Email: email, Password: hash}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Email exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}
	return nil
}

// GoogleLogin verifies a Google ID token and signs the matching user in,
// creating the account on first sight.
func GoogleLogin(db *gorm.DB, idToken string) (*LoginResult, error) {
	if configs.GoogleClientID == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID is not set")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || claims.Email == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", claims.Email).First(&user).Error; err == nil {
		return &LoginResult{Username: user.Username, Role: constants.RoleUser, Email: user.Email}, nil
	}

	// First Google sign-in: register with an unusable random password.
	hash, err := authHelper.HashPassword(uuid.New().String())
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}
	username := claims.Name
	if username == "" {
		username = claims.Email
	}
	user = userModel.UserModel{Username: username, Email: claims.Email, Password: hash}
	if err := db.Create(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}
	return &LoginResult{Username: user.Username, Role: constants.RoleUser, Email: user.Email}, nil
}
