package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/users/auth/service"
	helper "paisleygames_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// =============================
// 🔑 Login
// =============================
// The response shape {success, user, token} is what the SPA consumes.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.Login(ctrl.DB, body.Username, body.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	token, err := service.CreateToken(result.Username, result.Role, result.Email)
	if err != nil {
		log.Println("[ERROR] token issue failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    result,
		"token":   token,
	})
}

// =============================
// 🆕 Signup
// =============================
func (ctrl *AuthController) Signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.Signup(ctrl.DB, body.Username, body.Email, body.Password); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return c.JSON(fiber.Map{"success": true})
}

// =============================
// 🌐 Google login
// =============================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body googleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := service.GoogleLogin(ctrl.DB, body.IDToken)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	token, err := service.CreateToken(result.Username, result.Role, result.Email)
	if err != nil {
		log.Println("[ERROR] token issue failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    result,
		"token":   token,
	})
}
