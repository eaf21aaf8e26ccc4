package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/users/auth/controller"
	"paisleygames_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)           // 🔑 Admin/user login
	api.Post("/signup", middlewares.SignupRateLimiter(), authCtrl.Signup)        // 🆕 Self-service signup
	api.Post("/google-login", middlewares.LoginRateLimiter(), authCtrl.GoogleLogin) // 🌐 Google sign-in
}
