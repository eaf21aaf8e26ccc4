package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mailService "paisleygames_backend/internals/features/mailer/service"
	"paisleygames_backend/internals/features/registrations/controller"
	"paisleygames_backend/internals/middlewares"
)

func AllRegistrationRoutes(api fiber.Router, db *gorm.DB, notifier *mailService.Notifier) {
	regCtrl := controller.NewRegistrationController(db, notifier)

	api.Post("/register", middlewares.RegisterRateLimiter(), regCtrl.Register) // 📝 Submit registration(s)
	api.Get("/check-status", regCtrl.GetByEmail)                               // 🔍 Public status lookup
	api.Get("/user/my-registrations", regCtrl.GetByEmail)                      // 👤 Dashboard lookup
}
