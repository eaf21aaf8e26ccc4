package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/registrations/controller"
)

func RegistrationAdminRoutes(api fiber.Router, db *gorm.DB) {
	adminCtrl := controller.NewAdminRegistrationController(db)

	regs := api.Group("/registrations")
	regs.Get("/", adminCtrl.GetAllRegistrations) // 📄 All submissions
	regs.Put("/:id", adminCtrl.UpdateStatus)     // ✅ Approve / reject
}
