// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mailService "paisleygames_backend/internals/features/mailer/service"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
	routeDetails "paisleygames_backend/internals/route/details"

	"paisleygames_backend/internals/constants"
	authMiddleware "paisleygames_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, images *imgstore.Store, notifier *mailService.Notifier) {
	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting public routes...")
	routeDetails.AuthRoutes(api, db)
	routeDetails.PublicRoutes(api, db, images, notifier)

	// ===================== ADMIN =====================
	log.Println("[INFO] Mounting admin routes (Auth + RoleCheck)...")
	admin := api.Group("/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("the admin dashboard"),
			constants.AdminOnly,
		),
	)
	routeDetails.AdminRoutes(admin, db, images)
}
