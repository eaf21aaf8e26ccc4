package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "paisleygames_backend/internals/features/contents/events/route"
	heritageRoute "paisleygames_backend/internals/features/contents/heritage/route"
	slideRoute "paisleygames_backend/internals/features/contents/slides/route"
	registrationRoute "paisleygames_backend/internals/features/registrations/route"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func AdminRoutes(admin fiber.Router, db *gorm.DB, images *imgstore.Store) {
	eventRoute.EventAdminRoutes(admin, db, images)
	slideRoute.SlideAdminRoutes(admin, db, images)
	heritageRoute.HeritageAdminRoutes(admin, db, images)
	registrationRoute.RegistrationAdminRoutes(admin, db)
}
