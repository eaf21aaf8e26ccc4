package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "paisleygames_backend/internals/features/contents/events/route"
	heritageRoute "paisleygames_backend/internals/features/contents/heritage/route"
	slideRoute "paisleygames_backend/internals/features/contents/slides/route"
	tallyRoute "paisleygames_backend/internals/features/contents/tally/route"
	mailService "paisleygames_backend/internals/features/mailer/service"
	registrationRoute "paisleygames_backend/internals/features/registrations/route"
	uploadRoute "paisleygames_backend/internals/features/storage/images/route"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func PublicRoutes(api fiber.Router, db *gorm.DB, images *imgstore.Store, notifier *mailService.Notifier) {
	eventRoute.AllEventRoutes(api, db, images)
	slideRoute.AllSlideRoutes(api, db, images)
	heritageRoute.AllHeritageRoutes(api, db, images)
	tallyRoute.AllTallyRoutes(api, db)
	registrationRoute.AllRegistrationRoutes(api, db, notifier)
	uploadRoute.UploadRoutes(api, images)
}
