package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/events/controller"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func AllEventRoutes(api fiber.Router, db *gorm.DB, images *imgstore.Store) {
	eventCtrl := controller.NewEventController(db, images)

	// === USER ROUTES ===
	events := api.Group("/events")
	events.Get("/", eventCtrl.GetAllEvents)    // 📄 List all events
	events.Get("/:id", eventCtrl.GetEventByID) // 🔍 Event detail
}
