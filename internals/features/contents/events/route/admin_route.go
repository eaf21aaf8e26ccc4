package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/events/controller"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func EventAdminRoutes(api fiber.Router, db *gorm.DB, images *imgstore.Store) {
	eventCtrl := controller.NewEventController(db, images)

	// === ADMIN ROUTES ===
	events := api.Group("/events")
	events.Post("/", eventCtrl.CreateEvent)      // ➕ Create event
	events.Put("/:id", eventCtrl.UpdateEvent)    // 🔄 Update event
	events.Delete("/:id", eventCtrl.DeleteEvent) // 🗑️ Delete event
}
