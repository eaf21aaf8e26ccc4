package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/heritage/controller"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func HeritageAdminRoutes(api fiber.Router, db *gorm.DB, images *imgstore.Store) {
	heritageCtrl := controller.NewHeritageController(db, images)

	heritage := api.Group("/heritage")
	heritage.Post("/", heritageCtrl.CreateHeritage)      // ➕ Create heritage item
	heritage.Put("/:id", heritageCtrl.UpdateHeritage)    // 🔄 Update heritage item
	heritage.Delete("/:id", heritageCtrl.DeleteHeritage) // 🗑️ Delete heritage item
}
