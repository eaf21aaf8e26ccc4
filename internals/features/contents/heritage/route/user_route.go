package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/heritage/controller"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func AllHeritageRoutes(api fiber.Router, db *gorm.DB, images *imgstore.Store) {
	heritageCtrl := controller.NewHeritageController(db, images)

	heritage := api.Group("/heritage")
	heritage.Get("/", heritageCtrl.GetAllHeritage) // 📜 Editorial heritage content
}
