package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/slides/controller"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func AllSlideRoutes(api fiber.Router, db *gorm.DB, images *imgstore.Store) {
	slideCtrl := controller.NewSlideController(db, images)

	slides := api.Group("/slides")
	slides.Get("/", slideCtrl.GetAllSlides) // 🎡 Hero carousel slides
}
