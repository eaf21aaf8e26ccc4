package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/slides/controller"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
)

func SlideAdminRoutes(api fiber.Router, db *gorm.DB, images *imgstore.Store) {
	slideCtrl := controller.NewSlideController(db, images)

	slides := api.Group("/slides")
	slides.Post("/", slideCtrl.CreateSlide)      // ➕ Create slide
	slides.Put("/:id", slideCtrl.UpdateSlide)    // 🔄 Update slide
	slides.Delete("/:id", slideCtrl.DeleteSlide) // 🗑️ Delete slide
}
