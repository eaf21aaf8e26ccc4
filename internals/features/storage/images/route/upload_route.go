package route

import (
	"github.com/gofiber/fiber/v2"

	"paisleygames_backend/internals/features/storage/images/controller"
	"paisleygames_backend/internals/features/storage/images/service"
	"paisleygames_backend/internals/middlewares"
)

func UploadRoutes(api fiber.Router, images *service.Store) {
	uploadCtrl := controller.NewUploadController(images)

	api.Post("/upload", middlewares.UploadRateLimiter(), uploadCtrl.Upload) // 📤 Image upload
}
