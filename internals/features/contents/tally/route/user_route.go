package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/tally/controller"
)

func AllTallyRoutes(api fiber.Router, db *gorm.DB) {
	tallyCtrl := controller.NewTallyController(db)

	api.Get("/tally", tallyCtrl.GetTally) // 🥇 Medal leaderboard
}
