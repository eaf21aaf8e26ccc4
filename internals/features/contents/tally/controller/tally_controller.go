package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/tally/model"
	helper "paisleygames_backend/internals/helpers"
)

type TallyController struct {
	DB *gorm.DB
}

func NewTallyController(db *gorm.DB) *TallyController {
	return &TallyController{DB: db}
}

// GetTally returns the medal leaderboard ordered by total, best first.
func (ctrl *TallyController) GetTally(c *fiber.Ctx) error {
	var rows []model.MedalTallyModel
	if err := ctrl.DB.Order("total DESC, gold DESC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list medal tally:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve tally")
	}
	return c.JSON(rows)
}
