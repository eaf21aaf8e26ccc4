package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/registrations/dto"
	"paisleygames_backend/internals/features/registrations/model"
	helper "paisleygames_backend/internals/helpers"
)

type AdminRegistrationController struct {
	DB *gorm.DB
}

func NewAdminRegistrationController(db *gorm.DB) *AdminRegistrationController {
	return &AdminRegistrationController{DB: db}
}

// GetAllRegistrations lists every submission, newest first.
func (ctrl *AdminRegistrationController) GetAllRegistrations(c *fiber.Ctx) error {
	var rows []model.RegistrationModel
	if err := ctrl.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list registrations:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registrations")
	}
	return c.JSON(rows)
}

// UpdateStatus moves one registration through pending → approved/rejected.
func (ctrl *AdminRegistrationController) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var reg model.RegistrationModel
	if err := ctrl.DB.First(&reg, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
	}

	if err := ctrl.DB.Model(&reg).Update("status", body.Status).Error; err != nil {
		log.Println("[ERROR] failed to update registration status:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	return helper.JsonUpdated(c, "Updated", fiber.Map{"id": reg.ID, "status": body.Status})
}
