package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventModel "paisleygames_backend/internals/features/contents/events/model"
	mailService "paisleygames_backend/internals/features/mailer/service"
	"paisleygames_backend/internals/features/registrations/dto"
	"paisleygames_backend/internals/features/registrations/service"
	helper "paisleygames_backend/internals/helpers"
)

var validateRegistration = validator.New()

type RegistrationController struct {
	DB       *gorm.DB
	Notifier *mailService.Notifier
}

func NewRegistrationController(db *gorm.DB, notifier *mailService.Notifier) *RegistrationController {
	return &RegistrationController{DB: db, Notifier: notifier}
}

// =============================
// 📝 Submit registration(s)
// =============================
func (ctrl *RegistrationController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	targets := body.TargetEvents()
	if len(targets) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No events")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// One batched lookup; unknown names resolve to nothing and are dropped.
	var resolved []eventModel.EventModel
	if err := ctrl.DB.Where("name IN ?", targets).Find(&resolved).Error; err != nil {
		log.Println("[ERROR] event lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve events")
	}

	// Inserts are independent: a failed row is logged and skipped, the
	// rest still land.
	rows := service.BuildRows(body, resolved)
	inserted := 0
	for i := range rows {
		if err := ctrl.DB.Create(&rows[i]).Error; err != nil {
			log.Printf("[ERROR] registration insert for %q failed: %v", rows[i].EventName, err)
			continue
		}
		inserted++
	}

	// Confirmation mail never blocks or fails the request.
	go ctrl.Notifier.SendRegistrationConfirmation(body.Name, body.Email, service.ToEventDetails(resolved))

	return helper.JsonOK(c, "Success", fiber.Map{"registered": inserted})
}

// =============================
// 🔍 Status lookup by email
// =============================
func (ctrl *RegistrationController) GetByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email query parameter is required")
	}

	var rows []dto.RegistrationStatusDTO
	err := ctrl.DB.
		Table("registrations r").
		Select("r.id, r.user_name, r.email, r.type, r.event_name, r.status, r.created_at, e.event_date, e.event_time, e.location").
		Joins("LEFT JOIN events e ON r.event_name = e.name").
		Where("r.email = ?", email).
		Order("r.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		log.Println("[ERROR] registration lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registrations")
	}
	return c.JSON(rows)
}
