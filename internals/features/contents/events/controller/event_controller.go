package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/events/dto"
	"paisleygames_backend/internals/features/contents/events/model"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
	helper "paisleygames_backend/internals/helpers"
)

var validateEvent = validator.New()

type EventController struct {
	DB     *gorm.DB
	Images *imgstore.Store
}

func NewEventController(db *gorm.DB, images *imgstore.Store) *EventController {
	return &EventController{DB: db, Images: images}
}

// =============================
// 📄 Public reads
// =============================
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.Order("id ASC").Find(&events).Error; err != nil {
		log.Println("[ERROR] failed to list events:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	result := make([]dto.EventDTO, 0, len(events))
	for _, ev := range events {
		result = append(result, dto.ToEventDTO(ev))
	}
	return c.JSON(result)
}

func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.EventModel
	if err := ctrl.DB.First(&event, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return c.JSON(dto.ToEventDTO(event))
}

// =============================
// ➕ Create Event
// =============================
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	event := body.ToModel()
	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Println("[ERROR] failed to create event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToEventDTO(event))
}

// =============================
// 🔄 Update Event (partial)
// =============================
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.EventModel
	if err := ctrl.DB.First(&event, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldImage := event.Image
	body.ApplyToModel(&event)

	if err := ctrl.DB.Save(&event).Error; err != nil {
		log.Println("[ERROR] failed to update event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	// The replaced file is removed after the row is committed; the response
	// does not wait for the filesystem.
	if body.Image != nil && oldImage != *body.Image {
		go ctrl.Images.Delete(oldImage)
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToEventDTO(event))
}

// =============================
// 🗑️ Delete Event
// =============================
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var event model.EventModel
	if err := ctrl.DB.First(&event, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	if err := ctrl.DB.Delete(&model.EventModel{}, "id = ?", id).Error; err != nil {
		log.Println("[ERROR] failed to delete event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	go ctrl.Images.Delete(event.Image)
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"id": event.ID})
}
