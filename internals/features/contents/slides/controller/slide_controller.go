package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/slides/dto"
	"paisleygames_backend/internals/features/contents/slides/model"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
	helper "paisleygames_backend/internals/helpers"
)

var validateSlide = validator.New()

type SlideController struct {
	DB     *gorm.DB
	Images *imgstore.Store
}

func NewSlideController(db *gorm.DB, images *imgstore.Store) *SlideController {
	return &SlideController{DB: db, Images: images}
}

func (ctrl *SlideController) GetAllSlides(c *fiber.Ctx) error {
	var slides []model.SlideModel
	if err := ctrl.DB.Order("id ASC").Find(&slides).Error; err != nil {
		log.Println("[ERROR] failed to list slides:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve slides")
	}

	result := make([]dto.SlideDTO, 0, len(slides))
	for _, s := range slides {
		result = append(result, dto.ToSlideDTO(s))
	}
	return c.JSON(result)
}

func (ctrl *SlideController) CreateSlide(c *fiber.Ctx) error {
	var body dto.CreateSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSlide.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slide := body.ToModel()
	if err := ctrl.DB.Create(&slide).Error; err != nil {
		log.Println("[ERROR] failed to create slide:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create slide")
	}
	return helper.JsonCreated(c, "Slide created", dto.ToSlideDTO(slide))
}

func (ctrl *SlideController) UpdateSlide(c *fiber.Ctx) error {
	id := c.Params("id")

	var slide model.SlideModel
	if err := ctrl.DB.First(&slide, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Slide not found")
	}

	var body dto.UpdateSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSlide.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldImage := slide.Image
	body.ApplyToModel(&slide)

	if err := ctrl.DB.Save(&slide).Error; err != nil {
		log.Println("[ERROR] failed to update slide:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update slide")
	}

	if body.Image != nil && oldImage != *body.Image {
		go ctrl.Images.Delete(oldImage)
	}
	return helper.JsonUpdated(c, "Slide updated", dto.ToSlideDTO(slide))
}

func (ctrl *SlideController) DeleteSlide(c *fiber.Ctx) error {
	id := c.Params("id")

	var slide model.SlideModel
	if err := ctrl.DB.First(&slide, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Slide not found")
	}

	if err := ctrl.DB.Delete(&model.SlideModel{}, "id = ?", id).Error; err != nil {
		log.Println("[ERROR] failed to delete slide:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete slide")
	}

	go ctrl.Images.Delete(slide.Image)
	return helper.JsonDeleted(c, "Slide deleted", fiber.Map{"id": slide.ID})
}
