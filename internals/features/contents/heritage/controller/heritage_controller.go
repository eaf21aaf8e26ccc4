package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paisleygames_backend/internals/features/contents/heritage/dto"
	"paisleygames_backend/internals/features/contents/heritage/model"
	imgstore "paisleygames_backend/internals/features/storage/images/service"
	helper "paisleygames_backend/internals/helpers"
)

var validateHeritage = validator.New()

type HeritageController struct {
	DB     *gorm.DB
	Images *imgstore.Store
}

func NewHeritageController(db *gorm.DB, images *imgstore.Store) *HeritageController {
	return &HeritageController{DB: db, Images: images}
}

func (ctrl *HeritageController) GetAllHeritage(c *fiber.Ctx) error {
	var items []model.HeritageModel
	if err := ctrl.DB.Order("id ASC").Find(&items).Error; err != nil {
		log.Println("[ERROR] failed to list heritage:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve heritage")
	}

	result := make([]dto.HeritageDTO, 0, len(items))
	for _, h := range items {
		result = append(result, dto.ToHeritageDTO(h))
	}
	return c.JSON(result)
}

func (ctrl *HeritageController) CreateHeritage(c *fiber.Ctx) error {
	var body dto.CreateHeritageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHeritage.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	item := body.ToModel()
	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Println("[ERROR] failed to create heritage:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create heritage")
	}
	return helper.JsonCreated(c, "Heritage item created", dto.ToHeritageDTO(item))
}

func (ctrl *HeritageController) UpdateHeritage(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.HeritageModel
	if err := ctrl.DB.First(&item, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Heritage item not found")
	}

	var body dto.UpdateHeritageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHeritage.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	oldImage := item.Image
	body.ApplyToModel(&item)

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] failed to update heritage:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update heritage")
	}

	if body.Image != nil && oldImage != *body.Image {
		go ctrl.Images.Delete(oldImage)
	}
	return helper.JsonUpdated(c, "Heritage item updated", dto.ToHeritageDTO(item))
}

func (ctrl *HeritageController) DeleteHeritage(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.HeritageModel
	if err := ctrl.DB.First(&item, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Heritage item not found")
	}

	if err := ctrl.DB.Delete(&model.HeritageModel{}, "id = ?", id).Error; err != nil {
		log.Println("[ERROR] failed to delete heritage:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete heritage")
	}

	go ctrl.Images.Delete(item.Image)
	return helper.JsonDeleted(c, "Heritage item deleted", fiber.Map{"id": item.ID})
}
