package controller

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"paisleygames_backend/internals/constants"
	"paisleygames_backend/internals/features/storage/images/service"
	helper "paisleygames_backend/internals/helpers"
)

const maxUploadSize = 10 * 1024 * 1024 // 10MB

type UploadController struct {
	Images *service.Store
}

func NewUploadController(images *service.Store) *UploadController {
	return &UploadController{Images: images}
}

// Upload accepts one multipart file and returns its canonical reference.
// With ?format=webp the image is re-encoded before it is stored; the
// default path keeps the original bytes and extension.
func (ctrl *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file")
	}
	if fh.Size > maxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "File exceeds the 10MB limit")
	}
	if !constants.IsImageExt(fh.Filename) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported image type")
	}

	var filePath string
	if c.Query("format") == "webp" {
		src, err := fh.Open()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read file")
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read file")
		}

		name, encoded, err := service.ConvertToWebP(service.GenerateFilename(fh.Filename), data)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "File is not a decodable image")
		}
		filePath, err = ctrl.Images.SaveBytes(name, encoded)
		if err != nil {
			log.Println("[ERROR] upload failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
		}
	} else {
		filePath, err = ctrl.Images.Save(fh)
		if err != nil {
			log.Println("[ERROR] upload failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
		}
	}

	return c.JSON(fiber.Map{"filePath": filePath})
}
