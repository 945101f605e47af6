package resourceController

import (
	"log"

	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
)

func ListResources(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUser(c); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db.Where("is_deleted = ?", false)
	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var resources []models.Resource
	if err := db.Order("created_at DESC").Find(&resources).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch resources!")
	}

	return c.JSON(fiber.Map{"resources": resources})
}

func CreateResource(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResource").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Category    string `json:"category"`
		FileType    string `json:"file_type"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	resource := models.Resource{
		Title:       reqData.Title,
		Description: reqData.Description,
		URL:         reqData.URL,
	}
	if reqData.Category != "" {
		resource.Category = reqData.Category
	}
	if reqData.FileType != "" {
		resource.FileType = reqData.FileType
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		log.Printf("Error creating resource: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create resource!")
	}

	return c.JSON(fiber.Map{"resource": resource})
}

func DeleteResource(c *fiber.Ctx) error {
	resourceID, err := c.ParamsInt("id")
	if err != nil || resourceID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid resource id!")
	}

	result := database.Database.Db.Model(&models.Resource{}).
		Where("id = ? AND is_deleted = ?", resourceID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete resource!")
	}
	if result.RowsAffected == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Resource not found!")
	}

	return c.JSON(fiber.Map{"ok": true})
}
