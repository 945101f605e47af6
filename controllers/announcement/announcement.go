package announcementController

import (
	"log"

	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
)

func ListAnnouncements(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUser(c); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var announcements []models.Announcement
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at DESC").Find(&announcements).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch announcements!")
	}

	return c.JSON(fiber.Map{"announcements": announcements})
}

// CreateAnnouncement requires the manage-announcements capability, enforced
// by the route middleware which also loads currentUser.
func CreateAnnouncement(c *fiber.Ctx) error {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedAnnouncement").(*struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		IsImportant bool   `json:"is_important"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	announcement := models.Announcement{
		AuthorID:    user.ID,
		Title:       reqData.Title,
		Content:     reqData.Content,
		IsImportant: reqData.IsImportant,
	}

	if err := database.Database.Db.Create(&announcement).Error; err != nil {
		log.Printf("Error creating announcement: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create announcement!")
	}

	return c.JSON(fiber.Map{"announcement": announcement})
}

func DeleteAnnouncement(c *fiber.Ctx) error {
	announcementID, err := c.ParamsInt("id")
	if err != nil || announcementID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid announcement id!")
	}

	result := database.Database.Db.Model(&models.Announcement{}).
		Where("id = ? AND is_deleted = ?", announcementID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete announcement!")
	}
	if result.RowsAffected == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Announcement not found!")
	}

	return c.JSON(fiber.Map{"ok": true})
}
