package courseController

import (
	"errors"
	"log"

	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpsertNote creates or replaces the caller's note on an episode. One note
// per (user, episode).
func UpsertNote(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedNote").(*struct {
		EpisodeID uint   `json:"episode_id"`
		Content   string `json:"content"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", reqData.EpisodeID, true, false).
		First(&models.Episode{}).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Episode not found!")
	}

	var note models.Note
	err = db.Where("user_id = ? AND episode_id = ?", user.ID, reqData.EpisodeID).First(&note).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch note!")
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		note = models.Note{
			UserID:    user.ID,
			EpisodeID: reqData.EpisodeID,
			Content:   reqData.Content,
		}
		if err := db.Create(&note).Error; err != nil {
			log.Printf("Error creating note for user %d: %v", user.ID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save note!")
		}
	} else {
		note.Content = reqData.Content
		if err := db.Save(&note).Error; err != nil {
			log.Printf("Error updating note %d: %v", note.ID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save note!")
		}
	}

	return c.JSON(fiber.Map{"note": note})
}

func DeleteNote(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	episodeID, err := c.ParamsInt("episode_id")
	if err != nil || episodeID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid episode id!")
	}

	// Hard delete so the unique index stays free if the note comes back
	result := database.Database.Db.Unscoped().
		Where("user_id = ? AND episode_id = ?", user.ID, episodeID).
		Delete(&models.Note{})
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete note!")
	}
	if result.RowsAffected == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Note not found!")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// ListNotes returns every note the caller has taken, newest first
func ListNotes(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var notes []models.Note
	if err := database.Database.Db.Where("user_id = ?", user.ID).
		Order("updated_at DESC").Find(&notes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notes!")
	}

	return c.JSON(fiber.Map{"notes": notes})
}
