package courseController

import (
	"errors"
	"log"
	"time"

	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MarkComplete records an episode completion. Replays keep a single row.
func MarkComplete(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedProgress").(*struct {
		EpisodeID uint `json:"episode_id"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", reqData.EpisodeID, true, false).
		First(&models.Episode{}).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Episode not found!")
	}

	var progress models.Progress
	err = db.Where("user_id = ? AND episode_id = ?", user.ID, reqData.EpisodeID).First(&progress).Error
	if err == nil {
		return c.JSON(fiber.Map{"ok": true, "progress": progress})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check progress!")
	}

	progress = models.Progress{
		UserID:      user.ID,
		EpisodeID:   reqData.EpisodeID,
		CompletedAt: time.Now(),
	}
	if err := db.Create(&progress).Error; err != nil {
		// Concurrent replay can hit the unique index; the row exists, which
		// is the state we wanted.
		if db.Where("user_id = ? AND episode_id = ?", user.ID, reqData.EpisodeID).First(&progress).Error == nil {
			return c.JSON(fiber.Map{"ok": true, "progress": progress})
		}
		log.Printf("Error saving progress for user %d: %v", user.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save progress!")
	}

	return c.JSON(fiber.Map{"ok": true, "progress": progress})
}

// UndoComplete removes the completion marker
func UndoComplete(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	episodeID, err := c.ParamsInt("episode_id")
	if err != nil || episodeID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid episode id!")
	}

	// Hard delete: a lingering soft-deleted row would block the unique
	// index when the episode is marked complete again
	result := database.Database.Db.Unscoped().
		Where("user_id = ? AND episode_id = ?", user.ID, episodeID).
		Delete(&models.Progress{})
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update progress!")
	}
	if result.RowsAffected == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Progress not found!")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// GetProgress returns the completed episode ids and the completion percent
// over the published episodes
func GetProgress(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var completedIDs []uint
	if err := db.Model(&models.Progress{}).
		Joins("JOIN episodes ON episodes.id = progresses.episode_id AND episodes.is_published = ? AND episodes.is_deleted = ?", true, false).
		Where("progresses.user_id = ?", user.ID).
		Pluck("progresses.episode_id", &completedIDs).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress!")
	}

	var total int64
	if err := db.Model(&models.Episode{}).
		Where("is_published = ? AND is_deleted = ?", true, false).
		Count(&total).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count episodes!")
	}

	percent := 0.0
	if total > 0 {
		percent = float64(len(completedIDs)) / float64(total) * 100
	}

	return c.JSON(fiber.Map{
		"completed_episode_ids": completedIDs,
		"total_episodes":        total,
		"percent":               percent,
	})
}
