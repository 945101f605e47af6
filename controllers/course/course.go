package courseController

import (
	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
)

// EpisodeView decorates an episode with the caller's completion flag
type EpisodeView struct {
	models.Episode
	IsCompleted bool `json:"is_completed"`
}

// ModuleView groups a module with its ordered episodes
type ModuleView struct {
	models.CourseModule
	Episodes []EpisodeView `json:"episodes"`
}

// GetModules returns the published modules with their episodes and the
// caller's per-episode completion, loaded in three queries
func GetModules(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	db := database.Database.Db

	var modules []models.CourseModule
	if err := db.Where("is_published = ? AND is_deleted = ?", true, false).
		Order("order_index ASC").Find(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch modules!")
	}

	var episodes []models.Episode
	if err := db.Where("is_published = ? AND is_deleted = ?", true, false).
		Order("order_index ASC").Find(&episodes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch episodes!")
	}

	var progress []models.Progress
	if err := db.Where("user_id = ?", user.ID).Find(&progress).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress!")
	}
	completed := make(map[uint]bool, len(progress))
	for _, p := range progress {
		completed[p.EpisodeID] = true
	}

	episodesByModule := make(map[uint][]EpisodeView)
	for _, ep := range episodes {
		episodesByModule[ep.ModuleID] = append(episodesByModule[ep.ModuleID], EpisodeView{
			Episode:     ep,
			IsCompleted: completed[ep.ID],
		})
	}

	result := make([]ModuleView, len(modules))
	for i, m := range modules {
		result[i] = ModuleView{
			CourseModule: m,
			Episodes:     episodesByModule[m.ID],
		}
	}

	return c.JSON(fiber.Map{"modules": result})
}

// GetEpisode returns one episode with the caller's note and completion flag
func GetEpisode(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	episodeID, err := c.ParamsInt("id")
	if err != nil || episodeID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid episode id!")
	}

	db := database.Database.Db

	var episode models.Episode
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", episodeID, true, false).
		First(&episode).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Episode not found!")
	}

	var note models.Note
	hasNote := db.Where("user_id = ? AND episode_id = ?", user.ID, episode.ID).
		First(&note).Error == nil

	isCompleted := db.Where("user_id = ? AND episode_id = ?", user.ID, episode.ID).
		First(&models.Progress{}).Error == nil

	resp := fiber.Map{
		"episode":      episode,
		"is_completed": isCompleted,
	}
	if hasNote {
		resp["note"] = note
	} else {
		resp["note"] = nil
	}

	return c.JSON(resp)
}
