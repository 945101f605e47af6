package favoriteController

import (
	"errors"
	"log"

	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// targetExists checks that the favorited item is a real, visible row
func targetExists(db *gorm.DB, itemType string, itemID uint) bool {
	switch itemType {
	case models.FavoriteEpisode:
		return db.Where("id = ? AND is_published = ? AND is_deleted = ?", itemID, true, false).
			First(&models.Episode{}).Error == nil
	case models.FavoriteResource:
		return db.Where("id = ? AND is_deleted = ?", itemID, false).
			First(&models.Resource{}).Error == nil
	}
	return false
}

// AddFavorite is idempotent: favoriting the same item twice keeps one row
func AddFavorite(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedFavorite").(*struct {
		ItemType string `json:"item_type"`
		ItemID   uint   `json:"item_id"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	if !targetExists(db, reqData.ItemType, reqData.ItemID) {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Item not found!")
	}

	var favorite models.Favorite
	err = db.Where("user_id = ? AND item_type = ? AND item_id = ?", user.ID, reqData.ItemType, reqData.ItemID).
		First(&favorite).Error
	if err == nil {
		return c.JSON(fiber.Map{"ok": true, "favorite": favorite})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check favorite!")
	}

	favorite = models.Favorite{
		UserID:   user.ID,
		ItemType: reqData.ItemType,
		ItemID:   reqData.ItemID,
	}
	if err := db.Create(&favorite).Error; err != nil {
		log.Printf("Error creating favorite for user %d: %v", user.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save favorite!")
	}

	return c.JSON(fiber.Map{"ok": true, "favorite": favorite})
}

// DeleteFavorite removes the caller's favorite. The delete is scoped by
// user_id so it can never touch another member's row with the same item id.
func DeleteFavorite(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	itemType := c.Params("item_type")
	if itemType != models.FavoriteEpisode && itemType != models.FavoriteResource {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid item type!")
	}

	itemID, err := c.ParamsInt("item_id")
	if err != nil || itemID < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid item id!")
	}

	// Hard delete so the unique index stays free for a later re-favorite
	result := database.Database.Db.Unscoped().
		Where("user_id = ? AND item_type = ? AND item_id = ?", user.ID, itemType, itemID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete favorite!")
	}
	if result.RowsAffected == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Favorite not found!")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func ListFavorites(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var favorites []models.Favorite
	if err := database.Database.Db.Where("user_id = ?", user.ID).
		Order("created_at DESC").Find(&favorites).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch favorites!")
	}

	return c.JSON(fiber.Map{"favorites": favorites})
}
