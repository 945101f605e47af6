package favoriteValidators

import (
	"thumbpro/middleware"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
)

func AddFavorite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ItemType string `json:"item_type"`
			ItemID   uint   `json:"item_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.ItemType != models.FavoriteEpisode && reqData.ItemType != models.FavoriteResource {
			errors["item_type"] = "Item type must be episode or resource!"
		}
		if reqData.ItemID == 0 {
			errors["item_id"] = "Item ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFavorite", reqData)
		return c.Next()
	}
}
