package courseValidators

import (
	"strings"

	"thumbpro/middleware"

	"github.com/gofiber/fiber/v2"
)

func MarkComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EpisodeID uint `json:"episode_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if reqData.EpisodeID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"episode_id": "Episode ID is required!",
			})
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

func UpsertNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EpisodeID uint   `json:"episode_id"`
			Content   string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.EpisodeID == 0 {
			errors["episode_id"] = "Episode ID is required!"
		}

		reqData.Content = strings.TrimSpace(reqData.Content)
		if reqData.Content == "" {
			errors["content"] = "Content is required!"
		} else if len(reqData.Content) > 10000 {
			errors["content"] = "Note must not exceed 10000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNote", reqData)
		return c.Next()
	}
}
