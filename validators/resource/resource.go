package resourceValidators

import (
	"strings"

	"thumbpro/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			Category    string `json:"category"`
			FileType    string `json:"file_type"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		reqData.URL = strings.TrimSpace(reqData.URL)
		if reqData.URL == "" {
			errors["url"] = "URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}
