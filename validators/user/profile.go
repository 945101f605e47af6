package userValidators

import (
	"strings"

	"thumbpro/middleware"

	"github.com/gofiber/fiber/v2"
)

// Social platforms shown on community profiles
var allowedPlatforms = map[string]bool{
	"instagram": true,
	"youtube":   true,
	"twitter":   true,
	"tiktok":    true,
	"website":   true,
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        *string           `json:"name"`
			AvatarURL   *string           `json:"avatar_url"`
			City        *string           `json:"city"`
			SocialLinks map[string]string `json:"social_links"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.Name != nil {
			*reqData.Name = strings.TrimSpace(*reqData.Name)
			if *reqData.Name == "" {
				errors["name"] = "Name must not be empty!"
			} else if len(*reqData.Name) > 100 {
				errors["name"] = "Name must not exceed 100 characters!"
			}
		}

		if reqData.AvatarURL != nil && len(*reqData.AvatarURL) > 300 {
			errors["avatar_url"] = "Avatar URL must not exceed 300 characters!"
		}

		if reqData.City != nil {
			*reqData.City = strings.TrimSpace(*reqData.City)
			if len(*reqData.City) > 100 {
				errors["city"] = "City must not exceed 100 characters!"
			}
		}

		for platform := range reqData.SocialLinks {
			if !allowedPlatforms[platform] {
				errors["social_links"] = "Unknown platform: " + platform
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
