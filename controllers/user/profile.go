package userController

import (
	"encoding/json"
	"log"

	"thumbpro/database"
	"thumbpro/middleware"
	"thumbpro/models"
	"thumbpro/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func GetProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	return c.JSON(fiber.Map{"user": user})
}

func UpdateProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name        *string           `json:"name"`
		AvatarURL   *string           `json:"avatar_url"`
		City        *string           `json:"city"`
		SocialLinks map[string]string `json:"social_links"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	if reqData.Name != nil {
		user.Name = *reqData.Name
	}
	if reqData.AvatarURL != nil {
		user.AvatarURL = *reqData.AvatarURL
	}
	if reqData.SocialLinks != nil {
		raw, err := json.Marshal(reqData.SocialLinks)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid social links!")
		}
		user.SocialLinks = datatypes.JSON(raw)
	}

	// A changed city is re-geocoded for the community map. Geocoding is
	// best effort: on failure the profile still saves, coordinates reset.
	if reqData.City != nil && *reqData.City != user.City {
		user.City = *reqData.City
		user.Latitude = nil
		user.Longitude = nil

		if *reqData.City != "" {
			if lat, lon, err := utils.GeocodeCity(*reqData.City); err == nil {
				user.Latitude = &lat
				user.Longitude = &lon
			} else {
				log.Printf("Geocoding failed for %q: %v", *reqData.City, err)
			}
		}
	}

	if err := database.Database.Db.Save(user).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", user.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile!")
	}

	return c.JSON(fiber.Map{"user": user})
}

// CommunityMember is the public slice of a profile shown in the directory
type CommunityMember struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	AvatarURL      string         `json:"avatar_url"`
	Role           string         `json:"role"`
	City           string         `json:"city"`
	Latitude       *float64       `json:"latitude"`
	Longitude      *float64       `json:"longitude"`
	CommunityScore int            `json:"community_score"`
	SocialLinks    datatypes.JSON `json:"social_links"`
}

func CommunityList(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUser(c); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var members []CommunityMember
	if err := database.Database.Db.Model(&models.User{}).
		Where("is_deleted = ?", false).
		Order("community_score DESC, name ASC").
		Find(&members).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch community!")
	}

	return c.JSON(fiber.Map{"members": members})
}
