package middleware

import (
	"thumbpro/database"
	"thumbpro/models"

	"github.com/gofiber/fiber/v2"
)

// Capability names gate write access to the areas below. Role checks live
// here and nowhere else; handlers never compare role strings themselves.
const (
	CapManageAnnouncements = "manage-announcements"
	CapManageResources     = "manage-resources"
	CapManageCourse        = "manage-course"
	CapCloseTickets        = "close-tickets"
	CapStaffReply          = "staff-reply"
)

var roleCapabilities = map[string]map[string]bool{
	models.RoleAdmin: {
		CapManageAnnouncements: true,
		CapManageResources:     true,
		CapManageCourse:        true,
		CapCloseTickets:        true,
		CapStaffReply:          true,
	},
	models.RoleIntervenant: {},
	models.RoleMember:      {},
}

// RoleCan reports whether a role grants a capability. Unknown roles grant
// nothing.
func RoleCan(role, capability string) bool {
	return roleCapabilities[role][capability]
}

// CurrentUser loads the authenticated user set by JWTMiddleware. The role is
// read from the row, not the token claims, so demotions apply immediately.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, fiber.ErrUnauthorized
	}

	return &user, nil
}

// RequireCapability returns a middleware that rejects requests whose user
// lacks the capability. The loaded user is stored in c.Locals("currentUser").
func RequireCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		if !RoleCan(user.Role, capability) {
			return ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to access this resource!")
		}

		c.Locals("currentUser", user)
		return c.Next()
	}
}
