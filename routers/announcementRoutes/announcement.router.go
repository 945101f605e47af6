package announcementRoutes

import (
	controller "thumbpro/controllers/announcement"
	"thumbpro/middleware"
	validator "thumbpro/validators/announcement"

	"github.com/gofiber/fiber/v2"
)

func SetupAnnouncementRoutes(app *fiber.App) {
	announcements := app.Group("/api/announcements", middleware.JWTMiddleware)

	announcements.Get("/", controller.ListAnnouncements)
	announcements.Post("/", middleware.RequireCapability(middleware.CapManageAnnouncements),
		validator.CreateAnnouncement(), controller.CreateAnnouncement)
	announcements.Delete("/:id", middleware.RequireCapability(middleware.CapManageAnnouncements),
		controller.DeleteAnnouncement)
}
