package resourceRoutes

import (
	controller "thumbpro/controllers/resource"
	"thumbpro/middleware"
	validator "thumbpro/validators/resource"

	"github.com/gofiber/fiber/v2"
)

func SetupResourceRoutes(app *fiber.App) {
	resources := app.Group("/api/resources", middleware.JWTMiddleware)

	resources.Get("/", controller.ListResources)
	resources.Post("/", middleware.RequireCapability(middleware.CapManageResources),
		validator.CreateResource(), controller.CreateResource)
	resources.Delete("/:id", middleware.RequireCapability(middleware.CapManageResources),
		controller.DeleteResource)
}
