package supportRoutes

import (
	controller "thumbpro/controllers/support"
	"thumbpro/middleware"
	validator "thumbpro/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	support := app.Group("/api/support", middleware.JWTMiddleware)

	support.Get("/", controller.GetSupport)
	support.Post("/", validator.CreateTicket(), controller.CreateTicket)
	support.Patch("/", validator.UpdateTicket(), controller.UpdateTicket)
}
