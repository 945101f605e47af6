package userRoutes

import (
	controller "thumbpro/controllers/user"
	"thumbpro/middleware"
	validator "thumbpro/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/api/me", middleware.JWTMiddleware, controller.GetProfile)
	app.Patch("/api/me", middleware.JWTMiddleware, validator.UpdateProfile(), controller.UpdateProfile)

	app.Get("/api/community", middleware.JWTMiddleware, controller.CommunityList)
}
