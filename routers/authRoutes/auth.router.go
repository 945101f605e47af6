package authRoutes

import (
	controller "thumbpro/controllers/auth"
	"thumbpro/middleware"
	validator "thumbpro/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/signup", validator.Signup(), controller.Signup)
	auth.Post("/login", controller.Login)
	auth.Post("/change-password", middleware.JWTMiddleware, validator.ChangePassword(), controller.ChangePassword)
}
