package main

import (
	"log"

	"thumbpro/config"
	"thumbpro/database"
	announcementRoutes "thumbpro/routers/announcementRoutes"
	authRoutes "thumbpro/routers/authRoutes"
	courseRoutes "thumbpro/routers/courseRoutes"
	favoriteRoutes "thumbpro/routers/favoriteRoutes"
	paymentRoutes "thumbpro/routers/paymentRoutes"
	resourceRoutes "thumbpro/routers/resourceRoutes"
	supportRoutes "thumbpro/routers/supportRoutes"
	userRoutes "thumbpro/routers/userRoutes"
	"thumbpro/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/stripe/stripe-go/v82"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	stripe.Key = config.AppConfig.StripeSecretKey

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization,Stripe-Signature",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	favoriteRoutes.SetupFavoriteRoutes(app)
	resourceRoutes.SetupResourceRoutes(app)
	announcementRoutes.SetupAnnouncementRoutes(app)
	supportRoutes.SetupSupportRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	utils.InitializeScoreScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
