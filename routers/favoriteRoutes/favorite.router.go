package favoriteRoutes

import (
	controller "thumbpro/controllers/favorite"
	"thumbpro/middleware"
	validator "thumbpro/validators/favorite"

	"github.com/gofiber/fiber/v2"
)

func SetupFavoriteRoutes(app *fiber.App) {
	favorites := app.Group("/api/favorites", middleware.JWTMiddleware)

	favorites.Get("/", controller.ListFavorites)
	favorites.Post("/", validator.AddFavorite(), controller.AddFavorite)
	favorites.Delete("/:item_type/:item_id", controller.DeleteFavorite)
}
