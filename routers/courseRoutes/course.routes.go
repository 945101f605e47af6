package courseRoutes

import (
	controllers "thumbpro/controllers/course"
	"thumbpro/middleware"
	validators "thumbpro/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the dashboard: modules, episodes, progress, notes
func SetupCourseRoutes(app *fiber.App) {
	course := app.Group("/api/course", middleware.JWTMiddleware)
	course.Get("/modules", controllers.GetModules)
	course.Get("/episodes/:id", controllers.GetEpisode)

	progress := app.Group("/api/progress", middleware.JWTMiddleware)
	progress.Get("/", controllers.GetProgress)
	progress.Post("/", validators.MarkComplete(), controllers.MarkComplete)
	progress.Delete("/:episode_id", controllers.UndoComplete)

	notes := app.Group("/api/notes", middleware.JWTMiddleware)
	notes.Get("/", controllers.ListNotes)
	notes.Put("/", validators.UpsertNote(), controllers.UpsertNote)
	notes.Delete("/:episode_id", controllers.DeleteNote)
}
