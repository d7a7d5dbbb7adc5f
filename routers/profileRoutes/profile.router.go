package profileRoutes

import (
	profileControllers "openstudents/controllers/profile"
	"openstudents/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile", middleware.JWTMiddleware)

	profileGroup.Get("/", profileControllers.GetProfile)
	profileGroup.Put("/", profileControllers.UpdateProfile)
}
