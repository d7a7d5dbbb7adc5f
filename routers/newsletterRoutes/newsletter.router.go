package newsletterRoutes

import (
	newsletterControllers "openstudents/controllers/newsletter"
	newsletterValidators "openstudents/validators/newsletterValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupNewsletterRoutes(app *fiber.App) {
	app.Post("/newsletter/subscribe", newsletterValidators.Subscribe(), newsletterControllers.Subscribe)
}
