package enrollmentRoutes

import (
	enrollmentControllers "openstudents/controllers/enrollment"
	"openstudents/middleware"
	enrollmentValidators "openstudents/validators/enrollmentValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/enrollments", middleware.JWTMiddleware)

	enrollGroup.Post("/", enrollmentValidators.CreateEnrollment(), enrollmentControllers.CreateEnrollment)
	enrollGroup.Get("/", enrollmentControllers.GetEnrollments)
}
