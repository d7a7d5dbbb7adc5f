package courseRoutes

import (
	courseControllers "openstudents/controllers/course"
	"openstudents/middleware"
	courseValidators "openstudents/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	app.Get("/courses", courseControllers.GetAllCourses)
	app.Get("/courses/:id", courseValidators.CourseDetail(), courseControllers.GetCourseDetails)
	app.Get("/tours", courseControllers.GetAllTours)

	app.Post("/update-progress", middleware.JWTMiddleware, courseValidators.UpdateProgress(), courseControllers.UpdateProgress)
	app.Post("/complete-course", middleware.JWTMiddleware, courseValidators.CompleteCourse(), courseControllers.CompleteCourse)
}
