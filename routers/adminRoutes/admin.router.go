package adminRoutes

import (
	adminControllers "openstudents/controllers/admin"
	"openstudents/middleware"
	adminValidators "openstudents/validators/adminValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	// Founder bio is shown on the public site
	app.Get("/founder", adminControllers.GetFounder)

	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/dashboard", adminControllers.Dashboard)

	adminGroup.Get("/courses", adminControllers.ListCourses)
	adminGroup.Post("/courses", adminValidators.Course(), adminControllers.CreateCourse)
	adminGroup.Put("/courses/:id", adminValidators.IDParam("courseId"), adminValidators.Course(), adminControllers.UpdateCourse)
	adminGroup.Delete("/courses/:id", adminValidators.IDParam("courseId"), adminControllers.DeleteCourse)

	adminGroup.Post("/modules", adminValidators.Module(), adminControllers.CreateModule)
	adminGroup.Put("/modules/:id", adminValidators.IDParam("moduleId"), adminValidators.Module(), adminControllers.UpdateModule)
	adminGroup.Delete("/modules/:id", adminValidators.IDParam("moduleId"), adminControllers.DeleteModule)

	adminGroup.Post("/lessons", adminValidators.Lesson(), adminControllers.CreateLesson)
	adminGroup.Put("/lessons/:id", adminValidators.IDParam("lessonId"), adminValidators.Lesson(), adminControllers.UpdateLesson)
	adminGroup.Delete("/lessons/:id", adminValidators.IDParam("lessonId"), adminControllers.DeleteLesson)

	adminGroup.Get("/tours", adminControllers.ListTours)
	adminGroup.Post("/tours", adminValidators.Tour(), adminControllers.CreateTour)
	adminGroup.Put("/tours/:id", adminValidators.IDParam("tourId"), adminValidators.Tour(), adminControllers.UpdateTour)
	adminGroup.Delete("/tours/:id", adminValidators.IDParam("tourId"), adminControllers.DeleteTour)

	adminGroup.Get("/students", adminControllers.ListStudents)
	adminGroup.Get("/enrollments", adminControllers.ListEnrollments)
	adminGroup.Get("/certificates", adminControllers.ListCertificates)

	adminGroup.Get("/settings", adminControllers.GetSettings)
	adminGroup.Put("/settings", adminValidators.Settings(), adminControllers.UpdateSettings)
	adminGroup.Put("/founder", adminValidators.Founder(), adminControllers.UpdateFounder)
}
