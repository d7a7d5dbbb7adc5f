package main

import (
	"log"

	"openstudents/config"
	paymentControllers "openstudents/controllers/payment"
	"openstudents/database"
	adminRoutes "openstudents/routers/adminRoutes"
	authRoutes "openstudents/routers/authRoutes"
	courseRoutes "openstudents/routers/courseRoutes"
	enrollmentRoutes "openstudents/routers/enrollmentRoutes"
	newsletterRoutes "openstudents/routers/newsletterRoutes"
	paymentRoutes "openstudents/routers/paymentRoutes"
	profileRoutes "openstudents/routers/profileRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	newsletterRoutes.SetupNewsletterRoutes(app)

	paymentControllers.StartReconcileScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
