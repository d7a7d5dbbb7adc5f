package authRoutes

import (
	authControllers "openstudents/controllers/auth"
	authValidators "openstudents/validators/authValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/admin/login", authValidators.Login(), authControllers.AdminLogin)
	authGroup.Get("/verify-email", authControllers.VerifyEmail)
	authGroup.Post("/resend-verification", authValidators.ResendVerification(), authControllers.ResendVerification)
}
