package paymentRoutes

import (
	paymentControllers "openstudents/controllers/payment"
	paymentValidators "openstudents/validators/paymentValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes registers the gateway-facing endpoints. Both are public:
// the webhook is authenticated by its signature, verify by the reference it
// names belonging to the caller's own checkout.
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments")

	paymentGroup.Post("/paystack/webhook", paymentControllers.PaystackWebhook)
	paymentGroup.Post("/verify", paymentValidators.VerifyPayment(), paymentControllers.VerifyPayment)
}
