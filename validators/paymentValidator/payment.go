package paymentValidator

import (
	"strings"

	"openstudents/middleware"

	"github.com/gofiber/fiber/v2"
)

// VerifyPaymentRequest carries the reference posted after the payment widget closes
type VerifyPaymentRequest struct {
	Reference string `json:"reference"`
}

func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Reference = strings.TrimSpace(reqData.Reference)
		if reqData.Reference == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reference is required!", nil)
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}
