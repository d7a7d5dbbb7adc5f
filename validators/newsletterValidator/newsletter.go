package newsletterValidator

import (
	"openstudents/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SubscribeRequest is a newsletter signup
type SubscribeRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func Subscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubscribeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid email is required!", nil)
		}

		c.Locals("validatedSubscribe", reqData)
		return c.Next()
	}
}
