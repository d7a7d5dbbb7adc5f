package enrollmentValidator

import (
	"openstudents/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateEnrollmentRequest is the enrollment initiation payload. Exactly one of
// CourseID, TourID or Combo selects the target; Amount is client-declared and
// informational only.
type CreateEnrollmentRequest struct {
	CourseID  *uint   `json:"course_id"`
	TourID    *uint   `json:"tour_id"`
	Combo     string  `json:"combo"`
	Reference string  `json:"reference" validate:"required"`
	Currency  string  `json:"currency" validate:"required,oneof=NGN USD"`
	Amount    float64 `json:"amount"`
}

func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateEnrollmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Reference":
					errors["reference"] = "Payment reference is required!"
				case "Currency":
					errors["currency"] = "Currency must be NGN or USD!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateEnrollment", reqData)
		return c.Next()
	}
}
