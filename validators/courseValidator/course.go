package courseValidator

import (
	"strconv"
	"strings"

	"openstudents/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseDetail validates the :id path parameter
func CourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UpdateProgressRequest carries an incremental progress write
type UpdateProgressRequest struct {
	EnrollmentID uint `json:"enrollment_id"`
	Progress     *int `json:"progress"`
}

// UpdateProgress rejects out-of-range progress before the handler runs.
// Values above 100 are rejected, not clamped.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.EnrollmentID == 0 || reqData.Progress == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID and progress are required!", nil)
		}

		if *reqData.Progress < 0 || *reqData.Progress > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Progress must be between 0 and 100!", nil)
		}

		c.Locals("validatedUpdateProgress", reqData)
		return c.Next()
	}
}

// CompleteCourseRequest identifies the enrollment to complete
type CompleteCourseRequest struct {
	EnrollmentID uint `json:"enrollment_id"`
}

func CompleteCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.EnrollmentID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		c.Locals("validatedCompleteCourse", reqData)
		return c.Next()
	}
}
