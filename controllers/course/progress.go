package courseController

import (
	"log"

	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	validators "openstudents/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateProgress persists an incremental progress value. Hitting exactly 100
// triggers completion as a direct follow-on step; the completed flag keeps
// that from ever happening twice.
func UpdateProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateProgress").(*validators.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID and progress are required!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", reqData.EnrollmentID, false).First(&enrollment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up enrollment!", nil)
	}

	progress := *reqData.Progress

	enrollment.Progress = progress
	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	if progress == 100 && !enrollment.Completed {
		result, err := CompleteEnrollment(db, &enrollment)
		if err != nil {
			log.Printf("Auto-completion failed for enrollment %d: %v", enrollment.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course completed successfully!", fiber.Map{
			"completed":   true,
			"certificate": result,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"progress": progress,
	})
}
