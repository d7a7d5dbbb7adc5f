package enrollmentController

import (
	"strings"

	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	validators "openstudents/validators/enrollmentValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type comboPrice struct {
	Ngn float64
	Usd float64
}

// Fixed price table for the four combo bundles. Combos are a convention, not
// catalog rows.
var comboPrices = map[string]comboPrice{
	"creative-combo":      {Ngn: 12000, Usd: 10},
	"communication-combo": {Ngn: 10000, Usd: 8},
	"leadership-combo":    {Ngn: 10000, Usd: 8},
	"full-suite":          {Ngn: 30000, Usd: 25},
}

// CreateEnrollment records a pending enrollment tied to a payment reference
// before the client opens the payment widget. The price is always resolved
// server-side; the client-declared amount is informational only.
func CreateEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCreateEnrollment").(*validators.CreateEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	enrollment := models.Enrollment{
		UserID:           userID,
		PaymentReference: reqData.Reference,
		PaymentStatus:    models.PaymentStatusPending,
		Currency:         reqData.Currency,
	}

	switch {
	case reqData.CourseID != nil:
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ? AND is_active = ?", *reqData.CourseID, false, true).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course or tour is required!", nil)
		}
		enrollment.CourseID = reqData.CourseID
		enrollment.EnrollmentType = models.EnrollmentTypeCourse
		if reqData.Currency == models.CurrencyNGN {
			enrollment.AmountPaid = course.PriceNgn
		} else {
			enrollment.AmountPaid = course.PriceUsd
		}
	case reqData.TourID != nil:
		var tour models.Tour
		if err := db.Where("id = ? AND is_deleted = ? AND is_active = ?", *reqData.TourID, false, true).First(&tour).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course or tour is required!", nil)
		}
		enrollment.TourID = reqData.TourID
		enrollment.EnrollmentType = models.EnrollmentTypeTour
		if reqData.Currency == models.CurrencyNGN {
			enrollment.AmountPaid = tour.PriceNgn
		} else {
			enrollment.AmountPaid = tour.PriceUsd
		}
	case reqData.Combo != "":
		key := strings.TrimPrefix(reqData.Combo, "combo:")
		combo, found := comboPrices[key]
		if !found {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course or tour is required!", nil)
		}
		enrollment.ComboKey = key
		enrollment.EnrollmentType = models.EnrollmentTypeCombo
		if reqData.Currency == models.CurrencyNGN {
			enrollment.AmountPaid = combo.Ngn
		} else {
			enrollment.AmountPaid = combo.Usd
		}
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course or tour is required!", nil)
	}

	if enrollment.AmountPaid <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid price for selected enrollment!", nil)
	}

	// Reuse an existing pending enrollment for the same reference so retried
	// client requests never create duplicate rows.
	var existing models.Enrollment
	err := db.Where("payment_reference = ? AND is_deleted = ?", reqData.Reference, false).First(&existing).Error
	if err == nil {
		if existing.PaymentStatus != models.PaymentStatusPending {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment reference already used!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment already pending.", fiber.Map{
			"id":        existing.ID,
			"reference": existing.PaymentReference,
			"amount":    existing.AmountPaid,
			"currency":  existing.Currency,
		})
	}
	if err != gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment created successfully!", fiber.Map{
		"id":        enrollment.ID,
		"reference": enrollment.PaymentReference,
		"amount":    enrollment.AmountPaid,
		"currency":  enrollment.Currency,
	})
}

// GetEnrollments lists the current user's enrollments with program titles
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrollmentWithProgram struct {
		models.Enrollment
		ProgramName string `json:"program_name"`
	}

	result := make([]enrollmentWithProgram, len(enrollments))
	for i, e := range enrollments {
		result[i] = enrollmentWithProgram{Enrollment: e, ProgramName: programName(db, &e)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

func programName(db *gorm.DB, e *models.Enrollment) string {
	switch {
	case e.CourseID != nil:
		var course models.Course
		if err := db.First(&course, *e.CourseID).Error; err == nil {
			return course.Title
		}
	case e.TourID != nil:
		var tour models.Tour
		if err := db.First(&tour, *e.TourID).Error; err == nil {
			return tour.Title
		}
	case e.ComboKey != "":
		return e.ComboKey
	}
	return "Program"
}
