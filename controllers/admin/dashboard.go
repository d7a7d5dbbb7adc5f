package adminController

import (
	"log"

	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the back-office overview counts and revenue totals.
// Revenue sums completed payments only, split by currency.
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var studentCount, courseCount, tourCount int64
	var totalEnrollments, completedEnrollments, pendingPayments int64
	var certificateCount int64

	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Count(&studentCount)
	db.Model(&models.Course{}).Count(&courseCount)
	db.Model(&models.Tour{}).Count(&tourCount)
	db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&models.Enrollment{}).Where("completed = ? AND is_deleted = ?", true, false).Count(&completedEnrollments)
	db.Model(&models.Enrollment{}).Where("payment_status = ? AND is_deleted = ?", models.PaymentStatusPending, false).Count(&pendingPayments)
	db.Model(&models.Certificate{}).Count(&certificateCount)

	type revenueRow struct {
		Currency string
		Total    float64
	}
	var revenue []revenueRow
	if err := db.Model(&models.Enrollment{}).
		Select("currency, COALESCE(SUM(amount_paid), 0) as total").
		Where("payment_status = ? AND is_deleted = ?", models.PaymentStatusCompleted, false).
		Group("currency").
		Scan(&revenue).Error; err != nil {
		log.Printf("Error computing revenue: %v", err)
	}

	revenueByCurrency := fiber.Map{
		models.CurrencyNGN: 0.0,
		models.CurrencyUSD: 0.0,
	}
	for _, row := range revenue {
		revenueByCurrency[row.Currency] = row.Total
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"students":              studentCount,
		"courses":               courseCount,
		"tours":                 tourCount,
		"enrollments":           totalEnrollments,
		"completed_enrollments": completedEnrollments,
		"pending_payments":      pendingPayments,
		"certificates":          certificateCount,
		"revenue":               revenueByCurrency,
	})
}
