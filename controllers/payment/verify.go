package paymentController

import (
	"log"

	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	"openstudents/utils"
	validators "openstudents/validators/paymentValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VerifyPayment is the client-triggered, redundant confirmation path: after the
// payment widget closes the frontend posts the reference here and we ask
// Paystack directly. Covers webhook delivery failure; commutative with the
// webhook through ReconcileEnrollment.
func VerifyPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyPayment").(*validators.VerifyPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reference is required!", nil)
	}

	db := database.Database.Db

	// The admin settings row can override the environment secret
	verification, err := utils.VerifyPaystackPayment(reqData.Reference, utils.PaystackSecret(db))
	if err != nil {
		log.Printf("Payment verification failed for reference '%s': %v", reqData.Reference, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment verification failed!", nil)
	}

	var enrollment models.Enrollment
	if err := db.Where("payment_reference = ? AND is_deleted = ?", reqData.Reference, false).First(&enrollment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up enrollment!", nil)
	}

	if verification == nil {
		enrollment.PaymentStatus = models.PaymentStatusFailed
		db.Save(&enrollment)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification missing payment data!", nil)
	}

	completed, err := ReconcileEnrollment(db, &enrollment, verification.Amount, verification.Currency)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	if !completed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment mismatch detected!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified successfully!", verification)
}
