package paymentController

import (
	"openstudents/models"

	"gorm.io/gorm"
)

// ReconcileEnrollment compares a gateway-reported minor-unit amount and
// currency against what the enrollment expects and records the outcome:
// exact match means completed, anything else means failed. The webhook, the
// client verification endpoint and the background scheduler all funnel through
// here, so the function has to stay commutative. Re-confirming an already
// completed enrollment with matching values writes nothing.
func ReconcileEnrollment(db *gorm.DB, enrollment *models.Enrollment, amountMinor int64, currency string) (bool, error) {
	match := amountMinor == enrollment.AmountMinor() && currency == enrollment.Currency

	if match && enrollment.PaymentStatus == models.PaymentStatusCompleted {
		return true, nil
	}

	if match {
		enrollment.PaymentStatus = models.PaymentStatusCompleted
	} else {
		enrollment.PaymentStatus = models.PaymentStatusFailed
	}

	if err := db.Save(enrollment).Error; err != nil {
		return match, err
	}
	return match, nil
}
