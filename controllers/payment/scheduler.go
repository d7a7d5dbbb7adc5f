package paymentController

import (
	"log"
	"strconv"
	"time"

	"openstudents/database"
	"openstudents/models"
	"openstudents/utils"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PAYMENT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartReconcileScheduler runs an hourly sweep over enrollments stuck in
// pending, re-querying the gateway for each. Safe to run alongside live
// webhook/verify traffic since all three paths share ReconcileEnrollment.
func StartReconcileScheduler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", ReconcilePendingEnrollments); err != nil {
		log.Fatalf("Failed to register reconcile scheduler: %v", err)
	}
	c.Start()
	logScheduler("Reconcile scheduler started")
	return c
}

// ReconcilePendingEnrollments re-verifies enrollments that stayed pending for
// over an hour. References the gateway never saw stay pending.
func ReconcilePendingEnrollments() {
	db := database.Database.Db
	if db == nil {
		return
	}

	cutoff := time.Now().Add(-time.Hour)

	var stale []models.Enrollment
	if err := db.Where("payment_status = ? AND is_deleted = ? AND created_at < ?",
		models.PaymentStatusPending, false, cutoff).Find(&stale).Error; err != nil {
		logScheduler("Error fetching pending enrollments: " + err.Error())
		return
	}

	if len(stale) == 0 {
		return
	}
	logScheduler("Re-verifying " + strconv.Itoa(len(stale)) + " pending enrollments")

	secret := utils.PaystackSecret(db)
	for i := range stale {
		enrollment := &stale[i]
		verification, err := utils.VerifyPaystackPayment(enrollment.PaymentReference, secret)
		if err != nil {
			// Unpaid or unreachable; leave pending for the next sweep
			continue
		}
		if _, err := ReconcileEnrollment(db, enrollment, verification.Amount, verification.Currency); err != nil {
			logScheduler("Error reconciling reference " + enrollment.PaymentReference + ": " + err.Error())
		}
	}
}
