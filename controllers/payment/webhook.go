package paymentController

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"log"

	"openstudents/config"
	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// paystackEvent is the webhook envelope. Amount is in minor units.
type paystackEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
	} `json:"data"`
}

// PaystackWebhook handles signed charge notifications from Paystack. The HMAC
// is computed over the exact raw body bytes; a re-serialized form would open a
// signature bypass.
func PaystackWebhook(c *fiber.Ctx) error {
	secret := config.AppConfig.PaystackSecretKey
	if secret == "" {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment system not configured!", nil)
	}

	body := c.Body()
	signature := c.Get("x-paystack-signature")

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid signature!", nil)
	}

	var event paystackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid event payload!", nil)
	}

	if event.Event != "charge.success" || event.Data.Reference == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event ignored.", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("payment_reference = ? AND is_deleted = ?", event.Data.Reference, false).First(&enrollment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Nothing to reconcile; the gateway may retry or the enrollment
			// may belong to another system sharing the account.
			return middleware.JsonResponse(c, fiber.StatusOK, true, "No matching enrollment.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up enrollment!", nil)
	}

	completed, err := ReconcileEnrollment(db, &enrollment, event.Data.Amount, event.Data.Currency)
	if err != nil {
		log.Printf("ERROR: webhook reconciliation for reference '%s' failed: %v", event.Data.Reference, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	if !completed {
		log.Printf("WARN: payment mismatch on webhook for reference '%s' (got %d %s, expected %d %s)",
			event.Data.Reference, event.Data.Amount, event.Data.Currency, enrollment.AmountMinor(), enrollment.Currency)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook processed.", nil)
}
