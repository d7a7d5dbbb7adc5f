package newsletterController

import (
	"log"
	"time"

	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	"openstudents/utils"
	validators "openstudents/validators/newsletterValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Subscribe records a newsletter signup locally, then pushes it to Mailchimp.
// A Mailchimp failure is logged but never surfaces to the subscriber.
func Subscribe(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubscribe").(*validators.SubscribeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid email is required!", nil)
	}

	db := database.Database.Db

	var subscriber models.Subscriber
	err := db.Where("email = ?", reqData.Email).First(&subscriber).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Printf("Error checking subscriber %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	subscriber.Email = reqData.Email
	if reqData.FirstName != "" {
		subscriber.FirstName = reqData.FirstName
	}
	if reqData.LastName != "" {
		subscriber.LastName = reqData.LastName
	}
	if subscriber.SubscribedAt.IsZero() {
		subscriber.SubscribedAt = time.Now()
	}

	if err := db.Save(&subscriber).Error; err != nil {
		log.Printf("Error saving subscriber %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to subscribe!", nil)
	}

	if err := utils.SubscribeToMailchimp(subscriber.Email, subscriber.FirstName, subscriber.LastName); err != nil {
		log.Printf("Mailchimp sync failed for %s: %v", subscriber.Email, err)
	} else {
		now := time.Now()
		subscriber.SyncedAt = &now
		db.Save(&subscriber)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscribed successfully!", nil)
}
