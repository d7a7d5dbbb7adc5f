package adminController

import (
	"log"

	"openstudents/config"
	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	"openstudents/utils"
	validators "openstudents/validators/adminValidator"

	"github.com/gofiber/fiber/v2"
)

// GetSettings returns the site settings. When no row has been saved yet the
// environment defaults are returned so the back-office form is pre-filled.
func GetSettings(c *fiber.Ctx) error {
	settings := utils.GetSettings(database.Database.Db)
	if settings == nil {
		cfg := config.AppConfig
		settings = &models.AdminSettings{
			SiteName:          "The Open Students",
			PaystackPublicKey: cfg.PaystackPublicKey,
			SiteURL:           cfg.SiteURL,
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", settings)
}

// UpdateSettings upserts the singleton settings row. A blank secret key in the
// payload leaves the stored secret untouched.
func UpdateSettings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSettings").(*validators.SettingsPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var settings models.AdminSettings
	db.First(&settings)

	settings.LogoURL = reqData.LogoURL
	settings.SiteName = reqData.SiteName
	settings.Tagline = reqData.Tagline
	settings.Description = reqData.Description
	settings.PaystackPublicKey = reqData.PaystackPublicKey
	settings.SiteURL = reqData.SiteURL
	if reqData.PaystackSecretKey != "" {
		settings.PaystackSecretKey = reqData.PaystackSecretKey
	}

	if err := db.Save(&settings).Error; err != nil {
		log.Printf("Error saving settings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update settings!", nil)
	}

	utils.InvalidateSettingsCache()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings updated successfully!", settings)
}

// GetFounder returns the founder bio. This endpoint is public.
func GetFounder(c *fiber.Ctx) error {
	founder := utils.GetFounder(database.Database.Db)
	if founder == nil {
		founder = &models.Founder{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Founder fetched successfully!", founder)
}

// UpdateFounder upserts the singleton founder row
func UpdateFounder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFounder").(*validators.FounderPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var founder models.Founder
	db.First(&founder)

	founder.Name = reqData.Name
	founder.Title = reqData.Title
	founder.Bio = reqData.Bio
	founder.PhotoURL = reqData.PhotoURL
	founder.Twitter = reqData.Twitter
	founder.Instagram = reqData.Instagram
	founder.LinkedIn = reqData.LinkedIn

	if err := db.Save(&founder).Error; err != nil {
		log.Printf("Error saving founder: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update founder!", nil)
	}

	utils.InvalidateFounderCache()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Founder updated successfully!", founder)
}
