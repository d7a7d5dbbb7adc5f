package profileController

import (
	"log"

	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProfile returns the caller's profile. A user who never saved one gets a
// default built from the token claims so the client always has something to render.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	email, _ := c.Locals("email").(string)

	db := database.Database.Db

	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", models.Profile{
				UserID: userID,
				Email:  email,
			})
		}
		log.Printf("Error fetching profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

// UpdateProfile upserts the caller's profile row
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var reqData struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		AgeRange string `json:"age_range"`
		Country  string `json:"country"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Printf("Error fetching profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	profile.UserID = userID
	profile.Email = user.Email
	if reqData.FullName != "" {
		profile.FullName = reqData.FullName
	}
	if reqData.Phone != "" {
		profile.Phone = reqData.Phone
	}
	if reqData.AgeRange != "" {
		profile.AgeRange = reqData.AgeRange
	}
	if reqData.Country != "" {
		profile.Country = reqData.Country
	}

	if err := db.Save(&profile).Error; err != nil {
		log.Printf("Error saving profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	// Keep the user record's display name in sync
	if reqData.FullName != "" && reqData.FullName != user.FullName {
		user.FullName = reqData.FullName
		db.Save(&user)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}
