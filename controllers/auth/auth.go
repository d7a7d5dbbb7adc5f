package authController

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/url"
	"time"

	"openstudents/config"
	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	"openstudents/utils"
	validators "openstudents/validators/authValidator"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const verificationTokenTTL = 24 * time.Hour

func newVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func verificationLink(email, token string) string {
	return fmt.Sprintf("%s/auth/verify-email?email=%s&token=%s",
		config.AppConfig.SiteURL, url.QueryEscape(email), token)
}

// Signup registers a student, creates the profile row and mails the
// verification link. The account stays unusable until the email is verified.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*validators.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	token, err := newVerificationToken()
	if err != nil {
		log.Printf("Error generating verification token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	expiry := time.Now().Add(verificationTokenTTL)

	newUser := models.User{
		Email:                   reqData.Email,
		Password:                string(hashedPassword),
		FullName:                reqData.FullName,
		Role:                    models.RoleStudent,
		VerificationToken:       token,
		VerificationTokenExpiry: &expiry,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	// Profile creation is best-effort; signup continues if it fails
	profile := models.Profile{
		UserID:   newUser.ID,
		FullName: reqData.FullName,
		Email:    reqData.Email,
		Phone:    reqData.Phone,
		AgeRange: reqData.AgeRange,
		Country:  reqData.Country,
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Printf("Profile creation failed for user %d: %v", newUser.ID, err)
	}

	utils.SendVerificationEmail(newUser.Email, newUser.FullName, verificationLink(newUser.Email, token))

	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully. Please verify your email.", newUser)
}

// Login authenticates a verified student and returns a JWT
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*validators.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !user.IsEmailVerified {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please verify your email before logging in!", fiber.Map{
			"email_not_verified": true,
			"email":              user.Email,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid password!", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	db.Save(&user)

	token, err := middleware.GenerateJWT(user.ID, user.FullName, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log in!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// AdminLogin checks the environment-configured back-office credentials and
// issues an ADMIN-role token.
func AdminLogin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*validators.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and password required!", nil)
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Admin access not configured!", nil)
	}

	if reqData.Email != cfg.AdminEmail || reqData.Password != cfg.AdminPassword {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid admin credentials!", nil)
	}

	token, err := middleware.GenerateJWT(0, "Administrator", models.RoleAdmin, cfg.AdminEmail)
	if err != nil {
		log.Printf("Error generating admin JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log in!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
	})
}

// VerifyEmail confirms the token mailed at signup
func VerifyEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	token := c.Query("token")

	if email == "" || token == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email and verification token are required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not found!", nil)
	}

	if user.IsEmailVerified {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Email already verified.", nil)
	}

	if user.VerificationToken != token {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid verification token!", nil)
	}

	if user.VerificationTokenExpiry == nil || user.VerificationTokenExpiry.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification token has expired!", nil)
	}

	user.IsEmailVerified = true
	user.VerificationToken = ""
	user.VerificationTokenExpiry = nil
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify email!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email verified successfully!", nil)
}

// ResendVerification issues a fresh token for an unverified account. The
// response never reveals whether the address exists.
func ResendVerification(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResendVerification").(*validators.ResendVerificationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid email is required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err == nil && !user.IsEmailVerified {
		token, err := newVerificationToken()
		if err == nil {
			expiry := time.Now().Add(verificationTokenTTL)
			user.VerificationToken = token
			user.VerificationTokenExpiry = &expiry
			if err := db.Save(&user).Error; err == nil {
				utils.SendVerificationEmail(user.Email, user.FullName, verificationLink(user.Email, token))
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "If the account exists, a verification email has been sent.", nil)
}
