package adminValidator

import (
	"strconv"
	"strings"
	"time"

	"openstudents/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// IDParam validates a positive integer :id path parameter and stashes it under
// the given locals key.
func IDParam(localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}
		c.Locals(localsKey, id)
		return c.Next()
	}
}

// CoursePayload is the admin create/update course body
type CoursePayload struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category" validate:"omitempty,oneof=writing graphics video speaking leadership storytelling"`
	PriceNgn      float64 `json:"price_ngn" validate:"gte=0"`
	PriceUsd      float64 `json:"price_usd" validate:"gte=0"`
	DurationWeeks int     `json:"duration_weeks" validate:"gte=0"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	ClassroomLink string  `json:"classroom_link"`
	IsActive      *bool   `json:"is_active"`
}

func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title is required!"
				case "Category":
					errors["category"] = "Unknown category!"
				default:
					errors[strings.ToLower(fieldErr.Field())] = "Must not be negative!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// TourPayload is the admin create/update tour body
type TourPayload struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	State           string     `json:"state"`
	Date            *time.Time `json:"date"`
	PriceNgn        float64    `json:"price_ngn" validate:"gte=0"`
	PriceUsd        float64    `json:"price_usd" validate:"gte=0"`
	MaxParticipants int        `json:"max_participants" validate:"gte=0"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	IsActive        *bool      `json:"is_active"`
}

func Tour() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TourPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title is required and prices must not be negative!", nil)
		}
		c.Locals("validatedTour", reqData)
		return c.Next()
	}
}

// ModulePayload is the admin create/update module body
type ModulePayload struct {
	CourseID   uint   `json:"course_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

func Module() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModulePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID and title are required!", nil)
		}
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// LessonPayload is the admin create/update lesson body
type LessonPayload struct {
	ModuleID        uint   `json:"module_id" validate:"required"`
	Title           string `json:"title" validate:"required"`
	ContentURL      string `json:"content_url"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	OrderIndex      int    `json:"order_index" validate:"gte=0"`
}

func Lesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID and title are required!", nil)
		}
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// SettingsPayload updates the AdminSettings singleton
type SettingsPayload struct {
	LogoURL           string `json:"logo_url"`
	SiteName          string `json:"site_name"`
	Tagline           string `json:"tagline"`
	Description       string `json:"description"`
	PaystackPublicKey string `json:"paystack_public_key"`
	PaystackSecretKey string `json:"paystack_secret_key"`
	SiteURL           string `json:"site_url"`
}

func Settings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SettingsPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		c.Locals("validatedSettings", reqData)
		return c.Next()
	}
}

// FounderPayload updates the Founder singleton
type FounderPayload struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

func Founder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FounderPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		c.Locals("validatedFounder", reqData)
		return c.Next()
	}
}
