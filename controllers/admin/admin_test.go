package adminController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"openstudents/config"
	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	"openstudents/utils"
	adminValidators "openstudents/validators/adminValidator"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Course{},
		&models.CourseModule{},
		&models.Lesson{},
		&models.Tour{},
		&models.Enrollment{},
		&models.Certificate{},
		&models.AdminSettings{},
		&models.Founder{},
	))

	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		JWTKey:            "test-jwt-key",
		SaltRound:         4,
		SiteURL:           "https://theopenstudents.com",
		PaystackPublicKey: "pk_test_abc",
	}

	utils.InvalidateSettingsCache()
	utils.InvalidateFounderCache()

	return db
}

func adminApp() *fiber.App {
	app := fiber.New()
	app.Get("/founder", GetFounder)

	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)
	adminGroup.Get("/dashboard", Dashboard)
	adminGroup.Post("/courses", adminValidators.Course(), CreateCourse)
	adminGroup.Put("/courses/:id", adminValidators.IDParam("courseId"), adminValidators.Course(), UpdateCourse)
	adminGroup.Delete("/courses/:id", adminValidators.IDParam("courseId"), DeleteCourse)
	adminGroup.Get("/students", ListStudents)
	adminGroup.Put("/settings", adminValidators.Settings(), UpdateSettings)
	adminGroup.Get("/settings", GetSettings)
	adminGroup.Put("/founder", adminValidators.Founder(), UpdateFounder)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := middleware.GenerateJWT(0, "Administrator", models.RoleAdmin, "admin@theopenstudents.com")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdminRoutesRejectStudents(t *testing.T) {
	setupTestDB(t)
	app := adminApp()

	studentToken, err := middleware.GenerateJWT(1, "Student", models.RoleStudent, "s@example.com")
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/admin/dashboard", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/admin/dashboard", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDashboardCountsAndRevenue(t *testing.T) {
	db := setupTestDB(t)
	app := adminApp()

	student := models.User{Email: "s1@example.com", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)

	course := models.Course{Title: "Writing", PriceNgn: 5000, PriceUsd: 5, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	completed := models.Enrollment{UserID: student.ID, CourseID: &course.ID, PaymentReference: "TOS-A-1", PaymentStatus: models.PaymentStatusCompleted, AmountPaid: 5000, Currency: models.CurrencyNGN}
	pending := models.Enrollment{UserID: student.ID, CourseID: &course.ID, PaymentReference: "TOS-A-2", PaymentStatus: models.PaymentStatusPending, AmountPaid: 5, Currency: models.CurrencyUSD}
	usd := models.Enrollment{UserID: student.ID, CourseID: &course.ID, PaymentReference: "TOS-A-3", PaymentStatus: models.PaymentStatusCompleted, AmountPaid: 25, Currency: models.CurrencyUSD}
	require.NoError(t, db.Create(&completed).Error)
	require.NoError(t, db.Create(&pending).Error)
	require.NoError(t, db.Create(&usd).Error)

	resp := doJSON(t, app, http.MethodGet, "/admin/dashboard", adminToken(t), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Data struct {
			Students        int64              `json:"students"`
			Enrollments     int64              `json:"enrollments"`
			PendingPayments int64              `json:"pending_payments"`
			Revenue         map[string]float64 `json:"revenue"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))

	assert.Equal(t, int64(1), envelope.Data.Students)
	assert.Equal(t, int64(3), envelope.Data.Enrollments)
	assert.Equal(t, int64(1), envelope.Data.PendingPayments)
	assert.Equal(t, 5000.0, envelope.Data.Revenue[models.CurrencyNGN])
	assert.Equal(t, 25.0, envelope.Data.Revenue[models.CurrencyUSD])
}

func TestCourseCRUD(t *testing.T) {
	db := setupTestDB(t)
	app := adminApp()
	token := adminToken(t)

	resp := doJSON(t, app, http.MethodPost, "/admin/courses", token, fiber.Map{
		"title":     "Video Editing",
		"category":  "video",
		"price_ngn": 7000,
		"price_usd": 6,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, db.Where("title = ?", "Video Editing").First(&course).Error)

	resp = doJSON(t, app, http.MethodPut, "/admin/courses/1", token, fiber.Map{
		"title":     "Video Editing Pro",
		"price_ngn": 9000,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&course, course.ID).Error)
	assert.Equal(t, "Video Editing Pro", course.Title)
	assert.Equal(t, 9000.0, course.PriceNgn)

	resp = doJSON(t, app, http.MethodDelete, "/admin/courses/1", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	err := db.First(&course, course.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateCourseRejectsUnknownCategory(t *testing.T) {
	setupTestDB(t)
	app := adminApp()

	resp := doJSON(t, app, http.MethodPost, "/admin/courses", adminToken(t), fiber.Map{
		"title":    "Mystery",
		"category": "alchemy",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSettingsUpsertAndSecretRetention(t *testing.T) {
	db := setupTestDB(t)
	app := adminApp()
	token := adminToken(t)

	resp := doJSON(t, app, http.MethodPut, "/admin/settings", token, fiber.Map{
		"site_name":           "The Open Students",
		"paystack_secret_key": "sk_live_override",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A later save with a blank secret keeps the stored one
	resp = doJSON(t, app, http.MethodPut, "/admin/settings", token, fiber.Map{
		"site_name": "The Open Students v2",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var settings models.AdminSettings
	require.NoError(t, db.First(&settings).Error)
	assert.Equal(t, "The Open Students v2", settings.SiteName)
	assert.Equal(t, "sk_live_override", settings.PaystackSecretKey)

	assert.Equal(t, "sk_live_override", utils.PaystackSecret(db))

	var count int64
	db.Model(&models.AdminSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetSettingsDefaultsWhenUnset(t *testing.T) {
	setupTestDB(t)
	app := adminApp()

	resp := doJSON(t, app, http.MethodGet, "/admin/settings", adminToken(t), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Data models.AdminSettings `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "pk_test_abc", envelope.Data.PaystackPublicKey)
}

func TestFounderPublicReadAfterAdminWrite(t *testing.T) {
	setupTestDB(t)
	app := adminApp()

	resp := doJSON(t, app, http.MethodPut, "/admin/founder", adminToken(t), fiber.Map{
		"name":  "Chiamaka Udo",
		"title": "Founder",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Founder read requires no token
	resp = doJSON(t, app, http.MethodGet, "/founder", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Data models.Founder `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "Chiamaka Udo", envelope.Data.Name)
}
