package paymentController

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"openstudents/config"
	"openstudents/database"
	"openstudents/models"
	paymentValidators "openstudents/validators/paymentValidator"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "sk_test_secret"

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
		&models.Tour{},
		&models.Enrollment{},
		&models.Certificate{},
		&models.AdminSettings{},
	))

	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		JWTKey:            "test-jwt-key",
		SaltRound:         4,
		PaystackSecretKey: testSecret,
		PaystackBaseURL:   "https://api.paystack.co",
	}

	return db
}

func seedEnrollment(t *testing.T, db *gorm.DB, reference string, amount float64, currency string) *models.Enrollment {
	t.Helper()

	enrollment := models.Enrollment{
		UserID:           1,
		PaymentReference: reference,
		PaymentStatus:    models.PaymentStatusPending,
		AmountPaid:       amount,
		Currency:         currency,
		EnrollmentType:   models.EnrollmentTypeCourse,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return &enrollment
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookApp() *fiber.App {
	app := fiber.New()
	app.Post("/payments/paystack/webhook", PaystackWebhook)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, body []byte, signature string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/payments/paystack/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("x-paystack-signature", signature)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func chargeSuccessBody(reference string, amount int64, currency string) []byte {
	body, _ := json.Marshal(fiber.Map{
		"event": "charge.success",
		"data": fiber.Map{
			"reference": reference,
			"amount":    amount,
			"currency":  currency,
		},
	})
	return body
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, "TOS-REF-1", 5000, models.CurrencyNGN)

	app := webhookApp()
	body := chargeSuccessBody("TOS-REF-1", 500000, models.CurrencyNGN)

	resp := postWebhook(t, app, body, "deadbeef")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-REF-1").First(&enrollment).Error)
	assert.Equal(t, models.PaymentStatusPending, enrollment.PaymentStatus)
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	setupTestDB(t)

	app := webhookApp()
	body := chargeSuccessBody("TOS-REF-1", 500000, models.CurrencyNGN)

	resp := postWebhook(t, app, body, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWebhookCompletesMatchingPayment(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, "TOS-REF-2", 5000, models.CurrencyNGN)

	app := webhookApp()
	// 5000 NGN is reported by the gateway as 500000 kobo
	body := chargeSuccessBody("TOS-REF-2", 500000, models.CurrencyNGN)

	resp := postWebhook(t, app, body, signBody(testSecret, body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-REF-2").First(&enrollment).Error)
	assert.Equal(t, models.PaymentStatusCompleted, enrollment.PaymentStatus)
}

func TestWebhookMarksMismatchFailed(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, "TOS-REF-3", 5000, models.CurrencyNGN)

	app := webhookApp()
	body := chargeSuccessBody("TOS-REF-3", 450000, models.CurrencyNGN)

	// Mismatches are recorded but still acknowledged so the gateway stops retrying
	resp := postWebhook(t, app, body, signBody(testSecret, body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-REF-3").First(&enrollment).Error)
	assert.Equal(t, models.PaymentStatusFailed, enrollment.PaymentStatus)
}

func TestWebhookCurrencyMismatchFails(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, "TOS-REF-4", 25, models.CurrencyUSD)

	app := webhookApp()
	body := chargeSuccessBody("TOS-REF-4", 2500, models.CurrencyNGN)

	resp := postWebhook(t, app, body, signBody(testSecret, body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-REF-4").First(&enrollment).Error)
	assert.Equal(t, models.PaymentStatusFailed, enrollment.PaymentStatus)
}

func TestWebhookUnknownReferenceIsNoOp(t *testing.T) {
	setupTestDB(t)

	app := webhookApp()
	body := chargeSuccessBody("TOS-UNKNOWN", 500000, models.CurrencyNGN)

	resp := postWebhook(t, app, body, signBody(testSecret, body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, "TOS-REF-5", 5000, models.CurrencyNGN)

	app := webhookApp()
	body, _ := json.Marshal(fiber.Map{
		"event": "transfer.success",
		"data": fiber.Map{
			"reference": "TOS-REF-5",
			"amount":    int64(500000),
			"currency":  models.CurrencyNGN,
		},
	})

	resp := postWebhook(t, app, body, signBody(testSecret, body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-REF-5").First(&enrollment).Error)
	assert.Equal(t, models.PaymentStatusPending, enrollment.PaymentStatus)
}

func verifyApp() *fiber.App {
	app := fiber.New()
	app.Post("/payments/verify", paymentValidators.VerifyPayment(), VerifyPayment)
	return app
}

// fakePaystack serves the verify endpoint with a fixed transaction result
func fakePaystack(t *testing.T, reference string, status string, amount int64, currency string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/"+reference, r.URL.Path)
		assert.Equal(t, "Bearer "+testSecret, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":true,"message":"Verification successful","data":{"status":%q,"amount":%d,"currency":%q,"reference":%q}}`,
			status, amount, currency, reference)
	}))
	t.Cleanup(server.Close)
	return server
}

func postVerify(t *testing.T, app *fiber.App, reference string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(fiber.Map{"reference": reference})
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestVerifyCompletesMatchingPayment(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, "TOS-V-1", 5000, models.CurrencyNGN)

	server := fakePaystack(t, "TOS-V-1", "success", 500000, models.CurrencyNGN)
	config.AppConfig.PaystackBaseURL = server.URL

	resp := postVerify(t, verifyApp(), "TOS-V-1")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-V-1").First(&enrollment).Error)
	assert.Equal(t, models.PaymentStatusCompleted, enrollment.PaymentStatus)
}

func TestVerifyMismatchMarksFailed(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, "TOS-V-2", 5000, models.CurrencyNGN)

	server := fakePaystack(t, "TOS-V-2", "success", 450000, models.CurrencyNGN)
	config.AppConfig.PaystackBaseURL = server.URL

	resp := postVerify(t, verifyApp(), "TOS-V-2")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-V-2").First(&enrollment).Error)
	assert.Equal(t, models.PaymentStatusFailed, enrollment.PaymentStatus)
}

func TestVerifyGatewayFailureLeavesEnrollmentUntouched(t *testing.T) {
	db := setupTestDB(t)
	seedEnrollment(t, db, "TOS-V-3", 5000, models.CurrencyNGN)

	server := fakePaystack(t, "TOS-V-3", "abandoned", 0, models.CurrencyNGN)
	config.AppConfig.PaystackBaseURL = server.URL

	resp := postVerify(t, verifyApp(), "TOS-V-3")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-V-3").First(&enrollment).Error)
	assert.Equal(t, models.PaymentStatusPending, enrollment.PaymentStatus)
}

func TestVerifyUnknownReferenceReturns404(t *testing.T) {
	setupTestDB(t)

	server := fakePaystack(t, "TOS-V-4", "success", 500000, models.CurrencyNGN)
	config.AppConfig.PaystackBaseURL = server.URL

	resp := postVerify(t, verifyApp(), "TOS-V-4")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestVerifyCompletedEnrollmentIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	enrollment := seedEnrollment(t, db, "TOS-V-5", 5000, models.CurrencyNGN)
	enrollment.PaymentStatus = models.PaymentStatusCompleted
	require.NoError(t, db.Save(enrollment).Error)

	server := fakePaystack(t, "TOS-V-5", "success", 500000, models.CurrencyNGN)
	config.AppConfig.PaystackBaseURL = server.URL

	resp := postVerify(t, verifyApp(), "TOS-V-5")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var after models.Enrollment
	require.NoError(t, db.Where("payment_reference = ?", "TOS-V-5").First(&after).Error)
	assert.Equal(t, models.PaymentStatusCompleted, after.PaymentStatus)
	assert.Equal(t, enrollment.UpdatedAt.Unix(), after.UpdatedAt.Unix())
}

func TestReconcileEnrollmentRounding(t *testing.T) {
	db := setupTestDB(t)
	// 19.99 must round to 1999 minor units, not truncate to 1998
	enrollment := seedEnrollment(t, db, "TOS-R-1", 19.99, models.CurrencyUSD)

	completed, err := ReconcileEnrollment(db, enrollment, 1999, models.CurrencyUSD)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, models.PaymentStatusCompleted, enrollment.PaymentStatus)
}
