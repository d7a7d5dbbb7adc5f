package newsletterController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"openstudents/config"
	"openstudents/database"
	"openstudents/models"
	newsletterValidators "openstudents/validators/newsletterValidator"

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

	require.NoError(t, db.AutoMigrate(&models.Subscriber{}))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{}

	return db
}

func newsletterApp() *fiber.App {
	app := fiber.New()
	app.Post("/newsletter/subscribe", newsletterValidators.Subscribe(), Subscribe)
	return app
}

func postSubscribe(t *testing.T, app *fiber.App, payload interface{}) *http.Response {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/newsletter/subscribe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSubscribeStoresLocallyWhenMailchimpUnconfigured(t *testing.T) {
	db := setupTestDB(t)
	app := newsletterApp()

	resp := postSubscribe(t, app, fiber.Map{
		"email":      "reader@example.com",
		"first_name": "Ngozi",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var subscriber models.Subscriber
	require.NoError(t, db.Where("email = ?", "reader@example.com").First(&subscriber).Error)
	assert.Equal(t, "Ngozi", subscriber.FirstName)
	assert.False(t, subscriber.SubscribedAt.IsZero())
	// Sync failed, so the stamp stays empty for a later retry
	assert.Nil(t, subscriber.SyncedAt)
}

func TestSubscribeIsIdempotentPerEmail(t *testing.T) {
	db := setupTestDB(t)
	app := newsletterApp()

	resp := postSubscribe(t, app, fiber.Map{"email": "dup@example.com"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = postSubscribe(t, app, fiber.Map{"email": "dup@example.com", "first_name": "Chi"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.Subscriber{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.Equal(t, int64(1), count)

	var subscriber models.Subscriber
	require.NoError(t, db.Where("email = ?", "dup@example.com").First(&subscriber).Error)
	assert.Equal(t, "Chi", subscriber.FirstName)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	setupTestDB(t)
	app := newsletterApp()

	resp := postSubscribe(t, app, fiber.Map{"email": "not-an-email"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
