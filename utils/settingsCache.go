package utils

import (
	"sync"
	"time"

	"openstudents/config"
	"openstudents/models"

	"gorm.io/gorm"
)

// Read-through caches for the AdminSettings and Founder singleton rows. Reads
// within the TTL are served from memory; when the database is unreachable the
// last known good value is served instead of an error. Writes go through the
// admin controllers, which call the Invalidate functions.

const settingsCacheTTL = time.Minute

type singletonCache[T any] struct {
	mu        sync.Mutex
	value     *T
	fetchedAt time.Time
}

func (c *singletonCache[T]) get(db *gorm.DB) *T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value != nil && time.Since(c.fetchedAt) < settingsCacheTTL {
		return c.value
	}

	var row T
	if err := db.First(&row).Error; err != nil {
		// DB down or row missing: keep serving the last known good value
		return c.value
	}

	c.value = &row
	c.fetchedAt = time.Now()
	return c.value
}

func (c *singletonCache[T]) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
	c.fetchedAt = time.Time{}
}

var (
	settingsCache singletonCache[models.AdminSettings]
	founderCache  singletonCache[models.Founder]
)

// GetSettings returns the cached AdminSettings row, or nil when none exists yet
func GetSettings(db *gorm.DB) *models.AdminSettings {
	return settingsCache.get(db)
}

// GetFounder returns the cached Founder row, or nil when none exists yet
func GetFounder(db *gorm.DB) *models.Founder {
	return founderCache.get(db)
}

func InvalidateSettingsCache() { settingsCache.invalidate() }
func InvalidateFounderCache()  { founderCache.invalidate() }

// PaystackSecret resolves the secret used for server-to-server verification:
// the admin settings override when present, the environment otherwise.
func PaystackSecret(db *gorm.DB) string {
	if s := GetSettings(db); s != nil && s.PaystackSecretKey != "" {
		return s.PaystackSecretKey
	}
	return config.AppConfig.PaystackSecretKey
}
