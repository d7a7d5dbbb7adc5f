package courseController

import (
	"errors"
	"strings"
	"testing"

	"openstudents/config"
	"openstudents/database"
	"openstudents/models"

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
	))

	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		JWTKey:    "test-jwt-key",
		SaltRound: 4,
	}

	return db
}

// captureEmails swaps the certificate mail seam for the test's lifetime
func captureEmails(t *testing.T, fail bool) *[]string {
	t.Helper()

	var sent []string
	original := sendCertificateEmail
	sendCertificateEmail = func(to, name, program, certURL string) error {
		if fail {
			return errors.New("smtp unreachable")
		}
		sent = append(sent, to)
		return nil
	}
	t.Cleanup(func() { sendCertificateEmail = original })
	return &sent
}

func seedCourseEnrollment(t *testing.T, db *gorm.DB) *models.Enrollment {
	t.Helper()

	course := models.Course{Title: "Creative Writing", PriceNgn: 5000, PriceUsd: 5, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	user := models.User{Email: "ada@example.com", Password: "x", FullName: "Ada Obi", IsEmailVerified: true}
	require.NoError(t, db.Create(&user).Error)

	profile := models.Profile{UserID: user.ID, FullName: "Ada Obi", Email: "ada@example.com"}
	require.NoError(t, db.Create(&profile).Error)

	enrollment := models.Enrollment{
		UserID:           user.ID,
		CourseID:         &course.ID,
		PaymentReference: "TOS-C-" + t.Name(),
		PaymentStatus:    models.PaymentStatusCompleted,
		AmountPaid:       5000,
		Currency:         models.CurrencyNGN,
		EnrollmentType:   models.EnrollmentTypeCourse,
		Progress:         90,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return &enrollment
}

func TestCompleteEnrollmentIssuesCertificate(t *testing.T) {
	db := setupTestDB(t)
	sent := captureEmails(t, false)
	enrollment := seedCourseEnrollment(t, db)

	result, err := CompleteEnrollment(db, enrollment)
	require.NoError(t, err)

	assert.True(t, enrollment.Completed)
	assert.Equal(t, 100, enrollment.Progress)
	assert.NotNil(t, enrollment.CompletedAt)
	assert.True(t, strings.HasPrefix(result.CertificateNumber, "TOS-CERT-"))
	assert.True(t, strings.HasPrefix(result.CertificateURL, "data:image/svg+xml;base64,"))
	assert.True(t, result.EmailSent)
	assert.Equal(t, []string{"ada@example.com"}, *sent)

	var count int64
	db.Model(&models.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var after models.Enrollment
	require.NoError(t, db.First(&after, enrollment.ID).Error)
	assert.True(t, after.CertificateSent)
	assert.NotNil(t, after.CertificateSentAt)
}

func TestCompleteEnrollmentRunsExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	captureEmails(t, false)
	enrollment := seedCourseEnrollment(t, db)

	_, err := CompleteEnrollment(db, enrollment)
	require.NoError(t, err)

	_, err = CompleteEnrollment(db, enrollment)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)

	var count int64
	db.Model(&models.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCompleteEnrollmentEmailFailureDoesNotRollBack(t *testing.T) {
	db := setupTestDB(t)
	captureEmails(t, true)
	enrollment := seedCourseEnrollment(t, db)

	result, err := CompleteEnrollment(db, enrollment)
	require.NoError(t, err)
	assert.False(t, result.EmailSent)

	var after models.Enrollment
	require.NoError(t, db.First(&after, enrollment.ID).Error)
	assert.True(t, after.Completed)
	assert.False(t, after.CertificateSent)
	assert.Nil(t, after.CertificateSentAt)

	// The certificate still exists and can be re-sent later
	var count int64
	db.Model(&models.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCompleteEnrollmentFallbackNames(t *testing.T) {
	db := setupTestDB(t)
	captureEmails(t, false)

	user := models.User{Email: "no-profile@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	enrollment := models.Enrollment{
		UserID:           user.ID,
		ComboKey:         "full-suite",
		PaymentReference: "TOS-C-FALLBACK",
		PaymentStatus:    models.PaymentStatusCompleted,
		AmountPaid:       30000,
		Currency:         models.CurrencyNGN,
		EnrollmentType:   models.EnrollmentTypeCombo,
	}
	require.NoError(t, db.Create(&enrollment).Error)

	// No profile row: name falls back, no email address means no send
	result, err := CompleteEnrollment(db, &enrollment)
	require.NoError(t, err)
	assert.False(t, result.EmailSent)
	assert.NotEmpty(t, result.CertificateNumber)
}
