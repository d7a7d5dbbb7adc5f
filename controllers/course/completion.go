package courseController

import (
	"errors"
	"log"
	"time"

	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	"openstudents/utils"
	validators "openstudents/validators/courseValidator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrAlreadyCompleted signals a caller bug: completion must run exactly once
// per enrollment.
var ErrAlreadyCompleted = errors.New("course already completed")

// sendCertificateEmail is a seam for tests
var sendCertificateEmail = utils.SendCertificateEmail

// CompletionResult is returned to the caller and merged into the progress
// response when completion is triggered at 100%.
type CompletionResult struct {
	CertificateNumber string `json:"certificate_number"`
	CertificateURL    string `json:"certificate_url"`
	EmailSent         bool   `json:"email_sent"`
}

// CompleteEnrollment marks an enrollment finished, issues the certificate and
// mails it. Email delivery is best-effort: a failed send leaves the enrollment
// completed with certificate_sent false.
func CompleteEnrollment(db *gorm.DB, enrollment *models.Enrollment) (*CompletionResult, error) {
	if enrollment.Completed {
		return nil, ErrAlreadyCompleted
	}

	programName := "Program"
	switch {
	case enrollment.CourseID != nil:
		var course models.Course
		if err := db.First(&course, *enrollment.CourseID).Error; err == nil {
			programName = course.Title
		}
	case enrollment.TourID != nil:
		var tour models.Tour
		if err := db.First(&tour, *enrollment.TourID).Error; err == nil {
			programName = tour.Title
		}
	case enrollment.ComboKey != "":
		programName = enrollment.ComboKey
	}

	studentName := "Student"
	studentEmail := ""
	var profile models.Profile
	if err := db.Where("user_id = ? AND is_deleted = ?", enrollment.UserID, false).First(&profile).Error; err == nil {
		if profile.FullName != "" {
			studentName = profile.FullName
		}
		studentEmail = profile.Email
	}

	now := time.Now()
	enrollment.Completed = true
	enrollment.Progress = 100
	enrollment.CompletedAt = &now
	if err := db.Save(enrollment).Error; err != nil {
		return nil, err
	}

	certificateNumber := utils.GenerateCertificateNumber()
	svg := utils.GenerateCertificateSVG(utils.CertificateData{
		StudentName:       studentName,
		ProgramName:       programName,
		CompletionDate:    utils.FormatCompletionDate(now),
		CertificateNumber: certificateNumber,
	})
	certificateURL := utils.CertificateDataURI(svg)

	certificate := models.Certificate{
		EnrollmentID:      enrollment.ID,
		UserID:            enrollment.UserID,
		CertificateNumber: certificateNumber,
		CertificateURL:    certificateURL,
		IssuedAt:          now,
	}
	if err := db.Create(&certificate).Error; err != nil {
		return nil, err
	}

	emailSent := false
	if studentEmail != "" {
		if err := sendCertificateEmail(studentEmail, studentName, programName, certificateURL); err != nil {
			log.Printf("Certificate email for enrollment %d failed: %v", enrollment.ID, err)
		} else {
			emailSent = true
			enrollment.CertificateSent = true
			enrollment.CertificateSentAt = &now
			if err := db.Save(enrollment).Error; err != nil {
				log.Printf("Failed to stamp certificate_sent on enrollment %d: %v", enrollment.ID, err)
			}
		}
	}

	return &CompletionResult{
		CertificateNumber: certificateNumber,
		CertificateURL:    certificateURL,
		EmailSent:         emailSent,
	}, nil
}

// CompleteCourse is the endpoint wrapper around CompleteEnrollment
func CompleteCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompleteCourse").(*validators.CompleteCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("id = ? AND is_deleted = ?", reqData.EnrollmentID, false).First(&enrollment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up enrollment!", nil)
	}

	result, err := CompleteEnrollment(db, &enrollment)
	if err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course already completed!", nil)
		}
		log.Printf("Completion failed for enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course completed successfully!", result)
}
