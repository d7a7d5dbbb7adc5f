package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is an immutable proof-of-completion artifact, one per enrollment.
// CertificateURL holds the rendered SVG as a base64 data URI so no file storage
// is required.
type Certificate struct {
	gorm.Model
	EnrollmentID      uint      `gorm:"index;not null" json:"enrollment_id"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	CertificateNumber string    `gorm:"uniqueIndex;not null" json:"certificate_number"`
	CertificateURL    string    `json:"certificate_url"`
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `gorm:"default:false" json:"-"`
}
