package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	EnrollmentTypeCourse = "course"
	EnrollmentTypeTour   = "tour"
	EnrollmentTypeCombo  = "combo"

	CurrencyNGN = "NGN"
	CurrencyUSD = "USD"
)

// Enrollment is one user's paid claim on a course, a tour or a combo bundle.
// PaymentReference is the idempotency anchor shared with the payment gateway.
type Enrollment struct {
	gorm.Model
	UserID            uint       `gorm:"index;not null" json:"user_id"`
	CourseID          *uint      `gorm:"index" json:"course_id"`
	TourID            *uint      `gorm:"index" json:"tour_id"`
	ComboKey          string     `gorm:"default:''" json:"combo_key"`
	PaymentReference  string     `gorm:"uniqueIndex;not null" json:"payment_reference"`
	PaymentStatus     string     `gorm:"default:'pending'" json:"payment_status"` // pending, completed, failed
	AmountPaid        float64    `gorm:"default:0" json:"amount_paid"`            // major currency units
	Currency          string     `gorm:"default:'NGN'" json:"currency"`           // NGN, USD
	EnrollmentType    string     `json:"enrollment_type"`                         // course, tour, combo
	Progress          int        `gorm:"default:0" json:"progress"`               // 0-100
	Completed         bool       `gorm:"default:false" json:"completed"`
	CompletedAt       *time.Time `json:"completed_at"`
	CertificateSent   bool       `gorm:"default:false" json:"certificate_sent"`
	CertificateSentAt *time.Time `json:"certificate_sent_at"`
	IsDeleted         bool       `gorm:"default:false" json:"-"`
}

// AmountMinor returns the expected gateway amount in minor units (kobo/cents).
func (e *Enrollment) AmountMinor() int64 {
	return int64(math.Round(e.AmountPaid * 100))
}
