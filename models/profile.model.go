package models

import "gorm.io/gorm"

// Profile holds the student-facing details shown on certificates and the dashboard
type Profile struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName  string `gorm:"default:''" json:"full_name"`
	Email     string `gorm:"not null" json:"email"`
	Phone     string `gorm:"default:''" json:"phone"`
	AgeRange  string `gorm:"default:''" json:"age_range"`
	Country   string `gorm:"default:''" json:"country"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
