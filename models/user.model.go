package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

type User struct {
	gorm.Model
	Email                   string     `gorm:"unique;not null" json:"email"`
	Password                string     `gorm:"not null" json:"-"`
	FullName                string     `gorm:"default:''" json:"full_name"`
	Role                    string     `gorm:"default:'STUDENT'" json:"role"`
	IsEmailVerified         bool       `gorm:"default:false" json:"is_email_verified"`
	VerificationToken       string     `gorm:"index" json:"-"`
	VerificationTokenExpiry *time.Time `json:"-"`
	LastLogin               *time.Time `json:"last_login"`
	IsDeleted               bool       `gorm:"default:false" json:"-"`
}
