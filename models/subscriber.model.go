package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber is a newsletter signup, mirrored to the Mailchimp audience
type Subscriber struct {
	gorm.Model
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string     `gorm:"default:''" json:"first_name"`
	LastName     string     `gorm:"default:''" json:"last_name"`
	SubscribedAt time.Time  `json:"subscribed_at"`
	SyncedAt     *time.Time `json:"synced_at"` // set once Mailchimp accepted the member
	IsDeleted    bool       `gorm:"default:false" json:"-"`
}
