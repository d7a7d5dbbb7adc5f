package models

import (
	"time"

	"gorm.io/gorm"
)

// Tour represents a bookable educational tour
type Tour struct {
	gorm.Model
	Title               string     `gorm:"not null" json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	State               string     `json:"state"`
	Date                *time.Time `json:"date"`
	PriceNgn            float64    `gorm:"default:0" json:"price_ngn"`
	PriceUsd            float64    `gorm:"default:0" json:"price_usd"`
	MaxParticipants     int        `gorm:"default:0" json:"max_participants"`
	CurrentParticipants int        `gorm:"default:0" json:"current_participants"`
	ThumbnailURL        string     `json:"thumbnail_url"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
