package models

import "gorm.io/gorm"

// Course represents a learning course in the catalog
type Course struct {
	gorm.Model
	Title         string  `gorm:"not null" json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"` // writing, graphics, video, speaking, leadership, storytelling
	PriceNgn      float64 `gorm:"default:0" json:"price_ngn"`
	PriceUsd      float64 `gorm:"default:0" json:"price_usd"`
	DurationWeeks int     `gorm:"default:0" json:"duration_weeks"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	ClassroomLink string  `json:"classroom_link"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`
	IsDeleted     bool    `gorm:"default:false" json:"-"`
}

// CourseModule groups lessons inside a course
type CourseModule struct {
	gorm.Model
	CourseID   uint   `gorm:"index;not null" json:"course_id"`
	Title      string `gorm:"not null" json:"title"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}

// Lesson is a single unit of content within a module
type Lesson struct {
	gorm.Model
	ModuleID        uint   `gorm:"index;not null" json:"module_id"`
	Title           string `gorm:"not null" json:"title"`
	ContentURL      string `json:"content_url"`
	DurationMinutes int    `gorm:"default:0" json:"duration_minutes"`
	OrderIndex      int    `gorm:"default:0" json:"order_index"`
	IsDeleted       bool   `gorm:"default:false" json:"-"`
}
