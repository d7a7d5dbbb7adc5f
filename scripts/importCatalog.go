package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"openstudents/config"
	"openstudents/database"
	"openstudents/models"
)

// Imports the course catalog from Catalog.csv. Existing courses are matched by
// title and updated in place so the script can be re-run safely.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	file, err := os.Open("Catalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		idx, ok := headerIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	floatField := func(row []string, name string) float64 {
		value, err := strconv.ParseFloat(field(row, name), 64)
		if err != nil {
			return 0
		}
		return value
	}

	db := database.Database.Db

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		title := field(row, "title")
		if title == "" {
			log.Printf("Skipping row %d: missing title", i+2)
			skipped++
			continue
		}

		durationWeeks, _ := strconv.Atoi(field(row, "duration_weeks"))

		course := models.Course{
			Title:         title,
			Description:   field(row, "description"),
			Category:      field(row, "category"),
			PriceNgn:      floatField(row, "price_ngn"),
			PriceUsd:      floatField(row, "price_usd"),
			DurationWeeks: durationWeeks,
			ThumbnailURL:  field(row, "thumbnail_url"),
			ClassroomLink: field(row, "classroom_link"),
			IsActive:      true,
		}

		var existing models.Course
		if err := db.Where("title = ?", title).First(&existing).Error; err == nil {
			course.ID = existing.ID
			course.CreatedAt = existing.CreatedAt
			if err := db.Save(&course).Error; err != nil {
				log.Printf("Failed to update course %q: %v", title, err)
				skipped++
				continue
			}
			updated++
			continue
		}

		if err := db.Create(&course).Error; err != nil {
			log.Printf("Failed to insert course %q: %v", title, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}
