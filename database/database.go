package database

import (
	"fmt"
	"log"
	"time"

	"openstudents/config"
	"openstudents/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

const (
	connectAttempts  = 3
	connectBaseDelay = 300 * time.Millisecond
)

// ConnectDb establishes a connection to PostgreSQL with a bounded retry.
// Each failed attempt doubles the delay before the next one.
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	db, err := openWithRetry(dsn, connectAttempts, connectBaseDelay)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL after %d attempts: %v", connectAttempts, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

func openWithRetry(dsn string, attempts int, baseDelay time.Duration) (*gorm.DB, error) {
	var lastErr error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("Database connection attempt %d/%d failed: %v", i+1, attempts, err)
		if i < attempts-1 {
			time.Sleep(delay)
			delay *= 2
		}
	}
	return nil, lastErr
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Course{},
		&models.CourseModule{},
		&models.Lesson{},
		&models.Tour{},
		&models.Enrollment{},
		&models.Certificate{},
		&models.AdminSettings{},
		&models.Founder{},
		&models.Subscriber{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
