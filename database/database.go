package database

import (
	"fmt"
	"log"
	"os"

	"thumbpro/config"
	"thumbpro/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL, or to a local SQLite
// file when DEV_MODE is set (local preview without the hosted database).
func ConnectDb() {
	var db *gorm.DB
	var err error

	if config.AppConfig.DevMode {
		db, err = gorm.Open(sqlite.Open("thumbpro-dev.db"), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to open dev database: %v", err)
		}
		log.Println("DEV_MODE: using local SQLite database thumbpro-dev.db")
	} else {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBName,
			config.AppConfig.DBPort,
		)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
			os.Exit(2)
		}

		// Set up connection pooling
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to get database instance: %v", err)
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(0)
	}

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.CourseModule{},
		&models.Episode{},
		&models.Progress{},
		&models.Note{},
		&models.Favorite{},
		&models.Resource{},
		&models.Announcement{},
		&models.SupportTicket{},
		&models.SupportMessage{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
