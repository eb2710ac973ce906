package database

import (
	"fmt"
	"log"

	"prospect-outreach/config"
	"prospect-outreach/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the history database and migrates its schema. It returns a
// nil handle when history is disabled by an empty DatabasePath.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabasePath == "" {
		log.Println("DB_PATH is empty, generation history disabled")
		return nil, nil
	}

	// Configure GORM logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database initialized successfully")
	return db, nil
}

// Migrate creates or updates the history tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.GenerationLog{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
