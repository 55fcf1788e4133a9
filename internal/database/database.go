package database

import (
	"fmt"
	"log"

	"github.com/CompileLord/Test-programm-for-Schools/internal/config"
	"github.com/CompileLord/Test-programm-for-Schools/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectLocal opens the user's local sqlite store. The application cannot
// run without it.
func ConnectLocal(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.LocalDBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to local database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate local database: %v", err)
	}

	log.Println("local database connected")
	return db
}

// ConnectOnline opens the shared/online postgres store. Unlike the local
// store it is optional: a missing or unreachable online database degrades
// the app to local-only behavior, so failures here are logged, not fatal.
func ConnectOnline(cfg *config.Config) *gorm.DB {
	if !cfg.OnlineConfigured() {
		log.Println("ONLINE_DB_HOST not set, online store disabled")
		return nil
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.OnlineDBHost, cfg.OnlineDBPort, cfg.OnlineDBUser, cfg.OnlineDBPassword, cfg.OnlineDBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("online database unavailable: %v", err)
		return nil
	}

	if err := Migrate(db); err != nil {
		log.Printf("failed to migrate online database: %v", err)
	}

	log.Println("online database connected")
	return db
}

// Migrate creates the schema; both stores carry the same one.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Quiz{},
		&models.Question{},
		&models.Choice{},
		&models.TestAttempt{},
		&models.AttemptAnswer{},
	)
}
