package utils

import (
	"fmt"
	"log"
	"time"

	"coursehub/backend/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const connectAttempts = 5

// InitDB opens the postgres connection, retrying while the database starts up.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			return db, nil
		}

		log.Printf("database connection attempt %d failed: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", connectAttempts, err)
}
