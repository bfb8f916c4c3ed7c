package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"proptrack/internal/config"
)

// Connect opens the backing store. The returned handle owns a connection
// pool and must be released with Close on shutdown.
func Connect(c *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
