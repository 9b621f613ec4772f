package config

import (
	"fmt"
	"os"

	"github.com/amiralz/calendar-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	SQLitePath  string
	StorageMode string
	Port        string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		StorageMode: os.Getenv("STORAGE_MODE"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "calendar.db"
	}
	if cfg.StorageMode == "" {
		cfg.StorageMode = "database"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

// InitDatabase opens the configured database and migrates the events table.
// Postgres is used when DB_HOST is set; otherwise a local SQLite file keeps
// the server runnable with no configuration at all.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Event{}); err != nil {
		return nil, err
	}

	return db, nil
}
