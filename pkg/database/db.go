package database

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	KeyID        uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date         string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount int    `gorm:"default:0" json:"request_count"`
	TotalEvents  int    `gorm:"default:0" json:"total_events"`
	TotalWorkers int    `gorm:"default:0" json:"total_workers"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB opens the key and usage database and migrates the schema. A
// Postgres DSN takes precedence; without one a local SQLite file is used.
func InitDB(databaseURL, dataPath string) *gorm.DB {
	var db *gorm.DB
	var err error

	if databaseURL != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  databaseURL,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		if dataPath == "" {
			dataPath = "api_keys.db"
		}
		db, err = gorm.Open(sqlite.Open(dataPath), &gorm.Config{})
	}

	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{})

	return db
}
