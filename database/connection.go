// Package database opens the gorm connection used by the mock upstream
// API. The portal itself holds no database; everything it shows comes
// from the upstream API at request time.
package database

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the configured database. A MySQL DSN in MOCKAPI_DB_DSN
// selects MySQL; otherwise a local sqlite file (MOCKAPI_DB_PATH, default
// mockapi.db) keeps development dependency-free.
func InitDB() (*gorm.DB, error) {
	if dsn := os.Getenv("MOCKAPI_DB_DSN"); dsn != "" {
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("MOCKAPI_DB_PATH")
	if path == "" {
		path = "mockapi.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
