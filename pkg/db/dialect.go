package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Dialect builds the sqlite dialector for the configured database file.
// The store is a local embedded database; there is no server dialect.
func Dialect(cfg Config) (gorm.Dialector, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	return sqlite.Open(path), nil
}
