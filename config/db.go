package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the durable local store. Default is an embedded sqlite file;
// MYSQL_DSN switches to a shared MySQL instance for multi-node deployments.
func NewDB(cfg *Config) (*gorm.DB, error) {
	logMode := logger.Silent
	if cfg.Debug {
		logMode = logger.Info
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode,
			Colorful:      true,
		},
	)

	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	}
	return gorm.Open(sqlite.Open(cfg.StorePath), &gorm.Config{Logger: gormLogger})
}
