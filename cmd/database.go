package cmd

import (
	"fmt"
	"log/slog"

	postgres_adapter "backoffice/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects with the configured driver and migrates the schema when
// AUTO_MIGRATE is on.
func OpenDatabase(config Config, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.DBDriver {
	case DBDriverSQLite:
		dialector = sqlite.Open(config.SQLitePath)
	default:
		dialector = postgres.Open(config.PostgresDSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", config.DBDriver, err)
	}

	if config.DBDriver == DBDriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if config.AutoMigrate {
		if err = postgres_adapter.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		log.Info("Database schema migrated", "driver", config.DBDriver)
	}

	return db, nil
}
