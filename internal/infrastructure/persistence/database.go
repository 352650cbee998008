package persistence

import (
	"context"
	"fmt"

	"github.com/plaudstore/backend/internal/infrastructure/config"
	"github.com/plaudstore/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to the datastore described by cfg. The caller is
// expected to check cfg.Configured() first; connecting with empty
// credentials fails.
func NewDatabase(cfg *config.DatastoreConfig, log *zap.Logger, logLevel string) (*Database, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to datastore: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Database{DB: db}, nil
}

// Ping verifies the connection is alive
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SilentLogger returns a gorm logger that discards everything, for tests.
func SilentLogger() gormlogger.Interface {
	return gormlogger.Default.LogMode(gormlogger.Silent)
}
