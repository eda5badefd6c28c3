package db

import (
	"errors"
	"time"

	"github.com/sitekit-io/sitekit/internal/config"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, errors.New("database.dsn is empty")
	}

	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		// surface unique-index violations as gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return d, nil
}

// Migrate creates or updates every table the API owns.
func Migrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&model.Project{},
		&model.Module{},
		&model.ProjectModule{},
		&model.DynamicData{},
	)
}

// Close releases the underlying connection pool.
func Close(d *gorm.DB) error {
	sqlDB, err := d.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}
