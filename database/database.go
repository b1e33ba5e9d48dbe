package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pasacalle/config"
	"pasacalle/model"
)

// Open connects to the store described by cfg and verifies it answers.
// The returned handle is the only per-process resource; callers pass it
// to the services explicitly.
func Open(cfg *config.DatabaseConfig, log *zerolog.Logger) (*gorm.DB, error) {
	return OpenDialector(postgres.Open(cfg.DatabaseDSN()), cfg, log)
}

// OpenDialector is Open with an explicit dialector, used by tests to put
// gorm on top of a mock connection.
func OpenDialector(dialector gorm.Dialector, cfg *config.DatabaseConfig, log *zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, NewConfig(cfg, log))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return db, nil
}

// NewConfig returns the gorm configuration shared by every connection.
// Each operation is a single statement, so gorm's implicit transaction
// around writes is disabled.
func NewConfig(cfg *config.DatabaseConfig, log *zerolog.Logger) *gorm.Config {
	level := logger.Warn
	writer := gormWriter{log: log.With().Str("component", "gorm").Logger(), level: zerolog.WarnLevel}
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		level = logger.Info
		writer.level = zerolog.DebugLevel
	}

	return &gorm.Config{
		SkipDefaultTransaction: true,
		Logger: logger.New(writer, logger.Config{
			SlowThreshold:             cfg.SlowThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}

// gormWriter feeds gorm's log lines into zerolog. gorm already filters by
// its own level, so every line is emitted at one level the global logger
// lets through.
type gormWriter struct {
	log   zerolog.Logger
	level zerolog.Level
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.WithLevel(w.level).Msgf(format, args...)
}

// Migrate creates or updates the four tables and their foreign keys.
// Referenced tables go first.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Restaurant{},
		&model.User{},
		&model.Dish{},
		&model.Reservation{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
