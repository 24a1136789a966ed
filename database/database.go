package database

import (
	"fmt"
	"time"

	"pokedex/config"
	"pokedex/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the database described by cfg and migrates the models
func Open(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the pokemons table and makes sure every unique or indexed
// field declared in models.PokemonSchema has its index
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Pokemon{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	migrator := db.Migrator()
	for _, field := range models.PokemonSchema {
		if !field.Unique && !field.Indexed {
			continue
		}
		if migrator.HasIndex(&models.Pokemon{}, field.Field) {
			continue
		}
		if err := migrator.CreateIndex(&models.Pokemon{}, field.Field); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", field.Name, err)
		}
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
