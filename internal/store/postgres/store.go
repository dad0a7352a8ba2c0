package postgres

import (
	"fmt"

	"github.com/goto/spotlight/internal/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Store holds the database connection shared by the repositories.
type Store struct {
	db     *gorm.DB
	config *store.Config
}

func NewStore(c *store.Config) (*Store, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SslMode)

	logLevel := gormLogger.Warn
	if c.LogLevel == "debug" {
		logLevel = gormLogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	return &Store{db: db, config: c}, nil
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate brings the database schema to the latest embedded migration version.
func (s *Store) Migrate() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return MigrateUp(sqlDB)
}
