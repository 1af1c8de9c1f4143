package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/purplefit/purplefit-v2/backend/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// collectionRow is the single table the SQL backends use: one row per
// collection, holding the whole JSON document. Collections are opaque
// documents here, not relational data, so the schema stays this small.
type collectionRow struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte
	UpdatedAt time.Time
}

func (collectionRow) TableName() string { return "collections" }

// GormKV stores collections in SQLite or Postgres through gorm.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV opens the SQL backend selected by the configuration and ensures
// the collections table exists.
func NewGormKV(cfg *config.Config) (*GormKV, error) {
	var dialector gorm.Dialector
	switch cfg.StoreBackend {
	case config.StoreBackendSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.StoreBackendPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
		)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("backend %q is not SQL-based", cfg.StoreBackend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.StoreBackend, err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrating collections table: %w", err)
	}

	log.Printf("[Store] connected to %s store", cfg.StoreBackend)
	return &GormKV{db: db}, nil
}

func (g *GormKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row collectionRow
	err := g.db.WithContext(ctx).First(&row, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return row.Data, true, nil
}

func (g *GormKV) Set(ctx context.Context, key string, data []byte) error {
	row := collectionRow{Name: key, Data: data, UpdatedAt: time.Now().UTC()}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
