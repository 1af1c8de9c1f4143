package store

import (
	"context"
	"fmt"

	"github.com/purplefit/purplefit-v2/backend/config"
)

// Collection keys. Each names one independently persisted record family.
const (
	FoodEntriesKey = "purple_fit_food_entries"
	MealPlansKey   = "purple_fit_meal_plans"
)

// KV is the backing key-value store a Collection persists into. Get reports
// ok=false when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte) error
}

// OpenKV opens the key-value backend selected by the configuration.
func OpenKV(cfg *config.Config) (KV, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendFile, "":
		return NewFileKV(cfg.DataDir)
	case config.StoreBackendRedis:
		return NewRedisKV(cfg)
	case config.StoreBackendSQLite, config.StoreBackendPostgres:
		return NewGormKV(cfg)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
