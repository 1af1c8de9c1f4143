package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/purplefit/purplefit-v2/backend/internal/models"
	"github.com/purplefit/purplefit-v2/backend/internal/renderer"
)

// MemKV is an in-memory key-value backend for tests.
type MemKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (m *MemKV) Set(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

// Seed plants raw bytes under a key, bypassing Set, so tests can stage
// legacy or corrupt payloads.
func (m *MemKV) Seed(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
}

// Raw returns the stored bytes for a key without copying.
func (m *MemKV) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	return data, ok
}

// FailingKV errors on every operation.
type FailingKV struct{}

var ErrKVUnavailable = errors.New("kv backend unavailable")

func (FailingKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, ErrKVUnavailable
}

func (FailingKV) Set(ctx context.Context, key string, data []byte) error {
	return ErrKVUnavailable
}

// MockRenderer records what it was asked to render and returns a canned
// result.
type MockRenderer struct {
	LastPlan  models.MealPlan
	LastFoods []models.FoodEntry
	Calls     int
	Err       error
}

func (m *MockRenderer) Render(ctx context.Context, plan models.MealPlan, foods []models.FoodEntry) (*renderer.Result, error) {
	m.Calls++
	m.LastPlan = plan
	m.LastFoods = foods
	if m.Err != nil {
		return nil, m.Err
	}
	return &renderer.Result{
		PDF:      []byte("%PDF-mock"),
		Filename: "mock.pdf",
		Pages:    len(plan.Weeks) + 2,
	}, nil
}
