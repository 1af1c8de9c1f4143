package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator mints a new record identifier.
type IDGenerator func() string

// Clock reports the current time for creation timestamps.
type Clock func() time.Time

// Record is implemented by every stored record type. Stamped returns a copy
// carrying a fresh identity and creation timestamp.
type Record[T any] interface {
	RecordID() string
	Stamped(id string, createdAt time.Time) T
}

// Collection is a durable, ordered list of records under one key. Every
// mutation rewrites the whole collection; fine at this data scale, and
// last-writer-wins across processes is an accepted limitation of the
// single-operator model. In-process access is serialized by a mutex.
type Collection[T Record[T]] struct {
	kv  KV
	key string

	// NewID and Now are swappable so tests can pin identities and
	// timestamps.
	NewID IDGenerator
	Now   Clock

	// Normalize, when set, upgrades records on every read. If it reports a
	// change the upgraded form is persisted immediately, so legacy data is
	// rewritten once rather than re-migrated on every read.
	Normalize func([]T) ([]T, bool)

	mu sync.Mutex
}

// NewCollection binds a collection to a key in the given KV backend.
func NewCollection[T Record[T]](kv KV, key string) *Collection[T] {
	return &Collection[T]{
		kv:    kv,
		key:   key,
		NewID: uuid.NewString,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// List returns all records in insertion order. Absent, empty, corrupt or
// unavailable backing data reads as an empty collection; availability wins
// over surfacing corruption.
func (c *Collection[T]) List(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Get returns the record with the given id, or nil.
func (c *Collection[T]) Get(ctx context.Context, id string) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := c.load(ctx)
	for i := range records {
		if records[i].RecordID() == id {
			return &records[i]
		}
	}
	return nil
}

// Create stamps the record with a new identity and creation timestamp,
// appends it and persists the collection.
func (c *Collection[T]) Create(ctx context.Context, record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stamped := record.Stamped(c.NewID(), c.Now())
	records := append(c.load(ctx), stamped)
	if err := c.persist(ctx, records); err != nil {
		var zero T
		return zero, err
	}
	return stamped, nil
}

// Replace swaps in the full record by id. A missing id is a no-op reported
// as nil, not an error, so callers can redirect instead of retrying.
func (c *Collection[T]) Replace(ctx context.Context, record T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := c.load(ctx)
	for i := range records {
		if records[i].RecordID() == record.RecordID() {
			records[i] = record
			if err := c.persist(ctx, records); err != nil {
				return nil, err
			}
			return &records[i], nil
		}
	}
	return nil, nil
}

// Delete removes the record by id and reports whether a removal occurred.
// No cascade: records referencing the removed id keep their dangling
// references.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := c.load(ctx)
	kept := records[:0]
	for i := range records {
		if records[i].RecordID() != id {
			kept = append(kept, records[i])
		}
	}
	removed := len(kept) < len(records)
	if err := c.persist(ctx, kept); err != nil {
		return false, err
	}
	return removed, nil
}

// Overwrite replaces the whole collection with the given records as-is.
// Used by the seeder.
func (c *Collection[T]) Overwrite(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persist(ctx, records)
}

func (c *Collection[T]) load(ctx context.Context) []T {
	data, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		log.Printf("[Store] reading collection %s: %v", c.key, err)
		return []T{}
	}
	if !ok || len(data) == 0 {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("[Store] collection %s is corrupt, treating as empty: %v", c.key, err)
		return []T{}
	}
	if c.Normalize != nil {
		upgraded, changed := c.Normalize(records)
		records = upgraded
		if changed {
			if err := c.persist(ctx, records); err != nil {
				log.Printf("[Store] persisting migrated collection %s: %v", c.key, err)
			}
		}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

func (c *Collection[T]) persist(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", c.key, err)
	}
	return c.kv.Set(ctx, c.key, data)
}
