package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Collection names used by the application.
const (
	CollectionReservations = "reservations"
	CollectionMenuItems    = "menu_items"
	CollectionChatLogs     = "chat_logs"
)

// Reserved field names stamped onto every record at insertion.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
)

// ErrNotFound is returned by FindOne when no record matches.
var ErrNotFound = errors.New("record not found")

// ErrUnknownCollection is returned for collection names the store was
// not created with. Callers are expected to treat this as a bug.
var ErrUnknownCollection = errors.New("unknown collection")

// Record is a single named-field entry in a collection.
type Record map[string]any

// clone returns a shallow copy so callers cannot mutate stored state.
func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// collection is an append-only ordered sequence of records. nextID is
// 1-based and strictly increasing; the mutex serialises mutation so
// concurrent inserts cannot race on id assignment.
type collection struct {
	mu      sync.Mutex
	records []Record
	nextID  int64
}

// Store is an in-memory collection-of-records store. No durability, no
// update, no delete: records live for the process lifetime only.
type Store struct {
	collections map[string]*collection
	now         func() time.Time
	logger      zerolog.Logger
}

// New creates a store with the given named collections.
func New(logger zerolog.Logger, names ...string) *Store {
	s := &Store{
		collections: make(map[string]*collection, len(names)),
		now:         time.Now,
		logger:      logger.With().Str("component", "store").Logger(),
	}
	for _, name := range names {
		s.collections[name] = &collection{nextID: 1}
	}
	return s
}

// NewDefault creates a store with the three application collections.
func NewDefault(logger zerolog.Logger) *Store {
	return New(logger, CollectionReservations, CollectionMenuItems, CollectionChatLogs)
}

func (s *Store) collection(name string) (*collection, error) {
	c, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	return c, nil
}

// Insert stamps the record with the collection's next sequential id and
// the current time, appends it, and returns the assigned id and
// timestamp. The input record is not mutated.
func (s *Store) Insert(name string, rec Record) (int64, time.Time, error) {
	c, err := s.collection(name)
	if err != nil {
		return 0, time.Time{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	createdAt := s.now().UTC()
	stored := rec.clone()
	stored[FieldID] = id
	stored[FieldCreatedAt] = createdAt
	c.records = append(c.records, stored)
	c.nextID++

	s.logger.Debug().
		Str("collection", name).
		Int64("id", id).
		Msg("record inserted")

	return id, createdAt, nil
}

// FindOne scans the collection in insertion order and returns a copy of
// the first record whose fields all equal the query fields. Returns
// ErrNotFound when nothing matches.
func (s *Store) FindOne(name string, query Record) (Record, error) {
	c, err := s.collection(name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, rec := range c.records {
		if matches(rec, query) {
			return rec.clone(), nil
		}
	}
	return nil, ErrNotFound
}

// All returns a copy of every record in insertion order.
func (s *Store) All(name string) ([]Record, error) {
	c, err := s.collection(name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Record, len(c.records))
	for i, rec := range c.records {
		out[i] = rec.clone()
	}
	return out, nil
}

// Count returns the number of records in the collection.
func (s *Store) Count(name string) (int, error) {
	c, err := s.collection(name)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records), nil
}

func matches(rec, query Record) bool {
	for k, want := range query {
		got, ok := rec[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}
