// Package store persists records as whole JSON collections.
//
// A collection is one JSON array of objects, each with a unique string id.
// Every mutation reads the entire collection, changes it in memory and
// writes it back in full; there is no append log or partial update. Within a
// process each collection is guarded by its own mutex for the whole
// read-modify-write, so concurrent requests cannot lose each other's
// changes. Writers in separate processes remain last-write-wins.
//
// Storage is pluggable through Backend: a directory of JSON files (default),
// a SQLite table or a Postgres table, all holding the same JSON payload.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/JonMunkholm/assettrack/internal/logging"
)

// Backend loads and saves the raw payload of a named collection.
type Backend interface {
	// Load returns the stored payload and whether the collection exists.
	Load(ctx context.Context, name string) ([]byte, bool, error)

	// Save replaces the payload of the collection, creating it if needed.
	Save(ctx context.Context, name string, payload []byte) error

	// Close releases the backend's resources.
	Close() error
}

// Store hands out collections over one backend.
type Store struct {
	backend Backend

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store over backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Collection returns the collection called name. Collections with the same
// name share one lock.
func (s *Store) Collection(name string) *Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}
	return &Collection{name: name, backend: s.backend, mu: lock}
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Collection is one named record list.
type Collection struct {
	name    string
	backend Backend
	mu      *sync.Mutex
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// List returns every record in stored order. A missing collection is
// materialized as an empty array and reported as empty; empty content is
// also empty. Content that does not parse yields ErrCorrupt.
func (c *Collection) List(ctx context.Context) ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx)
}

// Get returns a copy of the first record with the given id.
func (c *Collection) Get(ctx context.Context, id string) (Record, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return nil, false, err
	}
	if i := indexOf(records, id); i >= 0 {
		return records[i].Clone(), true, nil
	}
	return nil, false, nil
}

// Create stores a deep copy of data and returns it. A new UUID is assigned
// unless data already carries a non-empty string id; a caller id that is
// already taken fails with ErrDuplicateID.
func (c *Collection) Create(ctx context.Context, data Record) (Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	rec := data.Clone()
	if rec == nil {
		rec = Record{}
	}
	if id, ok := rec.ID(); ok {
		if indexOf(records, id) >= 0 {
			return nil, fmt.Errorf("create in %s: id %q: %w", c.name, id, ErrDuplicateID)
		}
	} else {
		rec[IDField] = uuid.NewString()
	}

	records = append(records, rec)
	if err := c.save(ctx, records); err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

// Update replaces the first record with the given id by a deep copy of data,
// keeping the id. It reports false, without writing, when no record matches.
func (c *Collection) Update(ctx context.Context, id string, data Record) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	i := indexOf(records, id)
	if i < 0 {
		return false, nil
	}

	rec := data.Clone()
	if rec == nil {
		rec = Record{}
	}
	rec[IDField] = id
	records[i] = rec

	if err := c.save(ctx, records); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes every record with the given id and rewrites the collection
// whether or not anything matched. It reports whether the length changed.
func (c *Collection) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	kept := records[:0]
	for _, r := range records {
		if rid, _ := r.ID(); rid == id && id != "" {
			continue
		}
		kept = append(kept, r)
	}
	removed := len(kept) != len(records)

	if err := c.save(ctx, kept); err != nil {
		return false, err
	}
	return removed, nil
}

// load must be called with c.mu held.
func (c *Collection) load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, exists, err := c.backend.Load(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}
	if !exists {
		records := []Record{}
		if err := c.save(ctx, records); err != nil {
			return nil, err
		}
		return records, nil
	}

	records, err := decode(data)
	if err != nil {
		logging.FromContext(ctx).Warn("collection unreadable",
			"collection", c.name,
			"error", err,
		)
		return nil, fmt.Errorf("load %s: %w: %v", c.name, ErrCorrupt, err)
	}
	return records, nil
}

// save must be called with c.mu held.
func (c *Collection) save(ctx context.Context, records []Record) error {
	payload, err := encode(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.backend.Save(ctx, c.name, payload); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	return nil
}

func indexOf(records []Record, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range records {
		if rid, ok := r.ID(); ok && rid == id {
			return i
		}
	}
	return -1
}

var errNotObjectArray = errors.New("expected a JSON array of objects")

// decode parses a collection payload. Blank content is an empty collection.
// Numbers are kept as json.Number so hand-written values survive a rewrite.
func decode(data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Record{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, errNotObjectArray
	}
	for _, r := range records {
		if r == nil {
			return nil, errNotObjectArray
		}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after collection")
	}
	return records, nil
}

// encode renders records as two-space indented JSON without HTML escaping.
func encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
