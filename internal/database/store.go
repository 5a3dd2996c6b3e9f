package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrNotFound is returned when no row matches a lookup or update.
var ErrNotFound = errors.New("not found")

// ErrUnchanged aborts an Update without writing and without an error.
var ErrUnchanged = errors.New("unchanged")

// Store keeps the Document in memory and writes the whole blob to the
// KVStore after every successful mutation. The blob is loaded, migrated and
// decoded on first use.
type Store struct {
	mu          sync.Mutex
	kv          KVStore
	key         string
	doc         *Document
	initialized bool
}

// NewStore creates a Store persisting under key.
func NewStore(kv KVStore, key string) *Store {
	return &Store{kv: kv, key: key}
}

type txKey struct{}

type transaction struct {
	store *Store
	doc   *Document
	dirty bool
}

func (s *Store) txFrom(ctx context.Context) *transaction {
	if tx, ok := ctx.Value(txKey{}).(*transaction); ok && tx.store == s {
		return tx
	}
	return nil
}

// Init loads the persisted state. It is called lazily by every operation;
// calling it up front surfaces substrate errors at startup.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.init(ctx)
}

func (s *Store) init(ctx context.Context) error {
	if s.initialized {
		return nil
	}

	data, err := s.kv.Get(ctx, s.key)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		log.Printf("[Store] No data under %q, seeding", s.key)
		return s.reseed(ctx)
	case err != nil:
		return fmt.Errorf("failed to load %s: %w", s.key, err)
	}

	doc, migrated, err := s.decode(data)
	if err != nil {
		log.Printf("[Store] Failed to initialize database, falling back to seed data: %v", err)
		return s.reseed(ctx)
	}
	if migrated != nil {
		if err := s.kv.Set(ctx, s.key, migrated); err != nil {
			return fmt.Errorf("failed to save migrated data: %w", err)
		}
	}

	s.doc = doc
	s.initialized = true
	return nil
}

// decode migrates and parses a persisted blob. migrated is non-nil when the
// migration changed the blob and it has to be written back.
func (s *Store) decode(data []byte) (doc *Document, migrated []byte, err error) {
	out, changed, err := Migrate(data)
	if err != nil {
		return nil, nil, err
	}
	doc = &Document{}
	if err := json.Unmarshal(out, doc); err != nil {
		return nil, nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if changed {
		migrated = out
	}
	return doc, migrated, nil
}

func (s *Store) reseed(ctx context.Context) error {
	doc := Seed()
	if err := s.persist(ctx, doc); err != nil {
		return err
	}
	s.doc = doc
	s.initialized = true
	return nil
}

func (s *Store) persist(ctx context.Context, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// View runs fn against the current state. fn must not retain or modify d.
func (s *Store) View(ctx context.Context, fn func(d *Document) error) error {
	if tx := s.txFrom(ctx); tx != nil {
		return fn(tx.doc)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.init(ctx); err != nil {
		return err
	}
	return fn(s.doc)
}

// Update runs fn against a copy of the state. If fn succeeds the copy is
// persisted and replaces the state; otherwise nothing changes. Inside
// RunInTransaction the change is staged on the transaction instead.
func (s *Store) Update(ctx context.Context, fn func(d *Document) error) error {
	if tx := s.txFrom(ctx); tx != nil {
		staged := tx.doc.Clone()
		if err := fn(staged); err != nil {
			if errors.Is(err, ErrUnchanged) {
				return nil
			}
			return err
		}
		tx.doc = staged
		tx.dirty = true
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.init(ctx); err != nil {
		return err
	}

	work := s.doc.Clone()
	if err := fn(work); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return nil
		}
		return err
	}
	if err := s.persist(ctx, work); err != nil {
		return err
	}
	s.doc = work
	return nil
}

// RunInTransaction runs fn as one unit of work. Reads and writes made with
// the context passed to fn see the transaction's private state, and all
// writes are persisted together once fn returns nil. If fn fails nothing is
// written. Nested calls join the outer transaction.
func (s *Store) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.txFrom(ctx) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.init(ctx); err != nil {
		return err
	}

	tx := &transaction{store: s, doc: s.doc.Clone()}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if !tx.dirty {
		return nil
	}
	if err := s.persist(ctx, tx.doc); err != nil {
		return err
	}
	s.doc = tx.doc
	return nil
}

// Clear removes the persisted blob and resets the in-memory state to seed
// data. The seed is written on the next mutation or restart.
func (s *Store) Clear(ctx context.Context) error {
	if s.txFrom(ctx) != nil {
		return errors.New("clear is not allowed inside a transaction")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	s.doc = Seed()
	s.initialized = true
	return nil
}

// Ping checks the substrate.
func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}
