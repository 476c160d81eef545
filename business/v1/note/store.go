package note

import (
	"context"
	"github.com/ribgsilva/notebook/persistence/v1/note"
	"go.uber.org/zap"
	"sync"
	"time"
)

// Storage loads and saves the whole collection, *note.Collection is the production implementation
type Storage interface {
	Load(ctx context.Context) ([]note.Note, error)
	Save(ctx context.Context, notes []note.Note) error
}

// Store owns the ordered note collection, newest created first.
// Every mutation is written back to the storage before it returns.
type Store struct {
	mu      sync.RWMutex
	notes   []Note
	storage Storage
	log     *zap.SugaredLogger
	now     func() time.Time
}

type Option func(*Store)

func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithClock replaces time.Now, ids and timestamps are taken from it
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		log:     zap.NewNop().Sugar(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in memory collection with the persisted one.
// Unreadable or malformed data leaves the store empty.
func (s *Store) Load(ctx context.Context) {
	records, err := s.storage.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Warnw("load", "status", "starting with an empty notebook", "ERROR", err)
		s.notes = nil
		return
	}
	s.notes = fromRecords(records)
	s.log.Infow("load", "notes", len(s.notes))
}

// persist must be called with the lock held. Failures are logged, never retried
func (s *Store) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, toRecords(s.notes)); err != nil {
		s.log.Errorw("persist", "notes", len(s.notes), "ERROR", err)
	}
}

func (s *Store) indexOf(id int64) int {
	for i, n := range s.notes {
		if n.Id == id {
			return i
		}
	}
	return -1
}

// Len returns how many notes the store holds
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// All returns a copy of the collection in order
func (s *Store) All() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Note(nil), s.notes...)
}
