package datastore

import (
	"time"

	"github.com/dmitrijs2005/coordinet/internal/logging"
	"github.com/dmitrijs2005/coordinet/internal/storage"
	"github.com/google/uuid"
)

// DefaultKeyPrefix namespaces every persisted key.
const DefaultKeyPrefix = "coordinet_"

// Logical keys of the persisted state.
const (
	KeyUsers          = "users"
	KeySession        = "session"
	KeyClubs          = "clubs"
	KeyFestivals      = "festivals"
	KeySubEvents      = "subevents"
	KeyTasks          = "tasks"
	KeyExpenses       = "expenses"
	KeyParticipations = "participations"
)

const (
	defaultConflictRetries = 3
	defaultConflictBackoff = 10 * time.Millisecond
)

// Store is the data-access layer. It is safe for concurrent use as long as
// the underlying Repository is.
type Store struct {
	repo    storage.Repository
	log     logging.Logger
	now     func() time.Time
	newID   func() string
	prefix  string
	retries uint64
	backoff time.Duration
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithKeyPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithConflictRetries sets how many times a mutation is re-run after losing
// a race with another writer, and the pause between attempts.
func WithConflictRetries(retries uint64, backoff time.Duration) Option {
	return func(s *Store) {
		s.retries = retries
		s.backoff = backoff
	}
}

// New returns a Store persisting into repo.
func New(repo storage.Repository, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		log:     logging.Discard(),
		now:     time.Now,
		newID:   uuid.NewString,
		prefix:  DefaultKeyPrefix,
		retries: defaultConflictRetries,
		backoff: defaultConflictBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.backoff <= 0 {
		s.backoff = time.Millisecond
	}
	s.log = s.log.With("component", "datastore")
	return s
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

// restamp returns the current time, nudged past prev if the clock has not
// moved, so UpdatedAt strictly increases.
func (s *Store) restamp(prev time.Time) time.Time {
	t := s.stamp()
	if !t.After(prev) {
		t = prev.Add(time.Microsecond)
	}
	return t
}
