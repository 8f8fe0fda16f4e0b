package local

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"calendar-schedule/internal/event/repository"
	"calendar-schedule/pkg/kvstore"
	"calendar-schedule/pkg/log"
)

// StorageKey is the key the event collection lives under.
const StorageKey = "events_v1"

type implRepository struct {
	mu      sync.Mutex
	store   kvstore.Store
	key     string
	latency time.Duration
	newID   func() string
	l       log.Logger
}

// Option customises the local repository.
type Option func(*implRepository)

// WithLatency delays every call by d. Only meant for test doubles that
// imitate a slow backend.
func WithLatency(d time.Duration) Option {
	return func(r *implRepository) { r.latency = d }
}

// WithKey stores the collection under key instead of StorageKey.
func WithKey(key string) Option {
	return func(r *implRepository) { r.key = key }
}

// WithIDGenerator overrides how event ids are generated.
func WithIDGenerator(fn func() string) Option {
	return func(r *implRepository) { r.newID = fn }
}

// New creates a Repository that keeps every event as one JSON array in store.
func New(store kvstore.Store, l log.Logger, opts ...Option) repository.Repository {
	if store == nil {
		panic("event/repository/local: store is required")
	}
	r := &implRepository{
		store: store,
		key:   StorageKey,
		newID: uuid.NewString,
		l:     l,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/local.%s", method)
}
