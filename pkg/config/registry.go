package config

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/dmitrymomot/envkit/pkg/logger"
)

// Registry owns the ingestion state and the accessor instance.
// Ingestion is one-way: once Ingest succeeds the registry never returns to
// the not-ingested state. It is safe for concurrent use.
//
// The zero value is ready to use and behaves like New().
type Registry struct {
	mu       sync.RWMutex
	ingested bool
	path     string
	instance *Instance

	loader   Loader
	store    Store
	override bool
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLoader sets the source loader. Defaults to DotenvLoader.
func WithLoader(l Loader) Option {
	return func(r *Registry) {
		if l != nil {
			r.loader = l
		}
	}
}

// WithStore sets the environment store. Defaults to OSStore.
func WithStore(s Store) Option {
	return func(r *Registry) {
		if s != nil {
			r.store = s
		}
	}
}

// WithOverride lets ingested values replace keys already present in the store.
// By default existing keys win, matching godotenv.Load.
func WithOverride() Option {
	return func(r *Registry) { r.override = true }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a registry in the not-ingested state.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	r.setDefaults()
	return r
}

// setDefaults fills collaborators left nil. Callers hold r.mu for writing
// unless r is not shared yet.
func (r *Registry) setDefaults() {
	if r.loader == nil {
		r.loader = DotenvLoader{}
	}
	if r.store == nil {
		r.store = OSStore{}
	}
	if r.logger == nil {
		r.logger = logger.NewNop()
	}
}

// Ingest loads the source at path into the store and marks the registry as
// ingested. It fails with ErrAlreadyIngested after a successful call. On any
// other failure the registry stays not-ingested and the store is left as it
// was, so the call can be retried with a different path.
func (r *Registry) Ingest(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setDefaults()

	if r.ingested {
		return &AlreadyIngestedError{Path: path}
	}

	values, err := r.loader.Load(ctx, path)
	if err != nil {
		cerr := classify(path, err)
		r.logger.DebugContext(ctx, "configuration ingestion failed", logger.Path(path), logger.Error(cerr))
		return cerr
	}

	applied, err := r.apply(values)
	if err != nil {
		r.logger.DebugContext(ctx, "configuration store rejected value", logger.Path(path), logger.Error(err))
		return &UnknownConfigurationFileError{Path: path, Err: err}
	}

	r.ingested = true
	r.path = path
	r.logger.InfoContext(ctx, "configuration ingested",
		logger.Path(path),
		logger.Keys(applied),
	)
	return nil
}

// storeEntry remembers the state of a key before ingestion touched it.
type storeEntry struct {
	key     string
	value   string
	existed bool
}

// apply writes values into the store in key order and returns how many keys
// were written. On failure every write made so far is reverted.
func (r *Registry) apply(values map[string]string) (int, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	undo := make([]storeEntry, 0, len(keys))
	for _, k := range keys {
		old, existed := r.store.Lookup(k)
		if existed && !r.override {
			continue
		}
		if err := r.store.Set(k, values[k]); err != nil {
			r.rollback(undo)
			return 0, fmt.Errorf("set %q: %w", k, err)
		}
		undo = append(undo, storeEntry{key: k, value: old, existed: existed})
	}
	return len(undo), nil
}

func (r *Registry) rollback(undo []storeEntry) {
	for i := len(undo) - 1; i >= 0; i-- {
		e := undo[i]
		var err error
		if e.existed {
			err = r.store.Set(e.key, e.value)
		} else {
			err = r.store.Unset(e.key)
		}
		if err != nil {
			r.logger.Warn("configuration rollback failed", logger.Key(e.key), logger.Error(err))
		}
	}
}

// Instance returns the accessor. It fails with ErrNotIngested until Ingest
// has succeeded; afterwards every call returns the same *Instance.
func (r *Registry) Instance() (*Instance, error) {
	r.mu.RLock()
	inst, ingested := r.instance, r.ingested
	r.mu.RUnlock()

	if inst != nil {
		return inst, nil
	}
	if !ingested {
		return nil, ErrNotIngested
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.instance == nil {
		r.instance = &Instance{store: r.store, logger: r.logger}
	}
	return r.instance, nil
}

// Ingested reports whether Ingest has succeeded.
func (r *Registry) Ingested() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ingested
}

// Path returns the path of the successful ingestion, or "" before it.
func (r *Registry) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.path
}
