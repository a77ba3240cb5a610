package i18n

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Registry owns one lazily built Catalog and serializes formatting access to it.
//
// The catalog is built on the first call to Catalog or Do and never rebuilt.
// A panic raised while a caller holds the lock poisons the registry: every
// later Do call fails with ErrLockPoisoned.
type Registry struct {
	build   func() (*Catalog, error)
	logger  *slog.Logger
	catalog *Catalog
	err     error

	once     sync.Once
	mu       sync.Mutex
	poisoned atomic.Bool
}

// NewRegistry creates a Registry that builds its catalog with build on first use.
// If logger is nil, logging is disabled.
func NewRegistry(build func() (*Catalog, error), logger *slog.Logger) *Registry {
	if build == nil {
		panic("i18n: registry build function is not provided")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{build: build, logger: logger}
}

// NewRegistryFor wraps an already built catalog.
func NewRegistryFor(c *Catalog, logger *slog.Logger) *Registry {
	if c == nil {
		panic("i18n: catalog is not provided")
	}
	return NewRegistry(func() (*Catalog, error) { return c, nil }, logger)
}

// Catalog returns the catalog, building it on the first call.
// A build error is permanent and returned by every call.
func (r *Registry) Catalog() (*Catalog, error) {
	r.once.Do(func() {
		r.catalog, r.err = r.build()
		if r.err != nil {
			r.logger.Error("failed to build message catalog", slog.String("error", r.err.Error()))
			return
		}
		r.logger.Info("message catalog loaded",
			slog.String("locale", r.catalog.Locale().ID()),
			slog.Int("messages", r.catalog.Len()),
		)
	})
	return r.catalog, r.err
}

// Do runs fn with exclusive access to the catalog.
// It returns an error wrapping ErrCatalogUnavailable if the catalog cannot be
// built, and ErrLockPoisoned if the registry is poisoned or fn panics.
func (r *Registry) Do(fn func(*Catalog)) (err error) {
	c, err := r.Catalog()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.poisoned.Load() {
		return ErrLockPoisoned
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.poisoned.Store(true)
			r.logger.Error("panic while holding the catalog lock", slog.Any("panic", rec))
			err = fmt.Errorf("%w: %v", ErrLockPoisoned, rec)
		}
	}()

	fn(c)
	return nil
}

// Poisoned reports whether a panic has poisoned the registry.
func (r *Registry) Poisoned() bool {
	return r.poisoned.Load()
}
