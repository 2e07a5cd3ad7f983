package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/glasform/glasform/pkg/speech"
)

// ErrProviderNotRegistered is returned by [Registry.Create] when no
// factory has been registered under the requested provider name.
var ErrProviderNotRegistered = errors.New("config: provider not registered")

// Registry maps speech provider names to their constructor functions.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]func(SpeechConfig) (speech.Provider, error)
}

// NewRegistry returns an empty, ready-to-use [Registry].
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]func(SpeechConfig) (speech.Provider, error)),
	}
}

// Register registers a speech provider factory under name. Subsequent
// calls with the same name overwrite the previous registration.
func (r *Registry) Register(name string, factory func(SpeechConfig) (speech.Provider, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create builds the speech provider selected by cfg.Provider.
func (r *Registry) Create(cfg SpeechConfig) (speech.Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[cfg.Provider]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProviderNotRegistered, cfg.Provider)
	}
	return factory(cfg)
}

// Names returns the registered provider names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}
