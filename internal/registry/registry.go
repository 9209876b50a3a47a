// Package registry holds the per-user OpenAI clients built from registered
// API keys.
package registry

import (
	"context"
	"errors"
	"sync"

	"github.com/gptline/gptline/internal/openai"
	"github.com/gptline/gptline/internal/storage"
)

// Registry is a concurrency-safe map from user id to the model client built
// from that user's API key.
type Registry struct {
	mu     sync.RWMutex
	models map[string]openai.Model
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		models: make(map[string]openai.Model),
	}
}

// Get returns the model for userID, or false when the user never registered.
func (r *Registry) Get(userID string) (openai.Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[userID]
	return m, ok
}

// Set installs or replaces the model for userID.
func (r *Registry) Set(userID string, m openai.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[userID] = m
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}

// Rehydrate rebuilds model clients from the persisted registrations, so users
// registered before a restart keep their access. An empty store is not an
// error. Returns the number of restored registrations.
func (r *Registry) Rehydrate(ctx context.Context, store storage.Store, newModel func(apiKey string) openai.Model) (int, error) {
	records, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	for userID, apiKey := range records {
		r.Set(userID, newModel(apiKey))
	}
	return len(records), nil
}
