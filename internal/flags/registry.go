/*
 * Registry - named boolean flags.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package flags

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"boolbox/internal/metrics"
	"boolbox/pkg/boolbox"

	log "github.com/sirupsen/logrus"
)

const (
	actionSet    = "set"
	actionToggle = "toggle"
	actionDelete = "delete"
)

var (
	// ErrInvalidName is returned for names not matching namePattern.
	ErrInvalidName = errors.New("invalid flag name")
	// ErrNotFound is returned when the flag does not exist.
	ErrNotFound = errors.New("flag not found")
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{0,62}$`)

// ValidName reports whether name can be used as a flag name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Registry holds the named flags. The boxes are only touched while m is held.
type Registry struct {
	m       sync.RWMutex
	saveM   sync.Mutex
	flags   map[string]*boolbox.Box
	store   Store
	metrics *metrics.OpenMetrics
}

// NewRegistry creates an empty registry persisting to store.
func NewRegistry(store Store, m *metrics.OpenMetrics) *Registry {
	return &Registry{
		flags:   map[string]*boolbox.Box{},
		store:   store,
		metrics: m,
	}
}

// Get returns the value of a flag and whether it exists.
func (r *Registry) Get(name string) (bool, bool) {
	r.m.RLock()
	defer r.m.RUnlock()
	b, ok := r.flags[name]
	if !ok {
		return false, false
	}
	return b.Get(), true
}

// Snapshot returns a copy of all the flag values.
func (r *Registry) Snapshot() map[string]bool {
	r.m.RLock()
	defer r.m.RUnlock()
	snapshot := make(map[string]bool, len(r.flags))
	for name, b := range r.flags {
		snapshot[name] = b.Get()
	}
	return snapshot
}

// Set sets a flag, creating it if needed, and saves the registry.
func (r *Registry) Set(ctx context.Context, name string, v bool) error {
	if !ValidName(name) {
		return fmt.Errorf("\"%s\": %w", name, ErrInvalidName)
	}
	r.m.Lock()
	b, ok := r.flags[name]
	if !ok {
		b = boolbox.New()
		r.flags[name] = b
	}
	b.Set(v)
	b.IfTrue(func() {
		log.WithField("flag", name).Info("Flag enabled")
	}).IfFalse(func() {
		log.WithField("flag", name).Info("Flag disabled")
	})
	r.m.Unlock()

	r.metrics.IncFlagUpdatesTotal(actionSet)
	return r.Save(ctx)
}

// Toggle inverts a flag and saves the registry. It returns the new value.
func (r *Registry) Toggle(ctx context.Context, name string) (bool, error) {
	r.m.Lock()
	b, ok := r.flags[name]
	if !ok {
		r.m.Unlock()
		return false, fmt.Errorf("\"%s\": %w", name, ErrNotFound)
	}
	b.Set(b.IsFalse())
	v := b.Get()
	r.m.Unlock()

	log.WithField("flag", name).Infof("Flag toggled to %t", v)
	r.metrics.IncFlagUpdatesTotal(actionToggle)
	return v, r.Save(ctx)
}

// Delete removes a flag and saves the registry.
func (r *Registry) Delete(ctx context.Context, name string) error {
	r.m.Lock()
	if _, ok := r.flags[name]; !ok {
		r.m.Unlock()
		return fmt.Errorf("\"%s\": %w", name, ErrNotFound)
	}
	delete(r.flags, name)
	r.m.Unlock()

	log.WithField("flag", name).Info("Flag deleted")
	r.metrics.IncFlagUpdatesTotal(actionDelete)
	return r.Save(ctx)
}

// Load replaces the flags with the ones held by the store.
func (r *Registry) Load(ctx context.Context) error {
	encoded, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("cannot load flags: %w", err)
	}
	loaded := make(map[string]*boolbox.Box, len(encoded))
	for name, data := range encoded {
		if !ValidName(name) {
			return fmt.Errorf("cannot load flags: \"%s\": %w", name, ErrInvalidName)
		}
		b, err := boolbox.DecodeJSON(data)
		if err != nil {
			return fmt.Errorf("cannot load flag \"%s\": %w", name, err)
		}
		loaded[name] = b
	}

	r.m.Lock()
	r.flags = loaded
	r.m.Unlock()

	log.Infof("Loaded %d flags", len(loaded))
	r.metrics.SetFlags(len(loaded))
	return nil
}

// Save writes all the flags to the store. Saves are serialized so that the
// last snapshot taken is the last one written.
func (r *Registry) Save(ctx context.Context) error {
	r.saveM.Lock()
	defer r.saveM.Unlock()

	r.m.RLock()
	encoded := make(map[string]json.RawMessage, len(r.flags))
	var err error
	for name, b := range r.flags {
		if encoded[name], err = b.MarshalJSON(); err != nil {
			break
		}
	}
	count := len(r.flags)
	r.m.RUnlock()

	r.metrics.SetFlags(count)
	if err == nil {
		err = r.store.Save(ctx, encoded)
	}
	if err != nil {
		r.metrics.IncFailedSavesTotal()
		log.WithError(err).Error("Cannot save flags")
		return fmt.Errorf("cannot save flags: %w", err)
	}
	log.Debugf("Saved %d flags", count)
	return nil
}
