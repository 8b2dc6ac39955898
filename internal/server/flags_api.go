/*
 * FlagsAPI - HTTP handlers for the named flags.
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
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"boolbox/internal/flags"
	"boolbox/pkg/boolbox"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

const (
	contentTypeHeader     = "Content-Type"
	contentTypeJSON       = "application/json"
	contentTypePlaintext  = "text/plain"
	logFieldRequestPath   = "requestPath"
	logFieldRequestMethod = "requestMethod"
	logFieldError         = "error"
	nameParam             = "name"
	// a box document is a few dozen bytes
	maxBodySize = 4096
)

// flagRegistry is the registry used by the handlers.
type flagRegistry interface {
	Get(name string) (bool, bool)
	Snapshot() map[string]bool
	Set(ctx context.Context, name string, v bool) error
	Toggle(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, name string) error
}

// FlagsAPI serves the flags over HTTP.
type FlagsAPI struct {
	registry flagRegistry
}

// NewFlagsAPI creates the handlers for registry.
func NewFlagsAPI(registry flagRegistry) *FlagsAPI {
	return &FlagsAPI{registry: registry}
}

func requestLog(r *http.Request) *log.Entry {
	return log.WithFields(log.Fields{logFieldRequestMethod: r.Method, logFieldRequestPath: r.URL.Path})
}

// statusFor maps an error to the HTTP status returned to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, flags.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, flags.ErrInvalidName),
		errors.Is(err, boolbox.ErrMalformed),
		errors.Is(err, boolbox.ErrUnsupportedVersion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as plain text with the matching status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	w.Header().Set(contentTypeHeader, contentTypePlaintext)
	w.WriteHeader(status)
	fmt.Fprint(w, err.Error())
	entry := requestLog(r).WithField(logFieldError, err)
	if status == http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Info("request rejected")
	}
}

// writeJSON writes v with status 200.
func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set(contentTypeHeader, contentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		requestLog(r).WithField(logFieldError, err).Error("error encoding response")
	}
}

// List returns all the flags as a name to value object.
func (a *FlagsAPI) List(w http.ResponseWriter, r *http.Request) {
	snapshot := a.registry.Snapshot()
	requestLog(r).Debugf("returning flags count: %d", len(snapshot))
	writeJSON(w, r, snapshot)
}

// Get returns a single flag in its versioned form.
func (a *FlagsAPI) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, nameParam)
	v, ok := a.registry.Get(name)
	if !ok {
		writeError(w, r, fmt.Errorf("\"%s\": %w", name, flags.ErrNotFound))
		return
	}
	writeJSON(w, r, boolbox.Of(v))
}

// Put sets a flag from a versioned body, creating it if needed.
func (a *FlagsAPI) Put(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, nameParam)
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, r, err)
		return
	}
	b, err := boolbox.DecodeJSON(body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.registry.Set(r.Context(), name, b.Get()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, b)
}

// Toggle inverts a flag and returns the new value.
func (a *FlagsAPI) Toggle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, nameParam)
	v, err := a.registry.Toggle(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, boolbox.Of(v))
}

// Delete removes a flag.
func (a *FlagsAPI) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, nameParam)
	if err := a.registry.Delete(r.Context(), name); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Router returns the flags routes.
func (a *FlagsAPI) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/flags", a.List)
	r.Get("/flags/{name}", a.Get)
	r.Put("/flags/{name}", a.Put)
	r.Post("/flags/{name}/toggle", a.Toggle)
	r.Delete("/flags/{name}", a.Delete)
	return r
}
