/*
 * Store - flag persistence.
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

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=flags

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the encoded flags. Each value is the JSON form of a
// boolbox.Box.
type Store interface {
	Load(ctx context.Context) (map[string]json.RawMessage, error)
	Save(ctx context.Context, flags map[string]json.RawMessage) error
}

// FileStore keeps the flags in a single JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document. A missing file is an empty set of flags.
func (s *FileStore) Load(ctx context.Context) (map[string]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	flags := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &flags); err != nil {
		return nil, fmt.Errorf("cannot parse state file \"%s\": %w", s.path, err)
	}
	return flags, nil
}

// Save replaces the document. The file is written to a temporary file in the
// same directory and renamed over the old one.
func (s *FileStore) Save(ctx context.Context, flags map[string]json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(flags, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
