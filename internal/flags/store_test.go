/*
 * Store - unit tests.
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
	"os"
	"path/filepath"
	"testing"

	"boolbox/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FileStore_missingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "flags.json"))

	flags, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, flags)
}

func Test_FileStore_roundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "flags.json"))
	in := map[string]json.RawMessage{
		"beta": json.RawMessage(`{"version":1,"value":true}`),
	}

	require.NoError(t, s.Save(context.Background(), in))
	out, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Contains(t, out, "beta")
	assert.JSONEq(t, string(in["beta"]), string(out["beta"]))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func Test_FileStore_corruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())

	assert.Error(t, err)
}

func Test_FileStore_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewFileStore(filepath.Join(t.TempDir(), "flags.json"))

	assert.ErrorIs(t, s.Save(ctx, nil), context.Canceled)
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Registry_FileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.json")
	ctx := context.Background()

	first := NewRegistry(NewFileStore(path), metrics.NewOpenMetrics())
	require.NoError(t, first.Set(ctx, "beta", true))
	require.NoError(t, first.Set(ctx, "alpha", false))
	_, err := first.Toggle(ctx, "alpha")
	require.NoError(t, err)

	second := NewRegistry(NewFileStore(path), metrics.NewOpenMetrics())
	require.NoError(t, second.Load(ctx))

	assert.Equal(t, map[string]bool{"beta": true, "alpha": true}, second.Snapshot())
}
