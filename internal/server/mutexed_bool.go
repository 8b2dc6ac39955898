/*
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
	"sync"

	"boolbox/pkg/boolbox"
)

// mutexedBool wraps a boolbox.Box with a mutex so that it can be shared by
// the probe handlers and the main goroutine. The zero value holds false.
type mutexedBool struct {
	m sync.Mutex
	b boolbox.Box
}

// Set sets the value for this instance.
func (b *mutexedBool) Set(v bool) {
	b.m.Lock()
	b.b.Set(v)
	b.m.Unlock()
}

// Get gets the value from this instance.
func (b *mutexedBool) Get() bool {
	b.m.Lock()
	defer b.m.Unlock()
	return b.b.Get()
}

// String returns "true" or "false".
func (b *mutexedBool) String() string {
	b.m.Lock()
	defer b.m.Unlock()
	return b.b.String()
}
