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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_mutexedBool(t *testing.T) {
	var b mutexedBool
	assert.False(t, b.Get())
	assert.Equal(t, "false", b.String())

	b.Set(true)
	assert.True(t, b.Get())
	assert.Equal(t, "true", b.String())
}

func Test_mutexedBool_concurrent(t *testing.T) {
	var b mutexedBool
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(v bool) {
			defer wg.Done()
			b.Set(v)
			_ = b.Get()
		}(i%2 == 0)
	}
	wg.Wait()
	b.Set(true)
	assert.True(t, b.Get())
}
