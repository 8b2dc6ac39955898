/*
 * Errors - box errors.
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
package boolbox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the panic value (wrapped) when a conditional
	// helper receives a nil action.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedVersion is returned when decoding a format version this
	// package does not know.
	ErrUnsupportedVersion = errors.New("unsupported format version")
	// ErrMalformed is returned when decoding data that is not a valid box.
	ErrMalformed = errors.New("malformed box data")
)

// mustAction panics if action is nil.
func mustAction(op string, action func()) {
	if action == nil {
		panic(fmt.Errorf("%s: nil action: %w", op, ErrInvalidArgument))
	}
}
