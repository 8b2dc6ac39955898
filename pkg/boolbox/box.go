/*
 * Box - mutable boolean holder.
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

// Package boolbox provides Box, a mutable boolean with identity.
//
// A *Box is compared and hashed by pointer, never by the boolean it holds: two
// boxes holding true are different boxes. Box values cannot be compared with
// == at all, so the only equality available is the pointer one.
//
// The held value is a plain field. Box does no locking and concurrent access
// must be synchronized by the caller, for example by wrapping the box in a
// type that owns a mutex.
//
// The typical use is a flag updated from inside a closure:
//
//	allEven := boolbox.Of(true)
//	for _, n := range numbers {
//		func() {
//			if n%2 != 0 {
//				allEven.SetFalse()
//			}
//		}()
//	}
//	allEven.IfFalse(func() { fmt.Println("found an odd number") })
package boolbox

import "strconv"

// Box holds a single mutable boolean. The zero value holds false.
type Box struct {
	// makes Box non-comparable
	_     [0]func()
	value bool
}

// New returns a new box holding false.
func New() *Box {
	return &Box{}
}

// Of returns a new box holding v.
func Of(v bool) *Box {
	return &Box{value: v}
}

// Get returns the current value.
func (b *Box) Get() bool {
	return b.value
}

// Set replaces the current value with v.
func (b *Box) Set(v bool) {
	b.value = v
}

// IsTrue reports whether the box holds true.
func (b *Box) IsTrue() bool {
	return b.value
}

// IsFalse reports whether the box holds false.
func (b *Box) IsFalse() bool {
	return !b.value
}

// SetTrue sets the value to true.
func (b *Box) SetTrue() {
	b.value = true
}

// SetFalse sets the value to false.
func (b *Box) SetFalse() {
	b.value = false
}

// IfTrue calls action if the box currently holds true and returns b, so that
// it can be chained with IfFalse. It panics with an error matching
// ErrInvalidArgument if action is nil, whatever the held value.
func (b *Box) IfTrue(action func()) *Box {
	mustAction("IfTrue", action)
	if b.value {
		action()
	}
	return b
}

// IfFalse calls action if the box currently holds false and returns b. It
// panics with an error matching ErrInvalidArgument if action is nil.
func (b *Box) IfFalse(action func()) *Box {
	mustAction("IfFalse", action)
	if !b.value {
		action()
	}
	return b
}

// String returns "true" or "false".
func (b Box) String() string {
	return strconv.FormatBool(b.value)
}
