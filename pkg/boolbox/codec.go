/*
 * Codec - versioned representations of a box.
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
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FormatVersion is the version tag written by every encoder of this package.
const FormatVersion = 1

// binaryLen is the length of the version 1 binary form: tag + value byte.
const binaryLen = 2

// document is the JSON and YAML form of a box. Pointers tell a missing field
// from a zero one.
type document struct {
	Version *int  `json:"version" yaml:"version"`
	Value   *bool `json:"value" yaml:"value"`
}

// check validates a decoded document and returns the held value.
func (d document) check() (bool, error) {
	if d.Version == nil {
		return false, fmt.Errorf("missing version: %w", ErrMalformed)
	}
	if *d.Version != FormatVersion {
		return false, fmt.Errorf("version %d: %w", *d.Version, ErrUnsupportedVersion)
	}
	if d.Value == nil {
		return false, fmt.Errorf("missing value: %w", ErrMalformed)
	}
	return *d.Value, nil
}

func newDocument(v bool) document {
	version := FormatVersion
	return document{Version: &version, Value: &v}
}

// MarshalBinary encodes the box as a version byte followed by 0 or 1. It is
// also the form used by encoding/gob. The encoders have value receivers so
// that a Box held by value is encoded the same way as a *Box.
func (b Box) MarshalBinary() ([]byte, error) {
	data := []byte{FormatVersion, 0}
	if b.value {
		data[1] = 1
	}
	return data, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary. On error the box is
// left unchanged.
func (b *Box) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty input: %w", ErrMalformed)
	}
	if data[0] != FormatVersion {
		return fmt.Errorf("version %d: %w", data[0], ErrUnsupportedVersion)
	}
	if len(data) != binaryLen {
		return fmt.Errorf("length %d: %w", len(data), ErrMalformed)
	}
	switch data[1] {
	case 0:
		b.value = false
	case 1:
		b.value = true
	default:
		return fmt.Errorf("value byte 0x%02x: %w", data[1], ErrMalformed)
	}
	return nil
}

// MarshalJSON encodes the box as {"version":1,"value":<bool>}.
func (b Box) MarshalJSON() ([]byte, error) {
	return json.Marshal(newDocument(b.value))
}

// UnmarshalJSON decodes the form written by MarshalJSON. A JSON null is a
// no-op. On error the box is left unchanged.
func (b *Box) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	v, err := d.check()
	if err != nil {
		return err
	}
	b.value = v
	return nil
}

// MarshalYAML encodes the box as a mapping with version and value keys.
func (b Box) MarshalYAML() (interface{}, error) {
	return newDocument(b.value), nil
}

// UnmarshalYAML decodes the form written by MarshalYAML. On error the box is
// left unchanged.
func (b *Box) UnmarshalYAML(node *yaml.Node) error {
	var d document
	if err := node.Decode(&d); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	v, err := d.check()
	if err != nil {
		return err
	}
	b.value = v
	return nil
}

// Decode returns a new box from its binary form.
func Decode(data []byte) (*Box, error) {
	b := New()
	if err := b.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return b, nil
}

// DecodeJSON returns a new box from its JSON form.
func DecodeJSON(data []byte) (*Box, error) {
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	v, err := d.check()
	if err != nil {
		return nil, err
	}
	return Of(v), nil
}
