// SPDX-License-Identifier: Apache-2.0

package yang

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Key is the primary-key representation of one list entity: either a single
// field name, or an ordered set of field names for composite keys. It
// serializes as a bare string in the single-field case and as a list of
// strings otherwise, and accepts either form when deserializing.
type Key struct {
	fields []string
}

// SingleKey builds a Key from exactly one field name.
func SingleKey(field string) Key {
	return Key{fields: []string{field}}
}

// CompositeKey builds a Key from an ordered set of field names.
func CompositeKey(fields ...string) Key {
	return Key{fields: slices.Clone(fields)}
}

// Fields returns the key's field names in declared order.
func (k Key) Fields() []string {
	return slices.Clone(k.fields)
}

// IsComposite reports whether the key spans more than one field.
func (k Key) IsComposite() bool {
	return len(k.fields) > 1
}

// Equal reports whether two keys name the same fields in the same order.
func (k Key) Equal(other Key) bool {
	return slices.Equal(k.fields, other.fields)
}

func (k Key) String() string {
	if len(k.fields) == 1 {
		return k.fields[0]
	}
	return fmt.Sprintf("%v", k.fields)
}

func (k Key) MarshalJSON() ([]byte, error) {
	if len(k.fields) == 1 {
		return json.Marshal(k.fields[0])
	}
	return json.Marshal(k.fields)
}

func (k *Key) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		k.fields = []string{single}
		return nil
	}
	var multiple []string
	if err := json.Unmarshal(data, &multiple); err != nil {
		return fmt.Errorf("key must be a string or a list of strings: %w", err)
	}
	k.fields = multiple
	return nil
}

func (k Key) MarshalYAML() (interface{}, error) {
	if len(k.fields) == 1 {
		return k.fields[0], nil
	}
	return k.fields, nil
}

func (k *Key) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		k.fields = []string{single}
		return nil
	}
	var multiple []string
	if err := unmarshal(&multiple); err != nil {
		return fmt.Errorf("key must be a string or a list of strings: %w", err)
	}
	k.fields = multiple
	return nil
}
