// SPDX-License-Identifier: Apache-2.0

package yang

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
)

// Mapping accumulates entity name to primary key over one extraction run.
// Entity names are unique; a later contribution for an existing name replaces
// the earlier one wholesale.
type Mapping map[string]Key

// Merge folds src into m, overwriting on entity-name collision. It returns
// the overwritten names, sorted, so the caller can report them.
func (m Mapping) Merge(src Mapping) []string {
	var overwritten []string
	for name, key := range src {
		if _, ok := m[name]; ok {
			overwritten = append(overwritten, name)
		}
		m[name] = key
	}
	slices.Sort(overwritten)
	return overwritten
}

// EncodeJSON renders the mapping as a 2-space-indented JSON object. Entity
// names serialize in sorted order, so the output is deterministic.
func (m Mapping) EncodeJSON() ([]byte, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode mapping: %w", err)
	}
	return append(out, '\n'), nil
}

// EncodeYAML renders the mapping as a YAML document with sorted entity names.
func (m Mapping) EncodeYAML() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode mapping: %w", err)
	}
	return out, nil
}
