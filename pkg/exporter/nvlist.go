// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exporter

import "github.com/luxfi/hacluster/pkg/document"

// NameValue is one option of a flat option mapping.
type NameValue struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ToNVList converts a flat option mapping to name/value pairs in the
// mapping's own order. Values must be scalars; a nested value is reported
// against subject with desc naming the mapping.
func ToNVList(subject, m *document.Object, desc string) ([]NameValue, error) {
	entries := m.Entries()
	nv := make([]NameValue, 0, len(entries))
	for _, e := range entries {
		value, ok := e.Value.(string)
		if !ok {
			return nil, unexpectedType(subject, e.Key, desc, "string", e.Value)
		}
		nv = append(nv, NameValue{Name: e.Key, Value: value})
	}
	return nv, nil
}
