// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package document

import (
	"fmt"
	"os"
)

// ParseAddressMap decodes a flat mapping of node names to addresses.
func ParseAddressMap(data []byte) (map[string]string, error) {
	obj, err := Parse(data)
	if err != nil {
		return nil, err
	}
	addrs := make(map[string]string, obj.Len())
	for _, e := range obj.Entries() {
		s, ok := e.Value.(string)
		if !ok {
			return nil, fmt.Errorf("address of node %q must be a string, got %s", e.Key, KindOf(e.Value))
		}
		addrs[e.Key] = s
	}
	return addrs, nil
}

// ReadAddressMap reads an address map file. An empty path yields an empty map.
func ReadAddressMap(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read address map %s: %w", path, err)
	}
	addrs, err := ParseAddressMap(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse address map %s: %w", path, err)
	}
	return addrs, nil
}
