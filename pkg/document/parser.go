// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package document

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxDocumentValues bounds the values a single document may decode to,
// counting every expansion of a YAML alias.
const MaxDocumentValues = 100_000

var (
	ErrEmptyDocument    = errors.New("document is empty")
	ErrRootNotMapping   = errors.New("document root is not a mapping")
	ErrDocumentTooLarge = errors.New("document decodes to too many values")
)

// ParseFile reads and parses a configuration document from a file.
// JSON is accepted as well as YAML.
func ParseFile(path string) (*Object, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	obj, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}
	return obj, nil
}

// Parse decodes a JSON or YAML document whose root is a mapping. Key order
// of every mapping is kept as it appears in data.
func Parse(data []byte) (*Object, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	d := &decoder{remaining: MaxDocumentValues}
	v, err := d.fromNode(root.Content[0])
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrRootNotMapping, KindOf(v))
	}
	return obj, nil
}

type decoder struct {
	remaining int
}

func (d *decoder) fromNode(n *yaml.Node) (any, error) {
	if d.remaining--; d.remaining < 0 {
		return nil, fmt.Errorf("%w: limit is %d", ErrDocumentTooLarge, MaxDocumentValues)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		return d.fromNode(n.Content[0])
	case yaml.AliasNode:
		return d.fromNode(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.fromNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		obj := &Object{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			val, err := d.fromNode(v)
			if err != nil {
				return nil, err
			}
			obj.Set(k.Value, val)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}
