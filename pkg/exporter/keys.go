// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exporter

import (
	"fmt"

	"github.com/luxfi/hacluster/pkg/document"
)

// CorosyncConfDesc describes the top level of a corosync configuration document.
const CorosyncConfDesc = "corosync configuration"

func nodeDesc(index int) string {
	return fmt.Sprintf("%s for node on index %d", CorosyncConfDesc, index)
}

// requireKey returns the value stored under key in m. A missing key is
// reported against subject, the document being exported.
func requireKey(subject, m *document.Object, key, desc string) (any, error) {
	v, ok := m.Get(key)
	if !ok {
		return nil, &MissingKeyError{Data: subject, Key: key, DataDesc: desc}
	}
	return v, nil
}

func requireString(subject, m *document.Object, key, desc string) (string, error) {
	v, err := requireKey(subject, m, key, desc)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", unexpectedType(subject, key, desc, "string", v)
	}
	return s, nil
}

func requireObject(subject, m *document.Object, key, desc string) (*document.Object, error) {
	v, err := requireKey(subject, m, key, desc)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*document.Object)
	if !ok {
		return nil, unexpectedType(subject, key, desc, "mapping", v)
	}
	return obj, nil
}

func requireList(subject, m *document.Object, key, desc string) ([]any, error) {
	v, err := requireKey(subject, m, key, desc)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, unexpectedType(subject, key, desc, "sequence", v)
	}
	return list, nil
}

func unexpectedType(subject *document.Object, key, desc, expected string, v any) error {
	return &UnexpectedTypeError{
		Data:     subject,
		Key:      key,
		DataDesc: desc,
		Expected: expected,
		Actual:   document.KindOf(v),
	}
}
