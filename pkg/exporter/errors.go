// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exporter

import (
	"errors"
	"fmt"

	"github.com/luxfi/hacluster/pkg/document"
)

var (
	ErrMissingKey     = errors.New("missing key")
	ErrUnexpectedType = errors.New("unexpected value type")
)

// MissingKeyError reports a required key absent from an exported document.
// Data is the document handed to the exporter, DataDesc says where in it
// the key was expected.
type MissingKeyError struct {
	Data     *document.Object
	Key      string
	DataDesc string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %q in %s", e.Key, e.DataDesc)
}

func (*MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// UnexpectedTypeError reports a present key whose value is of a kind the
// exporter cannot read, e.g. a string where a mapping is required.
type UnexpectedTypeError struct {
	Data     *document.Object
	Key      string
	DataDesc string
	Expected string
	Actual   string
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("key %q in %s must be a %s, got %s", e.Key, e.DataDesc, e.Expected, e.Actual)
}

func (*UnexpectedTypeError) Is(target error) bool {
	return target == ErrUnexpectedType
}
