// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exporter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/hacluster/pkg/document"
)

func mustParse(t *testing.T, data string) *document.Object {
	t.Helper()
	doc, err := document.Parse([]byte(data))
	require.NoError(t, err)
	return doc
}

func requireMissingKey(t *testing.T, err error, doc *document.Object, key, desc string) {
	t.Helper()
	var missing *MissingKeyError
	require.ErrorAs(t, err, &missing)
	require.Same(t, doc, missing.Data)
	require.Equal(t, key, missing.Key)
	require.Equal(t, desc, missing.DataDesc)
	require.ErrorIs(t, err, ErrMissingKey)
}

func nv(pairs ...string) []NameValue {
	out := make([]NameValue, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, NameValue{Name: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
