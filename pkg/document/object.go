// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package document holds the order preserving representation of the
// configuration documents read from cluster tooling.
//
// Values stored in an Object are one of:
//
//	string     scalars (numbers, booleans and null keep their text, null is "")
//	*Object    nested mappings
//	[]any      sequences
package document

// Entry is a single key/value pair of an Object.
type Entry struct {
	Key   string
	Value any
}

// Object is a string keyed mapping that remembers insertion order.
type Object struct {
	entries []Entry
	index   map[string]int
}

// NewObject returns an Object holding entries in the given order.
func NewObject(entries ...Entry) *Object {
	o := &Object{}
	for _, e := range entries {
		o.Set(e.Key, e.Value)
	}
	return o
}

// Set stores value under key. Setting an existing key replaces its value
// and keeps its original position.
func (o *Object) Set(key string, value any) {
	if o.index == nil {
		o.index = map[string]int{}
	}
	if i, ok := o.index[key]; ok {
		o.entries[i].Value = value
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[i].Value, true
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// Entries returns a copy of the entries in insertion order.
func (o *Object) Entries() []Entry {
	if o == nil {
		return nil
	}
	out := make([]Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, len(o.entries))
	for _, e := range o.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// KindOf names the kind of a document value for error messages.
func KindOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case *Object:
		return "mapping"
	case []any:
		return "sequence"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}
