package normalize

import (
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Pair is a single key/value entry for building a [Dict].
type Pair struct {
	Key, Value string
}

// Dict is an insertion-ordered synonym dictionary. Lookup order is part of
// the matching contract: when several keys could match an input, the key
// registered first wins. A Dict is read-only after construction and therefore
// safe for concurrent use.
type Dict struct {
	om *orderedmap.OrderedMap
}

// NewDict builds a Dict from pairs, preserving their order. A duplicate key
// keeps its original position and takes the later value.
func NewDict(pairs ...Pair) *Dict {
	om := orderedmap.New()
	for _, p := range pairs {
		om.Set(p.Key, p.Value)
	}
	return &Dict{om: om}
}

// Get returns the value registered for exactly key.
func (d *Dict) Get(key string) (string, bool) {
	v, ok := d.om.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.om.Keys())
}

// Keys returns all keys in insertion order.
func (d *Dict) Keys() []string {
	return d.om.Keys()
}

// SampleKeys returns up to n keys in insertion order, for building
// "try one of: ..." hints.
func (d *Dict) SampleKeys(n int) []string {
	keys := d.om.Keys()
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// Match resolves input against the dictionary: an exact key match first, then
// the first key (in insertion order) that is contained in the input or that
// contains the input. Input is expected to be lowercased and trimmed by the
// caller.
func (d *Dict) Match(input string) (string, bool) {
	if v, ok := d.Get(input); ok {
		return v, true
	}
	if input == "" {
		return "", false
	}
	for _, key := range d.om.Keys() {
		if strings.Contains(input, key) || strings.Contains(key, input) {
			v, _ := d.Get(key)
			return v, true
		}
	}
	return "", false
}
