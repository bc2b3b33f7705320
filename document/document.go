// Package document provides the insertion-ordered key/value mapping used as
// the canonical representation of read and write concerns. Values are native
// Go primitives (int, string, bool) so the mapping can be merged verbatim
// into a larger command by downstream collaborators.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Elem is a single key/value pair of a Doc.
type Elem struct {
	Key   string
	Value interface{}
}

// Doc is an ordered set of elements with unique keys. The zero value is an
// empty document and ready to use.
type Doc []Elem

// Copy returns a new Doc with the same elements. Mutating the copy never
// affects the original.
func (d Doc) Copy() Doc {
	if d == nil {
		return nil
	}

	cp := make(Doc, len(d))
	copy(cp, d)
	return cp
}

// Lookup returns the value stored under key and whether the key is present.
func (d Doc) Lookup(key string) (interface{}, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}

// Keys returns the document's keys in insertion order.
func (d Doc) Keys() []string {
	keys := make([]string, 0, len(d))
	for _, e := range d {
		keys = append(keys, e.Key)
	}

	return keys
}

// Equal reports whether d and other contain the same keys with the same
// values. Insertion order does not participate in equality.
func (d Doc) Equal(other Doc) bool {
	if len(d) != len(other) {
		return false
	}

	m := make(map[string]interface{}, len(other))
	for _, e := range other {
		m[e.Key] = e.Value
	}

	for _, e := range d {
		v, ok := m[e.Key]
		if !ok || v != e.Value {
			return false
		}
	}

	return true
}

// String renders the document in insertion order, e.g. {w: 3, wtimeout: 500}.
func (d Doc) String() string {
	parts := make([]string, 0, len(d))
	for _, e := range d {
		parts = append(parts, fmt.Sprintf("%s: %v", e.Key, e.Value))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes the document as a JSON object preserving insertion
// order. This is a diagnostic rendering, not a wire format.
func (d Doc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
