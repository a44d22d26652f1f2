package confmap

import (
	"bytes"
	"iter"
)

// Map is a string-keyed map that remembers insertion order.
// The zero value is not usable; create one with NewMap.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Set stores v under key. A new key is appended to the order; an existing
// key keeps its position. Set returns m so calls can be chained.
func (m *Map) Set(key string, v Value) *Map {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key, preserving the order of the remaining keys.
func (m *Map) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys. A nil Map has length zero.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m. Nested maps and lists are shared.
func (m *Map) Clone() *Map {
	out := NewMap()
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// Equal reports whether both maps hold the same entries in the same order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	if m.Len() == 0 {
		return true
	}
	for i, k := range m.keys {
		if other.keys[i] != k {
			return false
		}
		if !m.values[k].Equal(other.values[k]) {
			return false
		}
	}
	return true
}

// Merge returns a new Map holding defaults overlaid with overrides.
// The merge is shallow: an override replaces the whole default value for its
// key, and nested maps are not combined. Default keys keep their position and
// keys only present in overrides are appended in override order. Either
// argument may be nil.
func Merge(defaults, overrides *Map) *Map {
	out := NewMap()
	for k, v := range defaults.All() {
		out.Set(k, v)
	}
	for k, v := range overrides.All() {
		out.Set(k, v)
	}
	return out
}

// MarshalJSON implements json.Marshaler, emitting keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Map) appendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := appendString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := v.appendJSON(buf); err != nil {
			return err
		}
		i++
	}
	buf.WriteByte('}')
	return nil
}
