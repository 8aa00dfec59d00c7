package devprop

import "iter"

// Map is a keyed view over a property list that keeps the order in which
// the keys were reported.
type Map struct {
	keys  []Key
	props map[Key]Property
}

// NewMap builds a Map from props. A later property with the same key
// replaces an earlier one but keeps its position.
func NewMap(props []Property) *Map {
	m := &Map{
		keys:  make([]Key, 0, len(props)),
		props: make(map[Key]Property, len(props)),
	}
	for _, p := range props {
		if _, dup := m.props[p.Key]; !dup {
			m.keys = append(m.keys, p.Key)
		}
		m.props[p.Key] = p
	}
	return m
}

// Len returns the number of properties in m.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys of m in order.
func (m *Map) Keys() []Key {
	keys := make([]Key, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the property stored under k.
func (m *Map) Get(k Key) (Property, bool) {
	p, ok := m.props[k]
	return p, ok
}

// All iterates over the properties of m in key order.
func (m *Map) All() iter.Seq2[Key, Property] {
	return func(yield func(Key, Property) bool) {
		for _, k := range m.keys {
			if !yield(k, m.props[k]) {
				return
			}
		}
	}
}
