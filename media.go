package embedmeta

import (
	"iter"
	"maps"
	"slices"
)

// Media is a normalized metadata record for a single piece of embeddable
// content. It behaves like an insertion-ordered map from property name to
// opaque string value.
//
// The zero value is not usable; construct records with New.
type Media struct {
	keys   []string
	values map[string]string
}

// New creates a Media record from raw producer properties.
//
// Go maps carry no order, so the keys of props are inserted in sorted order
// to make iteration deterministic. Keys added later by Set or by reindexing
// are appended after the construction set.
//
// Without options the store is a plain copy of props. WithCorrespondences
// reindexes the raw properties onto canonical names, and WithDefaults
// pre-fills the canonical property set before props is applied. New never
// fails; there are no constraints on keys or values.
func New(props map[string]string, optFns ...Option) *Media {
	o := applyOptions(optFns)

	m := &Media{
		values: make(map[string]string, len(props)),
	}

	if o.withDefaults {
		for _, name := range canonicalProperties {
			m.Set(name, "")
		}
	}

	for _, name := range slices.Sorted(maps.Keys(props)) {
		m.Set(name, props[name])
	}

	// Reindexing is additive and reads from the raw props, never from the
	// partially remapped store. Later pairs targeting the same destination
	// overwrite earlier ones.
	for _, c := range o.correspondences {
		if value, ok := props[c.Source]; ok {
			m.Set(c.Target, value)
		}
	}

	return m
}

// Has reports whether name is present in the record. Presence, not
// truthiness: a property holding "" still counts as present.
func (m *Media) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Get returns the value stored under name. The second return value reports
// presence, so an absent property is distinguishable from one explicitly set
// to the empty string.
func (m *Media) Get(name string) (string, bool) {
	value, ok := m.values[name]
	return value, ok
}

// Set inserts or overwrites the value for name. New keys are appended to the
// iteration order; overwriting keeps the original position. Set always
// succeeds and places no constraints on name or value.
func (m *Media) Set(name, value string) {
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

// Delete removes name from the record and reports whether it was present.
// This is the only way a key leaves the store; reads never delete.
func (m *Media) Delete(name string) bool {
	if _, ok := m.values[name]; !ok {
		return false
	}
	delete(m.values, name)
	i := slices.Index(m.keys, name)
	m.keys = slices.Delete(m.keys, i, i+1)
	return true
}

// Len returns the number of properties currently in the record.
func (m *Media) Len() int {
	return len(m.keys)
}

// Keys returns the property names in iteration order. The returned slice is
// a copy and safe to modify.
func (m *Media) Keys() []string {
	return slices.Clone(m.keys)
}

// All returns a lazy, restartable sequence over the record's properties in
// insertion order.
//
// Each call to the sequence observes the live state at the moment iteration
// begins, so mutations between two passes are visible. The key order is
// snapshotted per pass; keys deleted mid-pass are skipped, values are read
// live.
func (m *Media) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range slices.Clone(m.keys) {
			value, ok := m.values[name]
			if !ok {
				continue
			}
			if !yield(name, value) {
				return
			}
		}
	}
}

// Properties returns a copy of the record's contents as a plain map.
//
// This is the safe default to prevent external mutation of the backing
// store; order is not preserved (use All or Keys for ordered access).
func (m *Media) Properties() map[string]string {
	props := make(map[string]string, len(m.values))
	for name, value := range m.values {
		props[name] = value
	}
	return props
}

// Clone creates an independent copy of the record, preserving iteration
// order. Mutating the clone never affects the original.
func (m *Media) Clone() *Media {
	clone := &Media{
		keys:   slices.Clone(m.keys),
		values: make(map[string]string, len(m.values)),
	}
	for name, value := range m.values {
		clone.values[name] = value
	}
	return clone
}

// HasProperty reports whether name is present in the record.
//
// Deprecated: Use Has instead.
func (m *Media) HasProperty(name string) bool { return m.Has(name) }

// Property returns the value stored under name.
//
// Deprecated: Use Get instead.
func (m *Media) Property(name string) (string, bool) { return m.Get(name) }

// SetProperty inserts or overwrites the value for name.
//
// Deprecated: Use Set instead.
func (m *Media) SetProperty(name, value string) { m.Set(name, value) }
