// Package ordered implements a small insertion-order-preserving string map,
// shared by uri.Query, message.Headers and call.Call's Extras.
// It is the common "ordered mapping name -> value" shape spec.md names for
// several entities (§3.2), kept in one place instead of copied per entity.
package ordered

// Map is an insertion-order-preserving mapping from a normalised key to a
// caller-supplied value. normalize is applied to every key before lookup or
// storage comparison (identity for case-sensitive maps, strings.ToLower for
// Headers' case-insensitive lookup).
type Map[V any] struct {
	normalize func(string) string
	keys      []string          // normalised keys, insertion order
	original  map[string]string // normalised -> original casing
	values    map[string]V
}

// New constructs an empty Map using normalize for key comparison.
func New[V any](normalize func(string) string) *Map[V] {
	if normalize == nil {
		normalize = func(s string) string { return s }
	}
	return &Map[V]{
		normalize: normalize,
		original:  make(map[string]string),
		values:    make(map[string]V),
	}
}

// Get returns the value stored under name and whether it was present.
func (m *Map[V]) Get(name string) (V, bool) {
	key := m.normalize(name)
	v, ok := m.values[key]
	return v, ok
}

// Put inserts or overwrites the value under name, preserving the original
// insertion position on overwrite and the originally supplied casing.
func (m *Map[V]) Put(name string, value V) {
	key := m.normalize(name)
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
		m.original[key] = name
	}
	m.values[key] = value
}

// Remove deletes the entry under name, if present.
func (m *Map[V]) Remove(name string) {
	key := m.normalize(name)
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	delete(m.original, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Compute applies op to the current value (zero value if absent) and stores
// the result, unless op reports ok=false, in which case the entry is removed.
func (m *Map[V]) Compute(name string, op func(current V, present bool) (V, bool)) {
	current, present := m.Get(name)
	next, keep := op(current, present)
	if !keep {
		m.Remove(name)
		return
	}
	m.Put(name, next)
}

// ComputeIfAbsent stores supplier() under name only if name is not already present.
func (m *Map[V]) ComputeIfAbsent(name string, supplier func() V) {
	if _, ok := m.Get(name); ok {
		return
	}
	m.Put(name, supplier())
}

// ComputeIfPresent replaces the value under name with op(current) only if
// name is already present; returning ok=false removes the entry.
func (m *Map[V]) ComputeIfPresent(name string, op func(current V) (V, bool)) {
	current, ok := m.Get(name)
	if !ok {
		return
	}
	next, keep := op(current)
	if !keep {
		m.Remove(name)
		return
	}
	m.Put(name, next)
}

// Keys returns the original-cased keys in insertion order.
func (m *Map[V]) Keys() []string {
	out := make([]string, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.original[k]
	}
	return out
}

// Len reports the number of entries.
func (m *Map[V]) Len() int { return len(m.keys) }

// Clone returns a deep copy; cloneValue is applied to each stored value.
func (m *Map[V]) Clone(cloneValue func(V) V) *Map[V] {
	out := New[V](m.normalize)
	for _, key := range m.keys {
		out.keys = append(out.keys, key)
		out.original[key] = m.original[key]
		v := m.values[key]
		if cloneValue != nil {
			v = cloneValue(v)
		}
		out.values[key] = v
	}
	return out
}

// Range calls fn for every entry in insertion order, using original casing.
func (m *Map[V]) Range(fn func(name string, value V)) {
	for _, key := range m.keys {
		fn(m.original[key], m.values[key])
	}
}
