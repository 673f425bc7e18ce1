package ir

// multimap keeps (key, value) pairs in append order. Pairs sharing a key
// stay mutually ordered and are found through index, which maps each key to
// the positions of its pairs, so locating a key's group does not scan.
type multimap[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K][]int
}

func (m *multimap[K, V]) append(k K, v V) {
	if m.index == nil {
		m.index = make(map[K][]int)
	}
	m.index[k] = append(m.index[k], len(m.keys))
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

func (m *multimap[K, V]) len() int {
	return len(m.keys)
}

func (m *multimap[K, V]) at(i int) (K, V) {
	return m.keys[i], m.values[i]
}

func (m *multimap[K, V]) count(k K) int {
	return len(m.index[k])
}

func (m *multimap[K, V]) getAll(k K) []V {
	pos := m.index[k]
	if len(pos) == 0 {
		return nil
	}
	res := make([]V, len(pos))
	for i, p := range pos {
		res[i] = m.values[p]
	}
	return res
}

func (m *multimap[K, V]) first(k K) (V, bool) {
	pos := m.index[k]
	if len(pos) == 0 {
		var zero V
		return zero, false
	}
	return m.values[pos[0]], true
}

func (m *multimap[K, V]) equal(o *multimap[K, V], eq func(a, b V) bool) bool {
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i := range m.keys {
		if m.keys[i] != o.keys[i] {
			return false
		}
		if !eq(m.values[i], o.values[i]) {
			return false
		}
	}
	return true
}
