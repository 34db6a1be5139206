package affix

// Multimap maps keys to insertion-ordered sets of values and keeps the
// insertion-ordered union of every value it holds.
//
// The zero value is ready to use. A Multimap is not safe for concurrent
// mutation; concurrent reads are fine once construction is finished.
type Multimap[K comparable, V comparable] struct {
	keys  []K
	byKey map[K][]V
	seen  map[K]map[V]struct{}
	all   []V
	inAll map[V]struct{}
}

// addKey registers k with an empty value set. It is a no-op if k exists.
func (m *Multimap[K, V]) addKey(k K) {
	m.init()
	if _, ok := m.byKey[k]; ok {
		return
	}
	m.keys = append(m.keys, k)
	m.byKey[k] = nil
	m.seen[k] = make(map[V]struct{})
}

// Add inserts v under k. Duplicate values under the same key are dropped.
func (m *Multimap[K, V]) Add(k K, v V) {
	m.addKey(k)
	if _, ok := m.inAll[v]; !ok {
		m.inAll[v] = struct{}{}
		m.all = append(m.all, v)
	}
	if _, ok := m.seen[k][v]; ok {
		return
	}
	m.seen[k][v] = struct{}{}
	m.byKey[k] = append(m.byKey[k], v)
}

// Get returns the values stored under k in insertion order, or nil.
// The returned slice must not be modified.
func (m *Multimap[K, V]) Get(k K) []V {
	return m.byKey[k]
}

// All returns every distinct value in first-insertion order.
// The returned slice must not be modified.
func (m *Multimap[K, V]) All() []V {
	return m.all
}

// Keys returns the keys in first-insertion order.
func (m *Multimap[K, V]) Keys() []K {
	return m.keys
}

func (m *Multimap[K, V]) has(k K) bool {
	_, ok := m.byKey[k]
	return ok
}

// Len returns the number of distinct values.
func (m *Multimap[K, V]) Len() int {
	return len(m.all)
}

func (m *Multimap[K, V]) isEmpty() bool {
	return len(m.all) == 0
}

func (m *Multimap[K, V]) init() {
	if m.byKey != nil {
		return
	}
	m.byKey = make(map[K][]V)
	m.seen = make(map[K]map[V]struct{})
	m.inAll = make(map[V]struct{})
}
