package validator

// catchMap is a map with an optional catch-all value returned for missing keys.
type catchMap[K comparable, V any] struct {
	primary  map[K]V
	catch    V
	hasCatch bool
}

func newCatchMap[K comparable, V any]() *catchMap[K, V] {
	return &catchMap[K, V]{primary: make(map[K]V)}
}

func (m *catchMap[K, V]) insert(key K, value V) {
	m.primary[key] = value
}

func (m *catchMap[K, V]) setCatch(value V) {
	m.catch = value
	m.hasCatch = true
}

// get returns the primary value for key, or the catch value when key is missing.
func (m *catchMap[K, V]) get(key K) (V, bool) {
	if v, ok := m.primary[key]; ok {
		return v, true
	}
	return m.catch, m.hasCatch
}

func (m *catchMap[K, V]) getOrInsert(key K, mk func() V) V {
	if v, ok := m.primary[key]; ok {
		return v
	}
	v := mk()
	m.primary[key] = v
	return v
}

func (m *catchMap[K, V]) catchOrInsert(mk func() V) V {
	if !m.hasCatch {
		m.setCatch(mk())
	}
	return m.catch
}
