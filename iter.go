package chainmaps

// Iterator walks all entries of a map in no particular order. The map must
// not be mutated while the iterator is in use, it steps exactly Size()
// times before becoming done.
type Iterator[K, V any] struct {
	m      *Map[K, V]
	cur    *entry[K, V]
	bucket uint32
}

// Iter returns an iterator positioned at the first entry.
func (m *Map[K, V]) Iter() Iterator[K, V] {
	var it Iterator[K, V]
	it.Init(m)
	return it
}

// Init arms the iterator for a fresh walk over m, scanning forward to the
// first non-empty bucket.
func (it *Iterator[K, V]) Init(m *Map[K, V]) {
	it.m = m
	it.cur = nil
	it.bucket = 0
	if m.nentries > 0 {
		for it.bucket < m.nbuckets {
			if it.cur = m.buckets[it.bucket]; it.cur != nil {
				break
			}
			it.bucket++
		}
	}
}

// Step advances to the next entry, crossing to the next non-empty bucket
// when the current chain ends.
func (it *Iterator[K, V]) Step() {
	if it.cur == nil {
		return
	}
	it.cur = it.cur.next
	for it.cur == nil {
		it.bucket++
		if it.bucket == it.m.nbuckets {
			break
		}
		it.cur = it.m.buckets[it.bucket]
	}
}

// Done reports whether the iterator has passed the last entry.
func (it *Iterator[K, V]) Done() bool {
	return it.cur == nil
}

// Key returns the key at the current position.
func (it *Iterator[K, V]) Key() K {
	return it.cur.key
}

// Value returns the value at the current position.
func (it *Iterator[K, V]) Value() V {
	return it.cur.val
}

// ValuePtr returns a pointer to the value at the current position, so it
// can be updated in place.
func (it *Iterator[K, V]) ValuePtr() *V {
	return &it.cur.val
}

// Each calls fn on every key-value pair in the map in no particular order.
// If fn returns true, the iteration stops.
func (m *Map[K, V]) Each(fn func(key K, val V) bool) {
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			if stop := fn(e.key, e.val); stop {
				return
			}
		}
	}
}

// SetIterator walks all keys of a set in no particular order. The set must
// not be mutated while the iterator is in use.
type SetIterator[K any] struct {
	it Iterator[K, struct{}]
}

// Iter returns an iterator positioned at the first key.
func (s *Set[K]) Iter() SetIterator[K] {
	var si SetIterator[K]
	si.Init(s)
	return si
}

// Init arms the iterator for a fresh walk over s.
func (si *SetIterator[K]) Init(s *Set[K]) {
	si.it.Init(s.table())
}

// Step advances to the next key.
func (si *SetIterator[K]) Step() {
	si.it.Step()
}

// Done reports whether the iterator has passed the last key.
func (si *SetIterator[K]) Done() bool {
	return si.it.Done()
}

// Key returns the key at the current position.
func (si *SetIterator[K]) Key() K {
	return si.it.Key()
}

// Each calls fn on every key in the set in no particular order. If fn
// returns true, the iteration stops.
func (s *Set[K]) Each(fn func(key K) bool) {
	s.table().Each(func(key K, _ struct{}) bool {
		return fn(key)
	})
}
