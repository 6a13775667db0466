package chainmaps

// New creates a ready to use, empty map with the given hash and equality
// callbacks. Remember that eq reports inequality, see EqFn.
func New[K, V any](hash HashFn[K], eq EqFn[K]) *Map[K, V] {
	return NewEx[K, V](hash, eq, 0)
}

// NewEx is like New, but reserves room for the given number of entries up
// front. Use it when the final size is known or can be approximated
// closely, it avoids the intermediate resize steps. The reservation also
// becomes the shrink floor of the table.
func NewEx[K, V any](hash HashFn[K], eq EqFn[K], reserve int) *Map[K, V] {
	return newMap[K, V](hash, eq, reserve)
}

// Copy returns a deep copy of the map. Keys and values are duplicated with
// the given callbacks, a nil callback borrows the original. Mutations of
// the copy never affect the original.
func (m *Map[K, V]) Copy(keyCopy KeyCopyFn[K], valCopy ValCopyFn[V]) *Map[K, V] {
	return m.copyTable(keyCopy, valCopy)
}

// Reserve grows the bucket array to hold at least n entries without
// further resizing, and raises the shrink floor to that size.
func (m *Map[K, V]) Reserve(n int) {
	if n < 0 {
		n = 0
	}
	m.expandBuckets(uint32(n), true, false)
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	return int(m.nentries)
}

// Insert adds a key/value pair without checking for duplicates. The caller
// is expected to keep keys unique unless the AllowDupes flag is set.
func (m *Map[K, V]) Insert(key K, val V) {
	m.insert(key, val)
}

// Add is like Insert, but does nothing if the key is already present.
// Returns true if a new key has been added. This is a single lookup,
// cheaper than HasKey followed by Insert.
func (m *Map[K, V]) Add(key K, val V) bool {
	return m.insertSafe(key, val, false, nil, nil)
}

// Reinsert maps the key to the new value whether or not it is already
// present. An existing entry is overwritten in place after running the
// optional free callbacks on the old key and value.
// Returns true if a new key has been added.
func (m *Map[K, V]) Reinsert(key K, val V, keyFree KeyFreeFn[K], valFree ValFreeFn[V]) bool {
	return m.insertSafe(key, val, true, keyFree, valFree)
}

// Lookup returns the value stored for this key, or false if not found.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	if e := m.lookupEntry(key); e != nil {
		return e.val, true
	}
	var zero V
	return zero, false
}

// LookupDefault is a version of Lookup that returns the given fallback
// value for a missing key.
func (m *Map[K, V]) LookupDefault(key K, fallback V) V {
	if e := m.lookupEntry(key); e != nil {
		return e.val
	}
	return fallback
}

// LookupPtr returns a pointer to the stored value for this key, or nil if
// not found. The pointer stays valid until the key is removed or the map
// is cleared, so the value can be updated in place without a second
// lookup. Note, use Lookup for small values.
func (m *Map[K, V]) LookupPtr(key K) *V {
	if e := m.lookupEntry(key); e != nil {
		return &e.val
	}
	return nil
}

// HasKey returns true if the key is in the map.
func (m *Map[K, V]) HasKey(key K) bool {
	return m.lookupEntry(key) != nil
}

// Remove removes the entry for this key, running the optional free
// callbacks on its key and value. Returns true if an entry was removed.
func (m *Map[K, V]) Remove(key K, keyFree KeyFreeFn[K], valFree ValFreeFn[V]) bool {
	hash := m.keyHash(key)
	e := m.popEntry(key, hash, m.bucketIndex(hash))
	if e == nil {
		return false
	}
	if keyFree != nil {
		keyFree(e.key)
	}
	if valFree != nil {
		valFree(e.val)
	}
	m.pool.free(e)
	m.expandBuckets(m.nentries, false, false)
	return true
}

// Pop removes the entry for this key and returns its value. There is no
// value free callback since the value is handed back to the caller.
func (m *Map[K, V]) Pop(key K, keyFree KeyFreeFn[K]) (V, bool) {
	hash := m.keyHash(key)
	e := m.popEntry(key, hash, m.bucketIndex(hash))
	if e == nil {
		var zero V
		return zero, false
	}
	if keyFree != nil {
		keyFree(e.key)
	}
	val := e.val
	m.pool.free(e)
	m.expandBuckets(m.nentries, false, false)
	return val, true
}

// Clear removes all entries, running the optional free callbacks on each.
func (m *Map[K, V]) Clear(keyFree KeyFreeFn[K], valFree ValFreeFn[V]) {
	m.ClearEx(keyFree, valFree, 0)
}

// ClearEx is like Clear, but reserves again for the given number of
// entries, keeping enough pool chunks around for them.
func (m *Map[K, V]) ClearEx(keyFree KeyFreeFn[K], valFree ValFreeFn[V], reserve int) {
	if keyFree != nil || valFree != nil {
		m.freeCb(keyFree, valFree)
	}
	if reserve < 0 {
		reserve = 0
	}
	m.bucketsReset(uint32(reserve))
	m.pool.clear(reserve)
}

// Free releases the buckets and the entry pool, running the optional free
// callbacks on every entry first. The map must not be used afterwards.
func (m *Map[K, V]) Free(keyFree KeyFreeFn[K], valFree ValFreeFn[V]) {
	if m.pool.count() != int(m.nentries) {
		panic("chainmaps: entry count out of sync with pool")
	}
	if keyFree != nil || valFree != nil {
		m.freeCb(keyFree, valFree)
	}
	m.buckets = nil
	m.nentries = 0
	m.pool.destroy()
}

// FlagSet sets the given table flags.
func (m *Map[K, V]) FlagSet(flag uint) {
	m.flag |= flag
}

// FlagClear clears the given table flags.
func (m *Map[K, V]) FlagClear(flag uint) {
	m.flag &^= flag
}

// BucketCount returns the current number of buckets.
func (m *Map[K, V]) BucketCount() int {
	return int(m.nbuckets)
}

// Load returns the current load factor of the map.
func (m *Map[K, V]) Load() float32 {
	return float32(m.nentries) / float32(m.nbuckets)
}
