package chainmaps

// Set is a key-only view of the chained table: the same engine as Map with
// the value slot suppressed. The value type is the empty struct, so a set
// entry record is smaller than a map entry record and no code path touches
// a value.
//
// The zero value is not ready for use, create instances with NewSet or
// NewSetEx.
type Set[K any] Map[K, struct{}]

// table exposes the underlying map engine. Set and Map instances stay
// interchangeable at this level, only the public surface differs.
func (s *Set[K]) table() *Map[K, struct{}] {
	return (*Map[K, struct{}])(s)
}

// NewSet creates a ready to use, empty set with the given hash and
// equality callbacks. Remember that eq reports inequality, see EqFn.
func NewSet[K any](hash HashFn[K], eq EqFn[K]) *Set[K] {
	return NewSetEx(hash, eq, 0)
}

// NewSetEx is like NewSet, but reserves room for the given number of keys
// up front. The reservation also becomes the shrink floor of the set.
func NewSetEx[K any](hash HashFn[K], eq EqFn[K], reserve int) *Set[K] {
	return (*Set[K])(newMap[K, struct{}](hash, eq, reserve))
}

// Copy returns a deep copy of the set. Keys are duplicated with the given
// callback, a nil callback borrows the originals.
func (s *Set[K]) Copy(keyCopy KeyCopyFn[K]) *Set[K] {
	return (*Set[K])(s.table().copyTable(keyCopy, nil))
}

// Size returns the number of keys in the set.
func (s *Set[K]) Size() int {
	return s.table().Size()
}

// Insert adds the key without checking for duplicates, matching
// Map.Insert. The caller is expected to keep keys unique unless the
// AllowDupes flag is set.
func (s *Set[K]) Insert(key K) {
	s.table().insert(key, struct{}{})
}

// Add inserts the key if it is not in the set yet.
// Returns true if a new key has been added.
func (s *Set[K]) Add(key K) bool {
	return s.table().insertSafe(key, struct{}{}, false, nil, nil)
}

// Reinsert adds the key, replacing an existing equal key in place after
// running the optional free callback on it. Returns true if a new key has
// been added.
func (s *Set[K]) Reinsert(key K, keyFree KeyFreeFn[K]) bool {
	return s.table().insertSafe(key, struct{}{}, true, keyFree, nil)
}

// Remove removes the key, running the optional free callback on it.
// Returns true if the key was in the set.
func (s *Set[K]) Remove(key K, keyFree KeyFreeFn[K]) bool {
	return s.table().Remove(key, keyFree, nil)
}

// HasKey returns true if the key is in the set.
func (s *Set[K]) HasKey(key K) bool {
	return s.table().HasKey(key)
}

// Clear removes all keys, running the optional free callback on each.
func (s *Set[K]) Clear(keyFree KeyFreeFn[K]) {
	s.table().Clear(keyFree, nil)
}

// ClearEx is like Clear, but reserves again for the given number of keys.
func (s *Set[K]) ClearEx(keyFree KeyFreeFn[K], reserve int) {
	s.table().ClearEx(keyFree, nil, reserve)
}

// Free releases the buckets and the entry pool, running the optional free
// callback on every key first. The set must not be used afterwards.
func (s *Set[K]) Free(keyFree KeyFreeFn[K]) {
	s.table().Free(keyFree, nil)
}

// FlagSet sets the given table flags.
func (s *Set[K]) FlagSet(flag uint) {
	s.table().FlagSet(flag)
}

// FlagClear clears the given table flags.
func (s *Set[K]) FlagClear(flag uint) {
	s.table().FlagClear(flag)
}

// BucketCount returns the current number of buckets.
func (s *Set[K]) BucketCount() int {
	return s.table().BucketCount()
}

// Load returns the current load factor of the set.
func (s *Set[K]) Load() float32 {
	return s.table().Load()
}
