package chainmaps

// entry is one chained record. The full hash is cached per entry, so
// resizing and chain walks never re-invoke the hash callback. For a set
// the value type is struct{} and the val field occupies no memory; it sits
// before key because a zero-size last field would be padded.
type entry[K, V any] struct {
	next *entry[K, V]
	hash uint32
	val  V
	key  K
}

// Map is a hash table from K to V, where colliding entries are chained in
// singly linked lists. The entry records come from a chunked pool and keep
// their memory address for their whole lifetime, only the bucket array is
// reallocated. The bucket count follows a prime schedule and is adjusted
// in both directions according to the [3n/16, 3n/4] load band.
//
// The zero value is not ready for use, create instances with New or NewEx.
type Map[K, V any] struct {
	hashFn HashFn[K]
	eqFn   EqFn[K]

	buckets []*entry[K, V]
	pool    entryPool[K, V]
	// nbuckets mirrors len(buckets) as uint32 for the modulo reduction.
	nbuckets  uint32
	limGrow   uint32
	limShrink uint32
	// cursize indexes hashSizes, sizeMin is the floor raised by Reserve.
	cursize int
	sizeMin int

	nentries uint32
	flag     uint
}

func newMap[K, V any](hashFn HashFn[K], eqFn EqFn[K], reserve int) *Map[K, V] {
	if hashFn == nil || eqFn == nil {
		panic("chainmaps: nil hash or equality callback")
	}
	if reserve < 0 {
		reserve = 0
	}
	m := &Map[K, V]{hashFn: hashFn, eqFn: eqFn}
	m.pool.init()
	m.bucketsReset(uint32(reserve))
	return m
}

func (m *Map[K, V]) keyHash(key K) uint32 {
	return m.hashFn(key)
}

// bucketIndex reduces a full hash to a bucket slot.
func (m *Map[K, V]) bucketIndex(hash uint32) uint32 {
	return hash % m.nbuckets
}

// resizeBuckets re-threads every entry into a fresh bucket array of the
// given length. The entries themselves are not reallocated, their cached
// hashes are reduced against the new length. Chains come out reversed,
// which is fine since order within a bucket is never guaranteed.
func (m *Map[K, V]) resizeBuckets(nbuckets uint32) {
	bucketsOld := m.buckets
	m.nbuckets = nbuckets
	bucketsNew := make([]*entry[K, V], nbuckets)

	for _, e := range bucketsOld {
		for e != nil {
			eNext := e.next
			bucket := m.bucketIndex(e.hash)
			e.next = bucketsNew[bucket]
			bucketsNew[bucket] = e
			e = eNext
		}
	}
	m.buckets = bucketsNew
}

// expandBuckets checks whether nentries is large enough to require more
// buckets, or small enough to require less, and resizes accordingly.
// Shrinking only happens with the AllowShrink flag or forceShrink set, and
// never below the floor raised by a user-defined reservation.
func (m *Map[K, V]) expandBuckets(nentries uint32, userDefined, forceShrink bool) {
	if m.buckets != nil && nentries < m.limGrow && nentries > m.limShrink {
		return
	}

	newNbuckets := m.nbuckets
	for nentries > m.limGrow && m.cursize < len(hashSizes)-1 {
		m.cursize++
		newNbuckets = hashSizes[m.cursize]
		m.limGrow = limitGrow(newNbuckets)
	}
	if forceShrink || m.flag&AllowShrink != 0 {
		for nentries < m.limShrink && m.cursize > m.sizeMin {
			m.cursize--
			newNbuckets = hashSizes[m.cursize]
			m.limShrink = limitShrink(newNbuckets)
		}
	}
	if userDefined {
		m.sizeMin = m.cursize
	}

	if newNbuckets == m.nbuckets && m.buckets != nil {
		return
	}

	m.limGrow = limitGrow(newNbuckets)
	m.limShrink = limitShrink(newNbuckets)
	m.resizeBuckets(newNbuckets)
}

// bucketsReset drops all buckets and reserves again for the given number
// of entries. Note that this also clears the flags.
func (m *Map[K, V]) bucketsReset(nentries uint32) {
	m.buckets = nil
	m.cursize = 0
	m.sizeMin = 0
	m.nbuckets = hashSizes[0]
	m.limGrow = limitGrow(m.nbuckets)
	m.limShrink = limitShrink(m.nbuckets)
	m.nentries = 0
	m.flag = 0

	m.expandBuckets(nentries, nentries != 0, false)
}

// lookupEntryEx walks one chain, comparing the cached full hash before
// invoking the equality callback. Takes hash and bucket to avoid computing
// them multiple times per operation.
func (m *Map[K, V]) lookupEntryEx(key K, hash, bucket uint32) *entry[K, V] {
	for e := m.buckets[bucket]; e != nil; e = e.next {
		if e.hash == hash && !m.eqFn(key, e.key) {
			return e
		}
	}
	return nil
}

func (m *Map[K, V]) lookupEntry(key K) *entry[K, V] {
	hash := m.keyHash(key)
	return m.lookupEntryEx(key, hash, m.bucketIndex(hash))
}

// insertAt links a fresh entry at the head of the given bucket without
// consulting the resize policy. Callers that insert in a loop run the
// policy once per insert, bulk operations defer it.
func (m *Map[K, V]) insertAt(bucket, hash uint32, key K, val V) {
	e := m.pool.alloc()
	e.next = m.buckets[bucket]
	e.hash = hash
	e.key = key
	e.val = val
	m.buckets[bucket] = e
	m.nentries++
}

func (m *Map[K, V]) insert(key K, val V) {
	hash := m.keyHash(key)
	m.insertAt(m.bucketIndex(hash), hash, key, val)
	m.expandBuckets(m.nentries, false, false)
}

// insertSafe is the shared tail of Add and Reinsert: a single lookup, then
// either a fresh insert or (with override) an in-place overwrite that runs
// the free callbacks on the replaced key and value.
func (m *Map[K, V]) insertSafe(key K, val V, override bool, keyFree KeyFreeFn[K], valFree ValFreeFn[V]) bool {
	hash := m.keyHash(key)
	bucket := m.bucketIndex(hash)

	if e := m.lookupEntryEx(key, hash, bucket); e != nil {
		if override {
			if keyFree != nil {
				keyFree(e.key)
			}
			if valFree != nil {
				valFree(e.val)
			}
			e.key = key
			e.val = val
		}
		return false
	}
	m.insertAt(bucket, hash, key, val)
	m.expandBuckets(m.nentries, false, false)
	return true
}

// popEntry unlinks the entry for key from its chain and decrements the
// entry count. The caller decides about callbacks, the pool release and
// the resize policy.
func (m *Map[K, V]) popEntry(key K, hash, bucket uint32) *entry[K, V] {
	var ePrev *entry[K, V]
	for e := m.buckets[bucket]; e != nil; e = e.next {
		if e.hash == hash && !m.eqFn(key, e.key) {
			if ePrev != nil {
				ePrev.next = e.next
			} else {
				m.buckets[bucket] = e.next
			}
			m.nentries--
			return e
		}
		ePrev = e
	}
	return nil
}

// freeCb runs the free callbacks on every live entry.
func (m *Map[K, V]) freeCb(keyFree KeyFreeFn[K], valFree ValFreeFn[V]) {
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			if keyFree != nil {
				keyFree(e.key)
			}
			if valFree != nil {
				valFree(e.val)
			}
		}
	}
}

// copyTable deep-copies the table. The destination is expanded once up
// front, so the per-entry inserts skip the resize policy.
func (m *Map[K, V]) copyTable(keyCopy KeyCopyFn[K], valCopy ValCopyFn[V]) *Map[K, V] {
	mNew := newMap[K, V](m.hashFn, m.eqFn, 0)
	mNew.expandBuckets(m.nentries, false, false)

	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			mNew.insertAt(mNew.bucketIndex(e.hash), e.hash,
				copyKey(keyCopy, e.key), copyVal(valCopy, e.val))
		}
	}
	return mNew
}
