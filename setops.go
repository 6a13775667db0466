package chainmaps

import "reflect"

// All operands of a set-algebra operation must share the hash and equality
// callbacks, otherwise the cached hashes of one table are meaningless in
// another. Callback identity is compared, so the operands must literally
// share the same function values.
func assertSameSemantics[K, V any](gh1, ghn *Map[K, V]) {
	if reflect.ValueOf(gh1.hashFn).Pointer() != reflect.ValueOf(ghn.hashFn).Pointer() ||
		reflect.ValueOf(gh1.eqFn).Pointer() != reflect.ValueOf(ghn.eqFn).Pointer() {
		panic("chainmaps: set operation across tables with different hash or equality callbacks")
	}
}

func operandList[K, V any](gh2 *Map[K, V], ghn []*Map[K, V]) []*Map[K, V] {
	if gh2 == nil {
		panic("chainmaps: set operation needs at least one operand")
	}
	ops := make([]*Map[K, V], 0, len(ghn)+1)
	ops = append(ops, gh2)
	return append(ops, ghn...)
}

func setTables[K any](gs2 *Set[K], gsn []*Set[K]) []*Map[K, struct{}] {
	if gs2 == nil {
		panic("chainmaps: set operation needs at least one operand")
	}
	ops := make([]*Map[K, struct{}], 0, len(gsn)+1)
	ops = append(ops, gs2.table())
	for _, gs := range gsn {
		ops = append(ops, gs.table())
	}
	return ops
}

// Union merges gh2 and each subsequent operand into gh1, keeping entries
// already in gh1 unchanged (left bias: on a key collision the destination
// value wins). If gh1 is nil a new map is created from a deep copy of gh2
// instead of modifying gh1 in place. Returns the destination.
func Union[K, V any](keyCopy KeyCopyFn[K], valCopy ValCopyFn[V], gh1, gh2 *Map[K, V], ghn ...*Map[K, V]) *Map[K, V] {
	return mapUnion(false, keyCopy, valCopy, nil, nil, gh1, operandList(gh2, ghn))
}

// UnionReversed is the right-biased Union: on a key collision the entry of
// the later operand wins. The overwritten key and value of the destination
// are released through the optional free callbacks. Less efficient than
// Union since it may copy and then free pairs.
func UnionReversed[K, V any](keyCopy KeyCopyFn[K], valCopy ValCopyFn[V], keyFree KeyFreeFn[K], valFree ValFreeFn[V],
	gh1, gh2 *Map[K, V], ghn ...*Map[K, V]) *Map[K, V] {
	return mapUnion(true, keyCopy, valCopy, keyFree, valFree, gh1, operandList(gh2, ghn))
}

// Intersection removes from gh1 every entry whose key is absent from gh2
// or any subsequent operand. If gh1 is nil a new map is created from a
// deep copy of gh2 first. Returns the destination, shrunk if needed.
func Intersection[K, V any](keyCopy KeyCopyFn[K], valCopy ValCopyFn[V], keyFree KeyFreeFn[K], valFree ValFreeFn[V],
	gh1, gh2 *Map[K, V], ghn ...*Map[K, V]) *Map[K, V] {
	return mapFilter(false, keyCopy, valCopy, keyFree, valFree, gh1, operandList(gh2, ghn))
}

// Difference removes from gh1 every entry whose key is present in gh2 or
// any subsequent operand. If gh1 is nil a new map is created from a deep
// copy of gh2 first. Returns the destination, shrunk if needed.
func Difference[K, V any](keyCopy KeyCopyFn[K], valCopy ValCopyFn[V], keyFree KeyFreeFn[K], valFree ValFreeFn[V],
	gh1, gh2 *Map[K, V], ghn ...*Map[K, V]) *Map[K, V] {
	return mapFilter(true, keyCopy, valCopy, keyFree, valFree, gh1, operandList(gh2, ghn))
}

// SymmetricDifference makes gh1 hold the entries whose key appears in
// exactly one of all given tables (gh1, gh2 and the subsequent operands):
// shared keys are removed from gh1, keys found only in a later operand are
// added to it.
// If gh1 is nil a new map is created from a deep copy of gh2 first.
// Returns the destination, shrunk if needed.
func SymmetricDifference[K, V any](keyCopy KeyCopyFn[K], valCopy ValCopyFn[V], keyFree KeyFreeFn[K], valFree ValFreeFn[V],
	gh1, gh2 *Map[K, V], ghn ...*Map[K, V]) *Map[K, V] {
	return mapSymmetricDifference(keyCopy, valCopy, keyFree, valFree, gh1, operandList(gh2, ghn))
}

// SetUnion is Union for sets. There is no reversed variant: without values
// both biases produce the same set.
func SetUnion[K any](keyCopy KeyCopyFn[K], gs1, gs2 *Set[K], gsn ...*Set[K]) *Set[K] {
	return (*Set[K])(mapUnion(false, keyCopy, nil, nil, nil, gs1.table(), setTables(gs2, gsn)))
}

// SetIntersection is Intersection for sets.
func SetIntersection[K any](keyCopy KeyCopyFn[K], keyFree KeyFreeFn[K], gs1, gs2 *Set[K], gsn ...*Set[K]) *Set[K] {
	return (*Set[K])(mapFilter(false, keyCopy, nil, keyFree, nil, gs1.table(), setTables(gs2, gsn)))
}

// SetDifference is Difference for sets.
func SetDifference[K any](keyCopy KeyCopyFn[K], keyFree KeyFreeFn[K], gs1, gs2 *Set[K], gsn ...*Set[K]) *Set[K] {
	return (*Set[K])(mapFilter(true, keyCopy, nil, keyFree, nil, gs1.table(), setTables(gs2, gsn)))
}

// SetSymmetricDifference is SymmetricDifference for sets.
func SetSymmetricDifference[K any](keyCopy KeyCopyFn[K], keyFree KeyFreeFn[K], gs1, gs2 *Set[K], gsn ...*Set[K]) *Set[K] {
	return (*Set[K])(mapSymmetricDifference(keyCopy, nil, keyFree, nil, gs1.table(), setTables(gs2, gsn)))
}

func mapUnion[K, V any](reverse bool, keyCopy KeyCopyFn[K], valCopy ValCopyFn[V], keyFree KeyFreeFn[K], valFree ValFreeFn[V],
	gh1 *Map[K, V], operands []*Map[K, V]) *Map[K, V] {
	if gh1 == nil {
		gh1 = operands[0].copyTable(keyCopy, valCopy)
		operands = operands[1:]
	}

	for _, ghn := range operands {
		assertSameSemantics(gh1, ghn)

		for _, e := range ghn.buckets {
			for ; e != nil; e = e.next {
				bucket := gh1.bucketIndex(e.hash)
				eGh1 := gh1.lookupEntryEx(e.key, e.hash, bucket)
				if eGh1 == nil {
					gh1.insertAt(bucket, e.hash, copyKey(keyCopy, e.key), copyVal(valCopy, e.val))
					gh1.expandBuckets(gh1.nentries, false, false)
				} else if reverse {
					if keyFree != nil {
						keyFree(eGh1.key)
					}
					if valFree != nil {
						valFree(eGh1.val)
					}
					eGh1.key = copyKey(keyCopy, e.key)
					eGh1.val = copyVal(valCopy, e.val)
				}
			}
		}
	}
	return gh1
}

// mapFilter is the shared sweep of Intersection and Difference: per
// operand it removes every destination entry whose presence in the operand
// matches removePresent.
func mapFilter[K, V any](removePresent bool, keyCopy KeyCopyFn[K], valCopy ValCopyFn[V], keyFree KeyFreeFn[K], valFree ValFreeFn[V],
	gh1 *Map[K, V], operands []*Map[K, V]) *Map[K, V] {
	if gh1 == nil {
		gh1 = operands[0].copyTable(keyCopy, valCopy)
		operands = operands[1:]
	}

	for _, ghn := range operands {
		assertSameSemantics(gh1, ghn)

		// Resizing gh1 mid-sweep would invalidate the walk, so the entry
		// count is tracked locally and written back after the sweep.
		newNentries := gh1.nentries
		for i := range gh1.buckets {
			var ePrev *entry[K, V]
			e := gh1.buckets[i]
			for e != nil {
				eNext := e.next

				present := ghn.lookupEntryEx(e.key, e.hash, ghn.bucketIndex(e.hash)) != nil
				if present == removePresent {
					if keyFree != nil {
						keyFree(e.key)
					}
					if valFree != nil {
						valFree(e.val)
					}
					if ePrev != nil {
						ePrev.next = eNext
					} else {
						gh1.buckets[i] = eNext
					}
					newNentries--
					gh1.pool.free(e)
				} else {
					ePrev = e
				}
				e = eNext
			}
		}

		gh1.nentries = newNentries
		// Forced shrink, AllowShrink is not consulted here.
		gh1.expandBuckets(gh1.nentries, false, true)
	}
	return gh1
}

func mapSymmetricDifference[K, V any](keyCopy KeyCopyFn[K], valCopy ValCopyFn[V], keyFree KeyFreeFn[K], valFree ValFreeFn[V],
	gh1 *Map[K, V], operands []*Map[K, V]) *Map[K, V] {
	if gh1 == nil {
		gh1 = operands[0].copyTable(keyCopy, valCopy)
		operands = operands[1:]
	}

	// Scratch tables. Both only borrow keys and values from the real
	// tables, no copy or free callbacks apply to them.
	keys := gh1.copyTable(nil, nil)
	remKeys := newMap[K, struct{}](gh1.hashFn, gh1.eqFn, 64)

	// First pass: every key seen at least once ends up in keys, every key
	// seen at least twice also ends up in remKeys.
	for _, ghn := range operands {
		assertSameSemantics(gh1, ghn)

		for _, e := range ghn.buckets {
			for ; e != nil; e = e.next {
				keysBucket := keys.bucketIndex(e.hash)
				if keys.lookupEntryEx(e.key, e.hash, keysBucket) != nil {
					remBucket := remKeys.bucketIndex(e.hash)
					if remKeys.lookupEntryEx(e.key, e.hash, remBucket) == nil {
						remKeys.insertAt(remBucket, e.hash, e.key, struct{}{})
						remKeys.expandBuckets(remKeys.nentries, false, false)
					}
				} else {
					keys.insertAt(keysBucket, e.hash, e.key, e.val)
					keys.expandBuckets(keys.nentries, false, false)
				}
			}
		}
	}

	// Second pass: the keys we want are keys minus remKeys. Drop remKeys
	// members from the destination as well while we are at it.
	for _, e := range remKeys.buckets {
		for ; e != nil; e = e.next {
			eKeys := keys.popEntry(e.key, e.hash, keys.bucketIndex(e.hash))
			if eKeys == nil {
				// Every remKeys member was added because it was in keys.
				panic("chainmaps: symmetric difference scratch tables out of sync")
			}
			// No shrinking of keys here, it is scratch anyway.
			keys.pool.free(eKeys)

			eGh1 := gh1.popEntry(e.key, e.hash, gh1.bucketIndex(e.hash))
			if eGh1 != nil {
				// Safe to free key/value here: the key is gone from keys
				// and its remKeys entry is not visited again.
				if keyFree != nil {
					keyFree(eGh1.key)
				}
				if valFree != nil {
					valFree(eGh1.val)
				}
				gh1.pool.free(eGh1)
			}
		}
	}

	// Final pass: copy over every surviving key the destination does not
	// hold yet.
	for _, e := range keys.buckets {
		for ; e != nil; e = e.next {
			bucket := gh1.bucketIndex(e.hash)
			if gh1.lookupEntryEx(e.key, e.hash, bucket) == nil {
				gh1.insertAt(bucket, e.hash, copyKey(keyCopy, e.key), copyVal(valCopy, e.val))
				gh1.expandBuckets(gh1.nentries, false, false)
			}
		}
	}

	// The passes above may have left the destination far below the band,
	// shrink once at the end.
	gh1.expandBuckets(gh1.nentries, false, true)
	return gh1
}
