package chainmaps

// IsDisjoint checks whether no key of m exists in other. The smaller table
// is the one iterated, each of its cached hashes is re-reduced against the
// other table's bucket count.
func (m *Map[K, V]) IsDisjoint(other *Map[K, V]) bool {
	gh1, gh2 := m, other
	if gh1.nentries > gh2.nentries {
		gh1, gh2 = gh2, gh1
	}

	for _, e := range gh1.buckets {
		for ; e != nil; e = e.next {
			if gh2.lookupEntryEx(e.key, e.hash, gh2.bucketIndex(e.hash)) != nil {
				return false
			}
		}
	}
	return true
}

// IsEqual checks whether m and other contain exactly the same keys.
// Values are not compared.
func (m *Map[K, V]) IsEqual(other *Map[K, V]) bool {
	if m.nentries != other.nentries {
		return false
	}

	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			if other.lookupEntryEx(e.key, e.hash, other.bucketIndex(e.hash)) == nil {
				return false
			}
		}
	}
	return true
}

// IsSubset checks whether other's keys are a subset of m's keys, i.e.
// every key of other is present in m (m >= other).
//
// Note: the strict subset is m.IsSubset(other) && m.Size() != other.Size().
func (m *Map[K, V]) IsSubset(other *Map[K, V]) bool {
	if m.nentries < other.nentries {
		return false
	}

	for _, e := range other.buckets {
		for ; e != nil; e = e.next {
			if m.lookupEntryEx(e.key, e.hash, m.bucketIndex(e.hash)) == nil {
				return false
			}
		}
	}
	return true
}

// IsSuperset checks whether other's keys are a superset of m's keys
// (m <= other).
func (m *Map[K, V]) IsSuperset(other *Map[K, V]) bool {
	return other.IsSubset(m)
}

// IsDisjoint checks whether no key of s exists in other.
func (s *Set[K]) IsDisjoint(other *Set[K]) bool {
	return s.table().IsDisjoint(other.table())
}

// IsEqual checks whether s and other contain exactly the same keys.
func (s *Set[K]) IsEqual(other *Set[K]) bool {
	return s.table().IsEqual(other.table())
}

// IsSubset checks whether other's keys are a subset of s's keys.
func (s *Set[K]) IsSubset(other *Set[K]) bool {
	return s.table().IsSubset(other.table())
}

// IsSuperset checks whether other's keys are a superset of s's keys.
func (s *Set[K]) IsSuperset(other *Set[K]) bool {
	return other.table().IsSubset(s.table())
}
