package chainmaps

// Stats describes how the entries of a table distribute over its buckets.
type Stats struct {
	// Load is the mean chain length, entries per bucket.
	Load float64
	// Variance of the chain lengths across buckets.
	Variance float64
	// PropEmptyBuckets is the proportion of buckets holding no entry.
	PropEmptyBuckets float64
	// PropOverloadedBuckets is the proportion of buckets whose chain holds
	// more than one entry.
	PropOverloadedBuckets float64
	// BiggestBucket is the length of the longest chain.
	BiggestBucket int
	// Quality measures how well the hash function performs, where 1.0 is
	// approximately as good as a random distribution. Smaller is better.
	Quality float64
}

// Stats measures the bucket distribution of the map. It walks every chain,
// so it is meant for diagnostics, not for hot paths.
func (m *Map[K, V]) Stats() Stats {
	var st Stats
	if m.nentries == 0 {
		st.PropEmptyBuckets = 1.0
		return st
	}

	mean := float64(m.nentries) / float64(m.nbuckets)
	st.Load = mean

	overloaded := Max(limitGrow(1), 1)

	var varSum float64
	var qualSum, nOverloaded, nEmpty uint64
	for _, e := range m.buckets {
		var count uint64
		for ; e != nil; e = e.next {
			count++
		}
		varSum += (float64(count) - mean) * (float64(count) - mean)
		qualSum += count * (count + 1)
		st.BiggestBucket = Max(st.BiggestBucket, int(count))
		if count > uint64(overloaded) {
			nOverloaded++
		}
		if count == 0 {
			nEmpty++
		}
	}

	st.Variance = varSum / float64(m.nbuckets-1)
	st.PropOverloadedBuckets = float64(nOverloaded) / float64(m.nbuckets)
	st.PropEmptyBuckets = float64(nEmpty) / float64(m.nbuckets)
	st.Quality = float64(qualSum) * float64(m.nbuckets) /
		(float64(m.nentries) * (float64(m.nentries) + 2*float64(m.nbuckets) - 1))
	return st
}

// Stats measures the bucket distribution of the set.
func (s *Set[K]) Stats() Stats {
	return s.table().Stats()
}
