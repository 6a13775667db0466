package chainmaps

// Ordered is a constraint that permits any ordered type: any type
// that supports the operators < <= >= >.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~string
}

// hashSizes is the ascending schedule of legal bucket counts. All values
// are primes, so the modulo bucket reduction stays well distributed even
// for weak hash functions. Growth steps the schedule cursor up, shrinking
// steps it down.
var hashSizes = [...]uint32{
	5, 11, 17, 37, 67, 131, 257, 521, 1031, 2053, 4099, 8209,
	16411, 32771, 65537, 131101, 262147, 524309, 1048583, 2097169,
	4194319, 8388617, 16777259, 33554467, 67108879, 134217757,
	268435459,
}

// The load-factor band [3n/16, 3n/4] gives hysteresis: a single insert or
// remove can never oscillate the table between two schedule steps.

func limitGrow(nbuckets uint32) uint32 {
	return nbuckets * 3 / 4
}

func limitShrink(nbuckets uint32) uint32 {
	return nbuckets * 3 / 16
}

// Max returns the max of a and b.
func Max[T Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the min of a and b.
func Min[T Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
