// Package chainmaps implements chained hash containers with pooled entries.
//
// The package provides a map (key to value) and a set (key only) that share
// one separate-chaining table engine. Hashing and equality are per-table
// callbacks, so keys do not have to be comparable Go types. On top of the
// basic operations the package offers multi-operand set algebra (union,
// intersection, difference, symmetric difference), whole-table relations
// and a forward-only iterator.
//
// None of the containers are safe for concurrent use.
package chainmaps

// HashFn computes the full 32 bit hash of a key. The full hash is cached
// per entry, so it is evaluated once per inserted key.
type HashFn[K any] func(key K) uint32

// EqFn reports whether two keys differ: it returns true if a and b are NOT
// equal. All comparison callbacks in this package follow this convention.
type EqFn[K any] func(a, b K) bool

// KeyCopyFn duplicates a key for operations that materialize a new table.
// A nil callback makes the table borrow the original key.
type KeyCopyFn[K any] func(key K) K

// ValCopyFn duplicates a value, see KeyCopyFn.
type ValCopyFn[V any] func(val V) V

// KeyFreeFn releases a key the table is about to discard. A nil callback
// means the caller keeps ownership.
type KeyFreeFn[K any] func(key K)

// ValFreeFn releases a value, see KeyFreeFn.
type ValFreeFn[V any] func(val V)

// Table flags, set and cleared with FlagSet and FlagClear.
const (
	// AllowDupes permits duplicate-key Insert calls. Lookup returns an
	// arbitrary one of the duplicates.
	AllowDupes uint = 1 << 0
	// AllowShrink lets the table reduce its bucket count again when enough
	// entries have been removed. Off by default, so removal-heavy phases
	// don't thrash the bucket array.
	AllowShrink uint = 1 << 1
)

func copyKey[K any](fn KeyCopyFn[K], key K) K {
	if fn != nil {
		return fn(key)
	}
	return key
}

func copyVal[V any](fn ValCopyFn[V], val V) V {
	if fn != nil {
		return fn(val)
	}
	return val
}
