package chainmaps

import (
	"math/bits"
	"unsafe"
)

// Standard hash and equality families for common key shapes. All equality
// functions follow the package convention of returning true iff the keys
// are NOT equal, so they can be passed to New and NewSet directly.

// PtrHash hashes a pointer by identity, based on python 3.3's pointer
// hashing. The bottom 3 or 4 bits of an address are likely zero, rotating
// by 4 avoids excessive collisions.
func PtrHash[T any](key *T) uint32 {
	y := uintptr(unsafe.Pointer(key))
	y = (y >> 4) | (y << (bits.UintSize - 4))
	return uint32(y)
}

// PtrEq reports pointer-identity inequality.
func PtrEq[T any](a, b *T) bool {
	return a != b
}

// UintptrHash is PtrHash for raw handles kept as uintptr.
func UintptrHash(key uintptr) uint32 {
	key = (key >> 4) | (key << (bits.UintSize - 4))
	return uint32(key)
}

// UintptrEq reports handle inequality.
func UintptrEq(a, b uintptr) bool {
	return a != b
}

// UintHash mixes a 32 bit integer with a xor-shift cascade, so nearby keys
// spread over distant buckets.
func UintHash(key uint32) uint32 {
	key += ^(key << 16)
	key ^= key >> 5
	key += key << 3
	key ^= key >> 13
	key += ^(key << 9)
	key ^= key >> 17
	return key
}

// UintEq reports integer inequality.
func UintEq(a, b uint32) bool {
	return a != b
}

// UintHash4 hashes a quadruple of 32 bit integers polynomially.
func UintHash4(key [4]uint32) uint32 {
	hash := key[0]
	hash *= 37
	hash += key[1]
	hash *= 37
	hash += key[2]
	hash *= 37
	hash += key[3]
	return hash
}

// UintHash4Murmur is the MurmurHash2A variant of UintHash4, slower but
// with much better mixing.
func UintHash4Murmur(key [4]uint32) uint32 {
	var buf [16]byte
	for i, k := range key {
		buf[i*4+0] = byte(k)
		buf[i*4+1] = byte(k >> 8)
		buf[i*4+2] = byte(k >> 16)
		buf[i*4+3] = byte(k >> 24)
	}
	return mm2a(buf[:], 0)
}

// UintEq4 reports quadruple inequality.
func UintEq4(a, b [4]uint32) bool {
	return a != b
}

// StrHash implements the widely used "djb" hash apparently posted by
// Daniel Bernstein to comp.lang.c some time ago. The 32 bit unsigned hash
// value starts at 5381 and for each byte 'c' in the string is updated with
// hash = hash * 33 + c. This function uses the signed value of each byte.
func StrHash(key string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint32(int32(int8(key[i])))
	}
	return h
}

// StrHashMurmur is the MurmurHash2A variant of StrHash.
func StrHashMurmur(key string) uint32 {
	return mm2a([]byte(key), 0)
}

// StrEq reports string inequality.
func StrEq(a, b string) bool {
	return a != b
}

// Pair is a composite key of two parts.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairHash builds a pair hash from the component hashes, combining them
// with XOR.
func PairHash[A, B any](hashA HashFn[A], hashB HashFn[B]) HashFn[Pair[A, B]] {
	return func(key Pair[A, B]) uint32 {
		return hashA(key.First) ^ hashB(key.Second)
	}
}

// PairEq builds a pair equality from the component equalities. The pairs
// differ if either component differs.
func PairEq[A, B any](eqA EqFn[A], eqB EqFn[B]) EqFn[Pair[A, B]] {
	return func(a, b Pair[A, B]) bool {
		return eqA(a.First, b.First) || eqB(a.Second, b.Second)
	}
}

// mm2a is MurmurHash2A.
func mm2a(data []byte, seed uint32) uint32 {
	const m = 0x5bd1e995
	const r = 24

	mmix := func(h, k uint32) uint32 {
		k *= m
		k ^= k >> r
		k *= m
		h *= m
		h ^= k
		return h
	}

	h := seed
	l := uint32(len(data))
	for len(data) >= 4 {
		k := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24
		h = mmix(h, k)
		data = data[4:]
	}

	var t uint32
	switch len(data) {
	case 3:
		t ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		t ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		t ^= uint32(data[0])
	}
	h = mmix(h, t)
	h = mmix(h, l)

	h ^= h >> 13
	h *= m
	h ^= h >> 15
	return h
}

// Convenience constructors binding the standard families.

// NewPtrMap creates a map keyed by pointer identity.
func NewPtrMap[T, V any]() *Map[*T, V] {
	return New[*T, V](PtrHash[T], PtrEq[T])
}

// NewStrMap creates a map keyed by string content.
func NewStrMap[V any]() *Map[string, V] {
	return New[string, V](StrHash, StrEq)
}

// NewIntMap creates a map keyed by 32 bit integers.
func NewIntMap[V any]() *Map[uint32, V] {
	return New[uint32, V](UintHash, UintEq)
}

// NewPairMap creates a map keyed by a composite pair, built from the
// component hash and equality callbacks.
func NewPairMap[A, B, V any](hashA HashFn[A], eqA EqFn[A], hashB HashFn[B], eqB EqFn[B]) *Map[Pair[A, B], V] {
	return New[Pair[A, B], V](PairHash(hashA, hashB), PairEq(eqA, eqB))
}

// NewPtrSet creates a set keyed by pointer identity.
func NewPtrSet[T any]() *Set[*T] {
	return NewSet[*T](PtrHash[T], PtrEq[T])
}

// NewStrSet creates a set keyed by string content.
func NewStrSet() *Set[string] {
	return NewSet(StrHash, StrEq)
}

// NewIntSet creates a set keyed by 32 bit integers.
func NewIntSet() *Set[uint32] {
	return NewSet(UintHash, UintEq)
}

// NewPairSet creates a set keyed by a composite pair.
func NewPairSet[A, B any](hashA HashFn[A], eqA EqFn[A], hashB HashFn[B], eqB EqFn[B]) *Set[Pair[A, B]] {
	return NewSet(PairHash(hashA, hashB), PairEq(eqA, eqB))
}
