package chainmaps_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EinfachAndy/chainmaps"
)

func intMapOf(pairs map[uint32]string) *chainmaps.Map[uint32, string] {
	m := chainmaps.NewIntMap[string]()
	for k, v := range pairs {
		m.Insert(k, v)
	}
	return m
}

func TestUnionLeftBiased(t *testing.T) {
	a := intMapOf(map[uint32]string{1: "a", 2: "b"})
	b := intMapOf(map[uint32]string{2: "B", 3: "c"})

	res := chainmaps.Union(nil, nil, a, b)
	assert.Same(t, a, res)
	assert.Equal(t, 3, res.Size())

	for key, want := range map[uint32]string{1: "a", 2: "b", 3: "c"} {
		v, ok := res.Lookup(key)
		require.True(t, ok)
		assert.Equal(t, want, v, "key %d", key)
	}
}

func TestUnionRightBiased(t *testing.T) {
	a := intMapOf(map[uint32]string{1: "a", 2: "b"})
	b := intMapOf(map[uint32]string{2: "B", 3: "c"})

	var freedVals []string
	res := chainmaps.UnionReversed(nil, nil,
		nil, func(v string) { freedVals = append(freedVals, v) },
		a, b)

	for key, want := range map[uint32]string{1: "a", 2: "B", 3: "c"} {
		v, ok := res.Lookup(key)
		require.True(t, ok)
		assert.Equal(t, want, v, "key %d", key)
	}
	// Only the overwritten destination value was released.
	assert.Equal(t, []string{"b"}, freedVals)
}

func TestUnionNilDestination(t *testing.T) {
	b := intMapOf(map[uint32]string{1: "a", 2: "b"})
	c := intMapOf(map[uint32]string{3: "c"})

	res := chainmaps.Union(nil, nil, nil, b, c)
	assert.NotSame(t, b, res)
	assert.Equal(t, 3, res.Size())
	assert.Equal(t, 2, b.Size())
}

func TestUnionKeyValueCopy(t *testing.T) {
	a := chainmaps.NewStrMap[*int]()
	b := chainmaps.NewStrMap[*int]()
	val := 7
	b.Insert("k", &val)

	res := chainmaps.Union(nil, func(v *int) *int {
		dup := *v
		return &dup
	}, a, b)

	got, ok := res.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, 7, *got)
	src, _ := b.Lookup("k")
	assert.NotSame(t, src, got, "union borrowed instead of copying")
}

func TestIntersection(t *testing.T) {
	a := intMapOf(map[uint32]string{1: "a", 2: "b", 3: "c"})
	b := intMapOf(map[uint32]string{2: "x", 3: "y", 4: "z"})

	var freedKeys []uint32
	res := chainmaps.Intersection(nil, nil,
		func(k uint32) { freedKeys = append(freedKeys, k) }, nil,
		a, b)

	assert.Same(t, a, res)
	assert.Equal(t, 2, res.Size())
	assert.True(t, res.HasKey(2))
	assert.True(t, res.HasKey(3))
	assert.Equal(t, []uint32{1}, freedKeys)

	// Destination values win, the operand's are never read.
	v, _ := res.Lookup(2)
	assert.Equal(t, "b", v)
}

func TestIntersectionForcedShrink(t *testing.T) {
	a := chainmaps.NewIntMap[uint32]()
	for key := uint32(1); key <= 10000; key++ {
		a.Insert(key, key)
	}
	grown := a.BucketCount()

	b := chainmaps.NewIntMap[uint32]()
	for key := uint32(1); key <= 10; key++ {
		b.Insert(key, key)
	}

	// AllowShrink is not set on a, intersection shrinks regardless.
	res := chainmaps.Intersection(nil, nil, nil, nil, a, b)
	assert.Equal(t, 10, res.Size())
	assert.Less(t, res.BucketCount(), grown)
}

func TestDifference(t *testing.T) {
	a := intMapOf(map[uint32]string{1: "a", 2: "b", 3: "c"})
	b := intMapOf(map[uint32]string{2: "x", 4: "z"})

	res := chainmaps.Difference(nil, nil, nil, nil, a, b)
	assert.Equal(t, 2, res.Size())
	assert.True(t, res.HasKey(1))
	assert.True(t, res.HasKey(3))
}

func TestSymmetricDifferenceMaps(t *testing.T) {
	a := intMapOf(map[uint32]string{1: "a", 2: "b"})
	b := intMapOf(map[uint32]string{2: "B", 3: "c"})

	var freedKeys []uint32
	res := chainmaps.SymmetricDifference(nil, nil,
		func(k uint32) { freedKeys = append(freedKeys, k) }, nil,
		a, b)

	assert.Same(t, a, res)
	assert.Equal(t, 2, res.Size())

	v, ok := res.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)
	v, ok = res.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "c", v)

	// The shared key was dropped from the destination with its callback.
	assert.Equal(t, []uint32{2}, freedKeys)
}

func randomKeySet(n int) []uint32 {
	keys := make([]uint32, 0, n)
	for len(keys) < n {
		keys = append(keys, uint32(rand.Intn(5000))+1)
	}
	return keys
}

func mapFromKeys(keys []uint32) *chainmaps.Map[uint32, uint32] {
	m := chainmaps.NewIntMap[uint32]()
	for _, key := range keys {
		m.Add(key, key)
	}
	return m
}

func TestSetAlgebraLaws(t *testing.T) {
	aKeys := randomKeySet(500)
	bKeys := randomKeySet(500)

	// Commutativity over key sets.
	unionAB := chainmaps.Union(nil, nil, nil, mapFromKeys(aKeys), mapFromKeys(bKeys))
	unionBA := chainmaps.Union(nil, nil, nil, mapFromKeys(bKeys), mapFromKeys(aKeys))
	assert.True(t, unionAB.IsEqual(unionBA))

	interAB := chainmaps.Intersection(nil, nil, nil, nil, nil, mapFromKeys(aKeys), mapFromKeys(bKeys))
	interBA := chainmaps.Intersection(nil, nil, nil, nil, nil, mapFromKeys(bKeys), mapFromKeys(aKeys))
	assert.True(t, interAB.IsEqual(interBA))

	// A triangle B == (A union B) minus (A intersect B).
	symAB := chainmaps.SymmetricDifference(nil, nil, nil, nil, nil, mapFromKeys(aKeys), mapFromKeys(bKeys))
	viaUnion := chainmaps.Difference(nil, nil, nil, nil, unionAB, interAB)
	assert.True(t, symAB.IsEqual(viaUnion))

	// A minus B is disjoint from B.
	diffAB := chainmaps.Difference(nil, nil, nil, nil, nil, mapFromKeys(aKeys), mapFromKeys(bKeys))
	assert.True(t, diffAB.IsDisjoint(mapFromKeys(bKeys)))
}

func TestSetAlgebraMismatchedCallbacksPanics(t *testing.T) {
	a := chainmaps.New[uint32, uint32](chainmaps.UintHash, chainmaps.UintEq)
	otherEq := func(x, y uint32) bool { return x != y }
	b := chainmaps.New[uint32, uint32](chainmaps.UintHash, otherEq)

	assert.Panics(t, func() {
		chainmaps.Union(nil, nil, a, b)
	})
}
