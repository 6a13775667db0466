package chainmaps_test

import (
	"testing"

	"github.com/EinfachAndy/chainmaps"
)

func BenchmarkInsert(b *testing.B) {
	m := chainmaps.NewIntMap[uint32]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Reinsert(uint32(i), uint32(i), nil, nil)
	}
}

func BenchmarkInsertReserved(b *testing.B) {
	m := chainmaps.NewEx[uint32, uint32](chainmaps.UintHash, chainmaps.UintEq, b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Reinsert(uint32(i), uint32(i), nil, nil)
	}
}

func BenchmarkLookupHit(b *testing.B) {
	const size = 100000
	m := chainmaps.NewIntMap[uint32]()
	for i := uint32(0); i < size; i++ {
		m.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Lookup(uint32(i % size)); !ok {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkLookupMiss(b *testing.B) {
	const size = 100000
	m := chainmaps.NewIntMap[uint32]()
	for i := uint32(0); i < size; i++ {
		m.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Lookup(size + uint32(i)); ok {
			b.Fatal("unexpected key")
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	m := chainmaps.NewIntMap[uint32]()
	for i := uint32(0); i < 10000; i++ {
		m.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum uint32
		for it := m.Iter(); !it.Done(); it.Step() {
			sum += it.Value()
		}
		_ = sum
	}
}
