package chainmaps

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// cacheLineSize tracks the target architecture through the padding type.
const cacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// poolChunkEntries returns the number of entries per pool chunk: a budget
// of 64 entries, rounded up to whole cache lines so a chunk has no unused
// tail inside its last line.
func poolChunkEntries(entrySize uintptr) int {
	bytes := 64 * entrySize
	bytes = (bytes + cacheLineSize - 1) / cacheLineSize * cacheLineSize
	return int(bytes / entrySize)
}

// entryPool hands out fixed-size entry records in O(1). Records come from
// chunk allocations and are recycled over a free list that is threaded
// through the entries' own next links, so the pool needs no extra storage
// per record. Every live entry of a table sits in exactly one bucket chain;
// freed entries sit on this list until reused.
type entryPool[K, V any] struct {
	chunks   [][]entry[K, V]
	freeList *entry[K, V]
	perChunk int
	inUse    int
}

func (p *entryPool[K, V]) init() {
	p.perChunk = poolChunkEntries(unsafe.Sizeof(entry[K, V]{}))
}

func (p *entryPool[K, V]) grow() {
	chunk := make([]entry[K, V], p.perChunk)
	p.chunks = append(p.chunks, chunk)
	for i := range chunk {
		chunk[i].next = p.freeList
		p.freeList = &chunk[i]
	}
}

// alloc returns a zeroed record. The caller fills all fields.
func (p *entryPool[K, V]) alloc() *entry[K, V] {
	if p.freeList == nil {
		p.grow()
	}
	e := p.freeList
	p.freeList = e.next
	e.next = nil
	p.inUse++
	return e
}

// free recycles a record obtained from alloc. The record is wiped so the
// garbage collector doesn't see stale key/value references.
func (p *entryPool[K, V]) free(e *entry[K, V]) {
	*e = entry[K, V]{}
	e.next = p.freeList
	p.freeList = e
	p.inUse--
}

// clear wipes all live records without releasing every chunk: enough
// chunks for retain entries (at least one) are kept for reuse.
func (p *entryPool[K, V]) clear(retain int) {
	if len(p.chunks) == 0 {
		p.freeList = nil
		p.inUse = 0
		return
	}
	keep := (retain + p.perChunk - 1) / p.perChunk
	keep = Min(Max(keep, 1), len(p.chunks))
	p.chunks = p.chunks[:keep]

	p.freeList = nil
	for ci := range p.chunks {
		chunk := p.chunks[ci]
		for i := range chunk {
			chunk[i] = entry[K, V]{}
			chunk[i].next = p.freeList
			p.freeList = &chunk[i]
		}
	}
	p.inUse = 0
}

func (p *entryPool[K, V]) destroy() {
	p.chunks = nil
	p.freeList = nil
	p.inUse = 0
}

// count returns the number of live records, used by table assertions.
func (p *entryPool[K, V]) count() int {
	return p.inUse
}
