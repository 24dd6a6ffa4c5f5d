// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// Allocator is a single-tenant dynamic storage allocator over a Region:
// malloc/free/realloc with in-band block headers and footers, an
// explicit free list, immediate coalescing, adaptive heap-extension
// sizing and a small-object arena.
//
// Not safe for concurrent use — one goroutine at a time, or guard it with
// a mutex, exactly as lldb's Filer/Allocator types require of their
// callers.
type Allocator struct {
	region Region

	heapBase   int // address of the prologue pseudo-block (size 8, always allocated)
	freeHead   int // address of the first free-list member, 0 if none
	freeCount  int
	chunkSize  int
	smallArena int // address of the current small-object arena block, 0 before init
}

// NewAllocator builds an Allocator over region and runs its initial
// layout (prologue, epilogue, first free extension, small-object arena
// reservation).
func NewAllocator(region Region) (*Allocator, error) {
	a := &Allocator{region: region}
	if err := a.Init(); err != nil {
		return nil, err
	}
	return a, nil
}

// Init (re)lays out the allocator's state from scratch: a fresh prologue
// and epilogue, one initial free extension sized by the default chunk
// size, and the small-object arena reservation. Exposed as its own
// operation, distinct from construction, since resetting process-wide
// allocator state is itself a named operation.
func (a *Allocator) Init() error {
	a.freeHead = 0
	a.freeCount = 0
	a.smallArena = 0
	a.chunkSize = defaultChunkSize

	base, err := a.region.ExtendBy(4 * wordSize)
	if err != nil {
		return &ErrExhausted{Requested: 4 * wordSize}
	}
	a.writeWord(base, 0)                             // alignment padding
	a.writeWord(base+wordSize, pack(dSize, true))     // prologue header
	a.writeWord(base+2*wordSize, pack(dSize, true))   // prologue footer
	a.writeWord(base+3*wordSize, pack(0, true))       // epilogue header
	a.heapBase = base + 2*wordSize

	if _, err := a.extendHeap(a.chunkSize / wordSize); err != nil {
		return err
	}

	arenaBp, err := a.allocateAligned(alignedSize(smallArenaSize))
	if err != nil {
		return err
	}
	a.smallArena = arenaBp
	return nil
}

// Allocate returns the address of a newly carved-out block able to hold
// at least size bytes, or an error if growing the region failed.
// Allocate(0) returns (0, nil): the null allocation.
func (a *Allocator) Allocate(size int) (int, error) {
	if size == 0 {
		return 0, nil
	}
	asize := alignedSize(size)
	if asize < smallCutoff {
		if bp, ok := a.tryArenaAlloc(asize); ok {
			return bp, nil
		}
	}
	return a.allocateAligned(asize)
}

// allocateAligned is Allocate's general path (fit, else extend-and-fit),
// bypassing the small-object arena — used both by Allocate for requests
// the arena can't or shouldn't serve, and internally to reserve/replenish
// the arena itself.
func (a *Allocator) allocateAligned(asize int) (int, error) {
	if bp := a.findFit(asize); bp != 0 {
		a.place(bp, asize)
		return bp, nil
	}
	words := a.nextChunkWords(asize)
	bp, err := a.extendHeap(words)
	if err != nil {
		return 0, err
	}
	a.place(bp, asize)
	return bp, nil
}

// Free returns ptr's block to the free list and coalesces it with any
// free neighbor. Free(0) is a no-op.
func (a *Allocator) Free(ptr int) {
	if ptr == 0 {
		return
	}
	size := a.blockSize(ptr)
	a.setHeaderFooter(ptr, size, false)
	a.insertHead(ptr)
	a.coalesce(ptr)
}
