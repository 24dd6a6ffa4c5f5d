// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "testing"

func TestReallocateNullIsAllocate(t *testing.T) {
	a := newTestAllocator(t)
	bp, err := a.Reallocate(0, 64)
	if err != nil {
		t.Fatalf("Reallocate(0, 64): %v", err)
	}
	if bp == 0 {
		t.Fatal("Reallocate(0, 64) returned null")
	}
	if !a.Check() {
		t.Fatal("inconsistent after Reallocate(0, size)")
	}
}

func TestReallocateZeroIsFree(t *testing.T) {
	a := newTestAllocator(t)
	bp, _ := a.Allocate(128)
	freeCountBefore := a.freeCount

	nbp, err := a.Reallocate(bp, 0)
	if err != nil {
		t.Fatalf("Reallocate(bp, 0): %v", err)
	}
	if nbp != 0 {
		t.Fatalf("Reallocate(bp, 0) = %d, want 0", nbp)
	}
	// bp's next neighbor is the free remainder of the block it was split
	// from, so freeing bp merges into it and the free count is unchanged.
	if a.isAllocated(bp) || a.freeCount != freeCountBefore {
		t.Fatalf("Reallocate(bp, 0) did not free and coalesce the block: freeCount before=%d after=%d", freeCountBefore, a.freeCount)
	}
	if !a.Check() {
		t.Fatal("inconsistent after Reallocate(bp, 0)")
	}
}

// Case A: shrinking in place must not move the block.
func TestReallocateShrinkInPlace(t *testing.T) {
	a := newTestAllocator(t)
	bp, _ := a.Allocate(512)

	nbp, err := a.Reallocate(bp, 16)
	if err != nil {
		t.Fatalf("Reallocate shrink: %v", err)
	}
	if nbp != bp {
		t.Fatalf("shrink moved the block: %d -> %d", bp, nbp)
	}
	if !a.Check() {
		t.Fatal("inconsistent after shrink")
	}
}

// Reallocating to the same aligned size keeps the address and the block
// size. bp's next neighbor is the free remainder here, so the call goes
// through case B with zero extra bytes rather than reaching case D.
func TestReallocateSameAlignedSizeNoOp(t *testing.T) {
	a := newTestAllocator(t)
	bp, _ := a.Allocate(100)
	size := a.blockSize(bp)

	// Request a size that rounds to the identical block size.
	nbp, err := a.Reallocate(bp, 100)
	if err != nil {
		t.Fatalf("Reallocate same-size: %v", err)
	}
	if nbp != bp {
		t.Fatalf("identical-size reallocate moved the block: %d -> %d", bp, nbp)
	}
	if a.blockSize(bp) != size {
		t.Fatalf("identical-size reallocate changed block size: %d -> %d", size, a.blockSize(bp))
	}
}

// Case B: growing into a free next neighbor must keep the address.
func TestReallocateGrowIntoNextFree(t *testing.T) {
	a := newTestAllocator(t)
	// Sizes kept above smallCutoff so both blocks come from the main
	// region rather than the small-object arena — otherwise bp's actual
	// next neighbor would be the arena's own residue, not next.
	bp, _ := a.Allocate(200)
	next, _ := a.Allocate(512)
	a.Free(next)

	nbp, err := a.Reallocate(bp, 400)
	if err != nil {
		t.Fatalf("Reallocate grow-into-next: %v", err)
	}
	if nbp != bp {
		t.Fatalf("grow-into-next-free moved the block: %d -> %d", bp, nbp)
	}
	if !a.Check() {
		t.Fatal("inconsistent after grow-into-next-free")
	}
}

// Case E: when neither in-place path applies, the payload must survive
// the relocation intact.
func TestReallocateFallbackPreservesPayload(t *testing.T) {
	a := newTestAllocator(t)
	bp, _ := a.Allocate(32)
	for i := 0; i < 32; i += wordSize {
		a.writeWord(bp+i, uint32(0xdeadbeef^uint32(i)))
	}
	// Sandwich bp between two allocated blocks so no in-place path applies.
	guard1, _ := a.Allocate(32)
	_ = guard1

	nbp, err := a.Reallocate(bp, 4096)
	if err != nil {
		t.Fatalf("Reallocate fallback: %v", err)
	}
	if nbp == 0 {
		t.Fatal("Reallocate fallback returned null")
	}
	for i := 0; i < 32; i += wordSize {
		want := uint32(0xdeadbeef ^ uint32(i))
		if got := a.readWord(nbp + i); got != want {
			t.Fatalf("payload corrupted at offset %d: got %#x, want %#x", i, got, want)
		}
	}
	if !a.Check() {
		t.Fatal("inconsistent after fallback reallocate")
	}
}
