// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// coalesce merges bp with any free neighbor(s). bp MUST already be a
// free-list member (inserted by the caller) before this runs.
//
// The four cases, as spec'd: both neighbors allocated (no-op), only the
// next neighbor free (absorb forward), only the previous neighbor free
// (absorb backward), both free (absorb both). For the backward-merging
// cases the surviving block address changes from bp to the previous
// block's address; rather than patch list pointers in place to preserve
// bp's position (ambiguous when bp was just inserted at the head), this
// fully unlinks every block being merged and reinserts the merged result
// at the head. That keeps free_count exactly balanced (one unlink per
// one insert per participant) regardless of the merge shape.
func (a *Allocator) coalesce(bp int) int {
	prevBp := a.prevBlock(bp)
	nextBp := a.nextBlock(bp)
	prevAlloc := a.isAllocated(prevBp)
	nextAlloc := a.isAllocated(nextBp)
	size := a.blockSize(bp)

	switch {
	case prevAlloc && nextAlloc:
		return bp

	case prevAlloc && !nextAlloc:
		nextSize := a.blockSize(nextBp)
		a.unlink(nextBp)
		a.setHeaderFooter(bp, size+nextSize, false)
		return bp

	case !prevAlloc && nextAlloc:
		prevSize := a.blockSize(prevBp)
		a.unlink(bp)
		a.unlink(prevBp)
		a.setHeaderFooter(prevBp, prevSize+size, false)
		a.insertHead(prevBp)
		return prevBp

	default: // both free
		prevSize := a.blockSize(prevBp)
		nextSize := a.blockSize(nextBp)
		a.unlink(bp)
		a.unlink(prevBp)
		a.unlink(nextBp)
		a.setHeaderFooter(prevBp, prevSize+size+nextSize, false)
		a.insertHead(prevBp)
		return prevBp
	}
}
