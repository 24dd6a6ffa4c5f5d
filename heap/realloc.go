// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/cznic/mathutil"

// Reallocate resizes the block at ptr to hold newSize bytes, returning
// the (possibly new) address or an error if growth required extending
// the region and the region refused.
//
// Mirrors the five short-circuited cases of the original design: a
// ptr==0 call behaves as Allocate, a newSize==0 call behaves as Free.
// Otherwise, in order: (A) shrink in place; (B) grow in place by
// absorbing a free next neighbor; (C) grow by merging into a free
// previous neighbor, relocating the payload backward; (D) no-op when the
// aligned size is unchanged; (E) fall back to allocate+copy+free. Cases
// B, C and D are mutually exclusive exactly as they would be written as
// an if/else-if chain: once B's precondition (next neighbor free) holds,
// an internally-too-small next neighbor falls straight through to E
// without considering C or D, even if one of those would have fit.
//
// The payload copy in cases C and E is bounded by min(old payload bytes,
// new payload bytes) rather than copying a fixed new-size span, so it
// can never read past the source block's actual payload nor write past
// the destination's.
//
// Case A's residue goes through placeInAllocated, which coalesces it
// with a free next neighbor before returning — ptr was already a live
// allocated block, so unlike a fresh free-list placement its next
// neighbor may already be free, and skipping that merge would leave two
// adjacent free blocks.
func (a *Allocator) Reallocate(ptr, newSize int) (int, error) {
	if ptr == 0 {
		return a.Allocate(newSize)
	}
	if newSize == 0 {
		a.Free(ptr)
		return 0, nil
	}

	asize := alignedSize(newSize)
	csize := a.blockSize(ptr)

	if asize < csize {
		a.placeInAllocated(ptr, asize)
		return ptr, nil
	}

	nextBp := a.nextBlock(ptr)
	if !a.isAllocated(nextBp) {
		n := a.blockSize(nextBp)
		extra := asize - csize
		switch {
		case n-extra >= minBlockSize:
			a.unlink(nextBp)
			a.setHeaderFooter(ptr, asize, true)
			residue := ptr + asize
			a.setHeaderFooter(residue, n-extra, false)
			a.insertHead(residue)
			return ptr, nil
		case n >= extra:
			a.unlink(nextBp)
			a.setHeaderFooter(ptr, csize+n, true)
			return ptr, nil
		}
		return a.reallocFallback(ptr, newSize)
	}

	prevBp := a.prevBlock(ptr)
	if !a.isAllocated(prevBp) {
		p := a.blockSize(prevBp)
		total := csize + p
		switch {
		case total-asize >= minBlockSize:
			n := mathutil.Min(csize-dSize, asize-dSize)
			a.unlink(prevBp)
			a.copyPayloadN(prevBp, ptr, n)
			a.setHeaderFooter(prevBp, asize, true)
			residue := prevBp + asize
			a.setHeaderFooter(residue, total-asize, false)
			a.insertHead(residue)
			return prevBp, nil
		case total >= asize:
			n := mathutil.Min(csize-dSize, asize-dSize)
			a.unlink(prevBp)
			a.copyPayloadN(prevBp, ptr, n)
			a.setHeaderFooter(prevBp, total, true)
			return prevBp, nil
		}
		return a.reallocFallback(ptr, newSize)
	}

	if asize == csize {
		return ptr, nil
	}

	return a.reallocFallback(ptr, newSize)
}

func (a *Allocator) reallocFallback(ptr, newSize int) (int, error) {
	newBp, err := a.Allocate(newSize)
	if err != nil || newBp == 0 {
		return 0, err
	}
	n := mathutil.Min(a.payloadLen(ptr), a.payloadLen(newBp))
	a.copyPayloadN(newBp, ptr, n)
	a.Free(ptr)
	return newBp, nil
}
