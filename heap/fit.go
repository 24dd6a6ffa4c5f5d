// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// bestFitThreshold is the free-list length below which findFit does a
// full best-fit scan; at or above it, findFit switches to first-fit to
// keep allocation cost from growing with a long free list.
const bestFitThreshold = 25

// findFit returns the address of a free block of at least asize bytes,
// or 0 if none exists.
func (a *Allocator) findFit(asize int) int {
	if a.freeCount < bestFitThreshold {
		best := 0
		bestSize := 0
		for bp := a.freeHead; bp != 0; bp = a.nextFree(bp) {
			sz := a.blockSize(bp)
			if sz >= asize && (best == 0 || sz < bestSize) {
				best, bestSize = bp, sz
			}
		}
		return best
	}
	for bp := a.freeHead; bp != 0; bp = a.nextFree(bp) {
		if a.blockSize(bp) >= asize {
			return bp
		}
	}
	return 0
}
