// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// Small-object arena: one block, reserved at init time and never allowed
// to reach the general free list, that serves allocation requests whose
// aligned block size (header and footer included) is strictly under
// smallCutoff bytes by bump-allocating out of its own payload, as long as
// the arena has room for them. It is always marked allocated so the coalescer leaves it
// alone — a third ownership state beyond "free" and "caller-owned".
const (
	smallArenaSize = 1500
	smallCutoff    = 100
)

// tryArenaAlloc attempts to satisfy an asize-byte request (asize already
// double-word aligned, including header/footer) out of the small-object
// arena. ok is false if the arena isn't ready yet or the request is
// larger than the arena's current remainder, in which case the caller
// MUST fall back to the normal fit/extend path.
func (a *Allocator) tryArenaAlloc(asize int) (bp int, ok bool) {
	if a.smallArena == 0 {
		return 0, false
	}
	csize := a.blockSize(a.smallArena)

	switch {
	case asize < csize && csize-asize >= minBlockSize:
		ret := a.smallArena
		a.setHeaderFooter(ret, asize, true)
		residue := ret + asize
		a.setHeaderFooter(residue, csize-asize, true)
		a.smallArena = residue
		return ret, true

	case asize <= csize:
		ret := a.smallArena
		a.setHeaderFooter(ret, csize, true)
		newArena, err := a.allocateAligned(alignedSize(smallArenaSize))
		if err != nil {
			a.smallArena = 0
		} else {
			a.smallArena = newArena
		}
		return ret, true

	default:
		return 0, false
	}
}
