// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// Free-list pointers live in the first two words of a free block's
// payload: prev at offset 0, next at offset wordSize. 0 means "none" —
// safe as a sentinel because no block ever begins at address 0 (it holds
// the alignment padding word in front of the prologue).

func (a *Allocator) prevFree(bp int) int   { return int(a.readWord(bp)) }
func (a *Allocator) setPrevFree(bp, v int) { a.writeWord(bp, uint32(v)) }
func (a *Allocator) nextFree(bp int) int   { return int(a.readWord(bp + wordSize)) }
func (a *Allocator) setNextFree(bp, v int) { a.writeWord(bp+wordSize, uint32(v)) }

// insertHead splices bp onto the front of the free list.
func (a *Allocator) insertHead(bp int) {
	a.setPrevFree(bp, 0)
	a.setNextFree(bp, a.freeHead)
	if a.freeHead != 0 {
		a.setPrevFree(a.freeHead, bp)
	}
	a.freeHead = bp
	a.freeCount++
}

// unlink splices bp out of the free list. bp MUST currently be a member.
func (a *Allocator) unlink(bp int) {
	prev := a.prevFree(bp)
	next := a.nextFree(bp)
	if prev != 0 {
		a.setNextFree(prev, next)
	} else {
		a.freeHead = next
	}
	if next != 0 {
		a.setPrevFree(next, prev)
	}
	a.freeCount--
}
