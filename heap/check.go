// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// CheckStats reports the figures a Verify pass counted, for a caller
// that wants the numbers alongside the pass/fail verdict.
type CheckStats struct {
	FreeBlocks int
	TotalBytes int
}

// Check runs a full consistency pass silently and reports only whether
// the heap is internally consistent. Equivalent to Verify(nil, nil).
func (a *Allocator) Check() bool {
	return a.Verify(nil, nil)
}

// Verify walks the free list and the heap block-by-block, cross-checking
// every invariant spec.md names: every free-list member is actually
// free, header and footer agree, no two free blocks are ever adjacent,
// and the free-list walk's block count matches the heap walk's free
// count. Diagnostics are reported through log, one call per finding; log
// returning false stops the pass early (grounded on lldb.Allocator.Verify's
// own log func(error) bool, cap-the-output convention). A nil log reports
// nothing but still computes the final verdict. A non-nil stats is
// filled in with the heap-walk's tally regardless of verdict.
func (a *Allocator) Verify(log func(error) bool, stats *CheckStats) bool {
	if log == nil {
		log = func(error) bool { return true }
	}
	ok := true
	stop := false
	report := func(err error) {
		ok = false
		if stop {
			return
		}
		if !log(err) {
			stop = true
		}
	}

	freeListCount := 0
	for bp := a.freeHead; bp != 0 && !stop; bp = a.nextFree(bp) {
		if freeListCount > a.freeCount {
			report(&ErrCorrupt{Kind: "free-list-cycle", Addr: bp})
			break
		}
		if a.isAllocated(bp) {
			report(&ErrCorrupt{Kind: "free-list-member-allocated", Addr: bp})
		}
		if a.header(bp) != a.footer(bp) {
			report(&ErrCorrupt{Kind: "header-footer-mismatch", Addr: bp})
		}
		freeListCount++
	}
	if freeListCount != a.freeCount {
		report(&ErrCorrupt{Kind: "free-count-mismatch", Detail: "free list walk disagrees with tracked count"})
	}

	low, high := a.region.LowAddr(), a.region.HighAddr()
	heapFreeCount := 0
	totalBytes := 0
	lastWasFree := false
	for bp := a.heapBase; !stop; bp = a.nextBlock(bp) {
		if bp < low || bp > high+1 {
			report(&ErrCorrupt{Kind: "block-out-of-bounds", Addr: bp})
			break
		}
		size := a.blockSize(bp)
		if size == 0 {
			break // epilogue
		}
		if bp%dSize != 0 {
			report(&ErrCorrupt{Kind: "misaligned-payload", Addr: bp})
		}
		if size%dSize != 0 {
			report(&ErrCorrupt{Kind: "misaligned-block", Addr: bp})
		}
		totalBytes += size
		free := !a.isAllocated(bp)
		if free && lastWasFree {
			report(&ErrCorrupt{Kind: "adjacent-free-blocks", Addr: bp})
		}
		lastWasFree = free
		if free {
			heapFreeCount++
		}
	}

	if heapFreeCount != freeListCount {
		report(&ErrCorrupt{Kind: "free-list-heap-mismatch", Detail: "heap walk free-block count disagrees with free list"})
	}

	if stats != nil {
		stats.FreeBlocks = heapFreeCount
		stats.TotalBytes = totalBytes
	}
	return ok
}
