// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/cznic/mathutil"

// Adaptive heap-extension chunk sizing: the chunk size is not fixed but
// is stepped by chunkStep on every failed fit, up for a request below
// chunkSize+chunkStep and down for a request more than chunkStep above
// chunkSize, within [minChunkSize, maxChunkSize].
const (
	defaultChunkSize = 1 << 11 // 2048
	minChunkSize     = 1 << 9  // 512
	maxChunkSize     = 1 << 30
	chunkStep        = 1024
)

// nextChunkWords steps a.chunkSize by chunkStep (up when asize is below
// chunkSize+chunkStep, down when asize-chunkStep exceeds it, clamped) and
// returns the number of words the next extendHeap call should request:
// max(asize, chunkSize) bytes, in words.
func (a *Allocator) nextChunkWords(asize int) int {
	switch {
	case asize < a.chunkSize+chunkStep:
		a.chunkSize += chunkStep
	case asize-chunkStep > a.chunkSize:
		a.chunkSize -= chunkStep
	}
	a.chunkSize = mathutil.Max(a.chunkSize, minChunkSize)
	a.chunkSize = mathutil.Min(a.chunkSize, maxChunkSize)

	extend := mathutil.Max(asize, a.chunkSize)
	return (extend + wordSize - 1) / wordSize
}

// extendHeap grows the region by words*wordSize bytes (rounded to an even
// word count so the result stays double-word aligned), reusing the
// current epilogue's slot as the new block's header, writes a fresh
// epilogue at the new end of the region, links the new block into the
// free list and runs the coalescer over it — it may be absorbing a free
// block that was sitting at the old heap's tail. Returns the (possibly
// coalesced) free block's address.
func (a *Allocator) extendHeap(words int) (int, error) {
	if words%2 != 0 {
		words++
	}
	size := words * wordSize
	if size < minBlockSize {
		size = minBlockSize
	}

	bp, err := a.region.ExtendBy(size)
	if err != nil {
		return 0, &ErrExhausted{Requested: size}
	}

	a.setHeaderFooter(bp, size, false)
	a.writeWord(bp+size-wordSize, pack(0, true))

	a.insertHead(bp)
	return a.coalesce(bp), nil
}
