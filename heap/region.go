// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"encoding/binary"

	"github.com/cznic/mathutil"
)

// Region is the backing storage abstraction the allocator grows into. It
// can only grow (ExtendBy), never shrink or punch holes — simpler than the
// teacher's Filer, which additionally supports truncation and sparse
// holes to serve on-disk storage; none of that applies to an in-memory,
// non-persistent heap.
//
// Addresses are plain int byte offsets, never Go pointers: a Region is
// free to reallocate its backing slice on growth without invalidating any
// address a caller holds.
type Region interface {
	// ExtendBy grows the region by n bytes and returns the address of
	// the first newly added byte.
	ExtendBy(n int) (addr int, err error)
	// LowAddr is the lowest valid address (always 0 for a fresh region).
	LowAddr() int
	// HighAddr is the highest valid address, or -1 for an empty region.
	HighAddr() int
	// ReadWord reads the 32-bit word stored at addr.
	ReadWord(addr int) uint32
	// WriteWord stores w as the 32-bit word at addr.
	WriteWord(addr int, w uint32)
}

// memRegion is a Region backed by a single growable byte slice. Grounded
// on lldb's MemFiler, minus the page table: MemFiler pages a
// map[int64]*[pgSize]byte so it can truncate and punch holes cheaply for
// on-disk-like semantics; a heap region only ever grows, so the extra
// indirection buys nothing here.
type memRegion struct {
	buf []byte
}

// NewMemRegion returns an empty, growth-only in-memory Region.
func NewMemRegion() Region {
	return &memRegion{}
}

func (r *memRegion) ExtendBy(n int) (int, error) {
	if n <= 0 {
		return 0, &ErrInvalidArgument{Op: "ExtendBy", Arg: n}
	}
	addr := len(r.buf)
	want := mathutil.Max(len(r.buf)+n, len(r.buf))
	r.buf = append(r.buf, make([]byte, want-len(r.buf))...)
	return addr, nil
}

func (r *memRegion) LowAddr() int { return 0 }

func (r *memRegion) HighAddr() int { return len(r.buf) - 1 }

func (r *memRegion) ReadWord(addr int) uint32 {
	return binary.BigEndian.Uint32(r.buf[addr : addr+wordSize])
}

func (r *memRegion) WriteWord(addr int, w uint32) {
	binary.BigEndian.PutUint32(r.buf[addr:addr+wordSize], w)
}
