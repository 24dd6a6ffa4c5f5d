// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "testing"

func TestPackRoundTrip(t *testing.T) {
	for _, size := range []int{16, 24, 1024, 1 << 20} {
		for _, alloc := range []bool{true, false} {
			w := pack(size, alloc)
			if got := sizeOf(w); got != size {
				t.Fatalf("pack(%d,%v): sizeOf = %d, want %d", size, alloc, got, size)
			}
			if got := allocOf(w); got != alloc {
				t.Fatalf("pack(%d,%v): allocOf = %v, want %v", size, alloc, got, alloc)
			}
		}
	}
}

func TestAlignedSize(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, minBlockSize},
		{1, minBlockSize},
		{8, minBlockSize},
		{9, 24},
		{100, 112},
		{1500, 1512},
	}
	for _, c := range cases {
		if got := alignedSize(c.n); got != c.want {
			t.Fatalf("alignedSize(%d) = %d, want %d", c.n, got, c.want)
		}
		if got := alignedSize(c.n); got%dSize != 0 {
			t.Fatalf("alignedSize(%d) = %d not a multiple of %d", c.n, got, dSize)
		}
	}
}
