// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package heap implements a single-tenant dynamic storage allocator: malloc,
free and realloc over one contiguous, monotonically-growable backing
region (a Region).

The terms MUST or MUST NOT, if/where used in the documentation of
Allocator, written in all caps as seen here, are a requirement for any
possible alternative implementations aiming for compatibility with this
one.

Region

A Region is an abstraction of the raw backing storage: it can only grow
(ExtendBy), never shrink, and exposes the current low/high address bounds.
It is the sole place where this package performs unaligned raw word
reads/writes; everything above it addresses blocks by int byte offset,
never by Go pointer.

Blocks

Every block, free or allocated, has the form

	[ header(4) ][ payload... ][ footer(4) ]

Header and footer each encode one 32-bit word: size (top 29 bits, a
multiple of 8) packed with an allocated bit (bit 0). Header and footer of
the same block MUST carry identical encodings except during transient
mid-operation updates.

A free block additionally stores, in the first two words of its payload,
the previous and next free block addresses (0 meaning "none"). The
minimum block size is 16 bytes: 4 header + 4 prev + 4 next + 4 footer.

Free list

A doubly linked, LIFO, explicit free list anchored by a single nullable
head address, with an exactly-maintained length counter. Newly freed
blocks are coalesced immediately with any free neighbor before being
considered settled.

Placement policy

Fit selection is best-fit while the free list holds fewer than
bestFitThreshold blocks, first-fit once it reaches that many, trading
search quality for search cost as the list lengthens.

Small-object arena

A single reserved block of approximately smallArenaSize bytes is carved
from the front for every allocation whose aligned block size (header
and footer included) is strictly under smallCutoff bytes,
to keep small-object splinters from scattering through the general free
list. The arena itself is always marked allocated so the coalescer never
touches it; it is a third ownership state, neither free-list member nor
caller-owned.
*/
package heap
