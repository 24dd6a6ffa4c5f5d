// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "fmt"

// ErrInvalidArgument reports a malformed call: an operation and the
// offending argument value.
type ErrInvalidArgument struct {
	Op  string
	Arg interface{}
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("heap: invalid argument to %s: %v", e.Op, e.Arg)
}

// ErrExhausted reports that the backing Region refused to grow by the
// requested number of bytes.
type ErrExhausted struct {
	Requested int
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("heap: region exhausted, requested %d bytes", e.Requested)
}

// ErrCorrupt reports a consistency-check failure: which invariant broke,
// at what address, and any extra detail.
type ErrCorrupt struct {
	Kind   string
	Addr   int
	Detail string
}

func (e *ErrCorrupt) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("heap: corrupt: %s at %d", e.Kind, e.Addr)
	}
	return fmt.Sprintf("heap: corrupt: %s at %d: %s", e.Kind, e.Addr, e.Detail)
}
