// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heapdemo exercises a heap.Allocator with randomized
// allocate/free/reallocate bursts and periodic consistency checks. It is
// a soak/demo driver, not a trace-file replayer: it takes no input
// trace, only flag-tunable knobs.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/cznic-contrib/heapalloc/heap"
)

var (
	ops        = flag.Int("n", 200000, "number of randomized operations to run")
	seed       = flag.Int64("seed", 1, "PRNG seed")
	maxReq     = flag.Int("maxreq", 4096, "maximum payload bytes per allocate/reallocate request")
	checkEvery = flag.Int("checkevery", 1000, "run a consistency Check after every this many operations (0 disables periodic checks)")
	verbose    = flag.Bool("v", false, "log every operation")
)

func main() {
	flag.Parse()

	a, err := heap.NewAllocator(heap.NewMemRegion())
	if err != nil {
		log.Fatalf("heap.NewAllocator: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	live := map[int]int{}
	var liveAddrs []int

	var nAlloc, nFree, nRealloc, nExhausted int
	t0 := time.Now()
	secs := time.Tick(time.Second)

	for i := 0; i < *ops; i++ {
		select {
		case <-secs:
			runtime.GC()
		default:
		}

		op := rng.Intn(3)
		if len(liveAddrs) == 0 {
			op = 0
		}

		switch op {
		case 0:
			size := 1 + rng.Intn(*maxReq)
			bp, err := a.Allocate(size)
			if err != nil {
				nExhausted++
				if *verbose {
					log.Printf("allocate(%d): %v", size, err)
				}
				continue
			}
			nAlloc++
			if bp != 0 {
				live[bp] = size
				liveAddrs = append(liveAddrs, bp)
			}
		case 1:
			idx := rng.Intn(len(liveAddrs))
			bp := liveAddrs[idx]
			a.Free(bp)
			nFree++
			delete(live, bp)
			liveAddrs[idx] = liveAddrs[len(liveAddrs)-1]
			liveAddrs = liveAddrs[:len(liveAddrs)-1]
		default:
			idx := rng.Intn(len(liveAddrs))
			bp := liveAddrs[idx]
			size := 1 + rng.Intn(*maxReq)
			nbp, err := a.Reallocate(bp, size)
			if err != nil {
				nExhausted++
				if *verbose {
					log.Printf("reallocate(%d, %d): %v", bp, size, err)
				}
				continue
			}
			nRealloc++
			delete(live, bp)
			if nbp != 0 {
				live[nbp] = size
				liveAddrs[idx] = nbp
			} else {
				liveAddrs[idx] = liveAddrs[len(liveAddrs)-1]
				liveAddrs = liveAddrs[:len(liveAddrs)-1]
			}
		}

		if *checkEvery > 0 && i%*checkEvery == 0 {
			var stats heap.CheckStats
			reported := 0
			ok := a.Verify(func(err error) bool {
				reported++
				log.Print(err)
				return reported < 20
			}, &stats)
			if !ok {
				log.Fatalf("heap inconsistent after %d ops (free blocks=%d, total bytes=%d)", i, stats.FreeBlocks, stats.TotalBytes)
			}
		}
	}

	if !a.Check() {
		log.Fatal("heap inconsistent at end of run")
	}

	fmt.Printf("ops=%d alloc=%d free=%d realloc=%d exhausted=%d live=%d elapsed=%s\n",
		*ops, nAlloc, nFree, nRealloc, nExhausted, len(liveAddrs), time.Since(t0))
}
