// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements the execution context that runs data-parallel grid kernels and
// tree-based sum reductions
package par

import (
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/exascience/pargo/parallel"
)

// DefaultGroupSize is the canonical number of lanes combined by one reduction group.
// Sums are bitwise reproducible for a fixed group size, whatever the number of workers.
const DefaultGroupSize = 64

// Executor holds the execution context passed to every kernel
type Executor struct {
	GroupSize int // lanes per reduction group; an even power of two
	Workers   int // number of batches run in parallel; 0 => runtime.GOMAXPROCS

	// reduction workspace
	ping []float64 // group partial sums of fused kernels
	pong []float64 // output of each halving stage

	closed bool // Close was called
}

// NewExecutor returns a new execution context
//  Input:
//   groupSize -- lanes per reduction group; 0 => DefaultGroupSize
//   workers   -- number of parallel batches; 0 => runtime.GOMAXPROCS(0)
func NewExecutor(groupSize, workers int) (o *Executor, err error) {
	if groupSize == 0 {
		groupSize = DefaultGroupSize
	}
	if !ValidGroupSize(groupSize) {
		return nil, chk.Err("reduction group size must be an even power of two. %d is invalid", groupSize)
	}
	if workers < 0 {
		return nil, chk.Err("number of workers must be non-negative. %d is invalid", workers)
	}
	return &Executor{GroupSize: groupSize, Workers: workers}, nil
}

// ValidGroupSize tells whether n can be used as a reduction group size
func ValidGroupSize(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// Close releases the reduction workspace. The executor must not be used afterwards
func (o *Executor) Close() {
	o.ping = nil
	o.pong = nil
	o.closed = true
}

// For runs f(i) for every i in [0,n) and returns after all work items have finished
func (o *Executor) For(n int, f func(i int)) {
	o.alive()
	o.batches(n, func(low, high int) {
		for i := low; i < high; i++ {
			f(i)
		}
	})
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Executor) alive() {
	if o.closed {
		chk.Panic("executor has been closed")
	}
}

// batches splits [0,n) among the workers
func (o *Executor) batches(n int, f func(low, high int)) {
	if n <= 0 {
		return
	}
	w := o.Workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	if w < 2 {
		f(0, n)
		return
	}
	parallel.Range(0, n, w, f)
}

// groups runs fn for every group in [0,ngroups); each batch owns one local buffer of size width
func (o *Executor) groups(ngroups, width int, fn func(grp int, local []float64)) {
	o.batches(ngroups, func(low, high int) {
		local := make([]float64, width)
		for grp := low; grp < high; grp++ {
			fn(grp, local)
		}
	})
}

func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}
