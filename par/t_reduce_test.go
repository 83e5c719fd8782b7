// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func newExecutor(tst *testing.T, groupSize, workers int) *Executor {
	ex, err := NewExecutor(groupSize, workers)
	if err != nil {
		tst.Fatalf("NewExecutor failed:\n%v", err)
	}
	return ex
}

func randomArray(n int, seed int64) []float64 {
	rnd := rand.New(rand.NewSource(seed))
	a := make([]float64, n)
	for i := range a {
		a[i] = rnd.Float64()*2 - 1
	}
	return a
}

func Test_reduce01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce01. constant arrays")

	ex := newExecutor(tst, 0, 0)
	defer ex.Close()

	v := 0.1
	for _, n := range []int{1, 2, 3, 63, 64, 65, 127, 1000, 4097, 70000} {
		a := make([]float64, n)
		for i := range a {
			a[i] = v
		}
		res := ex.Reduce(a)
		io.Pforan("n = %5d  sum = %v\n", n, res)
		chk.Float64(tst, io.Sf("sum(n=%d)", n), float64(n)*v*1e-14, res, float64(n)*v)
	}
}

func Test_reduce02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce02. bitwise reproducible for any number of workers")

	n := 12345
	orig := randomArray(n, 1234)
	correct := floats.Sum(orig)

	var first float64
	for k, workers := range []int{1, 2, 3, 7, 16} {
		ex := newExecutor(tst, DefaultGroupSize, workers)
		a := make([]float64, n)
		copy(a, orig)
		res := ex.Reduce(a)
		ex.Close()
		chk.Float64(tst, "sum", 1e-10, res, correct)
		if k == 0 {
			first = res
			continue
		}
		if res != first {
			tst.Errorf("sum with %d workers (%v) differs from sum with 1 worker (%v)", workers, res, first)
		}
	}
}

func Test_reduce03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce03. short arrays")

	ex := newExecutor(tst, 0, 4)
	defer ex.Close()

	chk.Float64(tst, "empty", 1e-17, ex.Reduce(nil), 0)
	chk.Float64(tst, "one", 1e-17, ex.Reduce([]float64{math.Pi}), math.Pi)
	chk.Float64(tst, "two", 1e-15, ex.Reduce([]float64{1, 2}), 3)
	chk.Float64(tst, "map one", 1e-17, ex.MapReduce(1, func(i int) float64 { return 7 }), 7)
	chk.Float64(tst, "map none", 1e-17, ex.MapReduce(0, func(i int) float64 { return 7 }), 0)

	// the tree order is fixed: ((1e16 + 1) + (-1e16 + 1)) with group size 2
	ex2 := newExecutor(tst, 2, 1)
	chk.Float64(tst, "tree order", 1e-17, ex2.Reduce([]float64{1e16, 1, -1e16, 1}), 0)
}

func Test_reduce04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce04. group sizes")

	for _, gs := range []int{-2, 1, 3, 6, 12, 100} {
		if _, err := NewExecutor(gs, 0); err == nil {
			tst.Errorf("group size %d should have been rejected", gs)
		}
	}
	for _, gs := range []int{2, 4, 64, 256} {
		ex := newExecutor(tst, gs, 0)
		a := randomArray(999, int64(gs))
		correct := floats.Sum(a)
		chk.Float64(tst, io.Sf("sum(gs=%d)", gs), 1e-12, ex.Reduce(a), correct)
	}
	if _, err := NewExecutor(64, -1); err == nil {
		tst.Errorf("negative number of workers should have been rejected")
	}

	// submission with a corrupted group size is fatal
	ex := newExecutor(tst, 64, 0)
	ex.GroupSize = 6
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("reduction with group size 6 should have panicked")
		}
	}()
	ex.Reduce([]float64{1, 2, 3})
}

func Test_reduce05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce05. fused map-reduce")

	ex := newExecutor(tst, 0, 3)
	defer ex.Close()

	n := 5000
	vals := randomArray(n, 99)
	res := ex.MapReduce(n, func(i int) float64 { return vals[i] * vals[i] })

	sq := make([]float64, n)
	for i, v := range vals {
		sq[i] = v * v
	}
	if res != ex.Reduce(sq) {
		tst.Errorf("MapReduce and Reduce must use the same grouping")
	}
	chk.Float64(tst, "dot", 1e-10, res, floats.Dot(vals, vals))

	sums := ex.MapReduceN(n, 3, func(i int, v []float64) {
		v[0] = 1
		v[1] = vals[i]
		if i%2 == 0 {
			v[2] = 2
		}
	})
	chk.Float64(tst, "count", 1e-12, sums[0], float64(n))
	chk.Float64(tst, "sum", 1e-10, sums[1], floats.Sum(vals))
	chk.Float64(tst, "evens", 1e-12, sums[2], float64(n))
}

func Test_for01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("for01. every work item runs once")

	ex := newExecutor(tst, 0, 5)
	n := 1001
	hits := make([]float64, n)
	ex.For(n, func(i int) { hits[i] += 1 })
	for i, h := range hits {
		if h != 1 {
			tst.Errorf("work item %d ran %v times", i, h)
		}
	}

	ex.Close()
	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("closed executor should have panicked")
		}
	}()
	ex.For(1, func(i int) {})
}
