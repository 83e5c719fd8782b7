// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import "github.com/cpmech/gosl/chk"

// Reduce returns the sum of all values in arr.
//
//  The values are combined in groups of GroupSize consecutive entries; inside each group a
//  binary tree adds lanes (idx, idx+stride) for stride = 1, 2, 4, ...; missing lanes of the last
//  group are zero. Group sums form the input of the next stage until a single value remains.
//
//  Note: arr is used as workspace and is overwritten
func (o *Executor) Reduce(arr []float64) float64 {
	o.check()
	n := len(arr)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return arr[0]
	}
	g := o.GroupSize
	o.pong = grow(o.pong, (n+g-1)/g)
	src, dst := arr, o.pong
	for n != 1 {
		m := n
		ngroups := (m + g - 1) / g
		in, out := src[:m], dst[:ngroups]
		o.groups(ngroups, g, func(grp int, local []float64) {
			start := grp * g
			for l := 0; l < g; l++ {
				local[l] = 0
				if start+l < m {
					local[l] = in[start+l]
				}
			}
			out[grp] = treeSum(local)
		})
		n = ngroups
		src, dst = dst, src
	}
	return src[0]
}

// MapReduce runs the kernel f for every work item i in [0,n) and returns the sum of the values
// it produces. Items are grouped as in Reduce, so the result is identical to evaluating f into an
// array and calling Reduce on it.
func (o *Executor) MapReduce(n int, f func(i int) float64) float64 {
	o.check()
	if n <= 0 {
		return 0
	}
	g := o.GroupSize
	ngroups := (n + g - 1) / g
	o.ping = grow(o.ping, ngroups)
	partial := o.ping
	o.groups(ngroups, g, func(grp int, local []float64) {
		start := grp * g
		for l := 0; l < g; l++ {
			local[l] = 0
			if start+l < n {
				local[l] = f(start + l)
			}
		}
		partial[grp] = treeSum(local)
	})
	return o.Reduce(partial)
}

// MapReduceN computes k simultaneous sums. For every work item i, f receives a zeroed slice v
// of length k and stores the contribution of item i to each sum in v.
func (o *Executor) MapReduceN(n, k int, f func(i int, v []float64)) (sums []float64) {
	o.check()
	sums = make([]float64, k)
	if n <= 0 || k < 1 {
		return
	}
	g := o.GroupSize
	ngroups := (n + g - 1) / g
	o.ping = grow(o.ping, k*ngroups)
	partial := o.ping
	o.groups(ngroups, k*g+k, func(grp int, local []float64) {
		lanes, v := local[:k*g], local[k*g:]
		start := grp * g
		for l := 0; l < g; l++ {
			for c := 0; c < k; c++ {
				v[c] = 0
			}
			if start+l < n {
				f(start+l, v)
			}
			for c := 0; c < k; c++ {
				lanes[c*g+l] = v[c]
			}
		}
		for c := 0; c < k; c++ {
			partial[c*ngroups+grp] = treeSum(lanes[c*g : (c+1)*g])
		}
	})
	for c := 0; c < k; c++ {
		sums[c] = o.Reduce(partial[c*ngroups : (c+1)*ngroups])
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// check validates the executor at submission time
func (o *Executor) check() {
	o.alive()
	if !ValidGroupSize(o.GroupSize) {
		chk.Panic("cannot submit reduction with group size %d: it must be an even power of two", o.GroupSize)
	}
}

// treeSum adds the lanes of one group pairwise; lane 0 ends up holding the sum
func treeSum(lanes []float64) float64 {
	g := len(lanes)
	for stride := 1; stride < g; stride *= 2 {
		for idx := 0; idx < g; idx += 2 * stride {
			lanes[idx] += lanes[idx+stride]
		}
	}
	return lanes[0]
}
