// SPDX-License-Identifier: MIT

package reeb

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// bucketRange returns the first bucket value and the bucket count of an
// arc spanning [hw, tw].
func bucketRange(hw, tw float64) (start float64, count int) {
	start = math.Ceil(hw)
	count = int(math.Floor(tw)-start) + 1
	if count < 0 {
		count = 0
	}
	return start, count
}

func lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// allocBuckets sets a fresh, empty bucket array matching the arc's span.
func allocBuckets(a *Arc) {
	start, count := bucketRange(a.Head.Weight, a.Tail.Weight)
	if count == 0 {
		a.Buckets = nil
		return
	}
	a.Buckets = make([]Bucket, count)
	for i := range a.Buckets {
		a.Buckets[i].Val = start + float64(i)
	}
}

// resizeBuckets re-allocates the array for the arc's current span and keeps
// the samples whose values survive.
func resizeBuckets(a *Arc) {
	start, count := bucketRange(a.Head.Weight, a.Tail.Weight)
	if count == len(a.Buckets) && (count == 0 || a.Buckets[0].Val == start) {
		return
	}
	old := a.Buckets
	allocBuckets(a)
	if len(old) == 0 || len(a.Buckets) == 0 {
		return
	}
	for _, b := range old {
		i := int(b.Val - start)
		if i >= 0 && i < len(a.Buckets) {
			a.Buckets[i] = b
		}
	}
}

// mergeBucket folds src into dst as a running weighted average.
func mergeBucket(dst *Bucket, src Bucket) {
	switch {
	case src.NV == 0:
	case dst.NV == 0:
		dst.NV = src.NV
		dst.Pos = src.Pos
	default:
		total := dst.NV + src.NV
		dst.Pos = lerp(dst.Pos, src.Pos, float64(src.NV)/float64(total))
		dst.NV = total
	}
}

// mergeArcBuckets merges the buckets of src whose values lie in
// [from, to] into the matching buckets of dst.
func mergeArcBuckets(dst, src *Arc, from, to float64) {
	if len(dst.Buckets) == 0 || len(src.Buckets) == 0 {
		return
	}
	from = math.Max(from, math.Max(dst.Buckets[0].Val, src.Buckets[0].Val))
	i, j := 0, 0
	for i < len(dst.Buckets) && dst.Buckets[i].Val < from {
		i++
	}
	for j < len(src.Buckets) && src.Buckets[j].Val < from {
		j++
	}
	for ; i < len(dst.Buckets) && j < len(src.Buckets); i, j = i+1, j+1 {
		if dst.Buckets[i].Val > to || src.Buckets[j].Val > to {
			break
		}
		mergeBucket(&dst.Buckets[i], src.Buckets[j])
	}
}

// fillEmptyBuckets linearly interpolates every run of empty buckets between
// its bounding samples (the head and tail positions at the ends).
func fillEmptyBuckets(a *Arc) {
	n := len(a.Buckets)
	for i := 0; i < n; i++ {
		if a.Buckets[i].NV > 0 {
			continue
		}
		s := i
		for i < n && a.Buckets[i].NV == 0 {
			i++
		}
		e := i - 1
		from := a.Head.Pos
		if s > 0 {
			from = a.Buckets[s-1].Pos
		}
		to := a.Tail.Pos
		if i < n {
			to = a.Buckets[i].Pos
		}
		total := float64(e - s + 2)
		for j := s; j <= e; j++ {
			a.Buckets[j].Pos = lerp(from, to, float64(j-s+1)/total)
			a.Buckets[j].NV = 1
		}
	}
}

// FillEmptyBuckets fills the empty buckets of every arc of g.
func FillEmptyBuckets(g *Graph) {
	for _, a := range g.arcs {
		if !a.removed {
			fillEmptyBuckets(a)
		}
	}
}

// flipArc swaps head and tail after a weight inversion and re-keys the
// buckets to the new span; samples keep their values.
func flipArc(a *Arc) {
	a.Head, a.Tail = a.Tail, a.Head
	resizeBuckets(a)
}

// reverseBuckets reverses the sample order of a while keeping the values
// ascending; used when a subgraph is re-parameterized from the other end.
func reverseBuckets(a *Arc) {
	b := a.Buckets
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i].Pos, b[j].Pos = b[j].Pos, b[i].Pos
		b[i].NV, b[j].NV = b[j].NV, b[i].NV
	}
}

// arcLength returns the head → buckets → tail polyline length.
func arcLength(a *Arc) float64 {
	prev := a.Head.Pos
	var l float64
	for i := range a.Buckets {
		l += r3.Norm(r3.Sub(a.Buckets[i].Pos, prev))
		prev = a.Buckets[i].Pos
	}
	return l + r3.Norm(r3.Sub(a.Tail.Pos, prev))
}
