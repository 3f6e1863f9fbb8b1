// SPDX-License-Identifier: MIT

package symmetry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/reeb"
)

// mirror reflects p across the plane through center with normal n. A zero
// normal leaves p unchanged.
func mirror(p, center, n r3.Vec) r3.Vec {
	nn := r3.Dot(n, n)
	if nn == 0 {
		return p
	}
	d := r3.Dot(r3.Sub(p, center), n) / nn
	return r3.Sub(p, r3.Scale(2*d, n))
}

func lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// alignedPairs walks a1 and a2 outward from root and calls fn for every
// pair of buckets sharing a value. Both arcs must touch root.
func alignedPairs(root *reeb.Node, a1, a2 *reeb.Arc, fn func(b1, b2 *reeb.Bucket)) {
	if a1.IsNull() || a2.IsNull() {
		return
	}
	it1 := reeb.NewIterator(a1, root)
	it2 := reeb.NewIterator(a2, root)
	b1, b2 := it1.Next(), it2.Next()

	// 1) Skip to a common starting value; distance from the root weight
	//    grows along both walks.
	for b1 != nil && b2 != nil && b1.Val != b2.Val {
		if math.Abs(b1.Val-root.Weight) < math.Abs(b2.Val-root.Weight) {
			b1 = it1.Next()
		} else {
			b2 = it2.Next()
		}
	}

	// 2) Lockstep.
	for ; b1 != nil && b2 != nil; b1, b2 = it1.Next(), it2.Next() {
		fn(b1, b2)
	}
}

// Axial makes the branches (root→n1 along a1) and (root→n2 along a2) exact
// mirror images across the plane through root with normal
// root.SymmetryAxis: n1 becomes the mean of n1 and mirrored n2, n2 its
// mirror; matched buckets are merged the same way, weighted by sample
// count.
func Axial(root, n1, n2 *reeb.Node, a1, a2 *reeb.Arc) {
	axis := root.SymmetryAxis

	// 1) Nodes.
	p := mirror(n2.Pos, root.Pos, axis)
	n1.Pos = r3.Scale(0.5, r3.Add(n1.Pos, p))
	n2.Pos = mirror(n1.Pos, root.Pos, axis)

	// 2) Buckets.
	alignedPairs(root, a1, a2, func(b1, b2 *reeb.Bucket) {
		total := b1.NV + b2.NV
		if total > 0 {
			m := mirror(b2.Pos, root.Pos, axis)
			b1.Pos = lerp(b1.Pos, m, float64(b2.NV)/float64(total))
		}
		b1.NV = total
		b2.NV = total
		b2.Pos = mirror(b1.Pos, root.Pos, axis)
	})
}

// Radial makes every branch of ring identical up to rotation around
// root.SymmetryAxis. A forward pass mirrors branch i onto branch i+1
// across their bisecting plane and blends it in at weight 1/(i+2); a
// backward pass copies the last merged branch back around the ring.
func Radial(root *reeb.Node, ring []RingArc) {
	if len(ring) < 2 {
		return
	}
	axis := root.SymmetryAxis

	// bisector returns the normal of the plane holding the axis and the
	// bisector of ring[i] and ring[j].
	bisector := func(i, j int) r3.Vec {
		return r3.Cross(r3.Add(ring[i].N, ring[j].N), axis)
	}

	// 1) Forward: progressive averaging.
	for i := 0; i < len(ring)-1; i++ {
		j := i + 1
		normal := bisector(i, j)
		a1, a2 := ring[i].Arc, ring[j].Arc
		n1, n2 := a1.OtherNode(root), a2.OtherNode(root)

		n2.Pos = lerp(n2.Pos, mirror(n1.Pos, root.Pos, normal), 1/float64(j+1))
		alignedPairs(root, a1, a2, func(b1, b2 *reeb.Bucket) {
			b2.NV += b1.NV
			if b2.NV > 0 {
				m := mirror(b1.Pos, root.Pos, normal)
				b2.Pos = lerp(b2.Pos, m, float64(b1.NV)/float64(b2.NV))
			}
		})
	}

	// 2) Backward: copy the merged shape onto every earlier branch.
	for i := len(ring) - 1; i > 0; i-- {
		j := i - 1
		normal := bisector(i, j)
		a1, a2 := ring[i].Arc, ring[j].Arc
		n1, n2 := a1.OtherNode(root), a2.OtherNode(root)

		n2.Pos = mirror(n1.Pos, root.Pos, normal)
		alignedPairs(root, a1, a2, func(b1, b2 *reeb.Bucket) {
			b2.NV = b1.NV
			b2.Pos = mirror(b1.Pos, root.Pos, normal)
		})
	}
}
