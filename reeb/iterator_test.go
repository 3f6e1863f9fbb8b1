// SPDX-License-Identifier: MIT

package reeb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/reebskel/reeb"
)

func iterArc() *reeb.Arc {
	head := &reeb.Node{Index: 0, Weight: 0.5}
	tail := &reeb.Node{Index: 1, Weight: 4.5}
	return &reeb.Arc{Head: head, Tail: tail, Buckets: []reeb.Bucket{{Val: 1}, {Val: 2}, {Val: 3}, {Val: 4}}}
}

func drain(it *reeb.Iterator) []float64 {
	var out []float64
	for b := it.Next(); b != nil; b = it.Next() {
		out = append(out, b.Val)
	}
	return out
}

func TestIterator_Directions(t *testing.T) {
	a := iterArc()
	tests := []struct {
		name string
		it   *reeb.Iterator
		want []float64
	}{
		{"from head", reeb.NewIterator(a, a.Head), []float64{1, 2, 3, 4}},
		{"from tail", reeb.NewIterator(a, a.Tail), []float64{4, 3, 2, 1}},
		{"skip from head", reeb.NewIteratorSkip(a, a.Head, 1), []float64{2, 3, 4}},
		{"skip from tail", reeb.NewIteratorSkip(a, a.Tail, 2), []float64{2, 1}},
		{"skip everything", reeb.NewIteratorSkip(a, a.Head, 9), nil},
		{"range up", reeb.NewIteratorRange(a, 1, 2), []float64{2, 3}},
		{"range down", reeb.NewIteratorRange(a, 3, 1), []float64{4, 3, 2}},
		{"range clamped", reeb.NewIteratorRange(a, -5, 99), []float64{1, 2, 3, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, drain(tc.it))
			assert.True(t, tc.it.Done())
		})
	}
}

func TestIterator_PeekAndIndex(t *testing.T) {
	a := iterArc()
	it := reeb.NewIterator(a, a.Tail)
	assert.Equal(t, -1, it.Index())
	assert.Equal(t, 4, it.Len())
	assert.Nil(t, it.Peek(0))
	assert.Equal(t, 4.0, it.Peek(1).Val)

	b := it.Next()
	assert.Equal(t, 4.0, b.Val)
	assert.Equal(t, 0, it.Index())
	assert.Same(t, b, it.Peek(0))
	assert.Equal(t, 2.0, it.Peek(2).Val)
	assert.Nil(t, it.Peek(4))
	assert.False(t, it.Done())

	// Buckets are returned by reference.
	b.NV = 7
	assert.Equal(t, 7, a.Buckets[3].NV)
}

func TestIterator_EmptyArc(t *testing.T) {
	a := &reeb.Arc{Head: &reeb.Node{}, Tail: &reeb.Node{Weight: 0.5}}
	for _, it := range []*reeb.Iterator{
		reeb.NewIterator(a, a.Head),
		reeb.NewIterator(a, a.Tail),
		reeb.NewIteratorRange(a, 0, 3),
	} {
		assert.True(t, it.Done())
		assert.Nil(t, it.Next())
	}
}
