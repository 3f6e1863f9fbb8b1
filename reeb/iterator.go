// SPDX-License-Identifier: MIT

package reeb

// Iterator walks the buckets of one arc from either end. It is a small
// value type: no allocation happens per step.
type Iterator struct {
	arc    *Arc
	start  int // array index of position 0
	stride int // +1 from head, -1 from tail
	length int
	index  int // position of the last bucket returned, -1 before the first
}

// NewIterator walks arc starting at node start: head-to-tail when start is
// the head, tail-to-head otherwise.
func NewIterator(arc *Arc, start *Node) *Iterator {
	it := &Iterator{arc: arc, length: len(arc.Buckets), index: -1}
	if start == arc.Head {
		it.start, it.stride = 0, 1
	} else {
		it.start, it.stride = len(arc.Buckets)-1, -1
	}
	return it
}

// NewIteratorSkip is NewIterator with the first skip buckets dropped.
func NewIteratorSkip(arc *Arc, start *Node, skip int) *Iterator {
	it := NewIterator(arc, start)
	if skip < 0 {
		skip = 0
	}
	if skip > it.length {
		skip = it.length
	}
	it.start += skip * it.stride
	it.length -= skip
	return it
}

// NewIteratorRange walks the array indices from startIdx to endIdx
// inclusive, in whichever direction they point. Indices are clamped to the
// arc.
func NewIteratorRange(arc *Arc, startIdx, endIdx int) *Iterator {
	n := len(arc.Buckets)
	it := &Iterator{arc: arc, index: -1}
	if n == 0 {
		return it
	}
	startIdx = clamp(startIdx, 0, n-1)
	endIdx = clamp(endIdx, 0, n-1)
	it.start = startIdx
	if endIdx >= startIdx {
		it.stride = 1
		it.length = endIdx - startIdx + 1
	} else {
		it.stride = -1
		it.length = startIdx - endIdx + 1
	}
	return it
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Next advances and returns the next bucket, or nil when exhausted.
func (it *Iterator) Next() *Bucket {
	if it.index+1 >= it.length {
		it.index = it.length
		return nil
	}
	it.index++
	return &it.arc.Buckets[it.start+it.stride*it.index]
}

// Peek returns the bucket n positions after the last one returned without
// advancing (Peek(0) is the current bucket), or nil when out of range.
func (it *Iterator) Peek(n int) *Bucket {
	p := it.index + n
	if p < 0 || p >= it.length {
		return nil
	}
	return &it.arc.Buckets[it.start+it.stride*p]
}

// Done reports whether Next would return nil.
func (it *Iterator) Done() bool { return it.index+1 >= it.length }

// Index returns the position of the last bucket returned, counted from the
// iterator's start; -1 before the first call to Next.
func (it *Iterator) Index() int { return it.index }

// Len returns the number of buckets the iterator covers.
func (it *Iterator) Len() int { return it.length }
