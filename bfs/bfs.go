// Package bfs implements breadth-first search over core.Graph.
package bfs

import (
	"context"

	"github.com/katalvlaran/reebskel/core"
)

// queueItem pairs a vertex with its depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result{
			Depth:      map[int]int{start: 0},
			Parent:     make(map[int]int),
			ParentEdge: make(map[int]int),
		},
	}
	w.queue = append(w.queue, queueItem{v: start})
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// loop dequeues, records and expands until the queue drains.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		// 1) Visit.
		w.res.Order = append(w.res.Order, item.v)

		// 2) Expand.
		edges, err := w.graph.Neighbors(item.v)
		if err != nil {
			return err
		}
		for _, e := range edges {
			u := e.Other(item.v)
			if _, seen := w.res.Depth[u]; seen {
				continue
			}
			w.res.Depth[u] = item.depth + 1
			w.res.Parent[u] = item.v
			w.res.ParentEdge[u] = e.ID
			w.queue = append(w.queue, queueItem{v: u, depth: item.depth + 1})
		}
	}
	return nil
}
