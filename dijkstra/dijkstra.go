// Package dijkstra implements multi-source Dijkstra on mesh edge graphs.
//
// Notes on implementation choices:
//
//   - Edge costs are Euclidean lengths, hence never negative; no pre-scan.
//   - Lazy decrease-key: duplicates are pushed, stale entries skipped on pop.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/reebskel/mesh"
)

// Dijkstra computes, for every vertex of m, the shortest edge-path distance
// to the nearest source (Options.Sources).
//
// Preconditions and validation (in order):
//  1. At least one source (ErrNoSource).
//  2. m must be non-nil (ErrNilMesh).
//  3. Every source must be a visible vertex of m (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(m *mesh.Mesh, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate sources and mesh.
	if len(cfg.Sources) == 0 {
		return nil, ErrNoSource
	}
	if m == nil {
		return nil, ErrNilMesh
	}
	n := m.NumVertices()
	for _, s := range cfg.Sources {
		if s < 0 || s >= n || m.IsVertexHidden(s) {
			return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, s)
		}
	}

	// 3) Prepare result storage.
	res := &Result{
		Dist:    make([]float64, n),
		Visited: make([]bool, n),
	}
	for v := range res.Dist {
		res.Dist[v] = math.Inf(1)
	}

	// 4) Run.
	r := &runner{m: m, options: cfg, res: res, pq: make(nodePQ, 0, n)}
	r.init()
	r.process()

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *mesh.Mesh
	options Options
	res     *Result
	pq      nodePQ
}

// init seeds every source at distance 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, s := range r.options.Sources {
		if r.res.Dist[s] == 0 {
			continue // duplicate source
		}
		r.res.Dist[s] = 0
		heap.Push(&r.pq, &nodeItem{id: s, dist: 0})
	}
}

// process pops the closest unvisited vertex until the heap drains.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale entries.
		if r.res.Visited[u] {
			continue
		}

		// 3) Finalize and relax.
		r.res.Visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve the distance of every visible neighbour of u.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	for _, v := range r.m.Neighbors(u) {
		if r.res.Visited[v] {
			continue
		}
		nd := du + r.m.EdgeLength(u, v)
		if nd >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = nd
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem represents a vertex and its current distance from the sources.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by vertex index
// so that the expansion order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
