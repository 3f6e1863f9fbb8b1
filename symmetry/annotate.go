// SPDX-License-Identifier: MIT

package symmetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/reeb"
)

// Annotate marks the symmetry of g from its lowest-weight node with m (a
// default Detector when m is nil), then refreshes arc and graph lengths.
// limit is in degrees; limit ≤ 0, an empty graph or a cyclic one is a
// no-op.
func Annotate(ctx context.Context, g *reeb.Graph, m Marker, limit float64) error {
	if limit <= 0 {
		return nil
	}
	root := g.Root()
	if root == nil {
		return nil
	}
	if m == nil {
		m = NewDetector()
	}
	err := m.Mark(ctx, g, root, limit)
	if errors.Is(err, ErrCyclicGraph) {
		reebskel.Logger().Debug("symmetry: cyclic graph skipped", "level", g.Level)
		return nil
	}
	if err != nil {
		return fmt.Errorf("Annotate: %w", err)
	}
	reeb.CalculateGraphLength(g)
	return nil
}

// AnnotateLadder annotates every level of l, finest first, and stops with
// the context error once ctx is done.
func AnnotateLadder(ctx context.Context, l *reeb.Ladder, m Marker, limit float64) error {
	for i, g := range l.Levels {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("AnnotateLadder: level %d: %w", i, err)
		}
		if err := Annotate(ctx, g, m, limit); err != nil {
			return fmt.Errorf("AnnotateLadder: level %d: %w", i, err)
		}
	}
	return nil
}
