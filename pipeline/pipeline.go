// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/mesh"
	"github.com/katalvlaran/reebskel/reeb"
	"github.com/katalvlaran/reebskel/sparse"
	"github.com/katalvlaran/reebskel/symmetry"
	"github.com/katalvlaran/reebskel/weight"
)

// Run results used as metric labels.
const (
	resultOK       = "ok"
	resultError    = "error"
	resultCanceled = "canceled"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMetrics sets the collectors; by default a Pipeline uses private,
// unregistered ones.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("pipeline: WithMetrics(nil)")
	}
	return func(p *Pipeline) { p.metrics = m }
}

// WithMarker replaces the default symmetry detector.
func WithMarker(mk symmetry.Marker) Option {
	return func(p *Pipeline) { p.marker = mk }
}

// WithSolver overrides the solver chosen by Config.Solver.
func WithSolver(s sparse.Solver) Option {
	if s == nil {
		panic("pipeline: WithSolver(nil)")
	}
	return func(p *Pipeline) { p.solver = s }
}

// Pipeline is the context of skeleton runs over meshes. It is not safe for
// concurrent Run calls on the same mesh.
type Pipeline struct {
	cfg     Config
	metrics *Metrics
	marker  symmetry.Marker
	solver  sparse.Solver
}

// Result is the output of a successful run.
type Result struct {
	RunID  string
	Ladder *reeb.Ladder
}

// New validates cfg and returns a Pipeline.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	p := &Pipeline{cfg: cfg, solver: cfg.NewSolver()}
	for _, opt := range opts {
		opt(p)
	}
	if p.metrics == nil {
		p.metrics = NewMetrics(nil)
	}
	if p.marker == nil {
		p.marker = symmetry.NewDetector()
	}
	return p, nil
}

// Config returns the validated configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Metrics returns the collectors.
func (p *Pipeline) Metrics() *Metrics { return p.metrics }

// Run computes the weight field of m, builds its Reeb graph, derives the
// resolution ladder and annotates symmetry on every level. On any error,
// including cancellation of ctx, the weights of m are restored and no
// result is returned.
func (p *Pipeline) Run(ctx context.Context, m *mesh.Mesh) (res *Result, err error) {
	const method = "Run"
	if m == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilMesh)
	}
	runID := uuid.New().String()
	log := reebskel.Logger().With("run", runID)
	log.Info("pipeline: run started", "vertices", m.NumVertices(), "faces", m.NumFaces())

	// 1) All-or-nothing: restore the field on failure.
	snapshot := m.Weights()
	defer func() {
		if err == nil {
			p.metrics.Runs.WithLabelValues(resultOK).Inc()
			return
		}
		_ = m.SetWeights(snapshot)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			p.metrics.Runs.WithLabelValues(resultCanceled).Inc()
		} else {
			p.metrics.Runs.WithLabelValues(resultError).Inc()
		}
		log.Debug("pipeline: run failed", "err", err)
		res = nil
	}()

	var (
		g      *reeb.Graph
		ladder *reeb.Ladder
	)
	stages := []struct {
		name string
		fn   func() error
	}{
		{"weight", func() error { return p.weigh(log, m) }},
		{"build", func() (e error) { g, e = reeb.Build(m); return e }},
		{"ladder", func() (e error) { ladder, e = reeb.BuildLadder(g, p.ladderOptions(m)); return e }},
		{"symmetry", func() error { return symmetry.AnnotateLadder(ctx, ladder, p.marker, p.cfg.SymmetryAngleLimit) }},
		{"verify", func() error { return p.verify(ladder) }},
	}

	// 2) Stages, with a cancellation check before each.
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: before %s: %w", method, st.name, err)
		}
		if err := p.stage(log, st.name, st.fn); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", method, st.name, err)
		}
	}

	p.metrics.observeLadder(ladder)
	log.Info("pipeline: run finished",
		"levels", len(ladder.Levels), "arcs", ladder.Finest().NumArcs(), "length", ladder.Finest().Length)
	return &Result{RunID: runID, Ladder: ladder}, nil
}

// stage times fn into the stage histogram.
func (p *Pipeline) stage(log *slog.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	p.metrics.StageDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	log.Debug("pipeline: stage done", "stage", name, "elapsed", elapsed, "ok", err == nil)
	return err
}

// weigh computes the configured field, optionally made harmonic, then
// rescales it to the resolution and spreads duplicates.
//
// Spread runs after Renormalize: the builder needs distinct weights at the
// bucket scale, and a rescale to [0,Resolution] can shrink gaps opened on
// the raw field below SpreadEpsilon or collapse them to equal values.
func (p *Pipeline) weigh(log *slog.Logger, m *mesh.Mesh) error {
	var err error
	if p.cfg.WeightMode == ModeDistance {
		err = weight.FromDistance(m)
	} else {
		err = weight.FromCoordinate(m, p.cfg.axis())
	}
	if err != nil {
		return err
	}

	if p.cfg.UseHarmonicField {
		err = weight.ToHarmonic(m, p.solver)
		if err != nil && p.cfg.Solver == SolverCG {
			log.Warn("pipeline: harmonic solve failed, retrying with cholesky", "err", err)
			err = weight.ToHarmonic(m, sparse.Cholesky{})
		}
		if err != nil {
			return err
		}
	}

	weight.Renormalize(m, float64(p.cfg.Resolution))
	weight.Spread(m)
	return nil
}

func (p *Pipeline) ladderOptions(m *mesh.Mesh) reeb.LadderOptions {
	return reeb.LadderOptions{
		Levels:            p.cfg.MultiResolutionLevels,
		InternalFraction:  p.cfg.FilterInternalThreshold,
		ExternalFraction:  p.cfg.FilterExternalThreshold,
		JoinThreshold:     p.cfg.JoinThreshold,
		Smart:             p.cfg.UseSmartFilter,
		SmartThreshold:    p.cfg.SmartThreshold,
		Mesh:              m,
		Cycles:            p.cfg.FilterCycles,
		PostprocessPasses: p.cfg.PostProcessPasses,
		Kernel:            p.cfg.Kernel(),
	}
}

// verify checks every level when Config.Verify is set.
func (p *Pipeline) verify(l *reeb.Ladder) error {
	if !p.cfg.Verify {
		return nil
	}
	for i, g := range l.Levels {
		if err := g.Verify(); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
	}
	return nil
}
