// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/pipeline"
	"github.com/katalvlaran/reebskel/reeb"
)

// RunPipeline implements "reebskel run".
func RunPipeline(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	meshName, err := flags.GetString("mesh")
	if err != nil {
		return fmt.Errorf("failed to read --mesh flag: %w", err)
	}
	cfgPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to read --config flag: %w", err)
	}
	dump, err := flags.GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to read --dump flag: %w", err)
	}
	level, err := flags.GetInt("level")
	if err != nil {
		return fmt.Errorf("failed to read --level flag: %w", err)
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to read --verbose flag: %w", err)
	}

	if verbose {
		reebskel.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer reebskel.SetLogger(nil)
	}

	// 1) Inputs.
	cfg, err := pipeline.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	m, err := demoMesh(meshName)
	if err != nil {
		return err
	}
	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	// 2) Run.
	res, err := p.Run(cmd.Context(), m)
	if err != nil {
		return err
	}

	// 3) Report.
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s mesh=%s vertices=%d faces=%d\n", res.RunID, meshName, m.NumVertices(), m.NumFaces())
	for i, g := range res.Ladder.Levels {
		fmt.Fprintf(out, "level %d: nodes=%d arcs=%d terminals=%d length=%.4f symmetry=%s\n",
			i, g.NumNodes(), g.NumArcs(), len(g.Terminals()), g.Length, rootSymmetry(g))
	}
	if !dump {
		return nil
	}
	if level < 0 || level >= len(res.Ladder.Levels) {
		return fmt.Errorf("--level %d out of range [0,%d)", level, len(res.Ladder.Levels))
	}
	return reeb.Dump(out, res.Ladder.Levels[level])
}

// rootSymmetry returns the strongest symmetry kind flagged on any node.
func rootSymmetry(g *reeb.Graph) reeb.SymmetryKind {
	kind := reeb.SymmetryNone
	for _, n := range g.Nodes() {
		if n.SymmetryFlag > kind {
			kind = n.SymmetryFlag
		}
	}
	return kind
}

// RunConfig implements "reebskel config".
func RunConfig(cmd *cobra.Command, args []string) error {
	return pipeline.WriteConfig(cmd.OutOrStdout(), pipeline.DefaultConfig())
}
