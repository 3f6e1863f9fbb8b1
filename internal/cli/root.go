// SPDX-License-Identifier: MIT

// Package cli implements the reebskel command line on generated demo meshes.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the reebskel command tree.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reebskel",
		Short: "Extract Reeb-graph skeletons from surface meshes",
		Long: `reebskel computes a scalar field over a surface mesh, builds its Reeb
graph and simplifies it into a ladder of skeletons from fine to coarse.

The run command works on generated demo shapes; use the config command
to print a starting configuration.`,
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline on a demo mesh and print a per-level summary",
		Args:  cobra.NoArgs,
		RunE:  RunPipeline,
	}
	runCmd.Flags().String("mesh", "tripod", "Demo mesh: "+meshNames())
	runCmd.Flags().String("config", "", "YAML config file (default: built-in defaults)")
	runCmd.Flags().Bool("dump", false, "Write the text dump of one level")
	runCmd.Flags().Int("level", 0, "Level dumped with --dump (0 = finest)")
	runCmd.Flags().BoolP("verbose", "v", false, "Log pipeline stages to stderr")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  RunConfig,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reebskel %s\n", version)
		},
	}

	rootCmd.AddCommand(runCmd, configCmd, versionCmd)
	return rootCmd
}
