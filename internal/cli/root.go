package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/HIlight3R/package-manager/pkg/buildinfo"
)

// Execute runs the pkggraph CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (graph, cache),
// configures logging based on the --verbose flag, and executes the command
// tree. The logger is attached to the context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "pkggraph",
		Short:        "pkggraph resolves and renders package dependency graphs",
		Long:         `pkggraph builds the transitive dependency graph of a package from a live package index or a local fixture file, and renders it as a table, a Graphviz DOT document, and an ASCII tree.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGraphCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
