package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/HIlight3R/package-manager/pkg/config"
	"github.com/HIlight3R/package-manager/pkg/depgraph"
	apperrors "github.com/HIlight3R/package-manager/pkg/errors"
	"github.com/HIlight3R/package-manager/pkg/fixture"
	"github.com/HIlight3R/package-manager/pkg/registry"
	"github.com/HIlight3R/package-manager/pkg/registry/pypi"
	"github.com/HIlight3R/package-manager/pkg/render"
)

// cacheTTL bounds how long HTTP responses are reused before re-fetching.
const cacheTTL = 24 * time.Hour

// graphOptions holds the flags for the graph command.
type graphOptions struct {
	configPath    string
	noConfigPrint bool
	dependents    string
	refresh       bool
	svgPath       string
}

// newGraphCmd creates the graph command, the main resolution pipeline:
// load config, preview direct dependencies, build the transitive graph,
// and render it in the configured formats.
func newGraphCmd() *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Resolve and render the dependency graph of the configured package",
		Long: `Graph reads the [app] configuration, resolves the transitive dependency
graph of the configured package (from a live package index in real mode, or
from a fixture file in test mode), and prints it as a sorted table, a
Graphviz DOT document, and optionally an ASCII tree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.toml", "path to the TOML configuration file")
	cmd.Flags().BoolVar(&opts.noConfigPrint, "no-config-print", false, "suppress the configuration echo")
	cmd.Flags().StringVar(&opts.dependents, "dependents", "", "also list packages that transitively depend on the given package")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the HTTP response cache")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write an SVG rendering of the graph to the given file")

	return cmd
}

func runGraph(cmd *cobra.Command, opts *graphOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "path", opts.configPath, "mode", cfg.Mode)

	if !opts.noConfigPrint {
		printSection("Configuration")
		fmt.Print(cfg.Echo())
	}

	provider, err := newProvider(cmd, cfg, opts.refresh)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	graph, revisits, err := depgraph.Build(ctx, provider, cfg.PackageName)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d packages", len(graph)))

	fmt.Println()
	fmt.Print(render.Table(graph, revisits, cfg.PackageName))

	dot := render.ToDOT(graph, cfg.PackageName)
	printSection("Graphviz DOT")
	fmt.Print(dot)

	if cfg.ASCIITree {
		printSection("Dependency tree")
		fmt.Print(render.Tree(graph, cfg.PackageName))
	}

	if opts.dependents != "" {
		if err := printDependents(ctx, graph, opts.dependents); err != nil {
			return err
		}
	}

	if opts.svgPath != "" {
		data, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "render SVG")
		}
		if err := os.WriteFile(opts.svgPath, data, 0o644); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", opts.svgPath)
		}
		printSuccess("SVG written")
		printFile(opts.svgPath)
	}

	return nil
}

// newProvider builds the neighbor provider for the configured mode. In real
// mode it also prints the direct-dependency preview; a preview failure is
// reported but does not abort the build.
func newProvider(cmd *cobra.Command, cfg *config.Config, refresh bool) (depgraph.Provider, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if cfg.Mode == config.ModeTest {
		repo, err := fixture.Load(cfg.TestRepoPath)
		if err != nil {
			return nil, err
		}
		if !repo.Has(cfg.PackageName) {
			return nil, apperrors.New(apperrors.ErrCodePackageNotFound,
				"package %q not declared in %s", cfg.PackageName, cfg.TestRepoPath)
		}
		return repo, nil
	}

	cache, err := registry.NewCache(cacheTTL)
	if err != nil {
		logger.Debug("response cache unavailable, fetching without cache", "err", err)
		cache = nil
	}
	client := pypi.NewClient(cfg.RepoURL, cache)

	raw, err := client.RequiresDist(ctx, cfg.PackageName, cfg.Version, refresh)
	if err != nil {
		printError("Direct dependency preview failed: %s", apperrors.UserMessage(err))
	} else {
		printSection(fmt.Sprintf("Direct dependencies of %s %s", cfg.PackageName, cfg.Version))
		reqs := pypi.Requirements(raw)
		if len(reqs) == 0 {
			printDetail("(none)")
		}
		for _, req := range reqs {
			printDetail("%s", req)
		}
	}

	return client.Provider(cfg.PackageName, cfg.Version, refresh), nil
}

// printDependents lists every package in the resolved graph that
// transitively depends on name.
func printDependents(ctx context.Context, graph depgraph.Graph, name string) error {
	if _, ok := graph[name]; !ok {
		printWarning("Package %q is not part of the resolved graph", name)
	}

	deps, err := depgraph.Dependents(ctx, graph, name)
	if err != nil {
		return err
	}

	printSection(fmt.Sprintf("Packages depending on %s", name))
	sorted := deps.Sorted()
	if len(sorted) == 0 {
		printDetail("(none)")
	}
	for _, dep := range sorted {
		printDetail("%s", dep)
	}
	return nil
}
