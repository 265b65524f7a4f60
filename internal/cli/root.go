package cli

import (
	"context"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zonca/citegen/pkg/buildinfo"
)

// Execute runs the citegen CLI and returns an error if the command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to the pipeline via
// loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command. citegen is a single-command tool, so
// the root itself runs the generation pipeline.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		opts    generateOpts
	)

	root := &cobra.Command{
		Use:   "citegen <package>",
		Short: "Generate citation metadata and BibTeX for a PyPI package",
		Long: `citegen queries the PyPI JSON API for a package, derives citation
metadata (language, category, keywords, links, Zenodo DOI, dependencies),
resolves any DOIs found in the package description to BibTeX via doi.org,
and emits a Markdown document ready for manual review.

Fields that cannot be derived automatically are filled with "FIXME"
placeholders for the reviewer to complete.

Examples:
  citegen healpy                   # Write the document to stdout
  citegen healpy -o healpy.md      # Write the document to a file
  citegen healpy -v                # Show per-DOI resolution details`,
		Args:         cobra.ExactArgs(1),
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args[0], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	root.Flags().DurationVar(&opts.timeout, "timeout", 0, "HTTP request timeout (default 10s)")
	root.Flags().StringVar(&opts.config, "config", "", "config file (default ~/.config/citegen/config.toml)")

	return root
}

// effectiveTimeout resolves the timeout precedence: flag, then config file,
// then the client default.
func effectiveTimeout(flag time.Duration, cfg Config) time.Duration {
	if flag > 0 {
		return flag
	}
	if cfg.TimeoutSeconds > 0 {
		return time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return 0
}
