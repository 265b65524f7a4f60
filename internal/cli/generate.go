package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/zonca/citegen/pkg/citation"
	"github.com/zonca/citegen/pkg/integrations"
	"github.com/zonca/citegen/pkg/integrations/doiorg"
	"github.com/zonca/citegen/pkg/integrations/github"
	"github.com/zonca/citegen/pkg/integrations/pypi"
)

// generateOpts holds the command-line flags for the generate pipeline.
type generateOpts struct {
	output  string        // output file path (stdout if empty)
	timeout time.Duration // per-request HTTP timeout (0 keeps the default)
	config  string        // config file path ("" uses the default location)
}

// runGenerate executes the full pipeline for one package: registry fetch,
// metadata derivation, DOI resolution, Markdown assembly, output. Only the
// registry fetch is fatal; every later lookup degrades to a placeholder or
// an omitted BibTeX entry.
func runGenerate(ctx context.Context, pkg string, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	registry := pypi.NewClient()
	repos := github.NewClient()
	resolver := doiorg.NewClient()
	for _, c := range []*integrations.Client{registry.Client, repos.Client, resolver.Client} {
		c.SetUserAgent(cfg.UserAgent)
		c.SetTimeout(effectiveTimeout(opts.timeout, cfg))
	}

	prog := newProgress(logger)
	sp := newSpinner(ctx, os.Stderr, fmt.Sprintf("Fetching %s from PyPI", pkg))
	sp.Start()
	info, err := registry.FetchPackage(ctx, pkg)
	sp.Stop()
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("failed to fetch data for package %q: %w", pkg, err)
		}
		return err
	}
	prog.done(fmt.Sprintf("Fetched metadata for %s %s", info.Name, info.Version))

	sp = newSpinner(ctx, os.Stderr, "Probing citation sources")
	sp.Start()
	record := citation.BuildRecord(ctx, info, repos)
	entries := resolveBibTeX(ctx, resolver, info)
	sp.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Infof("Collected %d BibTeX entries", len(entries))

	doc := citation.RenderMarkdown(pkg, record, entries)
	if opts.output == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Wrote %s", opts.output)
	return nil
}

// bibtexResolver resolves a single DOI to a BibTeX record.
// Satisfied by doiorg.Client.
type bibtexResolver interface {
	FetchBibTeX(ctx context.Context, doi string) (string, error)
}

// resolveBibTeX fetches a BibTeX record for every DOI discovered in the
// package metadata. DOIs that fail to resolve or return an empty body are
// skipped; the distinction is visible only at debug level.
func resolveBibTeX(ctx context.Context, resolver bibtexResolver, info *pypi.PackageInfo) []string {
	logger := loggerFromContext(ctx)

	dois := citation.ExtractDOIs(info)
	logger.Debugf("Discovered %d DOI candidate(s)", len(dois))

	var entries []string
	for _, doi := range dois {
		bib, err := resolver.FetchBibTeX(ctx, doi)
		if err != nil {
			logger.Debugf("Skipping %s: %v", doi, err)
			continue
		}
		if bib == "" {
			logger.Debugf("Skipping %s: empty BibTeX response", doi)
			continue
		}
		logger.Debugf("Resolved %s", doi)
		entries = append(entries, bib)
	}
	return entries
}
