package github

import (
	"context"
	"fmt"

	"github.com/zonca/citegen/pkg/citation"
	"github.com/zonca/citegen/pkg/integrations"
)

// citationFiles are the filenames probed in a repository root, in order.
var citationFiles = []string{"CITATION", "CITATION.cff", "CITATION.md"}

// branches are tried in order; the first branch holding any citation file wins.
var branches = []string{"main", "master"}

// Client probes GitHub repositories for citation files over the raw content
// host. It needs no authentication: only public default-branch files are
// checked.
type Client struct {
	*integrations.Client
	rawBaseURL string
}

var _ citation.CitationFileFinder = (*Client)(nil)

// NewClient creates a GitHub raw-content client.
func NewClient() *Client {
	return &Client{
		Client:     integrations.NewClient(nil),
		rawBaseURL: "https://raw.githubusercontent.com",
	}
}

// FindCitationFile probes repoURL for CITATION, CITATION.cff, and
// CITATION.md under the main and master branches, and returns the
// human-facing blob URL of the first file that exists. Existence is checked
// against the raw content host, but the returned link points at the blob
// view. Probing never errors: transport failures read as absent files, and
// a repository with no citation file yields "".
func (c *Client) FindCitationFile(ctx context.Context, repoURL string) string {
	path := citation.ExtractRepoPath(repoURL)
	if path == "" {
		return ""
	}
	for _, branch := range branches {
		for _, name := range citationFiles {
			rawURL := fmt.Sprintf("%s/%s/%s/%s", c.rawBaseURL, path, branch, name)
			if c.Exists(ctx, rawURL) {
				return fmt.Sprintf("%s/blob/%s/%s", repoURL, branch, name)
			}
		}
	}
	return ""
}
