package pypi

import (
	"context"
	"errors"
	"fmt"

	"github.com/zonca/citegen/pkg/httputil"
	"github.com/zonca/citegen/pkg/integrations"
)

// PackageInfo holds the metadata fields of a PyPI JSON API response that the
// citation extractors read. Fields are kept raw: keyword splitting,
// dependency simplification, and URL resolution all happen downstream in
// pkg/citation, so a PackageInfo is a faithful view of what the registry
// published.
//
// Zero values: all string fields may be empty, slices may be nil, and
// ProjectURLs may be nil. Extractors treat every one of those as "absent".
type PackageInfo struct {
	Name         string   // Package name as published (e.g., "Flask")
	Version      string   // Latest release version
	Summary      string   // Short one-line description
	Description  string   // Long description, often the README text
	Keywords     string   // Raw keywords string, mixed separators
	Classifiers  []string // Trove classifiers
	HomePage     string   // Legacy home_page field
	ProjectURL   string   // Registry landing page URL
	RequiresDist []string // Raw requirement specifiers
	License      string   // License name or expression
	Author       string   // Author name
	ProjectURLs  *URLMap  // project_urls mapping, insertion order preserved
}

// Client provides access to the PyPI package registry JSON API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client.
func NewClient() *Client {
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: "https://pypi.org/pypi",
	}
}

// FetchPackage retrieves metadata for a Python package from PyPI.
//
// The pkg parameter is normalized automatically (case-insensitive,
// underscores to hyphens). Transient failures (connection errors, 5xx) are
// retried with backoff; a missing package returns
// [integrations.ErrNotFound] immediately.
func (c *Client) FetchPackage(ctx context.Context, pkg string) (*PackageInfo, error) {
	pkg = integrations.NormalizePkgName(pkg)
	url := fmt.Sprintf("%s/%s/json", c.baseURL, pkg)

	var data apiResponse
	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.Get(ctx, url, &data)
	})
	if err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: pypi package %s", err, pkg)
		}
		return nil, err
	}

	info := data.Info
	return &PackageInfo{
		Name:         info.Name,
		Version:      info.Version,
		Summary:      info.Summary,
		Description:  info.Description,
		Keywords:     info.Keywords,
		Classifiers:  info.Classifiers,
		HomePage:     info.HomePage,
		ProjectURL:   info.ProjectURL,
		RequiresDist: info.RequiresDist,
		License:      info.License,
		Author:       info.Author,
		ProjectURLs:  info.ProjectURLs,
	}, nil
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Summary      string   `json:"summary"`
	Description  string   `json:"description"`
	Keywords     string   `json:"keywords"`
	Classifiers  []string `json:"classifiers"`
	HomePage     string   `json:"home_page"`
	ProjectURL   string   `json:"project_url"`
	RequiresDist []string `json:"requires_dist"`
	License      string   `json:"license"`
	Author       string   `json:"author"`
	ProjectURLs  *URLMap  `json:"project_urls"`
}
