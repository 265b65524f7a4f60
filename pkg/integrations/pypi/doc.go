// Package pypi provides an HTTP client for the Python Package Index API.
//
// [Client.FetchPackage] fetches https://pypi.org/pypi/<name>/json and decodes
// the top-level info object into a [PackageInfo]. Fields are deliberately
// left raw; the heuristics that turn them into citation metadata live in
// pkg/citation.
//
// The project_urls object is decoded into a [URLMap] rather than a Go map so
// downstream fallback chains can iterate it in publisher order.
package pypi
