// Package citation derives citation metadata from PyPI package metadata.
//
// The package is a set of heuristic extractors over a [pypi.PackageInfo]:
// keyword and dependency normalization, repository and homepage resolution,
// DOI discovery, and BibTeX reformatting. [BuildRecord] composes them into a
// fixed-shape [Record] where every field that could not be derived carries
// the [Placeholder] sentinel, and [RenderMarkdown] turns the record plus any
// fetched BibTeX entries into the final document.
//
// Extraction never fails. A field that cannot be resolved degrades to its
// placeholder; network probes that error read as "absent". The only fatal
// condition in the whole pipeline is the registry lookup itself, which
// happens upstream of this package.
package citation
