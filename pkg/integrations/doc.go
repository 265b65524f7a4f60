// Package integrations provides HTTP clients for the external services
// citegen talks to. Each service has its own subpackage:
//
//   - [pypi]: Python Package Index JSON API
//   - [doiorg]: DOI resolution with BibTeX content negotiation
//   - [github]: citation-file probing on raw.githubusercontent.com
//
// # Client Pattern
//
// The shared [Client] type handles request construction, the fixed
// [UserAgent] header, and status-to-error mapping. Transient failures
// (connection errors, 5xx) are wrapped in [httputil.RetryableError] so that
// callers who opt into retries only repeat what is worth repeating; a 404
// surfaces immediately as [ErrNotFound].
//
// [Client.Exists] implements the existence probe used for citation-file
// discovery: HEAD first, GET on 405, and every failure mode collapses to
// false rather than an error.
//
// [pypi]: github.com/zonca/citegen/pkg/integrations/pypi
// [doiorg]: github.com/zonca/citegen/pkg/integrations/doiorg
// [github]: github.com/zonca/citegen/pkg/integrations/github
package integrations
