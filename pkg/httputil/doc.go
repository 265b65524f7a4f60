// Package httputil provides retry infrastructure for outbound HTTP calls.
//
// # Retry
//
// [Retry] executes an operation with exponential backoff, retrying only
// errors wrapped in [RetryableError]. Clients wrap transient failures
// (connection errors, 5xx responses) so that hard failures such as a
// missing package still fail fast:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return client.Get(ctx, url, &out)
//	})
//
// # Defaults
//
//   - Max attempts: 3
//   - Base delay: 1 second, doubling after each failed attempt
//
// Existence probes and DOI resolution deliberately bypass this package;
// a miss there degrades to an empty result rather than a retry loop.
package httputil
