package storefront

import "fmt"

// ConfigError reports missing upstream connection parameters. It is never
// recoverable at request time and maps to a 500.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("storefront not configured: missing %s", e.Missing)
}

// UpstreamError reports a failed exchange with the storefront API: a
// transport failure, a non-2xx status, or a GraphQL errors array in the
// payload. It maps to a 502 and carries the upstream detail verbatim.
type UpstreamError struct {
	// StatusCode is the upstream HTTP status when one was received, 0 otherwise.
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("storefront API error (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("storefront API error: %s", e.Detail)
}

// NotFoundError reports that a queried entity does not exist upstream.
// It maps to a 404.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string { return e.Detail }
