package nationalrail

import "fmt"

// ValidationError reports a bad request parameter. It is always raised
// before any network activity.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UpstreamError wraps a failure from the remote web service or its
// transport: timeouts, SOAP faults, malformed responses. The underlying
// error is available via errors.Unwrap.
type UpstreamError struct {
	// Op is the remote operation that failed, e.g. "GetDepartureBoard".
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
