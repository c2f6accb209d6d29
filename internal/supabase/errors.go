package supabase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is wrapped by RemoteError when a row addressed by id does not
// exist. PostgREST answers such updates with an empty result, not an error.
var ErrNotFound = errors.New("row not found")

// ConfigurationError reports missing connection credentials. It is produced
// locally and never involves a network call.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("supabase is not configured: set %s", strings.Join(e.Missing, " and "))
}

// RemoteError wraps any failure returned by the backend or the transport.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
