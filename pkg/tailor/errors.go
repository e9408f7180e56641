package tailor

import (
	"fmt"

	"github.com/pkg/errors"
)

// FailureKind tags why the provider path did not produce content.
type FailureKind string

const (
	FailureMissingCredential FailureKind = "missing_credential"
	FailureTransport         FailureKind = "transport"
	FailureTimeout           FailureKind = "timeout"
	FailureAuth              FailureKind = "auth"
	FailureMalformed         FailureKind = "malformed"
	FailureSchema            FailureKind = "schema"
)

// ProviderError is the only error Generate returns. The service absorbs it
// and switches to Fallback.
type ProviderError struct {
	Kind     FailureKind
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("provider %s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ValidationError rejects a request before any work is done.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

// PersistenceError wraps a failure to store the final result.
type PersistenceError struct{ Err error }

func (e *PersistenceError) Error() string { return "persist generation: " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

// ErrGenerationNotFound is returned by reads of a generation the caller does not own.
var ErrGenerationNotFound = errors.New("generation not found")
