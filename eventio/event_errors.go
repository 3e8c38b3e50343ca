package eventio

import (
	"fmt"
	"time"
)

// ValidationError marks a notification or payload that is malformed or
// irrelevant. It is acknowledged to the caller and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Reason)
}

// AuthError marks a failed vendor login. Fatal to the invocation.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("vendor auth: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError marks an unreachable vendor API or a non-success response.
// Fatal to the invocation: no partial reconciliation is attempted.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ConflictError marks a version-token rejection by the usage store. It is
// retried locally up to the configured ceiling and surfaced only once the
// attempts are exhausted.
type ConflictError struct {
	EventID  int64
	Attempts int
}

func (e *ConflictError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("usage event %d: version conflict after %d attempts", e.EventID, e.Attempts)
	}
	return fmt.Sprintf("usage event %d: version conflict", e.EventID)
}

// TimestampOrderError marks a usage/job window that fails the ordering
// re-validation before billing. Non-fatal: billing for the job is skipped
// and the violation reported.
type TimestampOrderError struct {
	EventID      int64
	JobGUID      string
	CreatedAt    time.Time
	StartedAt    time.Time
	EffectiveEnd time.Time
	StoppedAt    time.Time
}

func (e *TimestampOrderError) Error() string {
	return fmt.Sprintf(
		"usage event %d and job %s are out of order: createdAt=%s startedAt=%s effectiveEnd=%s stoppedAt=%s",
		e.EventID, e.JobGUID,
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.StartedAt.UTC().Format(time.RFC3339),
		e.EffectiveEnd.UTC().Format(time.RFC3339),
		e.StoppedAt.UTC().Format(time.RFC3339),
	)
}

// BillingPostError marks a rejected charge. Fatal: charges already posted
// in the same invocation are not compensated.
type BillingPostError struct {
	StatusCode int
	Err        error
}

func (e *BillingPostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("billing post: %v", e.Err)
	}
	return fmt.Sprintf("billing post: unexpected status %d", e.StatusCode)
}

func (e *BillingPostError) Unwrap() error { return e.Err }
