package domain

import "errors"

// FetchKind classifies a track fetch failure
type FetchKind int

const (
	// FetchTransient covers timeouts and connection failures, presumed
	// recoverable; the caller retries and then degrades to offline mode
	FetchTransient FetchKind = iota
	// FetchPermanent covers unexpected status codes and malformed
	// responses; retrying would not help
	FetchPermanent
)

// FetchError is the typed failure returned by a TrackSource
type FetchError struct {
	Kind FetchKind
	Err  error
}

func (e *FetchError) Error() string {
	if e.Kind == FetchTransient {
		return "transient fetch error: " + e.Err.Error()
	}
	return "permanent fetch error: " + e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsTransient reports whether err is a transient fetch failure
func IsTransient(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == FetchTransient
}

// IsPermanent reports whether err is a permanent fetch failure
func IsPermanent(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == FetchPermanent
}
