package weather

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured is returned by a provider whose API key (or other required
// setting) is missing. The fallback chain treats it like any other failure and
// moves on to the next provider.
var ErrNotConfigured = errors.New("provider is not configured")

// ErrEmptyCity is returned before any provider is called when the input
// contains no usable city name.
var ErrEmptyCity = errors.New("please provide a city name")

// ErrLocationNotFound is returned when no geocoding variant matched a place.
var ErrLocationNotFound = errors.New("location not found")

// ProviderError records which provider in the chain failed and why.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// LookupError is the structured error returned when every provider in the
// fallback chain failed for a city.
type LookupError struct {
	City   string
	Causes []*ProviderError
}

func (e *LookupError) Error() string {
	msgs := make([]string, len(e.Causes))
	for i, c := range e.Causes {
		msgs[i] = c.Error()
	}
	return fmt.Sprintf("could not retrieve weather for %q: %s", e.City, strings.Join(msgs, "; "))
}
