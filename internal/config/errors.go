package config

import (
	"errors"
	"fmt"
)

// Configuration validation errors, returned by Config.Validate. Callers
// match them with errors.Is.
var (
	// ErrNoInstruments is returned when the instrument list is empty.
	ErrNoInstruments = errors.New("no instruments configured: add at least one instrument")

	// ErrMissingInstrumentKey is returned when an instrument has no key.
	ErrMissingInstrumentKey = errors.New("instrument key is required")

	// ErrMissingInstrumentDir is returned when an instrument has no image
	// directory.
	ErrMissingInstrumentDir = errors.New("instrument directory is required")

	// ErrDuplicateInstrument is returned when two instruments share a key.
	ErrDuplicateInstrument = errors.New("duplicate instrument key")

	// ErrInvalidGeometry is returned when the margins consume the page.
	ErrInvalidGeometry = errors.New("invalid geometry: margins leave no usable content area")

	// ErrInvalidGap is returned when the inter-image gap is not positive.
	// The gap is never clamped; it must be fixed in the configuration.
	ErrInvalidGap = errors.New("invalid gap: must be positive")

	// ErrInvalidConcurrency is returned when the build concurrency is not
	// positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidLocale is returned when the locale is not a valid BCP 47
	// tag.
	ErrInvalidLocale = errors.New("invalid locale: must be a BCP 47 tag such as \"en\" or \"de\"")
)

// wrapInstrument annotates a sentinel with the instrument it concerns.
func wrapInstrument(err error, key string) error {
	return fmt.Errorf("%w: %q", err, key)
}
