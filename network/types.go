package network

import (
	"errors"
	"fmt"
)

// DefaultStart is the valve every agent starts at.
const DefaultStart = "AA"

// Sentinel errors for Build.
var (
	ErrNoRecords       = errors.New("network: no valve records")
	ErrDuplicateValve  = errors.New("network: duplicate valve")
	ErrUnknownTunnel   = errors.New("network: tunnel to unknown valve")
	ErrStartNotFound   = errors.New("network: start valve not found")
	ErrTooManyValves   = errors.New("network: too many valves with positive flow")
	ErrOptionViolation = errors.New("network: invalid option supplied")
)

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Start names the origin valve.
	Start string

	err error
}

// DefaultOptions returns Options with Start = DefaultStart.
func DefaultOptions() Options {
	return Options{Start: DefaultStart}
}

// WithStart sets the origin valve. An empty name is recorded as ErrOptionViolation.
func WithStart(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: empty start valve", ErrOptionViolation)
			return
		}
		o.Start = name
	}
}
