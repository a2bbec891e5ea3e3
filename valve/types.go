package valve

import "errors"

// MaxValves is the number of openable valves a Set can address.
const MaxValves = 16

// ErrMalformedRecord is returned when a line does not follow the record grammar.
var ErrMalformedRecord = errors.New("valve: malformed record")

// Record is one parsed valve line. Immutable once parsed.
type Record struct {
	// Name is the two-letter valve identifier.
	Name string

	// Flow is the pressure released per remaining minute once opened.
	Flow uint

	// Tunnels lists the names of valves one hop away, in input order.
	Tunnels []string
}
