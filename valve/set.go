package valve

import (
	"fmt"
	"math/bits"
	"strings"
)

// Set is a fixed-width bitmask over openable valve indices [0, MaxValves).
// Depending on context it holds the closed valves or the opened ones.
type Set uint16

// Full returns the set containing indices [0, n).
// Panics if n is outside [0, MaxValves].
func Full(n int) Set {
	if n < 0 || n > MaxValves {
		panic(fmt.Sprintf("valve.Full: %d valves exceed set width %d", n, MaxValves))
	}

	return Set(uint32(1)<<n - 1)
}

// bit returns the mask for index i, panicking on an unaddressable index.
func bit(i int) Set {
	if i < 0 || i >= MaxValves {
		panic(fmt.Sprintf("valve.Set: index %d out of range [0,%d)", i, MaxValves))
	}

	return Set(1) << i
}

// Contains reports whether index i is in s.
func (s Set) Contains(i int) bool { return s&bit(i) != 0 }

// Remove returns s without index i.
func (s Set) Remove(i int) Set { return s &^ bit(i) }

// Overlaps reports whether s and o share at least one index.
func (s Set) Overlaps(o Set) bool { return s&o != 0 }

// Difference returns the indices in s that are not in o.
func (s Set) Difference(o Set) Set { return s &^ o }

// First returns the lowest index in s, or -1 when s is empty.
func (s Set) First() int {
	if s == 0 {
		return -1
	}

	return bits.TrailingZeros16(uint16(s))
}

// Len returns the number of indices in s.
func (s Set) Len() int { return bits.OnesCount16(uint16(s)) }

// Members returns the indices in s in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	for rest := uint16(s); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros16(rest))
	}

	return out
}

// String renders s as "{0,3,5}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range s.Members() {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", m)
	}
	sb.WriteByte('}')

	return sb.String()
}
