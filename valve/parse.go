package valve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record grammar fragments. The tunnel clause comes in singular and plural form.
const (
	prefixValve = "Valve "
	infixFlow   = " has flow rate="
)

var tunnelClauses = []string{
	"; tunnels lead to valves ",
	"; tunnel leads to valves ",
	"; tunnels lead to valve ",
	"; tunnel leads to valve ",
}

// ParseRecord parses a single valve line.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, prefixValve)
	if !ok {
		return Record{}, fmt.Errorf("%w: missing %q prefix: %q", ErrMalformedRecord, prefixValve, line)
	}

	name, rest, ok := strings.Cut(rest, infixFlow)
	if !ok || !isName(name) {
		return Record{}, fmt.Errorf("%w: bad valve name: %q", ErrMalformedRecord, line)
	}

	var flowText, tunnelText string
	for _, clause := range tunnelClauses {
		if flowText, tunnelText, ok = strings.Cut(rest, clause); ok {
			break
		}
	}
	if !ok {
		return Record{}, fmt.Errorf("%w: missing tunnel clause: %q", ErrMalformedRecord, line)
	}

	flow, err := strconv.ParseUint(flowText, 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("%w: flow rate %q: %v", ErrMalformedRecord, flowText, err)
	}

	parts := strings.Split(tunnelText, ",")
	tunnels := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !isName(p) {
			return Record{}, fmt.Errorf("%w: bad tunnel name %q: %q", ErrMalformedRecord, p, line)
		}
		tunnels = append(tunnels, p)
	}

	return Record{Name: name, Flow: uint(flow), Tunnels: tunnels}, nil
}

// ParseRecords reads one record per non-blank line. The first failure stops
// the scan and reports its 1-based line number.
func ParseRecords(r io.Reader) ([]Record, error) {
	var (
		records []Record
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseRecord(text)
		if err != nil {
			return nil, fmt.Errorf("ParseRecords: line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseRecords: %w", err)
	}

	return records, nil
}

// isName reports whether s is a two-letter upper-case identifier.
func isName(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}
