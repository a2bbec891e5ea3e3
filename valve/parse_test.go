package valve_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/valve"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name string
		line string
		want valve.Record
	}{
		{
			name: "plural",
			line: "Valve AA has flow rate=0; tunnels lead to valves DD, II, BB",
			want: valve.Record{Name: "AA", Flow: 0, Tunnels: []string{"DD", "II", "BB"}},
		},
		{
			name: "singular",
			line: "Valve HH has flow rate=22; tunnel leads to valve GG",
			want: valve.Record{Name: "HH", Flow: 22, Tunnels: []string{"GG"}},
		},
		{
			name: "surrounding whitespace",
			line: "  Valve JJ has flow rate=21; tunnel leads to valve II \r",
			want: valve.Record{Name: "JJ", Flow: 21, Tunnels: []string{"II"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := valve.ParseRecord(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRecord_Malformed(t *testing.T) {
	lines := []string{
		"",
		"Pipe AA has flow rate=0; tunnels lead to valves BB",
		"Valve aa has flow rate=0; tunnels lead to valves BB",
		"Valve AAA has flow rate=0; tunnels lead to valves BB",
		"Valve AA has flow rate=x; tunnels lead to valves BB",
		"Valve AA has flow rate=-3; tunnels lead to valves BB",
		"Valve AA has flow rate=3",
		"Valve AA has flow rate=3; tunnels lead to valves BB,, CC",
	}
	for _, line := range lines {
		_, err := valve.ParseRecord(line)
		assert.ErrorIs(t, err, valve.ErrMalformedRecord, "line %q", line)
	}
}

func TestParseRecords(t *testing.T) {
	input := strings.Join([]string{
		"Valve AA has flow rate=0; tunnels lead to valves BB",
		"",
		"Valve BB has flow rate=13; tunnel leads to valve AA",
	}, "\n")

	recs, err := valve.ParseRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "BB", recs[1].Name)
	assert.Equal(t, uint(13), recs[1].Flow)

	_, err = valve.ParseRecords(strings.NewReader(input + "\nValve CC broken"))
	require.ErrorIs(t, err, valve.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 4")
}
