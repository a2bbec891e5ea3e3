package network

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/volcanium/matrix"
	"github.com/katalvlaran/volcanium/valve"
)

// Graph is the compacted valve network. Immutable after Build.
type Graph struct {
	names  []string // len n+1, start last
	flows  []uint   // len n, openable valves only
	dist   []int    // (n+1)² row-major hop counts
	order  int      // n+1
	closed valve.Set
}

// Build compacts records into a Graph rooted at the start valve.
func Build(records []valve.Record, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	// Stage 1: dense ids in arrival order.
	ids := make(map[string]int, len(records))
	for i, rec := range records {
		if _, dup := ids[rec.Name]; dup {
			return nil, fmt.Errorf("Build: %q: %w", rec.Name, ErrDuplicateValve)
		}
		ids[rec.Name] = i
	}
	start, ok := ids[o.Start]
	if !ok {
		return nil, fmt.Errorf("Build: %q: %w", o.Start, ErrStartNotFound)
	}

	// Stage 2: all-pairs hop counts over every parsed valve.
	all, err := distances(records, ids)
	if err != nil {
		return nil, err
	}

	// Stage 3: keep positive-flow valves, then the start in the last slot.
	keep := make([]int, 0, len(records))
	for i, rec := range records {
		if rec.Flow > 0 && i != start {
			keep = append(keep, i)
		}
	}
	if len(keep) > valve.MaxValves {
		return nil, fmt.Errorf("Build: %d valves, limit %d: %w", len(keep), valve.MaxValves, ErrTooManyValves)
	}
	keep = append(keep, start)

	compact, err := all.Restrict(keep)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	n := len(keep) - 1
	g := &Graph{
		names:  make([]string, len(keep)),
		flows:  make([]uint, n),
		dist:   compact.Flat(),
		order:  len(keep),
		closed: valve.Full(n),
	}
	for slot, id := range keep {
		g.names[slot] = records[id].Name
		if slot < n {
			g.flows[slot] = records[id].Flow
		}
	}

	return g, nil
}

// distances builds the symmetric tunnel matrix and closes it.
func distances(records []valve.Record, ids map[string]int) (*matrix.Dense, error) {
	d, err := matrix.NewDistances(len(records))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i, rec := range records {
		for _, name := range rec.Tunnels {
			j, ok := ids[name]
			if !ok {
				return nil, fmt.Errorf("Build: %s -> %s: %w", rec.Name, name, ErrUnknownTunnel)
			}
			if i == j {
				continue
			}
			// Tunnels are walkable both ways even if only one side lists them.
			_ = d.Set(i, j, 1)
			_ = d.Set(j, i, 1)
		}
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return d, nil
}

// Len returns the number of openable valves.
func (g *Graph) Len() int { return len(g.flows) }

// Start returns the slot of the start valve (always Len()).
func (g *Graph) Start() int { return len(g.flows) }

// Flow returns the flow rate of openable valve i.
func (g *Graph) Flow(i int) uint { return g.flows[i] }

// Name returns the name of slot i, the start included.
func (g *Graph) Name(i int) string { return g.names[i] }

// Distance returns the hop count between two slots, or matrix.Unreachable.
func (g *Graph) Distance(from, to int) int { return g.dist[from*g.order+to] }

// Distances returns a copy of the compacted matrix.
func (g *Graph) Distances() *matrix.Dense {
	d, _ := matrix.NewDense(g.order)
	for i := 0; i < g.order; i++ {
		for j := 0; j < g.order; j++ {
			_ = d.Set(i, j, g.dist[i*g.order+j])
		}
	}

	return d
}

// Hops returns a row-major copy of the compacted matrix, stride Len()+1.
func (g *Graph) Hops() []int { return slices.Clone(g.dist) }

// Closed returns the initial closed set: every openable valve.
func (g *Graph) Closed() valve.Set { return g.closed }

// Names returns the names of the valves in s in slot order.
func (g *Graph) Names(s valve.Set) []string {
	members := s.Members()
	out := make([]string, 0, len(members))
	for _, i := range members {
		if i < len(g.flows) {
			out = append(out, g.names[i])
		}
	}

	return out
}
