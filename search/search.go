package search

import (
	"fmt"

	"github.com/katalvlaran/volcanium/matrix"
	"github.com/katalvlaran/volcanium/network"
)

// initialStackCap is the starting capacity of the pending-state stack.
const initialStackCap = 64

// engine holds the prefetched graph data used by the hot loop.
type engine struct {
	order int      // n+1, row stride of dist
	flows []uint64 // flow per openable valve
	dist  []int    // row-major hop counts, start in slot n
}

func newEngine(g *network.Graph) *engine {
	e := &engine{
		order: g.Len() + 1,
		flows: make([]uint64, g.Len()),
		dist:  g.Hops(),
	}
	for i := range e.flows {
		e.flows[i] = uint64(g.Flow(i))
	}

	return e
}

// successors appends every legal successor of s to dst.
func (e *engine) successors(s State, dst []State) []State {
	mustNotOverrun(s)
	row := e.dist[s.Valve*e.order : (s.Valve+1)*e.order]
	for rest := s.Closed; rest != 0; {
		w := rest.First()
		rest = rest.Remove(w)
		if next, ok := open(s, w, row[w], e.flows[w]); ok {
			dst = append(dst, next)
		}
	}

	return dst
}

// open walks d hops from s to closed valve w and opens it. It reports false
// when w is unreachable or the walk and the opening minute overrun the budget.
func open(s State, w, d int, flow uint64) (State, bool) {
	if d == matrix.Unreachable || d+1 > s.Remaining {
		return State{}, false
	}
	remaining := s.Remaining - d - 1

	return State{
		Valve:     w,
		Remaining: remaining,
		Closed:    s.Closed.Remove(w),
		Pressure:  s.Pressure + flow*uint64(remaining),
	}, true
}

func mustNotOverrun(s State) {
	if s.Remaining < 0 {
		panic(fmt.Sprintf("search: state at valve %d has negative remaining time %d", s.Valve, s.Remaining))
	}
}

// Root returns the initial state: at the start valve, full budget, every
// openable valve closed, nothing released.
func Root(g *network.Graph, budget int) State {
	return State{Valve: g.Start(), Remaining: budget, Closed: g.Closed()}
}

// Successors appends the legal successors of s on g to dst and returns it.
// It is the pure transition function Run applies at every step.
func Successors(g *network.Graph, s State, dst []State) []State {
	mustNotOverrun(s)
	for rest := s.Closed; rest != 0; {
		w := rest.First()
		rest = rest.Remove(w)
		if next, ok := open(s, w, g.Distance(s.Valve, w), uint64(g.Flow(w))); ok {
			dst = append(dst, next)
		}
	}

	return dst
}

// Run explores every valve-opening order from the start within budget.
func Run(g *network.Graph, budget int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if budget < 0 {
		return Result{}, fmt.Errorf("Run: budget %d: %w", budget, ErrNegativeBudget)
	}

	root := Root(g, budget)
	if o.Closed != nil {
		if o.Closed.Difference(g.Closed()) != 0 {
			return Result{}, fmt.Errorf("%w: closed set %v outside graph valves %v",
				ErrOptionViolation, *o.Closed, g.Closed())
		}
		root.Closed = *o.Closed
	}
	start := root.Closed

	var (
		res   Result
		e     = newEngine(g)
		stack = make([]State, 0, initialStackCap)
		s     State
		depth int
	)
	stack = append(stack, root)
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.States++

		// An agent may stop and idle at any state, not only at a terminal.
		out := Outcome{Opened: start.Difference(s.Closed), Pressure: s.Pressure}
		if o.Collect {
			res.Outcomes = append(res.Outcomes, out)
		}

		depth = len(stack)
		stack = e.successors(s, stack)
		if len(stack) > depth {
			continue
		}

		// Terminal: no closed valve is reachable in time.
		res.Terminals++
		if out.Pressure > res.Best {
			res.Best = out.Pressure
		}
		o.OnOutcome(out)
	}

	return res, nil
}

// MaxPressure returns the most pressure one agent can release within budget.
func MaxPressure(g *network.Graph, budget int) (uint64, error) {
	res, err := Run(g, budget)
	if err != nil {
		return 0, err
	}

	return res.Best, nil
}

// Outcomes returns the outcome of every state reachable within budget, one
// per stopping point, terminals included. The same opened set may appear
// several times with different pressures.
func Outcomes(g *network.Graph, budget int) ([]Outcome, error) {
	res, err := Run(g, budget, WithOutcomes())
	if err != nil {
		return nil, err
	}

	return res.Outcomes, nil
}

// String renders an outcome as "{opened}=pressure".
func (o Outcome) String() string {
	return fmt.Sprintf("%v=%d", o.Opened, o.Pressure)
}
