// Package solver runs the full pipeline for one input: records → network →
// search → (pairing), with logging, metrics and a run id per call.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/volcanium/logger"
	"github.com/katalvlaran/volcanium/metrics"
	"github.com/katalvlaran/volcanium/network"
	"github.com/katalvlaran/volcanium/pairing"
	"github.com/katalvlaran/volcanium/search"
	"github.com/katalvlaran/volcanium/valve"
)

// Modes, used as log and metric labels.
const (
	ModeSolo = "solo"
	ModePair = "pair"
)

// Settings are the knobs a Solver needs.
type Settings struct {
	Start      string
	SoloBudget int
	PairBudget int
}

// Report is the outcome of one mode.
type Report struct {
	RunID    string
	Mode     string
	Budget   int
	Pressure uint64
	// Agents lists the valve names each agent opens; one entry for solo,
	// two for pair (the second may be empty).
	Agents  [][]string
	Elapsed time.Duration
}

// Solver wires the engine packages together.
type Solver struct {
	set Settings
	log logger.Logger
	rec metrics.Recorder
	now func() time.Time
}

// New returns a Solver. Nil log or rec fall back to no-op implementations.
func New(set Settings, log logger.Logger, rec metrics.Recorder) *Solver {
	if log == nil {
		log = logger.Nop{}
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	if set.Start == "" {
		set.Start = network.DefaultStart
	}

	return &Solver{set: set, log: log, rec: rec, now: time.Now}
}

// Solo returns the best plan for one agent with SoloBudget minutes.
func (s *Solver) Solo(ctx context.Context, records []valve.Record) (Report, error) {
	rep := Report{RunID: uuid.NewString(), Mode: ModeSolo, Budget: s.set.SoloBudget}
	began := s.now()

	g, err := s.build(ctx, rep, records)
	if err != nil {
		return Report{}, err
	}

	searched := s.now()
	var best search.Outcome
	res, err := search.Run(g, rep.Budget, search.WithOnOutcome(func(o search.Outcome) {
		if o.Pressure > best.Pressure {
			best = o
		}
	}))
	if err != nil {
		return Report{}, fmt.Errorf("solver: %s: %w", rep.Mode, err)
	}
	s.observe(rep, res, s.now().Sub(searched))

	rep.Pressure = res.Best
	rep.Agents = [][]string{g.Names(best.Opened)}

	return s.finish(rep, began), nil
}

// Pair returns the best plan for two agents with PairBudget minutes each.
func (s *Solver) Pair(ctx context.Context, records []valve.Record) (Report, error) {
	rep := Report{RunID: uuid.NewString(), Mode: ModePair, Budget: s.set.PairBudget}
	began := s.now()

	g, err := s.build(ctx, rep, records)
	if err != nil {
		return Report{}, err
	}

	searched := s.now()
	res, err := search.Run(g, rep.Budget, search.WithOutcomes())
	if err != nil {
		return Report{}, fmt.Errorf("solver: %s: %w", rep.Mode, err)
	}
	s.observe(rep, res, s.now().Sub(searched))

	if err = ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("solver: %s: %w", rep.Mode, err)
	}
	p, err := pairing.Best(res.Outcomes)
	if err != nil {
		return Report{}, fmt.Errorf("solver: %s: %w", rep.Mode, err)
	}

	rep.Pressure = p.Pressure
	rep.Agents = [][]string{g.Names(p.First.Opened), g.Names(p.Second.Opened)}

	return s.finish(rep, began), nil
}

// build checks ctx and compacts the network.
func (s *Solver) build(ctx context.Context, rep Report, records []valve.Record) (*network.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("solver: %s: %w", rep.Mode, err)
	}
	g, err := network.Build(records, network.WithStart(s.set.Start))
	if err != nil {
		return nil, fmt.Errorf("solver: %s: %w", rep.Mode, err)
	}
	s.log.Debugw("network built", map[string]any{
		"run_id":   rep.RunID,
		"mode":     rep.Mode,
		"valves":   len(records),
		"openable": g.Len(),
		"start":    g.Name(g.Start()),
	})

	return g, nil
}

func (s *Solver) observe(rep Report, res search.Result, elapsed time.Duration) {
	s.rec.ObserveSearch(rep.Mode, res.States, res.Terminals, elapsed)
	s.log.Debugw("search finished", map[string]any{
		"run_id":    rep.RunID,
		"mode":      rep.Mode,
		"budget":    rep.Budget,
		"states":    res.States,
		"terminals": res.Terminals,
		"elapsed":   elapsed.String(),
	})
}

func (s *Solver) finish(rep Report, began time.Time) Report {
	rep.Elapsed = s.now().Sub(began)
	s.rec.ObserveAnswer(rep.Mode, rep.Pressure)
	s.log.Infow("solved", map[string]any{
		"run_id":   rep.RunID,
		"mode":     rep.Mode,
		"budget":   rep.Budget,
		"pressure": rep.Pressure,
		"agents":   rep.Agents,
		"elapsed":  rep.Elapsed.String(),
	})

	return rep
}
