package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/volcanium/config"
	"github.com/katalvlaran/volcanium/logger"
	"github.com/katalvlaran/volcanium/metrics"
	"github.com/katalvlaran/volcanium/solver"
	"github.com/katalvlaran/volcanium/valve"
)

type rootFlags struct {
	config string
	input  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:          "volcanium",
		Short:        "Plan valve openings to release the most pressure",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "configuration file (yaml or json)")
	root.PersistentFlags().StringVarP(&flags.input, "input", "i", "-", "valve network file, - for stdin")

	root.AddCommand(
		newModeCmd("solo", "Best pressure for one agent", &flags, solver.ModeSolo),
		newModeCmd("pair", "Best pressure for two agents opening disjoint valves", &flags, solver.ModePair),
		newModeCmd("all", "Run solo then pair", &flags, solver.ModeSolo, solver.ModePair),
	)

	return root
}

func newModeCmd(use, short string, flags *rootFlags, modes ...string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), *flags, modes)
		},
	}
}

// run loads config and input, solves every requested mode and prints one
// answer per line. Errors are returned to cobra, which reports them.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, flags rootFlags, modes []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(flags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.NewWithWriter(stderr, "volcanium", cfg.Logging)
	if err != nil {
		return err
	}

	records, err := readRecords(stdin, flags.input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var rec metrics.Recorder = metrics.Nop{}
	var prom *metrics.Prom
	if cfg.Metrics.Textfile != "" {
		if prom, err = metrics.NewProm(); err != nil {
			return err
		}
		rec = prom
	}

	s := solver.New(solver.Settings{
		Start:      cfg.Network.Start,
		SoloBudget: cfg.Search.SoloBudget,
		PairBudget: cfg.Search.PairBudget,
	}, log, rec)

	for _, mode := range modes {
		var rep solver.Report
		switch mode {
		case solver.ModeSolo:
			rep, err = s.Solo(ctx, records)
		case solver.ModePair:
			rep, err = s.Pair(ctx, records)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", mode, err)
		}
		fmt.Fprintln(stdout, rep.Pressure)
	}

	if prom != nil {
		if err = prom.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Warnf("%v", err)
		}
	}

	return nil
}

func readRecords(stdin io.Reader, path string) ([]valve.Record, error) {
	if path == "" || path == "-" {
		return valve.ParseRecords(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return valve.ParseRecords(f)
}
