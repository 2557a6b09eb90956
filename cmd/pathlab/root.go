package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dantzig"
	"github.com/katalvlaran/pathlab/internal/config"
	"github.com/katalvlaran/pathlab/internal/logging"
)

// app carries what every subcommand needs once flags and config are merged.
type app struct {
	cfg config.Config
	log *slog.Logger

	// persistent flags
	graphPath string
	source    string
	mode      string
	logLevel  string
	logFormat string
	envFile   string
	lenient   bool
	asJSON    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "pathlab",
		Short:        "Traced shortest and longest paths with Dantzig's method",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.graphPath, "graph", "g", "", "graph document (YAML or JSON); empty uses the built-in sample")
	pf.StringVarP(&a.source, "source", "s", "", "source node (default from PATHLAB_SOURCE, else x1)")
	pf.StringVarP(&a.mode, "mode", "m", "", "min|max (default from PATHLAB_MODE, else min)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "text|json")
	pf.StringVar(&a.envFile, "env-file", "", "load settings from this file instead of ./.env")
	pf.BoolVar(&a.lenient, "lenient", false, "skip edges whose weight label is not a number")
	pf.BoolVar(&a.asJSON, "json", false, "print a JSON report")

	root.AddCommand(
		newSolveCmd(a),
		newPathCmd(a),
		newTraceCmd(a),
		newBothCmd(a),
		newVerifyCmd(a),
		newSampleCmd(a),
	)

	return root
}

// init loads config, lets explicitly set flags win, and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("graph") {
		cfg.Solver.Graph = a.graphPath
	}
	if flags.Changed("source") {
		cfg.Solver.Source = a.source
	}
	if flags.Changed("mode") {
		cfg.Solver.Mode = a.mode
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Logging, cmd.ErrOrStderr())

	return nil
}

// solveMode parses the configured mode.
func (a *app) solveMode() (dantzig.Mode, error) {
	return dantzig.ParseMode(a.cfg.Solver.Mode)
}

// loadGraph builds the configured graph, or the sample when none is set.
func (a *app) loadGraph() (*core.Graph, error) {
	doc := builder.DefaultDocument()
	if a.cfg.Solver.Graph != "" {
		var err error
		if doc, err = builder.LoadFile(a.cfg.Solver.Graph); err != nil {
			return nil, err
		}
	}

	opts := []builder.BuilderOption{builder.WithLogger(a.log)}
	if a.lenient {
		opts = append(opts, builder.WithLenientWeights())
	}
	g, err := builder.Build(doc, opts...)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	a.log.Debug("graph loaded", "path", a.cfg.Solver.Graph, "nodes", g.Order(), "arcs", g.Size())

	return g, nil
}

// solveOpts is the common option set for one solve.
func (a *app) solveOpts(m dantzig.Mode, traced bool) []dantzig.Option {
	opts := []dantzig.Option{
		dantzig.Source(a.cfg.Solver.Source),
		dantzig.WithMode(m),
		dantzig.WithLogger(a.log),
	}
	if traced {
		opts = append(opts, dantzig.WithTrace())
	}

	return opts
}
