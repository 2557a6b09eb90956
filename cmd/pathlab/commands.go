package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dantzig"
	"github.com/katalvlaran/pathlab/dfs"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/trace"
)

var errLabelsDisagree = errors.New("pathlab: labels disagree with the Dijkstra oracle")

type textReport interface {
	writeText(w io.Writer) error
}

// emit prints rep as JSON or text depending on --json.
func (a *app) emit(cmd *cobra.Command, rep textReport) error {
	if a.asJSON {
		return writeJSON(cmd.OutOrStdout(), rep)
	}

	return rep.writeText(cmd.OutOrStdout())
}

// solve loads the graph and runs one solve in the configured mode.
func (a *app) solve(traced bool) (*core.Graph, *dantzig.Labels, *trace.Sequence, error) {
	g, err := a.loadGraph()
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := a.solveMode()
	if err != nil {
		return nil, nil, nil, err
	}
	labels, seq, err := dantzig.Solve(g, a.solveOpts(m, traced)...)
	if err != nil {
		return nil, nil, nil, err
	}

	return g, labels, seq, nil
}

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Label every node reachable from the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, labels, _, err := a.solve(false)
			if err != nil {
				return err
			}
			rep := newSolveReport(g, labels)
			if rep.Acyclic, rep.Cycles, err = a.cycles(g, labels.Mode()); err != nil {
				return err
			}

			return a.emit(cmd, rep)
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Reconstruct one optimal path from source to target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, labels, _, err := a.solve(false)
			if err != nil {
				return err
			}
			rep, err := findPath(g, labels, target)
			if err != nil {
				return err
			}
			rep.RunID = newRunID()

			return a.emit(cmd, rep)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "target node")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newTraceCmd(a *app) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print every settlement step with its candidates and justification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, labels, seq, err := a.solve(true)
			if err != nil {
				return err
			}
			rep := traceReport{RunID: newRunID(), Mode: labels.Mode(), Trace: seq}
			if target != "" {
				if rep.Path, err = findPath(g, labels, target); err != nil {
					return err
				}
			}

			return a.emit(cmd, rep)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "also reconstruct the path to this node")

	return cmd
}

func newBothCmd(a *app) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "both",
		Short: "Solve MIN and MAX concurrently and compare the labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if a.cfg.Solver.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, a.cfg.Solver.Timeout)
				defer cancel()
			}

			lo, hi, err := dantzig.SolveBoth(ctx, g,
				dantzig.Source(a.cfg.Solver.Source), dantzig.WithLogger(a.log))
			if err != nil {
				return err
			}
			rep := bothReport{RunID: newRunID(), Source: a.cfg.Solver.Source}
			for _, side := range []struct {
				run dantzig.Run
				out *modeReport
			}{{lo, &rep.Min}, {hi, &rep.Max}} {
				side.out.Labels = side.run.Labels
				side.out.Order = side.run.Labels.SettlementOrder()
				if target != "" {
					if side.out.Path, err = findPath(g, side.run.Labels, target); err != nil {
						return err
					}
				}
			}

			return a.emit(cmd, rep)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "also reconstruct both paths to this node")

	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Cross-check MIN labels against Dijkstra (non-negative graphs only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			src := a.cfg.Solver.Source
			labels, _, err := dantzig.Solve(g, a.solveOpts(dantzig.Min, false)...)
			if err != nil {
				return err
			}
			dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
			if err != nil {
				return err
			}

			rep := verifyReport{RunID: newRunID(), Mode: dantzig.Min, Source: src, Mismatches: []mismatch{}}
			for _, id := range g.Nodes() {
				got, _ := labels.Value(id)
				want := dist[id]
				rep.Checked++
				if !sameLabel(got, want) {
					rep.Mismatches = append(rep.Mismatches, mismatch{
						Node: id, Dantzig: trace.FormatValue(got), Dijkstra: trace.FormatValue(want),
					})
				}
			}
			rep.Agree = len(rep.Mismatches) == 0
			a.log.Info("verify finished", "source", src, "checked", rep.Checked, "mismatches", len(rep.Mismatches))

			if err := a.emit(cmd, rep); err != nil {
				return err
			}
			if !rep.Agree {
				return fmt.Errorf("%w: %d node(s)", errLabelsDisagree, len(rep.Mismatches))
			}

			return nil
		},
	}
}

// cycles reports whether g is acyclic and, if not, its witness cycles.
// In Max mode a cyclic graph is logged at Warn: labels there are greedy,
// not longest.
func (a *app) cycles(g *core.Graph, m dantzig.Mode) (bool, [][]string, error) {
	has, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return false, nil, err
	}
	if has && m == dantzig.Max {
		a.log.Warn("max labels on a cyclic graph are not guaranteed longest", "cycles", len(cycles))
	}

	return !has, cycles, nil
}

// sameLabel compares two labels allowing for summation-order rounding.
func sameLabel(x, y float64) bool {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= 1e-9*math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
}

func newSampleCmd(_ *app) *cobra.Command {
	var ids string
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample graph as a YAML document",
		Long: `Print the built-in sample graph as a YAML document.

--ids renames the nodes by position: "numeric" (0, 1, ...), "letters"
(A..P) or "prefix=<p>" (p1..p16).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := builder.DefaultDocument()
			if ids != "" {
				fn, err := builder.ParseIDScheme(ids)
				if err != nil {
					return err
				}
				if doc, err = builder.Relabel(doc, fn); err != nil {
					return err
				}
			}

			return doc.Encode(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&ids, "ids", "", "rename nodes: numeric, letters or prefix=<p>")

	return cmd
}
