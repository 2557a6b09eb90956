package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dantzig"
	"github.com/katalvlaran/pathlab/trace"
)

// solveReport is the label map of one run plus its settled-set history.
type solveReport struct {
	RunID     string          `json:"run_id"`
	Mode      dantzig.Mode    `json:"mode"`
	Source    string          `json:"source"`
	Labels    *dantzig.Labels `json:"labels"`
	Order     []string        `json:"settlement_order"`
	Settled   [][]string      `json:"settled_sets"`
	Unreached []string        `json:"unreached"`
	Acyclic   bool            `json:"acyclic"`
	Cycles    [][]string      `json:"cycles,omitempty"`
}

// pathReport is the answer to "how do I get from source to target".
// A missing path is a result, not an error.
type pathReport struct {
	RunID     string        `json:"run_id,omitempty"`
	Mode      dantzig.Mode  `json:"mode"`
	Source    string        `json:"source"`
	Target    string        `json:"target"`
	PathFound bool          `json:"path_found"`
	Path      *dantzig.Path `json:"path,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}

type traceReport struct {
	RunID string          `json:"run_id"`
	Mode  dantzig.Mode    `json:"mode"`
	Trace *trace.Sequence `json:"trace"`
	Path  *pathReport     `json:"main_path,omitempty"`
}

type modeReport struct {
	Labels *dantzig.Labels `json:"labels"`
	Order  []string        `json:"settlement_order"`
	Path   *pathReport     `json:"path,omitempty"`
}

type bothReport struct {
	RunID  string     `json:"run_id"`
	Source string     `json:"source"`
	Min    modeReport `json:"min"`
	Max    modeReport `json:"max"`
}

type mismatch struct {
	Node     string `json:"node"`
	Dantzig  string `json:"dantzig"`
	Dijkstra string `json:"dijkstra"`
}

type verifyReport struct {
	RunID      string       `json:"run_id"`
	Mode       dantzig.Mode `json:"mode"`
	Source     string       `json:"source"`
	Checked    int          `json:"checked"`
	Agree      bool         `json:"agree"`
	Mismatches []mismatch   `json:"mismatches"`
}

func newRunID() string { return uuid.NewString() }

// newSolveReport derives E1..En from the settlement order: E(k) is its
// first k nodes.
func newSolveReport(g *core.Graph, labels *dantzig.Labels) solveReport {
	order := labels.SettlementOrder()
	settled := make([][]string, len(order))
	for k := range order {
		settled[k] = append([]string(nil), order[:k+1]...)
	}
	unreached := []string{}
	for _, id := range g.Nodes() {
		if !labels.Reachable(id) {
			unreached = append(unreached, id)
		}
	}

	return solveReport{
		RunID:     newRunID(),
		Mode:      labels.Mode(),
		Source:    labels.Source(),
		Labels:    labels,
		Order:     order,
		Settled:   settled,
		Unreached: unreached,
	}
}

// findPath reconstructs source→target, folding ErrNoPath into the report.
func findPath(g *core.Graph, labels *dantzig.Labels, target string) (*pathReport, error) {
	rep := &pathReport{Mode: labels.Mode(), Source: labels.Source(), Target: target}
	p, err := dantzig.Reconstruct(g, labels, labels.Source(), target)
	switch {
	case errors.Is(err, dantzig.ErrNoPath):
		rep.Reason = err.Error()
	case err != nil:
		return nil, err
	default:
		rep.PathFound = true
		rep.Path = p
	}

	return rep, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (r solveReport) writeText(w io.Writer) error {
	fmt.Fprintf(w, "run %s | mode %s | source %s\n", r.RunID, r.Mode, r.Source)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "node\tλ\trank")
	for _, id := range r.Labels.Nodes() {
		v, _ := r.Labels.Value(id)
		rank := "-"
		if k := r.Labels.Rank(id); k >= 0 {
			rank = fmt.Sprint(k)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, trace.FormatValue(v), rank)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for k, set := range r.Settled {
		fmt.Fprintf(w, "E%d = {%s}\n", k+1, strings.Join(set, ", "))
	}
	if len(r.Unreached) > 0 {
		fmt.Fprintf(w, "unreached: %s\n", strings.Join(r.Unreached, ", "))
	}
	for _, c := range r.Cycles {
		fmt.Fprintf(w, "cycle: %s\n", strings.Join(c, " → "))
	}

	return nil
}

func (r *pathReport) writeText(w io.Writer) error {
	if !r.PathFound {
		_, err := fmt.Fprintf(w, "no %s path from %s to %s: %s\n", r.Mode, r.Source, r.Target, r.Reason)
		return err
	}
	_, err := fmt.Fprintf(w, "%s path %s (cost %s)\n", r.Mode, r.Path, trace.FormatValue(r.Path.Cost))

	return err
}

func (r traceReport) writeText(w io.Writer) error {
	seq := r.Trace
	fmt.Fprintf(w, "run %s | mode %s | source %s | %d step(s)\n", r.RunID, r.Mode, seq.Source, seq.Len())
	for _, st := range seq.Steps {
		fmt.Fprintf(w, "step %d  S = {%s}\n", st.Index, strings.Join(st.Settled, ", "))
		for _, c := range st.Candidates {
			if c.Deferred {
				fmt.Fprintf(w, "    #%d %s (deferred)\n", c.ArcIndex, c.Formula)
				continue
			}
			fmt.Fprintf(w, "    #%d %s\n", c.ArcIndex, c.Formula)
		}
		fmt.Fprintf(w, "  → %s: %s\n", st.NewLabelFor, st.Justification)
	}
	fmt.Fprintf(w, "outcome: %s\n", seq.Outcome)
	if len(seq.Unreached) > 0 {
		fmt.Fprintf(w, "unreached: %s\n", strings.Join(seq.Unreached, ", "))
	}
	if r.Path != nil {
		return r.Path.writeText(w)
	}

	return nil
}

func (r bothReport) writeText(w io.Writer) error {
	fmt.Fprintf(w, "run %s | source %s\n", r.RunID, r.Source)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "node\tmin\tmax")
	for _, id := range r.Min.Labels.Nodes() {
		lo, _ := r.Min.Labels.Value(id)
		hi, _ := r.Max.Labels.Value(id)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, trace.FormatValue(lo), trace.FormatValue(hi))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, p := range []*pathReport{r.Min.Path, r.Max.Path} {
		if p == nil {
			continue
		}
		if err := p.writeText(w); err != nil {
			return err
		}
	}

	return nil
}

func (r verifyReport) writeText(w io.Writer) error {
	if r.Agree {
		_, err := fmt.Fprintf(w, "%d label(s) from %s agree with Dijkstra\n", r.Checked, r.Source)
		return err
	}
	fmt.Fprintf(w, "%d of %d label(s) from %s disagree with Dijkstra\n", len(r.Mismatches), r.Checked, r.Source)
	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "  %s: dantzig %s, dijkstra %s\n", m.Node, m.Dantzig, m.Dijkstra)
	}

	return nil
}
