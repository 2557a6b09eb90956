// Package dantzig implements Dantzig's label-setting method for single-source
// extremal paths, with an optional replayable step trace.
//
// Notes on implementation choices:
//
//   - Each iteration rescans every arc leaving the settled set. With tens of
//     nodes this is cheaper than maintaining a heap and keeps the candidate
//     list of a step complete for the trace.
//   - Candidates are visited in settlement order, then arc insertion order,
//     so the candidate list of every step is reproducible.
//   - Max mode consults a reachability pass (package bfs) to defer targets
//     whose reachable predecessors are still unsettled.
package dantzig

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathlab/bfs"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/trace"
)

// Solve computes extremal labels from Options.Source over g.
//
// Returns:
//
//   - labels: the finished label map; unreached nodes hold +∞ (Min) or -∞ (Max).
//   - seq:    the step sequence if WithTrace was given, nil otherwise.
//   - err:    an input error or ErrLabelOverflow; an isolated source is not an error.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrUnknownSource).
//  4. Mode must be Min or Max (ErrBadMode).
//
// Algorithm:
//  1. S = [source], λ(source) = 0.
//  2. Candidates are the arcs (u,v,w) with u ∈ S and v ∉ S; total = λ(u) + w.
//     None left ⇒ stop.
//  3. The extremal total wins; ties go to the smallest v, then to the
//     first-inserted arc. λ(v) = total, v joins S, one Step is recorded.
//  4. Stop when S = V or no candidates remain.
//
// In Max mode an arc into v is eligible only once every predecessor of v
// that is reachable from the source is settled, so a label is never frozen
// before all routes into its node are known. Ineligible arcs are still traced,
// as Deferred candidates. On a DAG this yields exact longest paths. When a
// cycle leaves no ready target, the check is lifted for that step and every
// frontier arc competes.
//
// A candidate total that overflows to ±Inf aborts the run with
// ErrLabelOverflow; ±Inf is reserved for unreached nodes.
//
// Negative weights in Min mode are not detected. The loop still ends after
// at most |V|-1 steps, but labels may not be minimal; keeping reachable
// negative arcs out of Min solves is the caller's responsibility.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E), plus O(V²) for the trace when requested.
func Solve(g *core.Graph, opts ...Option) (*Labels, *trace.Sequence, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate in a fixed order
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Contains(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
	if !cfg.Mode.valid() {
		return nil, nil, fmt.Errorf("%w: %d", ErrBadMode, int(cfg.Mode))
	}

	// 3) Run
	r := newRunner(g, cfg)
	if err := r.prepare(); err != nil {
		return nil, nil, err
	}
	if err := r.loop(); err != nil {
		return nil, nil, err
	}

	return r.finish()
}

// runner holds the mutable state of one solve.
type runner struct {
	g    *core.Graph
	opts Options

	settled []string           // S in settlement order
	label   map[string]float64 // λ for settled nodes only
	rank    map[string]int     // position in settled

	// Max mode only: per node, the number of arcs from reachable, unsettled
	// predecessors (self-loops excluded). A node is ready at zero.
	pending map[string]int

	rec *trace.Recorder // nil unless tracing
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.Order()

	return &runner{
		g:       g,
		opts:    cfg,
		settled: make([]string, 0, n),
		label:   make(map[string]float64, n),
		rank:    make(map[string]int, n),
	}
}

// prepare seeds S with the source and, in Max mode, counts pending
// predecessors over the part of g reachable from the source.
func (r *runner) prepare() error {
	if r.opts.Trace {
		r.rec = trace.NewRecorder()
		r.rec.Start(r.opts.Source, r.opts.Mode.String())
	}

	if r.opts.Mode == Max {
		reach, err := bfs.Reachable(r.g, r.opts.Source)
		if err != nil {
			return fmt.Errorf("dantzig: reachability from %q: %w", r.opts.Source, err)
		}
		r.pending = make(map[string]int, len(reach))
		for _, a := range r.g.Arcs() {
			if a.From != a.To && reach[a.From] {
				r.pending[a.To]++
			}
		}
	}

	r.settle(r.opts.Source, 0)

	return nil
}

// settle freezes λ(id) and releases the pending count of id's successors.
func (r *runner) settle(id string, value float64) {
	r.rank[id] = len(r.settled)
	r.settled = append(r.settled, id)
	r.label[id] = value
	if r.pending != nil {
		for _, a := range r.g.OutgoingArcs(id) {
			if a.From != a.To {
				r.pending[a.To]--
			}
		}
	}
}

// loop admits one node per iteration until S = V or candidates run out.
func (r *runner) loop() error {
	log := r.opts.Logger
	for len(r.settled) < r.g.Order() {
		// 1) Gather the frontier, marking arcs whose target is not ready.
		cands, deferred, relaxed, err := r.candidates()
		if err != nil {
			return err
		}
		if len(cands) == 0 {
			return nil
		}

		// 2) Pick the winner.
		win, t := r.pick(cands)
		c := cands[win]

		// 3) Record with the state as of the start of the step.
		if r.rec != nil {
			r.rec.RecordStep(r.settled, r.labelState(), cands,
				trace.Selection{From: c.From, To: c.To, ArcIndex: c.ArcIndex, ComputedTotal: c.ComputedTotal},
				r.justify(cands, c, t, deferred, relaxed))
		}

		// 4) Freeze.
		r.settle(c.To, c.ComputedTotal)
		log.Debug("dantzig: settled",
			"step", len(r.settled)-2,
			"node", c.To,
			"label", c.ComputedTotal,
			"from", c.From,
			"arc", c.ArcIndex,
			"candidates", len(cands),
			"deferred", deferred,
		)
	}

	return nil
}

// candidates lists every frontier arc in settlement order, then arc order.
// In Max mode an arc whose target still has reachable, unsettled
// predecessors is marked Deferred and counted in deferred. When every arc is
// deferred (only on a cycle) the marks are cleared and relaxed is true.
// A non-finite total fails the run with ErrLabelOverflow.
func (r *runner) candidates() (cands []trace.Candidate, deferred int, relaxed bool, err error) {
	for _, u := range r.settled {
		lu := r.label[u]
		for _, a := range r.g.OutgoingArcs(u) {
			if _, done := r.rank[a.To]; done {
				continue
			}
			total := lu + a.Weight
			if math.IsInf(total, 0) || math.IsNaN(total) {
				return nil, 0, false, fmt.Errorf("%w: λ(%s) + w(%s,%s) = %v + %v via arc #%d",
					ErrLabelOverflow, a.From, a.From, a.To, lu, a.Weight, a.Index)
			}
			c := trace.Candidate{
				From:          a.From,
				To:            a.To,
				ArcIndex:      a.Index,
				ArcWeight:     a.Weight,
				ComputedTotal: total,
				Formula:       trace.Formula(a.From, a.To, lu, a.Weight, total),
			}
			if r.pending != nil && r.pending[a.To] > 0 {
				c.Deferred = true
				deferred++
			}
			cands = append(cands, c)
		}
	}
	if deferred > 0 && deferred == len(cands) {
		for i := range cands {
			cands[i].Deferred = false
		}

		return cands, 0, true, nil
	}

	return cands, deferred, false, nil
}

// tie tells which rules separated the winner from rivals with an equal total.
type tie struct {
	node bool // a rival targeting another node lost on node ID
	arc  bool // a parallel rival into the same node lost on arc index
}

// pick returns the index of the winning eligible candidate and the tie
// rules that applied. cands must hold at least one non-deferred entry.
func (r *runner) pick(cands []trace.Candidate) (int, tie) {
	mode := r.opts.Mode
	best := -1
	for i, c := range cands {
		if c.Deferred {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := cands[best]
		switch {
		case mode.better(c.ComputedTotal, b.ComputedTotal):
			best = i
		case c.ComputedTotal != b.ComputedTotal:
		case c.To < b.To:
			best = i
		case c.To == b.To && c.ArcIndex < b.ArcIndex:
			best = i
		}
	}

	var t tie
	w := cands[best]
	for i, c := range cands {
		if i == best || c.Deferred || c.ComputedTotal != w.ComputedTotal {
			continue
		}
		if c.To == w.To {
			t.arc = true
		} else {
			t.node = true
		}
	}

	return best, t
}

// labelState snapshots λ over S in settlement order.
func (r *runner) labelState() []trace.NodeLabel {
	out := make([]trace.NodeLabel, len(r.settled))
	for i, id := range r.settled {
		out[i] = trace.NodeLabel{Node: id, Value: r.label[id]}
	}

	return out
}

// justify renders the human-readable reason for a selection, e.g.
//
//	min over 2 candidates: λ(B) = λ(A) + w(A,B) = 0 + 2 = 2
func (r *runner) justify(cands []trace.Candidate, c trace.Candidate, t tie, deferred int, relaxed bool) string {
	var b strings.Builder
	eligible := len(cands) - deferred
	noun := "candidates"
	if eligible == 1 {
		noun = "candidate"
	}
	fmt.Fprintf(&b, "%s over %d %s: λ(%s) = %s", r.opts.Mode, eligible, noun, c.To, c.Formula)

	at := trace.FormatValue(c.ComputedTotal)
	switch {
	case t.node && t.arc:
		fmt.Fprintf(&b, "; tie at %s broken by smallest node ID, then first-inserted arc #%d", at, c.ArcIndex)
	case t.node:
		fmt.Fprintf(&b, "; tie at %s broken by smallest node ID", at)
	case t.arc:
		fmt.Fprintf(&b, "; tie at %s broken by first-inserted arc #%d", at, c.ArcIndex)
	}
	if deferred > 0 {
		noun = "arcs"
		if deferred == 1 {
			noun = "arc"
		}
		fmt.Fprintf(&b, "; %d %s deferred until their target's predecessors settle", deferred, noun)
	}
	if relaxed {
		b.WriteString("; no target was ready (cycle), readiness lifted for this step")
	}

	return b.String()
}

// finish assigns sentinels, seals the trace and emits the summary record.
func (r *runner) finish() (*Labels, *trace.Sequence, error) {
	nodes := r.g.Nodes()
	out := &Labels{
		source: r.opts.Source,
		mode:   r.opts.Mode,
		nodes:  nodes,
		value:  make(map[string]float64, len(nodes)),
		rank:   r.rank,
		order:  r.settled,
	}
	var unreached []string
	for _, id := range nodes {
		if v, ok := r.label[id]; ok {
			out.value[id] = v
			continue
		}
		out.value[id] = r.opts.Mode.unreached()
		unreached = append(unreached, id)
	}

	var seq *trace.Sequence
	if r.rec != nil {
		seq = r.rec.Finish(unreached)
	}

	r.opts.Logger.Info("dantzig: solve finished",
		"source", r.opts.Source,
		"mode", r.opts.Mode.String(),
		"settled", len(r.settled),
		"unreached", len(unreached),
	)

	return out, seq, nil
}
