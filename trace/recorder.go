package trace

import "fmt"

// Recorder assembles a Sequence one step at a time. It is driven by a solver:
// Start once, RecordStep per admitted node, Finish once.
//
// Every slice handed to RecordStep is copied, so a recorded Step can never be
// changed by the caller mutating its own buffers afterwards.
// A Recorder is not safe for concurrent use; each run owns its own.
type Recorder struct {
	seq      *Sequence
	finished bool
}

// NewRecorder returns an idle Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Start begins a new sequence for the given source and mode.
// Panics if called twice.
func (r *Recorder) Start(source, mode string) {
	if r.seq != nil {
		panic("trace: Recorder.Start called twice")
	}
	r.seq = &Sequence{Source: source, Mode: mode, Steps: []Step{}}
}

// RecordStep appends the next step and returns a copy of it.
//
// settled and labels are the state at the START of the step; sel is the
// winning candidate, whose To becomes the step's NewLabelFor.
// Panics before Start or after Finish.
func (r *Recorder) RecordStep(settled []string, labels []NodeLabel, cands []Candidate, sel Selection, justification string) Step {
	if r.seq == nil || r.finished {
		panic("trace: RecordStep outside Start/Finish")
	}
	chosen := sel
	st := Step{
		Index:         len(r.seq.Steps),
		Settled:       append([]string(nil), settled...),
		Labels:        append([]NodeLabel(nil), labels...),
		Candidates:    append([]Candidate(nil), cands...),
		Selected:      &chosen,
		NewLabelFor:   sel.To,
		Justification: justification,
	}
	r.seq.Steps = append(r.seq.Steps, st)

	return st.clone()
}

// Finish seals the sequence. unreached lists the nodes never settled, in
// graph order; an empty list means the run was complete.
// Panics before Start or when called twice.
func (r *Recorder) Finish(unreached []string) *Sequence {
	if r.seq == nil || r.finished {
		panic("trace: Finish outside Start")
	}
	r.finished = true
	r.seq.Unreached = append([]string{}, unreached...)
	if len(unreached) == 0 {
		r.seq.Outcome = OutcomeComplete
	} else {
		r.seq.Outcome = OutcomeExhausted
	}

	return r.seq
}

// Len returns the number of steps.
func (s *Sequence) Len() int { return len(s.Steps) }

// Step returns a deep copy of step k, ready to render on its own.
func (s *Sequence) Step(k int) (Step, bool) {
	if k < 0 || k >= len(s.Steps) {
		return Step{}, false
	}

	return s.Steps[k].clone(), true
}

// Settled returns the settled set as it stands after every step, in
// settlement order. This is the full history E1..En: E1 = {source},
// E(k+1) = E(k) ∪ {NewLabelFor of step k}.
func (s *Sequence) Settled() [][]string {
	out := make([][]string, 0, len(s.Steps)+1)
	cur := []string{s.Source}
	out = append(out, append([]string(nil), cur...))
	for _, st := range s.Steps {
		cur = append(cur, st.NewLabelFor)
		out = append(out, append([]string(nil), cur...))
	}

	return out
}

// Validate checks the replay invariants a renderer relies on:
//   - Index runs 0..n-1;
//   - step 0 starts from {Source};
//   - |Settled| grows by exactly one per step, by the previous NewLabelFor;
//   - Labels and Settled have equal length and order;
//   - Selected is present, is one of the candidates, is not deferred, and
//     targets NewLabelFor;
//   - every candidate leaves Settled for a node outside it.
func (s *Sequence) Validate() error {
	for i, st := range s.Steps {
		if st.Index != i {
			return fmt.Errorf("%w: step %d has index %d", ErrBrokenSequence, i, st.Index)
		}
		if i == 0 && (len(st.Settled) != 1 || st.Settled[0] != s.Source) {
			return fmt.Errorf("%w: step 0 must start from {%s}, got %v", ErrBrokenSequence, s.Source, st.Settled)
		}
		if i > 0 {
			prev := s.Steps[i-1]
			if len(st.Settled) != len(prev.Settled)+1 {
				return fmt.Errorf("%w: step %d settled set grew from %d to %d",
					ErrBrokenSequence, i, len(prev.Settled), len(st.Settled))
			}
			if st.Settled[len(st.Settled)-1] != prev.NewLabelFor {
				return fmt.Errorf("%w: step %d does not extend step %d by %q",
					ErrBrokenSequence, i, i-1, prev.NewLabelFor)
			}
		}
		if len(st.Labels) != len(st.Settled) {
			return fmt.Errorf("%w: step %d has %d labels for %d settled nodes",
				ErrBrokenSequence, i, len(st.Labels), len(st.Settled))
		}
		for j := range st.Labels {
			if st.Labels[j].Node != st.Settled[j] {
				return fmt.Errorf("%w: step %d label %d is for %q, settled node is %q",
					ErrBrokenSequence, i, j, st.Labels[j].Node, st.Settled[j])
			}
		}
		if err := st.validateSelection(); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrBrokenSequence, i, err)
		}
	}

	return nil
}

func (st Step) validateSelection() error {
	if st.Selected == nil {
		return fmt.Errorf("no selection")
	}
	if st.Selected.To != st.NewLabelFor {
		return fmt.Errorf("selection targets %q, new label is for %q", st.Selected.To, st.NewLabelFor)
	}
	in := make(map[string]bool, len(st.Settled))
	for _, n := range st.Settled {
		in[n] = true
	}
	if in[st.NewLabelFor] {
		return fmt.Errorf("%q is already settled", st.NewLabelFor)
	}

	found := false
	for _, c := range st.Candidates {
		if !in[c.From] || in[c.To] {
			return fmt.Errorf("candidate arc #%d %s→%s does not leave the settled set", c.ArcIndex, c.From, c.To)
		}
		if c.ArcIndex == st.Selected.ArcIndex && c.From == st.Selected.From && c.To == st.Selected.To {
			if c.Deferred {
				return fmt.Errorf("selection arc #%d is deferred", c.ArcIndex)
			}
			found = true
		}
	}
	if !found {
		return fmt.Errorf("selection arc #%d is not a candidate", st.Selected.ArcIndex)
	}

	return nil
}

func (st Step) clone() Step {
	out := st
	out.Settled = append([]string(nil), st.Settled...)
	out.Labels = append([]NodeLabel(nil), st.Labels...)
	out.Candidates = append([]Candidate(nil), st.Candidates...)
	if st.Selected != nil {
		sel := *st.Selected
		out.Selected = &sel
	}

	return out
}
