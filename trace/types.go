// Package trace defines the canonical, replayable step record of a settlement
// run and the Recorder that assembles it.
package trace

import "errors"

// ErrBrokenSequence is returned by Sequence.Validate when the step sequence
// violates a replay invariant.
var ErrBrokenSequence = errors.New("trace: broken step sequence")

// Outcome tells how a settlement run ended.
type Outcome string

const (
	// OutcomeComplete: every node was settled (S = V).
	OutcomeComplete Outcome = "complete"

	// OutcomeExhausted: candidates ran out while S ⊊ V; the rest are unreached.
	OutcomeExhausted Outcome = "exhausted"
)

// Candidate is one arc (From → To) from a settled node into an unsettled
// node, evaluated during a step.
//
// Deferred marks a frontier arc that was evaluated but not eligible this
// step, because its target still waits on other predecessors. A deferred
// candidate is never the selection.
type Candidate struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	ArcIndex      int     `json:"arc_index"`
	ArcWeight     float64 `json:"arc_weight"`
	ComputedTotal float64 `json:"computed_total"`
	Formula       string  `json:"formula_text"`
	Deferred      bool    `json:"deferred,omitempty"`
}

// Selection is the winning candidate of a step.
type Selection struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	ArcIndex      int     `json:"arc_index"`
	ComputedTotal float64 `json:"computed_total"`
}

// NodeLabel pairs a settled node with its frozen label.
type NodeLabel struct {
	Node  string  `json:"node"`
	Value float64 `json:"value"`
}

// Step is one settlement iteration.
//
// A Step is self-contained: Settled and Labels hold the full state as of the
// START of the step, so step k renders without steps 0..k-1. Both slices are
// in settlement order and have equal length.
//
// Candidates is the whole frontier: every arc from Settled to a node outside
// it, in settlement order then arc order, including deferred ones.
// Recorded steps always carry a Selection: a step exists only because a node
// was admitted.
type Step struct {
	Index         int         `json:"index"`
	Settled       []string    `json:"settled_set"`
	Labels        []NodeLabel `json:"labels"`
	Candidates    []Candidate `json:"candidates"`
	Selected      *Selection  `json:"selected,omitempty"`
	NewLabelFor   string      `json:"new_label_for"`
	Justification string      `json:"justification"`
}

// Sequence is the finished, ordered trace of one run.
type Sequence struct {
	Source    string   `json:"source"`
	Mode      string   `json:"mode"`
	Steps     []Step   `json:"steps"`
	Outcome   Outcome  `json:"outcome"`
	Unreached []string `json:"unreached"`
}
