// Package dantzig defines the types, options and sentinel errors of the
// traced label-setting solver.
//
// Options:
//
//	– Source:  ID of the starting node (must be non-empty and present in the graph).
//	– Mode:    Min (cheapest labels) or Max (costliest labels). Default Min.
//	– Trace:   when set, Solve also returns the full step sequence.
//	– Logger:  *slog.Logger for per-settlement Debug records. Default discards.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnknownSource   if the source node does not exist in the graph.
//	– ErrBadMode         if Mode is neither Min nor Max.
//	– ErrNilLabels       if Reconstruct is handed nil labels.
//	– ErrNoPath          if the target is absent or unreachable (a normal outcome).
//	– ErrReconstruction  if the labels do not telescope (a programmer error).
//	– ErrLabelOverflow   if a candidate total λ(u) + w overflows to ±Inf.
package dantzig

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/trace"
)

// Sentinel errors returned by Solve and Reconstruct.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dantzig: source node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dantzig: graph is nil")

	// ErrUnknownSource indicates that the source node does not exist in the graph.
	ErrUnknownSource = errors.New("dantzig: source node not found in graph")

	// ErrBadMode indicates a Mode value other than Min or Max.
	ErrBadMode = errors.New("dantzig: unknown mode")

	// ErrNilLabels indicates that Reconstruct was called without labels.
	ErrNilLabels = errors.New("dantzig: labels are nil")

	// ErrNoPath indicates that the target is not in the graph or was never
	// settled. It is a legitimate result, not a failure of the solver.
	ErrNoPath = errors.New("dantzig: no path to target")

	// ErrReconstruction indicates labels that do not telescope along any arc
	// into some node: labels from another graph or source, or a solver bug.
	ErrReconstruction = errors.New("dantzig: labels are inconsistent with graph")

	// ErrLabelOverflow indicates a candidate total that is not finite, which
	// would be indistinguishable from the unreached sentinel.
	ErrLabelOverflow = errors.New("dantzig: label overflows float64")
)

// Mode selects the extremal direction of a solve.
type Mode int

const (
	// Min settles the cheapest candidate first; unreached nodes end at +∞.
	Min Mode = iota

	// Max settles the costliest ready candidate first; unreached nodes end at -∞.
	Max
)

// String returns "min" or "max".
func (m Mode) String() string {
	switch m {
	case Min:
		return "min"
	case Max:
		return "max"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "min"/"max" in any case, plus the long forms
// "shortest"/"longest".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "shortest":
		return Min, nil
	case "max", "longest":
		return Max, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

func (m Mode) valid() bool { return m == Min || m == Max }

// better reports whether total a beats total b under m.
func (m Mode) better(a, b float64) bool {
	if m == Max {
		return a > b
	}

	return a < b
}

// unreached is the sentinel assigned to never-settled nodes at finalization.
func (m Mode) unreached() float64 {
	if m == Max {
		return math.Inf(-1)
	}

	return math.Inf(1)
}

// Options configures one Solve call.
type Options struct {
	Source string       // ID of the source node
	Mode   Mode         // extremal direction
	Trace  bool         // record the step sequence
	Logger *slog.Logger // receives Debug/Info records; never nil after DefaultOptions
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// Source sets the starting node ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMode sets the extremal direction. Invalid values surface as ErrBadMode
// from Solve.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithTrace asks Solve to record and return the step sequence.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithLogger routes solver diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Min mode, no trace, and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Mode:   Min,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Path is one optimal route recovered from finished labels.
//
// Nodes runs source→target; Arcs[i] joins Nodes[i] and Nodes[i+1], so a
// renderer can highlight arcs directly. Cost equals the target's label and
// the sum of the arc weights.
type Path struct {
	Source string     `json:"source"`
	Target string     `json:"target"`
	Mode   Mode       `json:"mode"`
	Nodes  []string   `json:"nodes"`
	Arcs   []core.Arc `json:"arcs"`
	Cost   float64    `json:"cost"`
}

// String renders the node sequence as "A → B → C".
func (p *Path) String() string {
	return strings.Join(p.Nodes, " → ")
}

// Run bundles the result of one mode of SolveBoth.
type Run struct {
	Mode   Mode
	Labels *Labels
	Trace  *trace.Sequence
}
