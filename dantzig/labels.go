package dantzig

import (
	"bytes"
	"encoding/json"
	"math"
)

// Labels is the finished label map λ of one solve.
//
// Every graph node has a value: settled nodes carry their frozen label,
// the rest carry +∞ (Min) or -∞ (Max). Labels is read-only and safe for
// concurrent use.
type Labels struct {
	source string
	mode   Mode
	nodes  []string           // graph insertion order
	value  map[string]float64 // every node
	rank   map[string]int     // settlement position, settled nodes only
	order  []string           // settlement order, order[0] == source
}

// Value returns λ(id). ok is false when id is not a node of the solved graph.
func (l *Labels) Value(id string) (v float64, ok bool) {
	v, ok = l.value[id]

	return v, ok
}

// Reachable reports whether id was settled.
func (l *Labels) Reachable(id string) bool {
	_, ok := l.rank[id]

	return ok
}

// Source returns the source node of the solve.
func (l *Labels) Source() string { return l.source }

// Mode returns the direction of the solve.
func (l *Labels) Mode() Mode { return l.mode }

// SettlementOrder returns the settled nodes in the order they were admitted.
func (l *Labels) SettlementOrder() []string {
	return append([]string(nil), l.order...)
}

// Rank returns the settlement position of id (source = 0), or -1 if id was
// never settled.
func (l *Labels) Rank(id string) int {
	if r, ok := l.rank[id]; ok {
		return r
	}

	return -1
}

// Map returns a copy of λ keyed by node ID.
func (l *Labels) Map() map[string]float64 {
	out := make(map[string]float64, len(l.value))
	for k, v := range l.value {
		out[k] = v
	}

	return out
}

// Nodes returns the node IDs in graph insertion order.
func (l *Labels) Nodes() []string {
	return append([]string(nil), l.nodes...)
}

// MarshalJSON renders λ as an object in graph node order. The sentinels,
// which JSON cannot carry as numbers, become the strings "∞" and "-∞".
func (l *Labels) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range l.nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var val any = l.value[id]
		switch {
		case math.IsInf(l.value[id], 1):
			val = "∞"
		case math.IsInf(l.value[id], -1):
			val = "-∞"
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
