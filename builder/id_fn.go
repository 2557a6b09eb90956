// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// id_fn.go - node naming schemes for fixtures and for Relabel.
//
// A scheme maps a node's position in a Document to its ID. Fixtures use one
// while generating; Relabel applies one to an existing document, which is
// how `pathlab sample --ids letters` turns x1..x16 into A..P.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn names the node at position idx. It must be deterministic and must
// return distinct IDs for distinct positions.
type IDFn func(idx int) string

// DefaultIDFn names nodes "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn names nodes "A".."Z". Panics outside [0,25]; use LetterIDFn
// for longer documents.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("builder: SymbolIDFn index %d outside [0,25]", idx))
	}

	return string(rune('A' + idx))
}

// LetterIDFn names nodes the way spreadsheet columns are named:
// A..Z, then AA..AZ, BA.., ZZ, AAA. Panics on a negative index.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterIDFn index %d is negative", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// SymbolNumberIDFn names nodes prefix+idx: "v0", "v1", ...
// The returned IDFn panics on a negative index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: SymbolNumberIDFn index %d is negative", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// ParseIDScheme resolves a scheme name as accepted on the command line:
//
//	numeric      0, 1, 2, ...
//	letters      A..Z, AA, AB, ...
//	prefix=<p>   p1, p2, ... (counted from 1, like the sample graph's x1..x16)
func ParseIDScheme(name string) (IDFn, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "numeric":
		return DefaultIDFn, nil
	case name == "letters":
		return LetterIDFn, nil
	case strings.HasPrefix(name, "prefix="):
		p := strings.TrimPrefix(name, "prefix=")
		if p == "" {
			return nil, fmt.Errorf("%w: empty prefix", ErrUnknownIDScheme)
		}
		fn := SymbolNumberIDFn(p)

		return func(idx int) string { return fn(idx + 1) }, nil
	}

	return nil, fmt.Errorf("%w: %q (want numeric, letters or prefix=<p>)", ErrUnknownIDScheme, name)
}

// Relabel returns a copy of doc whose i-th node is renamed fn(i). Edge
// endpoints follow their nodes; edge IDs, labels and weights are kept.
//
// doc must pass Validate, every edge endpoint must name a node, and fn must
// not map two positions to the same ID (ErrDuplicateNode).
func Relabel(doc *Document, fn IDFn) (*Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: nil scheme", ErrUnknownIDScheme)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	rename := make(map[string]string, len(doc.Nodes))
	taken := make(map[string]int, len(doc.Nodes))
	out := &Document{
		Nodes: make([]NodeDoc, len(doc.Nodes)),
		Edges: make([]EdgeDoc, len(doc.Edges)),
	}
	for i, n := range doc.Nodes {
		id := fn(i)
		if j, dup := taken[id]; dup {
			return nil, fmt.Errorf("%w: scheme names nodes[%d] and nodes[%d] %q", ErrDuplicateNode, j, i, id)
		}
		taken[id] = i
		rename[n.ID] = id
		out.Nodes[i] = NodeDoc{ID: id, Label: n.Label}
	}
	for i, e := range doc.Edges {
		src, okS := rename[e.Source]
		dst, okT := rename[e.Target]
		if !okS || !okT {
			return nil, fmt.Errorf("%w: edges[%d] %s→%s names an unknown node", ErrInvalidDocument, i, e.Source, e.Target)
		}
		ne := EdgeDoc{ID: e.ID, Source: src, Target: dst, Label: e.Label}
		if e.Weight != nil {
			w := *e.Weight
			ne.Weight = &w
		}
		out.Edges[i] = ne
	}

	return out, nil
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithLetterIDs sets the ID scheme to LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}
