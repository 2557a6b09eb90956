// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// document.go - the serialized graph shape accepted at the boundary.
//
// The shape follows the node/edge lists a browser graph editor keeps:
// nodes carry an id (and optional display label), edges carry an id,
// source, target, an optional numeric weight and a free-text label that
// historically held the weight.
//
// Documents decode from YAML or JSON (JSON is a YAML subset) and are
// validated with go-playground/validator before any graph is built.

package builder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// NodeDoc is one node of a Document.
type NodeDoc struct {
	ID    string `json:"id" yaml:"id" validate:"required"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// EdgeDoc is one directed edge of a Document.
//
// Weight wins over Label when both are set. With neither, the edge weighs
// DefaultEdgeWeight.
type EdgeDoc struct {
	ID     string   `json:"id,omitempty" yaml:"id,omitempty"`
	Source string   `json:"source" yaml:"source" validate:"required"`
	Target string   `json:"target" yaml:"target" validate:"required"`
	Label  string   `json:"label,omitempty" yaml:"label,omitempty"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Document is a graph as exchanged with editors, files and fixtures.
type Document struct {
	Nodes []NodeDoc `json:"nodes" yaml:"nodes" validate:"dive"`
	Edges []EdgeDoc `json:"edges" yaml:"edges" validate:"dive"`
}

// docValidate is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var docValidate = validator.New()

// Validate checks required fields and duplicate node IDs. Endpoint
// existence is checked by Build, where core reports the offending arc.
func (d *Document) Validate() error {
	if err := docValidate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	seen := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		if j, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: %q at nodes[%d] and nodes[%d]", ErrDuplicateNode, n.ID, j, i)
		}
		seen[n.ID] = i
	}

	return nil
}

// NodeIDs returns the node IDs in document order.
func (d *Document) NodeIDs() []string {
	ids := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// Decode reads one YAML or JSON document from r.
// Unknown fields are rejected so typos surface instead of vanishing.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &doc, nil
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builder: read %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Encode writes d as YAML.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("builder: encode document: %w", err)
	}

	return enc.Close()
}
