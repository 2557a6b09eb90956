// Package bfs provides breadth-first reachability over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// Arcs are followed From→To only, in insertion order, so the visit sequence
// is reproducible for a given graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// queueItem pairs a node ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start node
	if !g.Contains(startID) {
		return nil, ErrStartNodeNotFound
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns the set of nodes reachable from startID (startID included).
// It is BFS without hooks, for callers that only need membership.
func Reachable(g *core.Graph, startID string) (map[string]bool, error) {
	res, err := BFS(g, startID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(res.Order))
	for _, id := range res.Order {
		out[id] = true
	}

	return out, nil
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueSuccessors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueSuccessors follows outgoing arcs in insertion order, applies
// filtering and MaxDepth, and enqueues each unseen target.
func (w *walker) enqueueSuccessors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, a := range w.graph.OutgoingArcs(item.id) {
		if !w.opts.FilterArc(a) {
			continue
		}
		// first time seen?
		if !w.visited[a.To] {
			w.enqueue(a.To, nextDepth, item.id)
		}
	}
}
