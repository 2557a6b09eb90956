// Package trace records the settlement process of a label-correcting solver
// as an ordered, replayable sequence of self-contained steps.
//
// Schema:
//
//	Sequence{source, mode, steps[], outcome, unreached[]}
//	Step{index, settled_set[], labels[], candidates[], selected, new_label_for, justification}
//	Candidate{from, to, arc_index, arc_weight, computed_total, formula_text}
//	Selection{from, to, arc_index, computed_total}
//
// There is exactly one Step shape. A client replays step k without having
// seen steps 0..k-1, because every Step carries the full settled set and
// label state as of its start rather than a diff. Memory grows as O(V²) per
// run, which is fine for the tens-of-nodes graphs this is built for.
//
// Lifecycle:
//
//	r := trace.NewRecorder()
//	r.Start("A", "min")
//	r.RecordStep(settled, labels, candidates, selection, "why")
//	seq := r.Finish(unreached)
//
// Steps are copied on record and on read (Sequence.Step), so they are never
// mutated after creation. Sequence.Validate re-checks the replay invariants.
package trace
