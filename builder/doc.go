// Package builder is the input boundary of pathlab: it turns graph
// documents and generated fixtures into immutable core.Graph values.
//
// Documents:
//
//   - Document{nodes, edges} is the node/edge-list shape graph editors keep
//     (node id; edge id, source, target, label, optional weight).
//   - Decode / LoadFile read YAML or JSON; Encode writes YAML.
//   - Validate uses go-playground/validator for required fields and reports
//     duplicate node IDs (ErrDuplicateNode), which core would silently merge.
//   - Build resolves edge weights (weight, else numeric label, else
//     DefaultEdgeWeight) and calls core.Build. WithLenientWeights skips edges
//     whose label is not a number instead of failing, logging a warning.
//   - DefaultDocument is the built-in 16-node demonstration graph.
//
// Fixtures:
//
//   - Compose(bopts, cons...) runs Constructors against a fresh Document:
//     Chain(n), Star(n), Layered(layers, width), RandomDAG(n, p).
//   - Node ID schemes (IDFn): DefaultIDFn, SymbolIDFn, LetterIDFn,
//     SymbolNumberIDFn(prefix). ParseIDScheme reads one from a name and
//     Relabel renames an existing document with it.
//   - Weight distributions (WeightFn implementations):
//     DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntWeightFn,
//     From1To100WeightFn, NormalWeightFn, ExponentialWeightFn.
//   - Determinism: identical options, seed and constructor order yield
//     identical documents.
//
// Example:
//
//	doc, err := builder.Compose(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 9), builder.WithSymbNumb("v")},
//	    builder.RandomDAG(12, 0.3),
//	)
//	g, err := builder.Build(doc)
package builder
