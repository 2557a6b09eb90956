package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
)

// assertPanics fails the test unless fn panics.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"default zero", builder.DefaultIDFn, 0, "0"},
		{"default multi", builder.DefaultIDFn, 123, "123"},
		{"symbol first", builder.SymbolIDFn, 0, "A"},
		{"symbol last", builder.SymbolIDFn, 25, "Z"},
		{"letters first", builder.LetterIDFn, 0, "A"},
		{"letters wrap", builder.LetterIDFn, 26, "AA"},
		{"letters ZZ", builder.LetterIDFn, 701, "ZZ"},
		{"letters AAA", builder.LetterIDFn, 702, "AAA"},
		{"prefix", builder.SymbolNumberIDFn("x"), 1, "x1"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}

	assertPanics(t, func() { builder.SymbolIDFn(-1) }, "SymbolIDFn(-1)")
	assertPanics(t, func() { builder.SymbolIDFn(26) }, "SymbolIDFn(26)")
	assertPanics(t, func() { builder.LetterIDFn(-1) }, "LetterIDFn(-1)")
	assertPanics(t, func() { builder.SymbolNumberIDFn("x")(-1) }, "SymbolNumberIDFn(-1)")
}

func TestLetterIDFn_Distinct(t *testing.T) {
	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		id := builder.LetterIDFn(i)
		j, dup := seen[id]
		require.False(t, dup, "%q at %d and %d", id, j, i)
		seen[id] = i
	}
}

func TestParseIDScheme(t *testing.T) {
	cases := map[string][]string{
		"numeric":      {"0", "1", "2"},
		" letters ":    {"A", "B", "C"},
		"prefix=x":     {"x1", "x2", "x3"},
		"prefix=node_": {"node_1", "node_2", "node_3"},
	}
	for name, want := range cases {
		fn, err := builder.ParseIDScheme(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, []string{fn(0), fn(1), fn(2)}, name)
	}

	for _, bad := range []string{"", "hex", "prefix=", "Letters"} {
		_, err := builder.ParseIDScheme(bad)
		assert.ErrorIs(t, err, builder.ErrUnknownIDScheme, bad)
	}
}

func TestRelabel_Sample(t *testing.T) {
	src := builder.DefaultDocument()
	doc, err := builder.Relabel(src, builder.LetterIDFn)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P"}, doc.NodeIDs())
	require.Len(t, doc.Edges, len(src.Edges))
	assert.Equal(t, builder.EdgeDoc{ID: "e1", Source: "A", Target: "B", Label: "10"}, doc.Edges[0])
	assert.Equal(t, builder.EdgeDoc{ID: "e19", Source: "O", Target: "P", Label: "6"}, doc.Edges[18])

	// The input is left untouched.
	assert.Equal(t, builder.DefaultDocument(), src)

	g, err := builder.Build(doc)
	require.NoError(t, err)
	assert.Equal(t, 19, g.Size())
}

func TestRelabel_IdentityScheme(t *testing.T) {
	fn, err := builder.ParseIDScheme("prefix=x")
	require.NoError(t, err)
	doc, err := builder.Relabel(builder.DefaultDocument(), fn)
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultDocument(), doc)
}

func TestRelabel_CopiesWeights(t *testing.T) {
	w := 2.5
	src := &builder.Document{
		Nodes: []builder.NodeDoc{{ID: "p", Label: "start"}, {ID: "q"}},
		Edges: []builder.EdgeDoc{{Source: "p", Target: "q", Weight: &w}},
	}
	doc, err := builder.Relabel(src, builder.DefaultIDFn)
	require.NoError(t, err)
	assert.Equal(t, builder.NodeDoc{ID: "0", Label: "start"}, doc.Nodes[0])
	require.NotNil(t, doc.Edges[0].Weight)
	assert.Equal(t, 2.5, *doc.Edges[0].Weight)

	*doc.Edges[0].Weight = 9
	assert.Equal(t, 2.5, w)
}

func TestRelabel_Errors(t *testing.T) {
	twoNodes := func() *builder.Document {
		return &builder.Document{
			Nodes: []builder.NodeDoc{{ID: "a"}, {ID: "b"}},
			Edges: []builder.EdgeDoc{{Source: "a", Target: "b"}},
		}
	}
	constant := func(int) string { return "same" }
	dangling := twoNodes()
	dangling.Edges[0].Target = "z"

	cases := []struct {
		name string
		doc  *builder.Document
		fn   builder.IDFn
		want error
	}{
		{"nil document", nil, builder.DefaultIDFn, builder.ErrInvalidDocument},
		{"nil scheme", twoNodes(), nil, builder.ErrUnknownIDScheme},
		{"colliding scheme", twoNodes(), constant, builder.ErrDuplicateNode},
		{"unknown endpoint", dangling, builder.DefaultIDFn, builder.ErrInvalidDocument},
		{"invalid input", &builder.Document{Nodes: []builder.NodeDoc{{ID: ""}}}, builder.DefaultIDFn, builder.ErrInvalidDocument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Relabel(tc.doc, tc.fn)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
