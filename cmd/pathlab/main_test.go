package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/dantzig"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/trace"
)

var envKeys = []string{
	"PATHLAB_LOG_LEVEL", "PATHLAB_LOG_FORMAT", "PATHLAB_LOG_INCLUDE_CALLER",
	"PATHLAB_GRAPH", "PATHLAB_SOURCE", "PATHLAB_MODE", "PATHLAB_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// run executes the command tree in-process and captures both streams.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

type solveJSON struct {
	RunID     string             `json:"run_id"`
	Mode      string             `json:"mode"`
	Source    string             `json:"source"`
	Labels    map[string]float64 `json:"labels"`
	Order     []string           `json:"settlement_order"`
	Settled   [][]string         `json:"settled_sets"`
	Unreached []string           `json:"unreached"`
	Acyclic   bool               `json:"acyclic"`
	Cycles    [][]string         `json:"cycles"`
}

func TestSolve_SampleJSON(t *testing.T) {
	clearEnv(t)
	for mode, want := range map[string]float64{"min": 50, "max": 62} {
		t.Run(mode, func(t *testing.T) {
			out, _, err := run(t, "solve", "--mode", mode, "--json")
			require.NoError(t, err)

			var rep solveJSON
			require.NoError(t, json.Unmarshal([]byte(out), &rep))
			_, err = uuid.Parse(rep.RunID)
			assert.NoError(t, err)
			assert.Equal(t, mode, rep.Mode)
			assert.Equal(t, "x1", rep.Source)
			assert.Len(t, rep.Labels, builder.SampleNodes)
			assert.Equal(t, want, rep.Labels["x16"])
			require.Len(t, rep.Settled, builder.SampleNodes)
			assert.Equal(t, []string{"x1"}, rep.Settled[0])
			assert.Equal(t, rep.Order, rep.Settled[len(rep.Settled)-1])
			assert.Empty(t, rep.Unreached)
			assert.True(t, rep.Acyclic)
			assert.Empty(t, rep.Cycles)
		})
	}
}

func TestSolve_Text(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "solve", "-s", "x1")
	require.NoError(t, err)
	assert.Contains(t, out, "mode min | source x1")
	assert.Contains(t, out, "E1 = {x1}\n")
	assert.Contains(t, out, "E2 = {x1, x2}\n")
	assert.Contains(t, out, "E16 = {")
	assert.NotContains(t, out, "unreached")
}

func TestSolve_EnvDefaultsAndFlagOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("PATHLAB_SOURCE", "x15")
	t.Setenv("PATHLAB_MODE", "max")

	out, _, err := run(t, "solve", "--json")
	require.NoError(t, err)
	var rep solveJSON
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "x15", rep.Source)
	assert.Equal(t, "max", rep.Mode)
	assert.Equal(t, []string{"x15", "x16"}, rep.Order)
	assert.Len(t, rep.Unreached, 14)

	out, _, err = run(t, "solve", "--json", "--source", "x1", "--mode", "min")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "x1", rep.Source)
	assert.Equal(t, "min", rep.Mode)
}

type pathJSON struct {
	Mode      string        `json:"mode"`
	PathFound bool          `json:"path_found"`
	Path      *dantzig.Path `json:"path"`
	Reason    string        `json:"reason"`
}

func TestPath_Sample(t *testing.T) {
	clearEnv(t)
	cases := []struct {
		mode  string
		nodes []string
		cost  float64
	}{
		{"min", []string{"x1", "x2", "x4", "x6", "x7", "x8", "x12", "x15", "x16"}, 50},
		{"max", []string{"x1", "x2", "x3", "x6", "x7", "x8", "x9", "x10", "x12", "x15", "x16"}, 62},
	}
	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			out, _, err := run(t, "path", "--target", "x16", "--mode", tc.mode, "--json")
			require.NoError(t, err)

			var rep pathJSON
			require.NoError(t, json.Unmarshal([]byte(out), &rep))
			require.True(t, rep.PathFound)
			assert.Equal(t, tc.nodes, rep.Path.Nodes)
			assert.Equal(t, tc.cost, rep.Path.Cost)
			assert.Len(t, rep.Path.Arcs, len(tc.nodes)-1)
		})
	}
}

func TestPath_NoPathIsNotAnError(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "path", "--source", "x16", "--target", "x1", "--json")
	require.NoError(t, err)

	var rep pathJSON
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.PathFound)
	assert.Nil(t, rep.Path)
	assert.Contains(t, rep.Reason, "unreachable")

	out, _, err = run(t, "path", "--source", "x16", "--target", "x1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "no min path from x16 to x1"))
}

func TestPath_RequiresTarget(t *testing.T) {
	clearEnv(t)
	_, _, err := run(t, "path")
	assert.Error(t, err)
}

func TestTrace_JSONReplays(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "trace", "--target", "x16", "--json")
	require.NoError(t, err)

	var rep struct {
		RunID string         `json:"run_id"`
		Mode  string         `json:"mode"`
		Trace trace.Sequence `json:"trace"`
		Path  pathJSON       `json:"main_path"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "min", rep.Mode)
	assert.Equal(t, builder.SampleNodes-1, rep.Trace.Len())
	assert.Equal(t, trace.OutcomeComplete, rep.Trace.Outcome)
	require.NoError(t, rep.Trace.Validate())
	assert.True(t, rep.Path.PathFound)
	assert.Equal(t, 50.0, rep.Path.Path.Cost)
}

func TestTrace_Text(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "trace", "--mode", "max")
	require.NoError(t, err)
	assert.Contains(t, out, "mode max | source x1 | 15 step(s)")
	assert.Contains(t, out, "step 0  S = {x1}")
	assert.Contains(t, out, "#0 λ(x1) + w(x1,x2) = 0 + 10 = 10")
	assert.Contains(t, out, "step 2  S = {x1, x2, x3}\n    #2 λ(x2) + w(x2,x4) = 10 + 8 = 18\n    #3 λ(x3) + w(x3,x6) = 25 + 1 = 26 (deferred)\n")
	assert.Contains(t, out, "outcome: complete")
}

func TestBoth(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "both", "--target", "x16")
	require.NoError(t, err)
	assert.Contains(t, out, "min path x1 → x2 → x4 → x6 → x7 → x8 → x12 → x15 → x16 (cost 50)")
	assert.Contains(t, out, "max path x1 → x2 → x3 → x6 → x7 → x8 → x9 → x10 → x12 → x15 → x16 (cost 62)")

	out, _, err = run(t, "both", "--json")
	require.NoError(t, err)
	var rep struct {
		Min struct {
			Labels map[string]float64 `json:"labels"`
		} `json:"min"`
		Max struct {
			Labels map[string]float64 `json:"labels"`
		} `json:"max"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	for id, lo := range rep.Min.Labels {
		assert.LessOrEqual(t, lo, rep.Max.Labels[id], "node %s", id)
	}
}

func TestVerify(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "verify")
	require.NoError(t, err)
	assert.Equal(t, "16 label(s) from x1 agree with Dijkstra\n", out)

	neg := writeGraph(t, `
nodes: [{id: A}, {id: B}]
edges: [{source: A, target: B, weight: -1}]
`)
	_, _, err = run(t, "verify", "--graph", neg, "--source", "A")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestGraphFile(t *testing.T) {
	clearEnv(t)
	path := writeGraph(t, `
nodes: [{id: A}, {id: B}, {id: C}, {id: D}]
edges:
  - {source: A, target: B, label: "2"}
  - {source: B, target: C, label: "3"}
  - {source: A, target: C, label: "9"}
`)
	out, _, err := run(t, "solve", "--graph", path, "--source", "A", "--json")
	require.NoError(t, err)

	var rep solveJSON
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 5.0, rep.Labels["C"])
	assert.Equal(t, []string{"D"}, rep.Unreached)
}

func TestSolve_CyclicMaxWarns(t *testing.T) {
	clearEnv(t)
	path := writeGraph(t, `
nodes: [{id: S}, {id: A}, {id: B}, {id: T}]
edges:
  - {source: S, target: A, weight: 1}
  - {source: A, target: B, weight: 1}
  - {source: B, target: A, weight: 1}
  - {source: B, target: T, weight: 1}
`)
	out, errOut, err := run(t, "solve", "--graph", path, "--source", "S", "--mode", "max", "--json")
	require.NoError(t, err)
	var rep solveJSON
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Acyclic)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, rep.Cycles)
	assert.Equal(t, 3.0, rep.Labels["T"])
	assert.Contains(t, errOut, "not guaranteed longest")

	out, _, err = run(t, "solve", "--graph", path, "--source", "S")
	require.NoError(t, err)
	assert.Contains(t, out, "cycle: A → B → A\n")
}

func TestLenientWeights(t *testing.T) {
	clearEnv(t)
	path := writeGraph(t, `
nodes: [{id: A}, {id: B}]
edges:
  - {id: e1, source: A, target: B, label: "heavy"}
  - {id: e2, source: A, target: B, label: "4"}
`)
	_, _, err := run(t, "solve", "--graph", path, "--source", "A")
	assert.ErrorIs(t, err, builder.ErrBadWeight)

	out, errOut, err := run(t, "path", "--graph", path, "--source", "A", "--target", "B", "--lenient")
	require.NoError(t, err)
	assert.Equal(t, "min path A → B (cost 4)\n", out)
	assert.Contains(t, errOut, "skipping edge")
}

func TestErrors(t *testing.T) {
	clearEnv(t)

	_, errOut, err := run(t, "solve", "--source", "nope")
	assert.ErrorIs(t, err, dantzig.ErrUnknownSource)
	assert.Contains(t, errOut, "Error:")

	_, _, err = run(t, "solve", "--mode", "sideways")
	assert.Error(t, err)

	_, _, err = run(t, "solve", "--graph", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSample(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "sample")
	require.NoError(t, err)

	doc, err := builder.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultDocument(), doc)
}

func TestSample_Relabel(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "sample", "--ids", "letters")
	require.NoError(t, err)

	doc, err := builder.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "A", doc.Nodes[0].ID)
	assert.Equal(t, "P", doc.Nodes[builder.SampleNodes-1].ID)

	path := writeGraph(t, out)
	for mode, want := range map[string]float64{"min": 50, "max": 62} {
		out, _, err = run(t, "solve", "--graph", path, "--source", "A", "--mode", mode, "--json")
		require.NoError(t, err)
		var rep solveJSON
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(t, want, rep.Labels["P"], mode)
	}

	_, _, err = run(t, "sample", "--ids", "roman")
	assert.ErrorIs(t, err, builder.ErrUnknownIDScheme)
}

func TestJSONLogging(t *testing.T) {
	clearEnv(t)
	_, errOut, err := run(t, "solve", "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)

	var saw bool
	for _, line := range strings.Split(strings.TrimSpace(errOut), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "dantzig: solve finished" {
			saw = true
		}
	}
	assert.True(t, saw, "missing solve log in %q", errOut)
}
