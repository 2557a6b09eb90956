package dantzig

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathlab/core"
)

// SolveBoth runs a Min and a Max solve over g in parallel.
//
// g is immutable, so the two solves share it without coordination. opts are
// applied to both; any WithMode among them is overridden. ctx is checked
// before each solve starts; a solve in progress runs to completion.
// The first error cancels the group and is returned.
func SolveBoth(ctx context.Context, g *core.Graph, opts ...Option) (minRun, maxRun Run, err error) {
	var runs [2]Run
	eg, ctx := errgroup.WithContext(ctx)
	for i, m := range [...]Mode{Min, Max} {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			all := append(append(make([]Option, 0, len(opts)+1), opts...), WithMode(m))
			labels, seq, err := Solve(g, all...)
			if err != nil {
				return err
			}
			runs[i] = Run{Mode: m, Labels: labels, Trace: seq}

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return Run{}, Run{}, err
	}

	return runs[0], runs[1], nil
}
