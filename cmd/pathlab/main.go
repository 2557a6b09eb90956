// Command pathlab solves and traces extremal paths with Dantzig's
// label-setting method.
//
//	pathlab solve  --source x1 --mode max
//	pathlab path   --graph g.yaml --source A --target F
//	pathlab trace  --source x1 --target x16 --json
//	pathlab both   --source x1 --target x16
//	pathlab verify --source x1
//	pathlab sample > g.yaml
//
// Without --graph the built-in 16-node sample graph is used. Settings come
// from PATHLAB_* environment variables (optionally via .env) and are
// overridden by flags.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
