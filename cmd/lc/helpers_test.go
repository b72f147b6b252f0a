//go:build unit || e2e

package main

import "bytes"

// execute runs a fresh root command with args and returns what it printed.
func execute(args ...string) (string, error) {
	cmd := createRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
