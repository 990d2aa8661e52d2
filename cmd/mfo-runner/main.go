package main

import (
	"github.com/turtacn/mfo-shield/cmd/cli"
)

// main is the entry point for the mfo-runner command-line tool.
// It delegates all execution to the Execute function provided by the cli package.
func main() {
	cli.Execute()
}
