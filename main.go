package main

import (
	"fmt"
	"os"

	"github.com/shipcut/shipcut/cmd/cli"
)

const exitErrorTemplateConstant = "%v\n"

// main executes the shipcut command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
