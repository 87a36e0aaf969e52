// Command pyjs is the CLI driver around the translator core: compose
// the pipeline stages and surface diagnostics. All translation logic
// lives in internal/; this binary is a thin cobra wrapper.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-pyjs/cmd/pyjs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
