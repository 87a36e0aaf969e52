package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pyjs",
	Short: "Pedagogical Python-to-JavaScript source translator",
	Long: `pyjs translates a strict, indentation-structured Python subset into
equivalent JavaScript.

It is a classical four-stage compiler front end (lexer, parser,
semantic analyzer) plus a target-code emitter, built for arithmetic,
control flow, simple recursion, lists, and formatted strings — not a
general-purpose compiler.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("config", "", "path to a .pyjsrc.yaml project config (default: ./.pyjsrc.yaml)")
}
