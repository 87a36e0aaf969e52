package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pyjs/internal/translate"
)

var (
	outputPath  string
	dumpASTFlag bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate a source file into JavaScript",
	Long: `Translate runs the full pipeline — tokenize, parse, analyze, emit —
over a source file (or stdin) and writes the resulting target program
text to stdout or, with --output, to a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write target text to this file instead of stdout")
	translateCmd.Flags().BoolVar(&dumpASTFlag, "dump-ast", false, "print the parsed AST to stdout before emitting")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "translating %s (%d bytes)\n", filename, len(source))
	}

	if dumpASTFlag {
		if err := dumpProgramAST(source, filename); err != nil {
			return err
		}
	}

	out, err := translate.Translate(source, translate.Options{
		File:         filename,
		LexerOptions: cfg.LexerOptions(),
		CodegenOpts:  cfg.CodegenOptions(),
	})
	if err != nil {
		return fmt.Errorf("%s", formatTranslateError(err))
	}

	if outputPath == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(outputPath, []byte(out), 0o644)
}

// formatTranslateError renders a cerrors.List (or any other error)
// with the caret-and-source-line presentation every stage shares.
func formatTranslateError(err error) string {
	return err.Error()
}
