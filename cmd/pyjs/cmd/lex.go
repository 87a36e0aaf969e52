package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-pyjs/internal/lexer"
	"github.com/cwbudde/go-pyjs/internal/token"
)

var (
	lexShowPos    bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `lex runs only the lexer stage and prints the resulting token
stream, including the synthetic INDENT/DEDENT/NEWLINE tokens that
reify the off-side rule. Useful for debugging the indentation engine
without running the rest of the pipeline.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only lexical error tokens")
}

func runLex(_ *cobra.Command, args []string) error {
	source, _, err := readInput(args)
	if err != nil {
		return err
	}

	toks, errs := lexer.New(source).Tokenize()
	for _, tok := range toks {
		if lexOnlyErrors && tok.Type != token.ILLEGAL {
			continue
		}
		line := fmt.Sprintf("%-10s %q", tok.Type, tok.Lexeme)
		if lexShowPos {
			line += fmt.Sprintf(" @%s", tok.Pos)
		}
		fmt.Println(line)
	}

	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "lex error at %s: %s\n", e.Pos, e.Message)
	}
	return fmt.Errorf("found %d lexical error(s)", len(errs))
}
