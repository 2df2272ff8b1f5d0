package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the grader command tree.
func NewRootCmd() *cobra.Command {
	var format string
	root := &cobra.Command{
		Use:   "grader",
		Short: "Grade English answers against reference sentences",
		Long: `grader runs the sentence-grading engine from the command line.

Examples:
  # Score an answer
  grader score --reference "The cat is black." --answer "the cat is blak"

  # Show the masked sentence and hints for a question
  grader mask --sentence "I have a red car" --keyword red --keyword car

  # Grade against a question from a catalog file
  grader check --questions questions.json --id 3 "I like bananas"`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&format, "format", "f", "json", "Output format: json or text")

	out := func(cmd *cobra.Command, v any, text string) error {
		return emit(cmd.OutOrStdout(), format, v, text)
	}
	root.AddCommand(
		newScoreCmd(out),
		newMaskCmd(out),
		newNormalizeCmd(out),
		newCheckCmd(out),
		newTokenCmd(out),
	)
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

type emitFunc func(cmd *cobra.Command, v any, text string) error

func emit(w io.Writer, format string, v any, text string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "text":
		_, err := fmt.Fprintln(w, text)
		return err
	default:
		return fmt.Errorf("unknown format %q (want json or text)", format)
	}
}
