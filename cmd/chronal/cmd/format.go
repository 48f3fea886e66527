package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
)

var formatCmd = &cobra.Command{
	Use:   "format <time> [pattern]",
	Short: "Render a time with a token pattern",
	Long: `Render a time with a token pattern.

Tokens: YYYY YY M MM MMM MMMM D DD Do ddd dddd H HH m mm s ss SSS
Text in [brackets] is copied verbatim.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	i, err := resolveInstant(args[0])
	if err != nil {
		printError("reading time", err)
		return err
	}

	pattern := chronal.PatternDateTime
	if len(args) == 2 {
		pattern = args[1]
	}
	s, err := engine.FormatDate(i, pattern)
	if err != nil {
		printError("formatting", err)
		return err
	}
	fmt.Println(s)
	return nil
}
