package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
)

var parsePattern string

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse text into an instant",
	Long: `Parse text into an instant.

Without --pattern common layouts are tried and text without an offset is
read in the configured timezone. With --pattern the text must match the
token pattern (YYYY MM DD HH mm ss SSS) exactly and is read as UTC.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var naturalCmd = &cobra.Command{
	Use:   "natural <phrase>",
	Short: "Resolve an English phrase such as \"next friday at 5pm\"",
	Args:  cobra.ExactArgs(1),
	RunE:  runNatural,
}

func init() {
	parseCmd.Flags().StringVarP(&parsePattern, "pattern", "p", "", "token pattern, e.g. DD.MM.YYYY")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(naturalCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var opts []chronal.CallOption
	if parsePattern != "" {
		opts = append(opts, chronal.WithPattern(parsePattern))
	}
	i, err := engine.ParseDate(args[0], opts...)
	if err != nil {
		printError("parsing", err)
		return err
	}
	fmt.Println(i)
	fmt.Printf("  %s %s\n", render(i, chronal.PatternDateTime), engine.Settings().Timezone)
	fmt.Printf("  epoch ms: %d\n", i.UnixMilli())
	return nil
}

func runNatural(cmd *cobra.Command, args []string) error {
	i, err := engine.ParseNatural(args[0])
	if err != nil {
		printError("resolving phrase", err)
		return err
	}
	fmt.Println(render(i, chronal.PatternLong+" HH:mm"))
	return nil
}
