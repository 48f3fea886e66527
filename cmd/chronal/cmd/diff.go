package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
)

var diffUnit string

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Count complete units from b to a",
	Long: `Count complete units from b to a (a - b).

Years, quarters and months count whole calendar steps, fixed units divide
the millisecond distance.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&diffUnit, "unit", "u", "day", "unit: year, quarter, month, week, day, hour, minute, second, ms")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := resolveInstant(args[0])
	if err != nil {
		printError("reading first time", err)
		return err
	}
	b, err := resolveInstant(args[1])
	if err != nil {
		printError("reading second time", err)
		return err
	}
	unit, err := parseUnitArg(diffUnit)
	if err != nil {
		return err
	}

	n, err := chronal.DateDiff(a, b, unit)
	if err != nil {
		printError("computing difference", err)
		return err
	}
	fmt.Printf("%s %s\n", humanize.Comma(n), unit)
	return nil
}
