package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
)

var relativeNumeric string

var relativeCmd = &cobra.Command{
	Use:   "relative <time> | relative <amount> <unit>",
	Short: "Describe a time relative to now, or phrase an amount of units",
	Long: `Describe a time relative to now ("3 days ago", "in 2 hours").

With two arguments the amount and unit are phrased directly, e.g.
"relative -1 day --numeric auto" prints "yesterday".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRelative,
}

func init() {
	relativeCmd.Flags().StringVar(&relativeNumeric, "numeric", "always", "always or auto")
	rootCmd.AddCommand(relativeCmd)
}

func runRelative(cmd *cobra.Command, args []string) error {
	if len(args) == 2 {
		amount, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			printError("reading amount", err)
			return err
		}
		unit, err := parseUnitArg(args[1])
		if err != nil {
			return err
		}
		numeric, err := chronal.ParseNumericMode(relativeNumeric)
		if err != nil {
			printError("numeric mode", err)
			return err
		}
		s, err := engine.Relative(amount, unit, numeric)
		if err != nil {
			printError("phrasing", err)
			return err
		}
		fmt.Println(s)
		return nil
	}

	i, err := resolveInstant(args[0])
	if err != nil {
		printError("reading time", err)
		return err
	}
	s, err := engine.FromNow(i)
	if err != nil {
		printError("phrasing", err)
		return err
	}
	fmt.Println(s)
	return nil
}
