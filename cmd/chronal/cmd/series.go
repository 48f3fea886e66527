package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
)

var (
	rangeStep    string
	rangePattern string
)

var rangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "List times from start to end inclusive",
	Args:  cobra.ExactArgs(2),
	RunE:  runRange,
}

func init() {
	rangeCmd.Flags().StringVarP(&rangeStep, "step", "s", "1d", "step duration, e.g. 1w or 1M")
	rangeCmd.Flags().StringVarP(&rangePattern, "pattern", "p", chronal.PatternISODate+" ddd", "output pattern")
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	start, err := resolveInstant(args[0])
	if err != nil {
		printError("reading start", err)
		return err
	}
	end, err := resolveInstant(args[1])
	if err != nil {
		printError("reading end", err)
		return err
	}
	step, err := chronal.ParseDuration(rangeStep)
	if err != nil {
		printError("reading step", err)
		return err
	}

	instants, err := chronal.DateRange(start, end, step)
	if err != nil {
		printError("building range", err)
		return err
	}
	for _, i := range instants {
		fmt.Println(render(i, rangePattern))
	}
	return nil
}
