package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
)

var boundaryPattern string

var startCmd = &cobra.Command{
	Use:   "start <time> <unit>",
	Short: "Start of the second, minute, hour, day, week, month, quarter or year",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoundary(args, engine.StartOf)
	},
}

var endCmd = &cobra.Command{
	Use:   "end <time> <unit>",
	Short: "Last millisecond of the unit holding time",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoundary(args, engine.EndOf)
	},
}

func init() {
	for _, c := range []*cobra.Command{startCmd, endCmd} {
		c.Flags().StringVarP(&boundaryPattern, "pattern", "p", chronal.PatternLog, "output pattern")
		rootCmd.AddCommand(c)
	}
}

func runBoundary(args []string, op func(chronal.Instant, chronal.Unit, ...chronal.CallOption) (chronal.Instant, error)) error {
	i, err := resolveInstant(args[0])
	if err != nil {
		printError("reading time", err)
		return err
	}
	unit, err := parseUnitArg(args[1])
	if err != nil {
		return err
	}
	result, err := op(i, unit)
	if err != nil {
		printError("computing boundary", err)
		return err
	}
	fmt.Println(render(result, boundaryPattern))
	return nil
}
