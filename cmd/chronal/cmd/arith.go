package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
)

var arithPattern string

var addCmd = &cobra.Command{
	Use:   "add <time> <duration>",
	Short: "Add a duration such as 1y2M, -3d or 6h30m",
	Long: `Add a duration to a time.

Durations combine signed components: y (years), M (months), w (weeks),
d (days), h (hours), m (minutes), s (seconds), ms (milliseconds).
Years and months are applied first and clamp the day to the target month.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArith(args, false)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <time> <duration>",
	Short: "Subtract a duration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runArith(args, true)
	},
}

func init() {
	for _, c := range []*cobra.Command{addCmd, subCmd} {
		c.Flags().StringVarP(&arithPattern, "pattern", "p", chronal.PatternDateTime, "output pattern")
		rootCmd.AddCommand(c)
	}
}

func runArith(args []string, subtract bool) error {
	i, err := resolveInstant(args[0])
	if err != nil {
		printError("reading time", err)
		return err
	}
	d, err := chronal.ParseDuration(args[1])
	if err != nil {
		printError("reading duration", err)
		return err
	}

	var result chronal.Instant
	if subtract {
		result = chronal.SubTime(i, d)
	} else {
		result = chronal.AddTime(i, d)
	}
	fmt.Println(render(result, arithPattern))
	return nil
}
