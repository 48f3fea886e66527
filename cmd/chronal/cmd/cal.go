package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Faint(true)
	todayStyle   = lipgloss.NewStyle().Reverse(true)
	weekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

var calCmd = &cobra.Command{
	Use:   "cal [time]",
	Short: "Print the month holding time as a Monday first grid",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCal,
}

func init() {
	rootCmd.AddCommand(calCmd)
}

func runCal(cmd *cobra.Command, args []string) error {
	i := engine.Now()
	if len(args) == 1 {
		var err error
		if i, err = resolveInstant(args[0]); err != nil {
			printError("reading time", err)
			return err
		}
	}

	grid, err := monthGrid(i)
	if err != nil {
		printError("building calendar", err)
		return err
	}
	fmt.Println(grid)
	return nil
}

// monthGrid renders the month holding i with week numbers in the left column
func monthGrid(i chronal.Instant) (string, error) {
	first, err := engine.StartOf(i, chronal.Month)
	if err != nil {
		return "", err
	}
	days, err := engine.DaysInMonth(first)
	if err != nil {
		return "", err
	}
	title, err := engine.FormatDate(first, "MMMM YYYY")
	if err != nil {
		return "", err
	}
	names, err := engine.Weekdays(chronal.NameShort)
	if err != nil {
		return "", err
	}
	lead, err := engine.Get(first, chronal.Weekday)
	if err != nil {
		return "", err
	}
	lead = (lead + 6) % 7

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	header := make([]string, len(names))
	for n, name := range names {
		header[n] = fmt.Sprintf("%3.3s", name)
	}
	b.WriteString(headerStyle.Render("    " + strings.Join(header, " ")))
	b.WriteString("\n")

	for day := 1; day <= days; {
		current, err := engine.Set(first, chronal.Day, day)
		if err != nil {
			return "", err
		}
		week, err := engine.WeekOfYear(current)
		if err != nil {
			return "", err
		}
		b.WriteString(headerStyle.Render(fmt.Sprintf("%2d  ", week)))

		cells := make([]string, 7)
		for col := 0; col < 7; col++ {
			if (day == 1 && col < lead) || day > days {
				cells[col] = "   "
				continue
			}
			cell := fmt.Sprintf("%3d", day)
			date, _ := engine.Set(first, chronal.Day, day)
			if today, _ := engine.IsToday(date); today {
				cell = todayStyle.Render(cell)
			} else if col >= 5 {
				cell = weekendStyle.Render(cell)
			}
			cells[col] = cell
			day++
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
