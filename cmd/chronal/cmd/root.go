package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
	"github.com/msto63/chronal/core/config"
	"github.com/msto63/chronal/core/log"
)

var (
	cfgFile  string
	timezone string
	locale   string
	verbose  bool

	engine *chronal.Engine
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chronal",
	Short: "chronal - date arithmetic, formatting and parsing",
	Long: `chronal works with instants in any IANA timezone.

Times may be given as ISO-8601, RFC 1123 or other common layouts, as
English phrases ("next friday at 5pm") or as "now".

Examples:
  chronal format now "dddd, MMMM Do YYYY" --tz Europe/Berlin
  chronal add 2024-01-31 1M
  chronal diff 2024-12-24 now --unit day
  chronal start now week --tz America/New_York`,
	SilenceUsage:      true,
	PersistentPreRunE: setupEngine,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "", "IANA timezone (default: config or UTC)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "BCP 47 locale (default: config or en-US)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupEngine builds the engine from --config and applies --tz and --locale
func setupEngine(cmd *cobra.Command, args []string) error {
	var opts []chronal.EngineOption
	if verbose {
		opts = append(opts, chronal.WithLogger(log.NewWithConfig(log.Config{
			Level:  log.LevelDebug,
			Format: log.FormatConsole,
			Output: os.Stderr,
		})))
	}

	var err error
	if cfgFile != "" {
		if cfg, err = config.Load(cfgFile); err != nil {
			printError("loading config", err)
			return err
		}
	} else {
		cfg = config.Empty()
	}

	if engine, err = chronal.EngineFromConfig(cfg, opts...); err != nil {
		printError("creating engine", err)
		return err
	}
	log.SetDefault(engine.Logger())

	if err := engine.SetConfig(withFlags(chronal.Settings{})); err != nil {
		printError("applying flags", err)
		return err
	}
	return nil
}

// withFlags overlays --locale and --tz on s. Flags always win over config.
func withFlags(s chronal.Settings) chronal.Settings {
	if locale != "" {
		s.Locale = locale
	}
	if timezone != "" {
		s.Timezone = timezone
	}
	return s
}

// resolveInstant accepts "now", any layout ParseDate knows or a natural
// language phrase
func resolveInstant(text string) (chronal.Instant, error) {
	if strings.EqualFold(strings.TrimSpace(text), "now") {
		return engine.Now(), nil
	}
	if i, err := engine.ParseDate(text); err == nil {
		return i, nil
	}
	log.Debug("no layout matched, trying natural language", log.Field("input", text))
	return engine.ParseNatural(text)
}

// render prints an instant in the engine zone, plus UTC with --verbose
func render(i chronal.Instant, pattern string) string {
	s, err := engine.FormatDate(i, pattern)
	if err != nil {
		return i.String()
	}
	if verbose {
		return fmt.Sprintf("%s  (%s)", s, i)
	}
	return s
}

func parseUnitArg(s string) (chronal.Unit, error) {
	u, err := chronal.ParseUnit(s)
	if err != nil {
		printError("unit", err)
	}
	return u, err
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
