package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/chronal"
	"github.com/msto63/chronal/core/config"
	"github.com/msto63/chronal/core/log"
)

var (
	nowPattern  string
	nowWatch    bool
	nowInterval time.Duration
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current time",
	Long: `Print the current time in the configured timezone and locale.

With --watch the time is printed every --interval until interrupted and a
--config file is reloaded whenever it changes, so timezone and locale edits
take effect without a restart.`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	nowCmd.Flags().StringVarP(&nowPattern, "pattern", "p", chronal.PatternLong+" HH:mm:ss", "output pattern")
	nowCmd.Flags().BoolVarP(&nowWatch, "watch", "w", false, "keep printing and follow config changes")
	nowCmd.Flags().DurationVar(&nowInterval, "interval", time.Second, "print interval with --watch")
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	if !nowWatch {
		fmt.Println(render(engine.Now(), nowPattern))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfgFile != "" {
		err := cfg.Watch(ctx, func(old, current *config.Config, err error) {
			if err != nil {
				log.Warn("config reload failed, keeping previous settings", log.Err(err))
				return
			}
			s := current.Settings()
			next := withFlags(chronal.Settings{Locale: s.Locale, Timezone: s.Timezone})
			if err := engine.SetConfig(next); err != nil {
				log.Error("applying reloaded config failed", log.Err(err))
				return
			}
			log.Info("configuration reloaded", log.Zone(next.Timezone), log.Locale(next.Locale))
		})
		if err != nil {
			printError("watching config", err)
			return err
		}
	}

	ticker := time.NewTicker(nowInterval)
	defer ticker.Stop()
	for {
		fmt.Println(render(engine.Now(), nowPattern))
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
