package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/reel/internal/app"
)

var version = "dev" // set via -ldflags "-X main.version=..."

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "reel: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		opts     app.Options
		wrap     bool
		autoplay time.Duration
	)

	cmd := &cobra.Command{
		Use:          "reel [deck]",
		Short:        "Browse a slide deck as a terminal carousel",
		Long:         "reel shows a TOML or YAML slide deck as a horizontally scrolling carousel of cards.\nWithout a deck it opens the configured deck, or a built-in demo.",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.DeckPath = args[0]
			}
			if cmd.Flags().Changed("wrap") {
				opts.Wrap = &wrap
			}
			if cmd.Flags().Changed("autoplay") {
				opts.Autoplay = &autoplay
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/reel/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/reel/prefs.toml)")
	flags.BoolVar(&wrap, "wrap", false, "wrap from the last position back to the first")
	flags.DurationVar(&autoplay, "autoplay", 0, "advance every interval, e.g. 4s (0 disables)")
	flags.StringVar(&opts.LogFile, "log-file", "", "append logs to this file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
