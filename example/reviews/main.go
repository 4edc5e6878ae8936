// Command reviews shows a scrolling list of user reviews.
package main

import (
	"context"
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"git.sr.ht/~gioverse/reviews/config"
	"git.sr.ht/~gioverse/reviews/example/reviews/internal/host"
	"git.sr.ht/~gioverse/reviews/profile"
)

// flags holds values parsed from the command line.
type flags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Feed       string
	MaxLines   int
	Scheduler  string
	Workers    int
	Dedupe     bool
	Debug      bool
	Profile    string
	Width      float64
	Count      int
	Out        string
}

func main() {
	var (
		f         flags
		cfg       config.Config
		logCloser = func() {}
	)
	cmd := &cli.Command{
		Name:  "reviews",
		Usage: "Browse user reviews",
		Description: `Shows a feed of reviews in a window. The feed is read from a JSON file or
URL, or generated when none is given.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("REVIEWS_CONFIG"),
				Destination: &f.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, disabled)",
				Sources:     cli.EnvVars("REVIEWS_LOG_LEVEL"),
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("REVIEWS_LOG_FILE"),
				Destination: &f.LogFile,
			},
			&cli.StringFlag{
				Name:        "feed",
				Usage:       "feed file or http(s) URL",
				Sources:     cli.EnvVars("REVIEWS_FEED"),
				Destination: &f.Feed,
			},
			&cli.IntFlag{
				Name:        "max-lines",
				Usage:       "body lines shown before \"Show more\", 0 for no limit",
				Destination: &f.MaxLines,
			},
			&cli.StringFlag{
				Name:        "scheduler",
				Usage:       "image download strategy: dynamic, fixed or go",
				Destination: &f.Scheduler,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "concurrent image downloads",
				Destination: &f.Workers,
			},
			&cli.BoolFlag{
				Name:        "dedupe",
				Usage:       "share one download between concurrent requests for the same image",
				Destination: &f.Dedupe,
			},
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "outline computed frames",
				Destination: &f.Debug,
			},
			&cli.StringFlag{
				Name:        "profile",
				Usage:       "create the provided kind of profile. Use one of [none, cpu, mem, block, goroutine, mutex, trace, gio]",
				Value:       string(profile.None),
				Destination: &f.Profile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			var err error
			cfg, err = config.Load(f.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if cmd.IsSet("log-level") {
				cfg.Log.Level = f.LogLevel
			}
			if cmd.IsSet("log-file") {
				cfg.Log.File = f.LogFile
			}
			if cmd.IsSet("feed") {
				cfg.Feed.Path = f.Feed
			}
			if cmd.IsSet("max-lines") {
				cfg.Layout.MaxLines = f.MaxLines
			}
			if err := cfg.Validate(); err != nil {
				return ctx, err
			}
			logger, closer, err := host.NewLogger(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer
			return ctx, nil
		},
		After: func(context.Context, *cli.Command) error {
			logCloser()
			return nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runWindow(ctx, cmd, &f, &cfg)
		},
		Commands: []*cli.Command{
			layoutCommand(&f, &cfg),
			genCommand(&f, &cfg),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runWindow opens the review list and never returns unless setup fails.
func runWindow(ctx context.Context, cmd *cli.Command, f *flags, cfg *config.Config) error {
	if cmd.IsSet("scheduler") {
		cfg.Images.Scheduler = f.Scheduler
	}
	if cmd.IsSet("workers") {
		cfg.Images.Workers = f.Workers
	}
	if cmd.IsSet("dedupe") {
		cfg.Images.Dedupe = f.Dedupe
	}
	if cmd.IsSet("debug") {
		cfg.Debug = f.Debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opt, err := profile.Parse(f.Profile)
	if err != nil {
		return err
	}
	engine, err := host.NewEngine()
	if err != nil {
		return err
	}
	ui, err := NewUI(*cfg, engine, log.Logger, opt.NewProfiler(log.Logger))
	if err != nil {
		return err
	}
	go func() {
		w := app.NewWindow(
			app.Title(cfg.Window.Title),
			app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
		)
		if err := ui.Run(ctx, w); err != nil {
			log.Error().Err(err).Msg("window closed")
			os.Exit(1)
		}
		os.Exit(0)
	}()
	// Surrender main thread to OS.
	app.Main()
	return nil
}
