package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"git.sr.ht/~gioverse/reviews/config"
	"git.sr.ht/~gioverse/reviews/example/reviews/internal/host"
	"git.sr.ht/~gioverse/reviews/gen"
	"git.sr.ht/~gioverse/reviews/model"
)

func layoutCommand(f *flags, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "layout",
		Usage: "print the computed frames of every row as YAML",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:        "width",
				Usage:       "row width in dp",
				Value:       375,
				Destination: &f.Width,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			feed, err := host.LoadFeed(ctx, *cfg, &http.Client{Timeout: cfg.Images.Timeout})
			if err != nil {
				return err
			}
			engine, err := host.NewEngine()
			if err != nil {
				return err
			}
			return host.WriteLayout(os.Stdout, engine, feed, *cfg, float32(f.Width))
		},
	}
}

func genCommand(f *flags, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "gen",
		Usage: "write a synthetic feed as JSON",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Usage:       "number of reviews",
				Value:       20,
				Destination: &f.Count,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output file (defaults to stdout)",
				Destination: &f.Out,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			feed := gen.Generator{MaxPhotos: cfg.Generate.MaxPhotos}.Feed(f.Count)
			var out io.Writer = os.Stdout
			if f.Out != "" {
				file, err := os.Create(f.Out)
				if err != nil {
					return fmt.Errorf("create feed file: %w", err)
				}
				defer file.Close()
				out = file
			}
			if err := model.EncodeFeed(out, feed); err != nil {
				return err
			}
			log.Debug().Int("count", feed.Count).Str("out", f.Out).Msg("feed written")
			return nil
		},
	}
}
