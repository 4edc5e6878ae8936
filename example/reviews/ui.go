package main

import (
	"context"
	"fmt"
	"net/http"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	"git.sr.ht/~gioverse/reviews"
	"git.sr.ht/~gioverse/reviews/async"
	"git.sr.ht/~gioverse/reviews/config"
	"git.sr.ht/~gioverse/reviews/debug"
	"git.sr.ht/~gioverse/reviews/example/reviews/internal/host"
	"git.sr.ht/~gioverse/reviews/imgload"
	revlayout "git.sr.ht/~gioverse/reviews/layout"
	"git.sr.ht/~gioverse/reviews/model"
	"git.sr.ht/~gioverse/reviews/profile"
	"git.sr.ht/~gioverse/reviews/rating"
	revwidget "git.sr.ht/~gioverse/reviews/widget"
	matreview "git.sr.ht/~gioverse/reviews/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// UI holds state for, and lays out, the review list.
type UI struct {
	th       *material.Theme
	cfg      config.Config
	log      zerolog.Logger
	styles   reviews.Styles
	assets   assets
	client   *http.Client
	fetches  async.Scheduler
	loader   *imgload.Loader
	ratings  *rating.Renderer
	manager  *reviews.RowManager
	list     widget.List
	status   string
	window   *app.Window
	profiler profile.Profiler
}

// feedResult carries a loaded feed back to the event loop.
type feedResult struct {
	feed model.Feed
	err  error
}

// NewUI wires the loader, rating renderer and row manager.
func NewUI(cfg config.Config, engine *revlayout.Engine, log zerolog.Logger, prof profile.Profiler) (*UI, error) {
	a, err := newAssets()
	if err != nil {
		return nil, fmt.Errorf("rendering assets: %w", err)
	}
	kind, err := async.ParseKind(cfg.Images.Scheduler)
	if err != nil {
		return nil, err
	}
	fetches := async.New(kind, cfg.Images.Workers)
	client := &http.Client{Timeout: cfg.Images.Timeout}
	opts := []imgload.Option{
		imgload.WithClient(client),
		imgload.WithLogger(log.With().Str("component", "imgload").Logger()),
		imgload.WithScheduler(fetches),
	}
	if cfg.Images.Dedupe {
		opts = append(opts, imgload.WithDedupe())
	}
	styles := reviews.DefaultStyles()
	styles.MaxLines = cfg.Layout.MaxLines
	engine.ShowMore = styles.ShowMoreText()
	ui := &UI{
		th:       matreview.NewTheme(),
		cfg:      cfg,
		log:      log,
		styles:   styles,
		assets:   a,
		client:   client,
		fetches:  fetches,
		loader:   imgload.New(imgload.NewMemoryCache(cfg.Images.CacheBudget), opts...),
		ratings:  rating.New(),
		status:   "Loading…",
		profiler: prof,
	}
	ui.list.Axis = layout.Vertical
	ui.manager = reviews.NewManager(engine, ui.loader, ui.allocate, ui.present)
	return ui, nil
}

// allocate creates the state of a row, wiring its photo strip to the window.
func (ui *UI) allocate(revlayout.Content) *revwidget.Row {
	row := &revwidget.Row{}
	row.Photos.Fallback = ui.assets.Fallback
	row.Photos.Invalidate = ui.invalidate
	return row
}

func (ui *UI) invalidate() {
	if ui.window != nil {
		ui.window.Invalidate()
	}
}

// present paints a row at its computed frames.
func (ui *UI) present(c revlayout.Content, res revlayout.Result, state *revwidget.Row) layout.Widget {
	return func(gtx C) D {
		dims := matreview.Review(ui.th, state, c, res, ui.manager.Engine().Dims, ui.styles.ShowMoreText()).
			WithAvatar(ui.assets.Avatar).
			Layout(gtx)
		if ui.cfg.Debug {
			debug.Frames(gtx, res)
		}
		return dims
	}
}

// Run handles window events and renders the application.
func (ui *UI) Run(ctx context.Context, w *app.Window) error {
	ui.window = w
	ui.profiler.Start()
	defer ui.profiler.Stop()
	defer ui.ratings.Release()
	defer async.Stop(ui.fetches)
	defer ui.loader.Close()

	feeds := make(chan feedResult, 1)
	go func() {
		feed, err := host.LoadFeed(ctx, ui.cfg, ui.client)
		feeds <- feedResult{feed: feed, err: err}
		w.Invalidate()
	}()

	var ops op.Ops
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-feeds:
			ui.setFeed(res)
		case e := <-w.Events():
			switch e := e.(type) {
			case system.DestroyEvent:
				return e.Err
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				ui.profiler.Record(gtx)
				ui.Layout(gtx)
				e.Frame(gtx.Ops)
			}
		}
	}
}

func (ui *UI) setFeed(res feedResult) {
	if res.err != nil {
		ui.log.Error().Err(res.err).Msg("loading feed")
		ui.status = "Could not load reviews"
		return
	}
	ui.manager.SetRows(reviews.NewContents(res.feed, ui.styles, ui.ratings))
	ui.status = fmt.Sprintf("%d reviews", res.feed.Count)
	ui.log.Info().Int("rows", ui.manager.Len()).Int("count", res.feed.Count).Msg("feed loaded")
}

// Layout the review list followed by the status footer.
func (ui *UI) Layout(gtx C) D {
	n := ui.manager.Len()
	return material.List(ui.th, &ui.list).Layout(gtx, n+1, func(gtx C, index int) D {
		if index < n {
			return ui.manager.Layout(gtx, index)
		}
		return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
			return layout.Center.Layout(gtx, func(gtx C) D {
				l := material.Body2(ui.th, ui.status)
				l.Color = ui.styles.Created.Color
				return l.Layout(gtx)
			})
		})
	})
}
