package host

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"git.sr.ht/~gioverse/reviews"
	"git.sr.ht/~gioverse/reviews/config"
	revlayout "git.sr.ht/~gioverse/reviews/layout"
	"git.sr.ht/~gioverse/reviews/metrics"
	"git.sr.ht/~gioverse/reviews/model"
	"git.sr.ht/~gioverse/reviews/rating"
)

// NewEngine returns a layout engine measuring with the Go fonts.
func NewEngine() (*revlayout.Engine, error) {
	face, err := metrics.New()
	if err != nil {
		return nil, err
	}
	return revlayout.NewEngine(face), nil
}

// RowReport is the YAML form of one computed row.
type RowReport struct {
	Name     string                     `yaml:"name"`
	Height   float32                    `yaml:"height"`
	ShowMore bool                       `yaml:"show_more"`
	Frames   map[string]revlayout.Rect `yaml:"frames"`
}

// WriteLayout lays out every review of feed at width and writes the frames.
func WriteLayout(w io.Writer, engine *revlayout.Engine, feed model.Feed, cfg config.Config, width float32) error {
	styles := reviews.DefaultStyles()
	styles.MaxLines = cfg.Layout.MaxLines
	engine.ShowMore = styles.ShowMoreText()
	ratings := rating.New()
	defer ratings.Release()

	mgr := reviews.NewManager(engine, nil, nil, nil)
	mgr.SetRows(reviews.NewContents(feed, styles, ratings))
	report := make([]RowReport, 0, mgr.Len())
	for i := 0; i < mgr.Len(); i++ {
		res := mgr.Result(i, width)
		report = append(report, RowReport{
			Name:     mgr.Row(i).Username.Content,
			Height:   res.Height,
			ShowMore: res.ShowMoreVisible,
			Frames: map[string]revlayout.Rect{
				"avatar":    res.Avatar,
				"username":  res.Username,
				"rating":    res.Rating,
				"photos":    res.Photos,
				"body":      res.Body,
				"show_more": res.ShowMore,
				"created":   res.Created,
			},
		})
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	return nil
}

