// Package host implements the window-free parts of the reviews command.
package host

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"git.sr.ht/~gioverse/reviews/config"
	"git.sr.ht/~gioverse/reviews/gen"
	"git.sr.ht/~gioverse/reviews/model"
)

// LoadFeed reads the configured feed from a file or URL, or generates one
// when no path is configured.
func LoadFeed(ctx context.Context, cfg config.Config, client *http.Client) (model.Feed, error) {
	path := cfg.Feed.Path
	switch {
	case path == "":
		return gen.Generator{MaxPhotos: cfg.Generate.MaxPhotos}.Feed(cfg.Generate.Count), nil
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return fetchFeed(ctx, path, client)
	default:
		f, err := os.Open(path)
		if err != nil {
			return model.Feed{}, fmt.Errorf("open feed: %w", err)
		}
		defer f.Close()
		return model.DecodeFeed(f)
	}
}

func fetchFeed(ctx context.Context, url string, client *http.Client) (model.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Feed{}, fmt.Errorf("creating request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return model.Feed{}, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return model.Feed{}, fmt.Errorf("fetching feed: %s", resp.Status)
	}
	return model.DecodeFeed(resp.Body)
}
