package host

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.sr.ht/~gioverse/reviews/config"
	"git.sr.ht/~gioverse/reviews/gen"
	"git.sr.ht/~gioverse/reviews/model"
)

func TestWriteLayout(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	feed := gen.Generator{MaxPhotos: 2}.Feed(5)

	var buf bytes.Buffer
	require.NoError(t, WriteLayout(&buf, engine, feed, config.Default(), 375))

	var report []RowReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report, 5)
	for i, row := range report {
		assert.Equal(t, feed.Items[i].FullName(), row.Name)
		assert.Greater(t, row.Height, float32(0))
		assert.Equal(t, row.Frames["created"].MaxY()+engine.Dims.Insets.Bottom, row.Height)
	}
}

func TestLoadFeedGenerates(t *testing.T) {
	cfg := config.Default()
	cfg.Generate.Count = 7

	feed, err := LoadFeed(context.Background(), cfg, http.DefaultClient)

	require.NoError(t, err)
	assert.Len(t, feed.Items, 7)
}

func TestLoadFeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, model.EncodeFeed(f, gen.Generator{}.Feed(3)))
	require.NoError(t, f.Close())
	cfg := config.Default()
	cfg.Feed.Path = path

	feed, err := LoadFeed(context.Background(), cfg, http.DefaultClient)

	require.NoError(t, err)
	assert.Equal(t, 3, feed.Count)
}

func TestLoadFeedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reviews.json" {
			http.NotFound(w, r)
			return
		}
		_ = model.EncodeFeed(w, gen.Generator{}.Feed(2))
	}))
	defer srv.Close()
	cfg := config.Default()

	cfg.Feed.Path = srv.URL + "/reviews.json"
	feed, err := LoadFeed(context.Background(), cfg, srv.Client())
	require.NoError(t, err)
	assert.Len(t, feed.Items, 2)

	cfg.Feed.Path = srv.URL + "/missing"
	_, err = LoadFeed(context.Background(), cfg, srv.Client())
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reviews.log")
	l, closer, err := NewLogger("debug", path)
	require.NoError(t, err)
	l.Info().Msg("hello")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	_, _, err = NewLogger("loud", "")
	assert.Error(t, err)
}
