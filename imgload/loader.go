/*
Package imgload fetches, decodes and caches images by source identifier.

A Loader answers from its Cache when it can and otherwise fetches the
identifier over HTTP on a worker, decodes the body and populates the cache
before handing the image to the caller.
*/
package imgload

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"git.sr.ht/~gioverse/reviews/async"
)

// DefaultWorkers bounds the number of concurrent fetches of a Loader built
// without WithScheduler.
const DefaultWorkers = 6

// Loader loads images asynchronously. Construct it with New.
type Loader struct {
	cache     Cache
	client    *http.Client
	scheduler async.Scheduler
	decode    DecodeFunc
	log       zerolog.Logger
	dedupe    bool
	group     singleflight.Group
	ctx       context.Context
	cancel    context.CancelFunc
}

// Option configures a Loader.
type Option func(*Loader)

// WithClient sets the HTTP client used for fetches. Timeouts are the
// client's concern.
func WithClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithScheduler sets where fetches run.
func WithScheduler(s async.Scheduler) Option {
	return func(l *Loader) {
		if s != nil {
			l.scheduler = s
		}
	}
}

// WithLogger sets the logger for fetch and decode failures.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithDecoder replaces Decode.
func WithDecoder(d DecodeFunc) Option {
	return func(l *Loader) {
		if d != nil {
			l.decode = d
		}
	}
}

// WithDedupe collapses concurrent loads of the same key into a single fetch.
// Without it, racing loads fetch independently and the last one to finish
// overwrites the cache entry.
func WithDedupe() Option {
	return func(l *Loader) {
		l.dedupe = true
	}
}

// New returns a Loader backed by cache. A nil cache selects a MemoryCache with
// the default budget.
func New(cache Cache, opts ...Option) *Loader {
	if cache == nil {
		cache = NewMemoryCache(0)
	}
	l := &Loader{
		cache:     cache,
		client:    http.DefaultClient,
		scheduler: &async.DynamicWorkerPool{Workers: DefaultWorkers},
		decode:    Decode,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.ctx, l.cancel = context.WithCancel(context.Background())
	return l
}

// Load the image identified by key and hand it to onComplete.
//
// On a cache hit onComplete runs before Load returns, on the calling
// goroutine. Otherwise the image is fetched on a worker and onComplete runs on
// that worker: callers must move the result to their own goroutine.
//
// Failures are quiet. An invalid key or a failed fetch never calls
// onComplete. A body that fails to decode calls onComplete(nil), letting the
// caller show a fallback.
func (l *Loader) Load(key string, onComplete func(image.Image)) {
	if onComplete == nil {
		onComplete = func(image.Image) {}
	}
	if img, ok := l.cache.Get(key); ok {
		onComplete(img)
		return
	}
	src, ok := locator(key)
	if !ok {
		l.log.Debug().Str("key", key).Msg("ignoring image with invalid source")
		return
	}
	// Schedule may block on a saturated pool; Load must not.
	go l.scheduler.Schedule(func() {
		img, err := l.resolve(key, src)
		if err != nil {
			l.log.Warn().Err(err).Str("key", key).Msg("fetching image")
			return
		}
		onComplete(img)
	})
}

// Close cancels in-flight fetches. Their callbacks are dropped.
func (l *Loader) Close() {
	l.cancel()
}

// resolve fetches and decodes key, deduplicating if configured.
func (l *Loader) resolve(key, src string) (image.Image, error) {
	if !l.dedupe {
		return l.retrieve(key, src)
	}
	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		return l.retrieve(key, src)
	})
	if err != nil {
		return nil, err
	}
	img, _ := v.(image.Image)
	return img, nil
}

// retrieve fetches src and decodes it. A decode failure is reported as a nil
// image with a nil error; only transport failures are errors.
func (l *Loader) retrieve(key, src string) (image.Image, error) {
	body, err := l.fetch(src)
	if err != nil {
		return nil, err
	}
	img, err := l.decode(bytes.NewReader(body))
	if err != nil || img == nil {
		l.log.Warn().Err(err).Str("key", key).Msg("image did not decode")
		return nil, nil
	}
	l.cache.Set(key, img)
	return img, nil
}

// fetch performs a plain GET. The status code is not checked: an error page
// is handed to the decoder like any other body.
func (l *Loader) fetch(src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(l.ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}

// locator validates that key is an absolute http(s) URL.
func locator(key string) (string, bool) {
	u, err := url.Parse(key)
	if err != nil || u.Host == "" {
		return "", false
	}
	switch u.Scheme {
	case "http", "https":
		return u.String(), true
	}
	return "", false
}
