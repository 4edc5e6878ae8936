// Package gen implements a synthetic review feed.
package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	lorem "github.com/drhodes/golorem"

	"git.sr.ht/~gioverse/reviews/model"
)

// PhotoURL returns a placeholder photo URL for seed, sized to the photo
// frame at twice the density.
func PhotoURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/110/132", seed)
}

// Generator produces reviews.
type Generator struct {
	// MaxPhotos bounds the photos attached to a review.
	MaxPhotos int
	// Now anchors creation dates; defaults to time.Now.
	Now func() time.Time
}

// Reviews generates n reviews, newest first.
func (g Generator) Reviews(n int) []model.Review {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	out := make([]model.Review, 0, max(n, 0))
	at := now()
	for ii := 0; ii < n; ii++ {
		at = at.Add(-time.Duration(rand.Intn(72)+1) * time.Hour)
		out = append(out, g.review(at))
	}
	return out
}

// Feed wraps n generated reviews in a feed.
func (g Generator) Feed(n int) model.Feed {
	items := g.Reviews(n)
	return model.Feed{Items: items, Count: len(items)}
}

func (g Generator) review(at time.Time) model.Review {
	photos := []string{}
	if g.MaxPhotos > 0 {
		for ii := rand.Intn(g.MaxPhotos + 1); ii > 0; ii-- {
			photos = append(photos, PhotoURL(lorem.Word(4, 10)))
		}
	}
	return model.Review{
		FirstName: name(),
		LastName:  name(),
		Text: func() string {
			if rand.Float32() < 0.4 {
				return lorem.Sentence(3, 12)
			}
			return lorem.Paragraph(2, 8)
		}(),
		Created:   at.Format("2 January 2006"),
		Rating:    rand.Intn(5) + 1,
		PhotoURLs: photos,
	}
}

func name() string {
	w := lorem.Word(3, 9)
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
