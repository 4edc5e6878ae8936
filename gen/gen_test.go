package gen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviews(t *testing.T) {
	now := time.Date(2024, 5, 12, 12, 0, 0, 0, time.UTC)
	g := Generator{MaxPhotos: 3, Now: func() time.Time { return now }}

	reviews := g.Reviews(20)

	require.Len(t, reviews, 20)
	for _, r := range reviews {
		assert.NotEmpty(t, r.FirstName)
		assert.NotEmpty(t, r.Text)
		assert.NotEmpty(t, r.Created)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotNil(t, r.PhotoURLs)
		assert.LessOrEqual(t, len(r.PhotoURLs), 3)
		for _, u := range r.PhotoURLs {
			assert.True(t, strings.HasPrefix(u, "https://picsum.photos/seed/"))
		}
	}
}

func TestReviewsWithoutPhotos(t *testing.T) {
	for _, r := range (Generator{}).Reviews(10) {
		assert.Empty(t, r.PhotoURLs)
	}
}

func TestFeed(t *testing.T) {
	feed := Generator{}.Feed(4)
	assert.Equal(t, 4, feed.Count)
	assert.Len(t, feed.Items, 4)

	assert.Empty(t, Generator{}.Reviews(-1))
}
