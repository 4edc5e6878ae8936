/*
Package reviews lays out a list of user reviews.

Review records become layout.Content through NewContent. A RowManager owns
the rows, memoises their layouts per width, and presents each row with its
persistent interactive state.
*/
package reviews

import (
	"image/color"

	"github.com/google/uuid"

	"git.sr.ht/~gioverse/reviews/layout"
	"git.sr.ht/~gioverse/reviews/model"
)

// Styles holds the text styles of a review row.
type Styles struct {
	Username layout.TextStyle
	Body     layout.TextStyle
	Created  layout.TextStyle
	ShowMore layout.TextStyle
	// MaxLines caps the body of new rows.
	MaxLines int
}

// DefaultStyles returns the stock row styles.
func DefaultStyles() Styles {
	return Styles{
		Username: layout.TextStyle{Size: 16, Weight: layout.Bold},
		Body:     layout.TextStyle{Size: 16},
		Created:  layout.TextStyle{Size: 14, Color: color.NRGBA{R: 0x8E, G: 0x8E, B: 0x93, A: 0xFF}},
		ShowMore: layout.TextStyle{Size: 16, Color: color.NRGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}},
		MaxLines: layout.DefaultMaxLines,
	}
}

// ShowMoreText is the styled show more label.
func (s Styles) ShowMoreText() layout.Text {
	return layout.Styled(layout.DefaultShowMore.Content, s.ShowMore)
}

// NewContent converts a review into row content with a fresh ID. The
// ratings renderer is borrowed, not owned.
func NewContent(r model.Review, st Styles, ratings layout.RatingRenderer) layout.Content {
	return layout.Content{
		ID:       uuid.NewString(),
		Username: layout.Styled(r.FullName(), st.Username),
		Body:     layout.Styled(r.Text, st.Body),
		Created:  layout.Styled(r.Created, st.Created),
		Rating:   r.Rating,
		MaxLines: st.MaxLines,
		Photos:   append([]string(nil), r.PhotoURLs...),
		Ratings:  ratings,
	}
}

// NewContents converts every review of a feed.
func NewContents(feed model.Feed, st Styles, ratings layout.RatingRenderer) []layout.Content {
	rows := make([]layout.Content, 0, len(feed.Items))
	for _, r := range feed.Items {
		rows = append(rows, NewContent(r, st, ratings))
	}
	return rows
}
