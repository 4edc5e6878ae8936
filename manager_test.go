package reviews

import (
	"image"
	"strings"
	"testing"

	gio "gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~gioverse/reviews/layout"
	"git.sr.ht/~gioverse/reviews/model"
	"git.sr.ht/~gioverse/reviews/widget"
)

// lineMetrics measures one 20dp line per hard line break.
type lineMetrics struct{ calls int }

func (m *lineMetrics) Measure(t layout.Text, maxWidth float32) layout.Size {
	m.calls++
	if t.Empty() {
		return layout.Size{}
	}
	n := strings.Count(t.Content, "\n") + 1
	return layout.Size{W: maxWidth, H: float32(n) * 20}
}

func (m *lineMetrics) MeasureCapped(t layout.Text, maxWidth, maxHeight float32) layout.Size {
	sz := m.Measure(t, maxWidth)
	if maxHeight > 0 && sz.H > maxHeight {
		sz.H = float32(int(maxHeight/20)) * 20
	}
	return sz
}

func (m *lineMetrics) LineHeight(layout.Text) float32 { return 20 }

func (m *lineMetrics) Empty(t layout.Text) bool { return t.Empty() }

type recordingLoader struct{ keys []string }

func (l *recordingLoader) Load(key string, _ func(image.Image)) {
	l.keys = append(l.keys, key)
}

func review(text string, photos ...string) model.Review {
	return model.Review{
		FirstName: "Ann",
		LastName:  "Lee",
		Text:      text,
		Created:   "today",
		Rating:    5,
		PhotoURLs: photos,
	}
}

func newManager(m layout.TextMetrics, loader widget.ImageLoader, presented *[]layout.Result) *RowManager {
	return NewManager(layout.NewEngine(m), loader, nil, func(c layout.Content, res layout.Result, state *widget.Row) gio.Widget {
		return func(gtx gio.Context) gio.Dimensions {
			*presented = append(*presented, res)
			return gio.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, int(res.Height))}
		}
	})
}

func TestNewContent(t *testing.T) {
	st := DefaultStyles()
	r := review("body", "https://example.com/a.png")

	a := NewContent(r, st, nil)
	b := NewContent(r, st, nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "Ann Lee", a.Username.Content)
	assert.Equal(t, layout.Bold, a.Username.Style.Weight)
	assert.Equal(t, layout.DefaultMaxLines, a.MaxLines)
	assert.Equal(t, []string{"https://example.com/a.png"}, a.Photos)
}

func TestHeightForRowMemoised(t *testing.T) {
	var (
		m         lineMetrics
		presented []layout.Result
		mgr       = newManager(&m, nil, &presented)
	)
	mgr.SetRows(NewContents(model.Feed{Items: []model.Review{review("one"), review("a\nb\nc\nd\ne")}}, DefaultStyles(), nil))

	short := mgr.HeightForRow(0, 375)
	long := mgr.HeightForRow(1, 375)
	calls := m.calls
	assert.Equal(t, long, mgr.HeightForRow(1, 375))

	assert.Equal(t, calls, m.calls)
	assert.Greater(t, long, short)
	assert.True(t, mgr.Result(1, 375).ShowMoreVisible)
}

func TestExpand(t *testing.T) {
	var (
		presented []layout.Result
		mgr       = newManager(&lineMetrics{}, nil, &presented)
	)
	mgr.SetRows(NewContents(model.Feed{Items: []model.Review{review("a\nb\nc\nd\ne"), review("short")}}, DefaultStyles(), nil))
	id := mgr.Row(0).ID
	truncated := mgr.HeightForRow(0, 375)

	require.True(t, mgr.Expand(id))
	expanded := mgr.Result(0, 375)

	assert.False(t, expanded.ShowMoreVisible)
	assert.Greater(t, expanded.Height, truncated)
	assert.Equal(t, 0, mgr.Row(0).MaxLines)
	assert.False(t, mgr.Expand(id), "already expanded")
	assert.False(t, mgr.Expand("missing"))
}

func TestSetRowsDropsState(t *testing.T) {
	var (
		presented []layout.Result
		mgr       = newManager(&lineMetrics{}, nil, &presented)
		rows      = NewContents(model.Feed{Items: []model.Review{review("a"), review("b")}}, DefaultStyles(), nil)
	)
	mgr.SetRows(rows)
	kept := mgr.State(rows[0])
	mgr.State(rows[1])

	mgr.SetRows(rows[:1])

	assert.Equal(t, 1, mgr.Len())
	assert.Same(t, kept, mgr.State(rows[0]))
	assert.Len(t, mgr.rowState, 1)
	assert.Nil(t, mgr.State(layout.Content{}))
}

func TestAppend(t *testing.T) {
	var (
		presented []layout.Result
		mgr       = newManager(&lineMetrics{}, nil, &presented)
		rows      = NewContents(model.Feed{Items: []model.Review{review("a"), review("b\nc\nd\ne")}}, DefaultStyles(), nil)
	)
	mgr.SetRows(rows[:1])
	mgr.Append(rows[1])

	assert.Equal(t, 2, mgr.Len())
	assert.True(t, mgr.Expand(rows[1].ID))
}

func TestLayoutPresentsAndBinds(t *testing.T) {
	var (
		presented []layout.Result
		loader    recordingLoader
		mgr       = newManager(&lineMetrics{}, &loader, &presented)
	)
	mgr.SetRows([]layout.Content{NewContent(review("hi", "https://example.com/a.png", "https://example.com/b.png"), DefaultStyles(), nil)})
	gtx := gio.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 2, PxPerSp: 2},
		Constraints: gio.Constraints{Max: image.Pt(750, 10000)},
	}

	mgr.Layout(gtx, 0)
	mgr.Layout(gtx, 0)

	require.Len(t, presented, 2)
	assert.Equal(t, mgr.Result(0, 375), presented[0])
	assert.Equal(t, []string{"https://example.com/a.png", "https://example.com/b.png"}, loader.keys)
	assert.Equal(t, 2, mgr.State(mgr.Row(0)).Photos.Len())
}
