package metrics

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~gioverse/reviews/layout"
)

func body(s string) layout.Text {
	return layout.Styled(s, layout.TextStyle{Size: 16})
}

func TestMeasureEmpty(t *testing.T) {
	f := Must()
	assert.Equal(t, layout.Size{}, f.Measure(body(""), 300))
	assert.Equal(t, layout.Size{}, f.Measure(body(" \n "), 300))
	assert.True(t, f.Empty(body("\t")))
}

func TestMeasureHardBreaks(t *testing.T) {
	f := Must()
	lh := f.LineHeight(body("x"))
	require.Greater(t, lh, float32(0))

	sz := f.Measure(body("one\ntwo\nthree"), 1000)

	assert.Equal(t, 3*lh, sz.H)
	assert.Greater(t, sz.W, float32(0))
}

func TestMeasureWraps(t *testing.T) {
	f := Must()
	text := body(strings.Repeat("lorem ipsum dolor sit amet ", 3))
	lh := f.LineHeight(text)

	wide := f.Measure(text, 2000)
	narrow := f.Measure(text, 150)

	assert.LessOrEqual(t, narrow.W, float32(150))
	assert.Greater(t, narrow.H, wide.H)
	assert.Equal(t, lh, wide.H, "fits on one line at 2000dp")
}

func TestMeasureDeterministic(t *testing.T) {
	f := Must()
	text := body(strings.Repeat("deterministic measurement ", 10))

	assert.Equal(t, f.Measure(text, 200), f.Measure(text, 200))
}

func TestMeasureCapped(t *testing.T) {
	f := Must()
	text := body(strings.Repeat("word ", 200))
	lh := f.LineHeight(text)

	full := f.Measure(text, 200)
	capped := f.MeasureCapped(text, 200, lh*3)

	require.Greater(t, full.H, 3*lh)
	assert.Equal(t, 3*lh, capped.H)

	short := body("word")
	assert.Equal(t, f.Measure(short, 200), f.MeasureCapped(short, 200, lh*3))
}

func TestMeasureZeroWidth(t *testing.T) {
	f := Must()
	text := body("abc")
	lh := f.LineHeight(text)

	sz := f.Measure(text, 0)

	assert.Equal(t, 3*lh, sz.H, "one rune per line")
}

func TestLineHeightScales(t *testing.T) {
	f := Must()
	small := f.LineHeight(layout.Styled("x", layout.TextStyle{Size: 12}))
	large := f.LineHeight(layout.Styled("x", layout.TextStyle{Size: 24}))
	unset := f.LineHeight(layout.Styled("x", layout.TextStyle{}))

	assert.Greater(t, large, small)
	assert.Equal(t, f.LineHeight(body("x")), unset)
}

func TestMeasureConcurrent(t *testing.T) {
	f := Must()
	text := layout.Styled(strings.Repeat("concurrent ", 30), layout.TextStyle{Size: 14, Weight: layout.Bold})
	want := f.Measure(text, 180)

	var wg sync.WaitGroup
	results := make([]layout.Size, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.Measure(text, 180)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
