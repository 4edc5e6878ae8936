/*
Package metrics measures text set in the Go fonts.

Face wraps text greedily at word boundaries, the way a label does, and reports
bounding sizes in dp. Faces are rasterised at 72 DPI so that one point of font
size maps to one dp.
*/
package metrics

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"git.sr.ht/~gioverse/reviews/layout"
)

// Face measures layout.Text. The zero value is not usable, use New.
//
// Face is safe for concurrent use: font.Face instances are not, so every
// measurement holds the mutex.
type Face struct {
	mu    sync.Mutex
	fonts map[layout.Weight]*opentype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	weight layout.Weight
	size   float32
}

var _ layout.TextMetrics = (*Face)(nil)

// New parses the Go fonts and returns a ready Face.
func New() (*Face, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &Face{
		fonts: map[layout.Weight]*opentype.Font{
			layout.Regular: regular,
			layout.Bold:    bold,
		},
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Must is like New but panics on error. The fonts are embedded, so failure
// means a broken build.
func Must() *Face {
	f, err := New()
	if err != nil {
		panic(err)
	}
	return f
}

// Measure the size of t wrapped to maxWidth.
func (f *Face) Measure(t layout.Text, maxWidth float32) layout.Size {
	return f.MeasureCapped(t, maxWidth, 0)
}

// MeasureCapped measures t wrapped to maxWidth, counting only the whole lines
// that fit within maxHeight. A maxHeight <= 0 counts every line.
func (f *Face) MeasureCapped(t layout.Text, maxWidth, maxHeight float32) layout.Size {
	if t.Empty() {
		return layout.Size{}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.face(t.Style)
	lineHeight := toDp(face.Metrics().Height)
	lines := wrap(face, t.Content, maxWidth)
	if maxHeight > 0 && lineHeight > 0 {
		// Tolerate rounding in lineHeight × n so that a cap computed from
		// LineHeight admits exactly n lines.
		visible := int(maxHeight/lineHeight + 1e-3)
		if visible < len(lines) {
			lines = lines[:visible]
		}
	}
	var widest float32
	for _, w := range lines {
		if w > widest {
			widest = w
		}
	}
	if maxWidth > 0 && widest > maxWidth {
		widest = maxWidth
	}
	return layout.Size{W: widest, H: float32(len(lines)) * lineHeight}
}

// LineHeight reports the distance between consecutive baselines.
func (f *Face) LineHeight(t layout.Text) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return toDp(f.face(t.Style).Metrics().Height)
}

// Empty reports whether t has nothing to measure.
func (f *Face) Empty(t layout.Text) bool {
	return t.Empty()
}

// face returns the cached font face for style. Caller must hold the mutex.
func (f *Face) face(style layout.TextStyle) font.Face {
	size := style.Size
	if size <= 0 {
		size = layout.DefaultTextSize
	}
	key := faceKey{weight: style.Weight, size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}
	src, ok := f.fonts[style.Weight]
	if !ok {
		src = f.fonts[layout.Regular]
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		// NewFace only fails for invalid options, which size clamping rules out.
		panic(fmt.Errorf("creating face: %w", err))
	}
	f.faces[key] = face
	return face
}

// wrap breaks s into lines no wider than maxWidth and returns the width of
// each line. Hard line breaks always start a new line.
func wrap(face font.Face, s string, maxWidth float32) []float32 {
	b := breaker{
		face:  face,
		max:   maxWidth,
		space: advance(face, " "),
	}
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			b.lines = append(b.lines, 0)
			continue
		}
		for _, w := range words {
			b.word(w)
		}
		b.flush()
	}
	return b.lines
}

type breaker struct {
	face  font.Face
	max   float32
	space float32
	lines []float32
	cur   float32
	open  bool
}

func (b *breaker) word(w string) {
	width := advance(b.face, w)
	if b.open && b.cur+b.space+width <= b.max {
		b.cur += b.space + width
		return
	}
	if b.open {
		b.flush()
	}
	if width <= b.max {
		b.cur, b.open = width, true
		return
	}
	// The word alone overflows: break it between runes.
	var piece float32
	for _, r := range w {
		rw := advance(b.face, string(r))
		if piece > 0 && piece+rw > b.max {
			b.lines = append(b.lines, piece)
			piece = 0
		}
		piece += rw
	}
	b.cur, b.open = piece, true
}

func (b *breaker) flush() {
	if !b.open {
		return
	}
	b.lines = append(b.lines, b.cur)
	b.cur, b.open = 0, false
}

func advance(face font.Face, s string) float32 {
	return toDp(font.MeasureString(face, s))
}

func toDp(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
