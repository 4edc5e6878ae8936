package layout

// Memo caches layout results per row so that repeated height queries for the
// same content and width skip the text measurement.
//
// Each row keeps a single result, for the most recent width, line cap and
// rating size it was laid out with; any change recomputes and replaces it.
// Content without an ID is never cached. Memo is not safe for concurrent use;
// it is meant to live on the goroutine that lays out the list.
type Memo struct {
	Engine  *Engine
	results map[string]memoEntry
}

type memoKey struct {
	maxLines int
	width    float32
	// rating is part of the key because the renderer may be released after
	// the row was laid out.
	rating Size
}

type memoEntry struct {
	key memoKey
	res Result
}

// NewMemo wraps engine.
func NewMemo(engine *Engine) *Memo {
	return &Memo{Engine: engine}
}

// Layout returns the cached result for c at width, computing it on a miss.
func (m *Memo) Layout(c Content, width float32) Result {
	if c.ID == "" {
		return m.Engine.Layout(c, width)
	}
	key := memoKey{maxLines: c.MaxLines, width: width, rating: c.ratingSize()}
	if e, ok := m.results[c.ID]; ok && e.key == key {
		return e.res
	}
	if m.results == nil {
		m.results = make(map[string]memoEntry)
	}
	res := m.Engine.Layout(c, width)
	m.results[c.ID] = memoEntry{key: key, res: res}
	return res
}

// Forget drops the cached result for the row with the given ID.
func (m *Memo) Forget(id string) {
	delete(m.results, id)
}

// Reset drops all cached results.
func (m *Memo) Reset() {
	m.results = nil
}

// Len reports the number of rows with cached results.
func (m *Memo) Len() int {
	return len(m.results)
}
