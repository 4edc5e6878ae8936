package reviews

import (
	gio "gioui.org/layout"

	"git.sr.ht/~gioverse/reviews/layout"
	"git.sr.ht/~gioverse/reviews/widget"
)

// Presenter transforms a row and its computed layout into a widget.
type Presenter func(c layout.Content, res layout.Result, state *widget.Row) gio.Widget

// Allocator creates the persistent state for a row. It is called once per
// row ID, before the row is first presented.
type Allocator func(c layout.Content) *widget.Row

// RowManager presents review rows. Row heights are derived from the layout
// engine and memoised per row and width.
//
// RowManager is not safe for concurrent use: it belongs to the goroutine
// that lays out the list.
type RowManager struct {
	// Loader resolves photo keys for each row's image strip.
	Loader    widget.ImageLoader
	memo      *layout.Memo
	presenter Presenter
	allocator Allocator
	rows      []layout.Content
	index     map[string]int
	rowState  map[string]*widget.Row
}

// NewManager constructs a manager. A nil allocator allocates zero-valued
// state.
func NewManager(engine *layout.Engine, loader widget.ImageLoader, allocator Allocator, presenter Presenter) *RowManager {
	if allocator == nil {
		allocator = func(layout.Content) *widget.Row { return &widget.Row{} }
	}
	return &RowManager{
		Loader:    loader,
		memo:      layout.NewMemo(engine),
		presenter: presenter,
		allocator: allocator,
		index:     make(map[string]int),
		rowState:  make(map[string]*widget.Row),
	}
}

// Engine returns the layout engine in use.
func (m *RowManager) Engine() *layout.Engine {
	return m.memo.Engine
}

// SetRows replaces every row. State and pending photo loads of rows that are
// no longer present are dropped.
func (m *RowManager) SetRows(rows []layout.Content) {
	m.rows = append(m.rows[:0:0], rows...)
	m.memo.Reset()
	m.reindex()
	for id, state := range m.rowState {
		if _, ok := m.index[id]; !ok {
			state.Unbind()
			delete(m.rowState, id)
		}
	}
}

// Append adds rows to the end of the list.
func (m *RowManager) Append(rows ...layout.Content) {
	m.rows = append(m.rows, rows...)
	m.reindex()
}

func (m *RowManager) reindex() {
	m.index = make(map[string]int, len(m.rows))
	for i, c := range m.rows {
		if c.ID != "" {
			m.index[c.ID] = i
		}
	}
}

// Len returns the number of rows managed by this manager.
func (m *RowManager) Len() int {
	return len(m.rows)
}

// Row returns the content at index.
func (m *RowManager) Row(index int) layout.Content {
	return m.rows[index]
}

// Result returns the layout of the row at index for the given width in dp.
func (m *RowManager) Result(index int, width float32) layout.Result {
	return m.memo.Layout(m.rows[index], width)
}

// HeightForRow returns the height in dp of the row at index for the given
// width in dp.
func (m *RowManager) HeightForRow(index int, width float32) float32 {
	return m.Result(index, width).Height
}

// Expand lifts the line cap of the row with the given ID. It reports whether
// the row exists and was truncated.
func (m *RowManager) Expand(id string) bool {
	i, ok := m.index[id]
	if !ok || m.rows[i].MaxLines <= 0 {
		return false
	}
	m.rows[i] = m.rows[i].Expanded()
	m.memo.Forget(id)
	return true
}

// State returns the state of the row with the given ID, allocating it if
// necessary. Rows without an ID have no state.
func (m *RowManager) State(c layout.Content) *widget.Row {
	if c.ID == "" {
		return nil
	}
	state, ok := m.rowState[c.ID]
	if !ok {
		state = m.allocator(c)
		m.rowState[c.ID] = state
	}
	return state
}

// Layout the row at position index within the manager's row list. The row
// is laid out for the maximum width of gtx.
func (m *RowManager) Layout(gtx gio.Context, index int) gio.Dimensions {
	var (
		c     = m.rows[index]
		width = float32(gtx.Constraints.Max.X) / pxPerDp(gtx)
		state = m.State(c)
	)
	if state == nil {
		state = &widget.Row{}
	}
	if state.ShowMore.Clicked() && m.Expand(c.ID) {
		c = m.rows[index]
	}
	state.Bind(c, m.memo.Engine.Dims, m.Loader)
	res := m.memo.Layout(c, width)
	return m.presenter(c, res, state)(gtx)
}

func pxPerDp(gtx gio.Context) float32 {
	if gtx.Metric.PxPerDp <= 0 {
		return 1
	}
	return gtx.Metric.PxPerDp
}
