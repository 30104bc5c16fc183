// Package table implements the sort and search state shared by every list view.
//
// A Table holds no business data. Callers describe columns (with optional comparators) and a
// search predicate once, then project any item slice through View. Sorting follows a two-state
// toggle per column: the first activation of a column sorts ascending, each further activation
// of the same column flips the direction, and activating another column starts it ascending.
// Once a column has been activated the table never returns to the unsorted state.
package table

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection maps "asc"/"desc" (any case) to a Direction, defaulting to Ascending.
func ParseDirection(raw string) Direction {
	if strings.EqualFold(strings.TrimSpace(raw), string(Descending)) {
		return Descending
	}
	return Ascending
}

// SortState is the active sort column and direction. The zero value means unsorted.
type SortState struct {
	Key       string    `json:"key,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Sorted reports whether a column is active.
func (s SortState) Sorted() bool {
	return s.Key != ""
}

// Next returns the state after activating key.
func (s SortState) Next(key string) SortState {
	if s.Key == key && s.Direction == Ascending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{Key: key, Direction: Ascending}
}

// CompareFunc orders two items: negative when a sorts before b, zero when equal.
type CompareFunc[T any] func(a, b T) int

// MatchFunc reports whether item satisfies the search query. It is only called with a
// non-empty, trimmed query.
type MatchFunc[T any] func(item T, query string) bool

// Column describes one header. Columns without a Compare func are not sortable.
type Column[T any] struct {
	Key     string
	Label   string
	Compare CompareFunc[T]
}

// Sortable reports whether activating the column changes the sort state.
func (c Column[T]) Sortable() bool {
	return c.Compare != nil
}

// Header is the rendered form of a Column.
type Header struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Sortable  bool      `json:"sortable"`
	Active    bool      `json:"active"`
	Direction Direction `json:"direction,omitempty"`
	// Activate applies the sort transition for this header. Nil for unsortable headers.
	Activate func() `json:"-"`
}

// View is the projection of an item slice through the table's search and sort state.
type View[T any] struct {
	Headers []Header  `json:"headers"`
	Rows    []T       `json:"rows"`
	Shown   int       `json:"shown"`
	Total   int       `json:"total"`
	Empty   bool      `json:"empty"`
	Sort    SortState `json:"sort"`
	Query   string    `json:"query,omitempty"`
}

// Summary renders the "Showing X of Y" caption.
func (v View[T]) Summary() string {
	return fmt.Sprintf("Showing %d of %d", v.Shown, v.Total)
}

// Table is the stateful sort/search view-model. It is not safe for concurrent use.
type Table[T any] struct {
	columns []Column[T]
	index   map[string]int
	match   MatchFunc[T]
	state   SortState
	query   string
}

// New builds a table over the given columns. A nil match disables searching.
func New[T any](columns []Column[T], match MatchFunc[T]) *Table[T] {
	index := make(map[string]int, len(columns))
	for i, column := range columns {
		index[column.Key] = i
	}
	return &Table[T]{columns: columns, index: index, match: match}
}

// Activate applies a header activation for key. It returns false, leaving the state untouched,
// when the column is unknown or not sortable.
func (t *Table[T]) Activate(key string) bool {
	column, ok := t.column(key)
	if !ok || !column.Sortable() {
		return false
	}
	t.state = t.state.Next(key)
	return true
}

// SortState returns the current sort state.
func (t *Table[T]) SortState() SortState {
	return t.state
}

// Restore replaces the sort state, e.g. from request parameters. Unknown or unsortable keys
// reset the table to unsorted.
func (t *Table[T]) Restore(state SortState) {
	column, ok := t.column(state.Key)
	if !ok || !column.Sortable() {
		t.state = SortState{}
		return
	}
	if state.Direction != Descending {
		state.Direction = Ascending
	}
	t.state = state
}

// SetQuery replaces the free-text search query.
func (t *Table[T]) SetQuery(query string) {
	t.query = query
}

// Query returns the current search query.
func (t *Table[T]) Query() string {
	return t.query
}

// Headers renders the column headers for the current state.
func (t *Table[T]) Headers() []Header {
	headers := make([]Header, 0, len(t.columns))
	for _, column := range t.columns {
		header := Header{Key: column.Key, Label: column.Label, Sortable: column.Sortable()}
		if header.Sortable {
			key := column.Key
			header.Activate = func() { t.Activate(key) }
		}
		if t.state.Key == column.Key {
			header.Active = true
			header.Direction = t.state.Direction
		}
		headers = append(headers, header)
	}
	return headers
}

// View filters items by the search query, then sorts the survivors by the active column.
// The input slice is never reordered.
func (t *Table[T]) View(items []T) View[T] {
	rows := t.filter(items)
	t.sort(rows)
	return View[T]{
		Headers: t.Headers(),
		Rows:    rows,
		Shown:   len(rows),
		Total:   len(items),
		Empty:   len(rows) == 0,
		Sort:    t.state,
		Query:   t.query,
	}
}

func (t *Table[T]) filter(items []T) []T {
	query := strings.TrimSpace(t.query)
	rows := make([]T, 0, len(items))
	for _, item := range items {
		if query == "" || t.match == nil || t.match(item, query) {
			rows = append(rows, item)
		}
	}
	return rows
}

func (t *Table[T]) sort(rows []T) {
	column, ok := t.column(t.state.Key)
	if !ok || !column.Sortable() {
		return
	}
	compare := column.Compare
	desc := t.state.Direction == Descending
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return compare(rows[j], rows[i]) < 0
		}
		return compare(rows[i], rows[j]) < 0
	})
}

func (t *Table[T]) column(key string) (Column[T], bool) {
	if key == "" {
		return Column[T]{}, false
	}
	i, ok := t.index[key]
	if !ok {
		return Column[T]{}, false
	}
	return t.columns[i], true
}
