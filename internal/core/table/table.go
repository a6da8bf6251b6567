// Package table renders an arbitrary homogeneous record slice as a
// searchable, sortable, paginated grid. It knows nothing about the records'
// domain meaning — all semantics come from the caller's column descriptors.
// Filtering, sorting and pagination are applied in that fixed order and the
// source slice is never mutated.
package table

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultPerPage is the page size used when the caller does not set one.
const DefaultPerPage = 10

// Column describes one column of the grid. Accessor extracts the value used
// for searching and sorting; Render, when set, overrides the displayed cell
// text. A column without an Accessor is skipped by search and sort.
type Column[T any] struct {
	Key      string
	Header   string
	Accessor func(T) any
	Render   func(T) string
	Sortable bool
}

// Table is a reusable grid definition for a record type.
type Table[T any] struct {
	columns    []Column[T]
	perPage    int
	searchable bool
}

// Option customises a Table.
type Option[T any] func(*Table[T])

// WithPerPage sets the fixed page size.
func WithPerPage[T any](n int) Option[T] {
	return func(t *Table[T]) {
		if n > 0 {
			t.perPage = n
		}
	}
}

// WithoutSearch disables the free-text filter.
func WithoutSearch[T any]() Option[T] {
	return func(t *Table[T]) { t.searchable = false }
}

// New builds a grid over the given column descriptors.
func New[T any](columns []Column[T], opts ...Option[T]) *Table[T] {
	t := &Table[T]{columns: columns, perPage: DefaultPerPage, searchable: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State is the per-instance view state: search text, sort key and direction,
// current page. It travels in URL query parameters, one state per table.
type State struct {
	Query   string
	SortKey string
	Desc    bool
	Page    int
}

// Header is the rendered metadata for one column heading.
type Header struct {
	Key      string
	Label    string
	Sortable bool
	// Active marks the current sort column; Desc its direction.
	Active bool
	Desc   bool
}

// Row pairs a source record with its display cells, in column order.
type Row[T any] struct {
	Record T
	Cells  []string
}

// View is one fully computed page of the grid.
type View[T any] struct {
	Headers    []Header
	Rows       []Row[T]
	Searchable bool

	Query      string
	SortKey    string
	Desc       bool
	Page       int
	TotalPages int
	PerPage    int

	// Total is the filtered row count; Start and End the 1-based inclusive
	// range shown. All three are zero when the filter matched nothing.
	Total int
	Start int
	End   int
}

// HasPrev reports whether a previous page exists.
func (v View[T]) HasPrev() bool { return v.Page > 1 }

// HasNext reports whether a next page exists.
func (v View[T]) HasNext() bool { return v.Page < v.TotalPages }

// Empty reports whether the filter left nothing to show.
func (v View[T]) Empty() bool { return v.Total == 0 }

// Compute filters, sorts and paginates data under the given state. The page
// number is clamped to [1, ceil(total/perPage)] and total pages never drops
// below 1, so navigating past either edge is a no-op.
func (t *Table[T]) Compute(data []T, st State) View[T] {
	rows := t.filter(data, st.Query)
	rows = t.sortRows(rows, st)

	total := len(rows)
	totalPages := (total + t.perPage - 1) / t.perPage
	if totalPages < 1 {
		totalPages = 1
	}
	page := st.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * t.perPage
	end := start + t.perPage
	if end > total {
		end = total
	}

	v := View[T]{
		Searchable: t.searchable,
		Query:      st.Query,
		SortKey:    st.SortKey,
		Desc:       st.Desc,
		Page:       page,
		TotalPages: totalPages,
		PerPage:    t.perPage,
		Total:      total,
	}
	if total > 0 {
		v.Start = start + 1
		v.End = end
	}

	for _, col := range t.columns {
		v.Headers = append(v.Headers, Header{
			Key:      col.Key,
			Label:    col.Header,
			Sortable: col.Sortable,
			Active:   col.Sortable && col.Key == st.SortKey,
			Desc:     st.Desc,
		})
	}

	for _, rec := range rows[start:end] {
		row := Row[T]{Record: rec, Cells: make([]string, 0, len(t.columns))}
		for _, col := range t.columns {
			row.Cells = append(row.Cells, t.cell(col, rec))
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func (t *Table[T]) cell(col Column[T], rec T) string {
	if col.Render != nil {
		return col.Render(rec)
	}
	if col.Accessor == nil {
		return ""
	}
	return stringify(col.Accessor(rec))
}

// filter keeps a row when any column's stringified value contains the query
// as a case-insensitive substring. An empty query keeps everything.
func (t *Table[T]) filter(data []T, query string) []T {
	if !t.searchable || query == "" {
		// Copy regardless so the sort below never touches the source.
		out := make([]T, len(data))
		copy(out, data)
		return out
	}
	needle := strings.ToLower(query)
	var out []T
	for _, rec := range data {
		for _, col := range t.columns {
			if col.Accessor == nil {
				continue
			}
			if strings.Contains(strings.ToLower(stringify(col.Accessor(rec))), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// sortRows orders rows by the active sort column. The sort is not stable:
// rows with equal keys keep no guaranteed relative order.
func (t *Table[T]) sortRows(rows []T, st State) []T {
	if st.SortKey == "" {
		return rows
	}
	var active *Column[T]
	for i := range t.columns {
		if t.columns[i].Key == st.SortKey && t.columns[i].Sortable && t.columns[i].Accessor != nil {
			active = &t.columns[i]
			break
		}
	}
	if active == nil {
		return rows
	}
	sort.Slice(rows, func(i, j int) bool {
		c := compare(active.Accessor(rows[i]), active.Accessor(rows[j]))
		if st.Desc {
			return c > 0
		}
		return c < 0
	})
	return rows
}

// compare orders two extracted values: numbers numerically, times
// chronologically, everything else by string form.
func compare(a, b any) int {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	return strings.Compare(stringify(a), stringify(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case time.Time:
		if s.IsZero() {
			return ""
		}
		return s.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}
