package table

import (
	"testing"
	"time"
)

type person struct {
	Name   string
	Age    int
	Joined time.Time
}

func personGrid(opts ...Option[person]) *Table[person] {
	return New([]Column[person]{
		{Key: "name", Header: "Name", Sortable: true, Accessor: func(p person) any { return p.Name }},
		{Key: "age", Header: "Age", Sortable: true, Accessor: func(p person) any { return p.Age }},
		{Key: "joined", Header: "Joined", Sortable: true, Accessor: func(p person) any { return p.Joined }},
	}, opts...)
}

func names(v View[person]) []string {
	out := make([]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		out = append(out, r.Record.Name)
	}
	return out
}

func TestCompute_EmptyQueryKeepsEverything(t *testing.T) {
	data := []person{{Name: "Amy"}, {Name: "Bob"}, {Name: "Cid"}}
	v := personGrid().Compute(data, State{})
	if v.Total != 3 {
		t.Fatalf("expected 3 rows, got %d", v.Total)
	}
}

func TestCompute_NoMatchYieldsEmptyView(t *testing.T) {
	data := []person{{Name: "Amy"}, {Name: "Bob"}}
	v := personGrid().Compute(data, State{Query: "zzz"})
	if !v.Empty() {
		t.Fatalf("expected empty view, total=%d", v.Total)
	}
	if v.Start != 0 || v.End != 0 || v.Total != 0 {
		t.Fatalf("expected zeroed range, got start=%d end=%d total=%d", v.Start, v.End, v.Total)
	}
	if v.Page != 1 || v.TotalPages != 1 {
		t.Fatalf("expected page 1 of 1, got %d of %d", v.Page, v.TotalPages)
	}
}

func TestCompute_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	data := []person{{Name: "Amy Weaver"}, {Name: "Bob"}, {Name: "weAVEr Cid"}}
	v := personGrid().Compute(data, State{Query: "WEAV"})
	if v.Total != 2 {
		t.Fatalf("expected 2 matches, got %d", v.Total)
	}
}

func TestCompute_SearchMatchesAnyColumn(t *testing.T) {
	data := []person{{Name: "Amy", Age: 31}, {Name: "Bob", Age: 44}}
	v := personGrid().Compute(data, State{Query: "44"})
	if v.Total != 1 || v.Rows[0].Record.Name != "Bob" {
		t.Fatalf("expected Bob via age column, got %v", names(v))
	}
}

func TestCompute_SortAscendingAndDescendingReverse(t *testing.T) {
	data := []person{{Name: "Bob"}, {Name: "Cid"}, {Name: "Amy"}}

	asc := personGrid().Compute(data, State{SortKey: "name"})
	if got := names(asc); got[0] != "Amy" || got[1] != "Bob" || got[2] != "Cid" {
		t.Fatalf("ascending order wrong: %v", got)
	}

	desc := personGrid().Compute(data, State{SortKey: "name", Desc: true})
	if got := names(desc); got[0] != "Cid" || got[1] != "Bob" || got[2] != "Amy" {
		t.Fatalf("descending order wrong: %v", got)
	}
}

func TestCompute_NumericSortIsNumericNotLexical(t *testing.T) {
	data := []person{{Name: "a", Age: 9}, {Name: "b", Age: 80}, {Name: "c", Age: 100}}
	v := personGrid().Compute(data, State{SortKey: "age"})
	if got := names(v); got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("numeric order wrong: %v", got)
	}
}

func TestCompute_TimeSortIsChronological(t *testing.T) {
	t0 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	data := []person{
		{Name: "late", Joined: t0.AddDate(1, 0, 0)},
		{Name: "early", Joined: t0},
	}
	v := personGrid().Compute(data, State{SortKey: "joined"})
	if got := names(v); got[0] != "early" {
		t.Fatalf("chronological order wrong: %v", got)
	}
}

func TestCompute_UnknownSortKeyLeavesOrder(t *testing.T) {
	data := []person{{Name: "Bob"}, {Name: "Amy"}}
	v := personGrid().Compute(data, State{SortKey: "bogus"})
	if got := names(v); got[0] != "Bob" || got[1] != "Amy" {
		t.Fatalf("order changed under unknown key: %v", got)
	}
}

func TestCompute_Pagination(t *testing.T) {
	data := make([]person, 25)
	for i := range data {
		data[i] = person{Name: string(rune('a' + i)), Age: i}
	}
	grid := personGrid()

	v := grid.Compute(data, State{Page: 3})
	if v.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 25 rows, got %d", v.TotalPages)
	}
	if v.Start != 21 || v.End != 25 {
		t.Fatalf("expected rows 21-25 on page 3, got %d-%d", v.Start, v.End)
	}
	if len(v.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(v.Rows))
	}
}

func TestCompute_PageClamping(t *testing.T) {
	data := make([]person, 25)
	grid := personGrid()

	if v := grid.Compute(data, State{Page: 99}); v.Page != 3 {
		t.Fatalf("over-range page not clamped: got %d", v.Page)
	}
	if v := grid.Compute(data, State{Page: 0}); v.Page != 1 {
		t.Fatalf("zero page not clamped: got %d", v.Page)
	}
	if v := grid.Compute(data, State{Page: -4}); v.Page != 1 {
		t.Fatalf("negative page not clamped: got %d", v.Page)
	}
}

func TestCompute_SourceSliceNeverMutated(t *testing.T) {
	data := []person{{Name: "Cid"}, {Name: "Amy"}, {Name: "Bob"}}
	personGrid().Compute(data, State{SortKey: "name"})
	if data[0].Name != "Cid" || data[1].Name != "Amy" || data[2].Name != "Bob" {
		t.Fatalf("source slice mutated: %v", data)
	}
}

func TestCompute_FilterThenSortThenPaginate(t *testing.T) {
	// 12 matching rows out of 24: filtered set sorted, then page 2 holds
	// the last two of the sorted matches.
	var data []person
	for i := 0; i < 12; i++ {
		data = append(data, person{Name: "keep", Age: 12 - i})
		data = append(data, person{Name: "drop", Age: 100 + i})
	}
	grid := personGrid(WithPerPage[person](10))
	v := grid.Compute(data, State{Query: "keep", SortKey: "age", Page: 2})
	if v.Total != 12 || v.TotalPages != 2 {
		t.Fatalf("expected 12 rows over 2 pages, got %d over %d", v.Total, v.TotalPages)
	}
	if len(v.Rows) != 2 {
		t.Fatalf("expected 2 rows on page 2, got %d", len(v.Rows))
	}
	if v.Rows[0].Record.Age != 11 || v.Rows[1].Record.Age != 12 {
		t.Fatalf("page 2 holds wrong rows: %d, %d", v.Rows[0].Record.Age, v.Rows[1].Record.Age)
	}
}

func TestCompute_WithoutSearchIgnoresQuery(t *testing.T) {
	data := []person{{Name: "Amy"}, {Name: "Bob"}}
	grid := personGrid(WithoutSearch[person]())
	v := grid.Compute(data, State{Query: "Amy"})
	if v.Total != 2 {
		t.Fatalf("query applied despite search disabled: %d", v.Total)
	}
	if v.Searchable {
		t.Fatalf("view still marked searchable")
	}
}

func TestCompute_RenderOverridesCellText(t *testing.T) {
	grid := New([]Column[person]{
		{Key: "age", Header: "Age", Accessor: func(p person) any { return p.Age },
			Render: func(p person) string { return "x" }},
	})
	v := grid.Compute([]person{{Age: 7}}, State{})
	if v.Rows[0].Cells[0] != "x" {
		t.Fatalf("render not applied: %q", v.Rows[0].Cells[0])
	}
}

func TestCompute_HeadersMarkActiveSortColumn(t *testing.T) {
	v := personGrid().Compute(nil, State{SortKey: "age", Desc: true})
	for _, h := range v.Headers {
		if h.Key == "age" {
			if !h.Active || !h.Desc {
				t.Fatalf("age header not marked active desc: %+v", h)
			}
		} else if h.Active {
			t.Fatalf("%s header wrongly active", h.Key)
		}
	}
}
