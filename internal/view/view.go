// Package view holds the interactive top-N slice of the crates-by-category
// table. The table is loaded once at startup and never mutated; every control
// change recomputes the two chart specs from a prefix of it.
package view

import (
	"sort"

	models "github.com/cratestats/cratestats/internal/models"
)

const chartTitle = "Crates by category"

// CategoryTable is the immutable, pre-sorted result of the category
// aggregation: descending by crate count, ties broken by category name so
// chart ordering is stable across renders.
type CategoryTable struct {
	rows []models.CategoryCount
}

// NewCategoryTable copies rows and enforces the table ordering regardless of
// the order the data source returned them in.
func NewCategoryTable(rows []models.CategoryCount) CategoryTable {
	sorted := make([]models.CategoryCount, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CrateCount != sorted[j].CrateCount {
			return sorted[i].CrateCount > sorted[j].CrateCount
		}
		return sorted[i].Category < sorted[j].Category
	})
	return CategoryTable{rows: sorted}
}

// Len returns the number of categories in the table.
func (t CategoryTable) Len() int {
	return len(t.rows)
}

// Rows returns the full table in order. Callers must treat the slice as
// read-only.
func (t CategoryTable) Rows() []models.CategoryCount {
	return t.rows
}

// Top returns the first n rows. n is clamped to [1, Len]; an empty table
// always yields an empty slice.
func (t CategoryTable) Top(n int) []models.CategoryCount {
	if len(t.rows) == 0 {
		return nil
	}
	return t.rows[:clamp(n, 1, len(t.rows))]
}

// BarSpec describes a bar chart: categories on x, crate counts on y.
type BarSpec struct {
	Title string   `json:"title"`
	X     []string `json:"x"`
	Y     []int64  `json:"y"`
}

// PieSpec describes a pie chart over the same rows.
type PieSpec struct {
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// View is one user's selection over the shared table. Views are cheap to
// create, so concurrent users each get their own while the underlying table
// stays a single read-only instance.
type View struct {
	table    CategoryTable
	selected int
}

// New creates a View showing the full table.
func New(table CategoryTable) *View {
	return &View{table: table, selected: table.Len()}
}

// SelectedCount reports the current selection.
func (v *View) SelectedCount() int {
	return v.selected
}

// SetSelectedCount updates the selection to n, clamped to the valid slider
// range, and returns the two chart specs for the visible rows. It is a pure
// function of the table and n: the same n always yields identical specs.
func (v *View) SetSelectedCount(n int) (BarSpec, PieSpec) {
	rows := v.table.Top(n)
	v.selected = len(rows)

	bar := BarSpec{Title: chartTitle, X: make([]string, len(rows)), Y: make([]int64, len(rows))}
	pie := PieSpec{Title: chartTitle, Labels: make([]string, len(rows)), Values: make([]int64, len(rows))}
	for i, row := range rows {
		bar.X[i] = row.Category
		bar.Y[i] = row.CrateCount
		pie.Labels[i] = row.Category
		pie.Values[i] = row.CrateCount
	}
	return bar, pie
}

func clamp(n, low, high int) int {
	if n < low {
		return low
	}
	if n > high {
		return high
	}
	return n
}
