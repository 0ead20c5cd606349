package view_test

import (
	"reflect"
	"testing"

	models "github.com/cratestats/cratestats/internal/models"
	"github.com/cratestats/cratestats/internal/view"
)

func sampleRows() []models.CategoryCount {
	return []models.CategoryCount{
		{Category: "games", CrateCount: 50},
		{Category: "tools", CrateCount: 30},
		{Category: "web", CrateCount: 10},
	}
}

func TestNewCategoryTableSortsDescendingWithNameTieBreak(t *testing.T) {
	table := view.NewCategoryTable([]models.CategoryCount{
		{Category: "web", CrateCount: 10},
		{Category: "tools", CrateCount: 30},
		{Category: "parsing", CrateCount: 30},
		{Category: "games", CrateCount: 50},
	})

	want := []models.CategoryCount{
		{Category: "games", CrateCount: 50},
		{Category: "parsing", CrateCount: 30},
		{Category: "tools", CrateCount: 30},
		{Category: "web", CrateCount: 10},
	}
	if !reflect.DeepEqual(table.Rows(), want) {
		t.Errorf("expected %v, got %v", want, table.Rows())
	}
}

func TestNewCategoryTableDoesNotAliasInput(t *testing.T) {
	rows := sampleRows()
	table := view.NewCategoryTable(rows)

	rows[0].Category = "mutated"
	if table.Rows()[0].Category != "games" {
		t.Errorf("table aliases caller slice: got %q", table.Rows()[0].Category)
	}
}

func TestViewShowsFullTableInitially(t *testing.T) {
	v := view.New(view.NewCategoryTable(sampleRows()))
	if v.SelectedCount() != 3 {
		t.Errorf("expected initial selection 3, got %d", v.SelectedCount())
	}
}

func TestSetSelectedCountReturnsPrefixes(t *testing.T) {
	table := view.NewCategoryTable(sampleRows())
	v := view.New(table)

	for n := 1; n <= table.Len(); n++ {
		bar, pie := v.SetSelectedCount(n)
		if len(bar.X) != n || len(bar.Y) != n {
			t.Fatalf("n=%d: bar spec has %d/%d points", n, len(bar.X), len(bar.Y))
		}
		if len(pie.Labels) != n || len(pie.Values) != n {
			t.Fatalf("n=%d: pie spec has %d/%d points", n, len(pie.Labels), len(pie.Values))
		}
		for i, row := range table.Rows()[:n] {
			if bar.X[i] != row.Category || bar.Y[i] != row.CrateCount {
				t.Errorf("n=%d: bar[%d] = (%q,%d), want (%q,%d)", n, i, bar.X[i], bar.Y[i], row.Category, row.CrateCount)
			}
			if pie.Labels[i] != row.Category || pie.Values[i] != row.CrateCount {
				t.Errorf("n=%d: pie[%d] = (%q,%d), want (%q,%d)", n, i, pie.Labels[i], pie.Values[i], row.Category, row.CrateCount)
			}
		}
		if v.SelectedCount() != n {
			t.Errorf("expected selection %d, got %d", n, v.SelectedCount())
		}
	}
}

func TestSetSelectedCountScenario(t *testing.T) {
	v := view.New(view.NewCategoryTable(sampleRows()))
	bar, pie := v.SetSelectedCount(2)

	if !reflect.DeepEqual(bar.X, []string{"games", "tools"}) {
		t.Errorf("bar.X = %v", bar.X)
	}
	if !reflect.DeepEqual(bar.Y, []int64{50, 30}) {
		t.Errorf("bar.Y = %v", bar.Y)
	}
	if !reflect.DeepEqual(pie.Labels, []string{"games", "tools"}) {
		t.Errorf("pie.Labels = %v", pie.Labels)
	}
	if !reflect.DeepEqual(pie.Values, []int64{50, 30}) {
		t.Errorf("pie.Values = %v", pie.Values)
	}
}

func TestSetSelectedCountClamps(t *testing.T) {
	table := view.NewCategoryTable(sampleRows())

	low, _ := view.New(table).SetSelectedCount(0)
	one, _ := view.New(table).SetSelectedCount(1)
	if !reflect.DeepEqual(low, one) {
		t.Errorf("SetSelectedCount(0) = %v, want same as SetSelectedCount(1) = %v", low, one)
	}

	high, _ := view.New(table).SetSelectedCount(table.Len() + 100)
	all, _ := view.New(table).SetSelectedCount(table.Len())
	if !reflect.DeepEqual(high, all) {
		t.Errorf("SetSelectedCount(len+100) = %v, want same as SetSelectedCount(len) = %v", high, all)
	}
}

func TestSetSelectedCountIdempotent(t *testing.T) {
	v := view.New(view.NewCategoryTable(sampleRows()))

	bar1, pie1 := v.SetSelectedCount(2)
	bar2, pie2 := v.SetSelectedCount(2)
	if !reflect.DeepEqual(bar1, bar2) || !reflect.DeepEqual(pie1, pie2) {
		t.Errorf("repeated calls differ: %v/%v vs %v/%v", bar1, pie1, bar2, pie2)
	}
}

func TestEmptyTable(t *testing.T) {
	v := view.New(view.NewCategoryTable(nil))
	bar, pie := v.SetSelectedCount(5)

	if len(bar.X) != 0 || len(pie.Labels) != 0 {
		t.Errorf("expected empty specs, got %v / %v", bar, pie)
	}
	if bar.X == nil || bar.Y == nil || pie.Labels == nil || pie.Values == nil {
		t.Error("empty specs must use empty slices, not nil, so JSON renders [] instead of null")
	}
	if v.SelectedCount() != 0 {
		t.Errorf("expected selection 0 on empty table, got %d", v.SelectedCount())
	}
}
