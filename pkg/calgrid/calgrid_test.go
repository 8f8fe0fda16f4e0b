package calgrid_test

import (
	"testing"
	"time"

	"calendar-schedule/pkg/calgrid"
)

func TestBuild_AlwaysSixWeeks(t *testing.T) {
	for year := 1999; year <= 2032; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := calgrid.Build(year, month)
			if len(cells) != calgrid.Cells {
				t.Fatalf("%d-%02d: expected %d cells, got %d", year, month, calgrid.Cells, len(cells))
			}

			inMonth := 0
			for _, c := range cells {
				if c.InMonth {
					inMonth++
					if c.Date.Month() != month {
						t.Fatalf("%d-%02d: cell %s flagged in month", year, month, c.Date.Format("2006-01-02"))
					}
				}
			}
			want := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if inMonth != want {
				t.Fatalf("%d-%02d: expected %d in-month cells, got %d", year, month, want, inMonth)
			}

			if cells[0].Date.Weekday() != time.Sunday {
				t.Fatalf("%d-%02d: first cell is %v, want Sunday", year, month, cells[0].Date.Weekday())
			}
		}
	}
}

func TestBuild_ConsecutiveDays(t *testing.T) {
	cells := calgrid.Build(2024, time.March)
	for i := 1; i < len(cells); i++ {
		prev, cur := cells[i-1].Date, cells[i].Date
		if got := prev.AddDate(0, 0, 1); !got.Equal(cur) {
			t.Fatalf("cell %d: %s does not follow %s", i, cur.Format("2006-01-02"), prev.Format("2006-01-02"))
		}
	}
}

func TestBuild_July2024(t *testing.T) {
	// July 1st 2024 is a Monday.
	cells := calgrid.Build(2024, time.July)

	if got := cells[0].Date.Format("2006-01-02"); got != "2024-06-30" {
		t.Errorf("expected first cell 2024-06-30, got %s", got)
	}
	if cells[0].InMonth {
		t.Error("padding cell flagged as in month")
	}
	if got := cells[1].Date.Format("2006-01-02"); got != "2024-07-01" || !cells[1].InMonth {
		t.Errorf("expected cell 1 to be 2024-07-01 in month, got %s (%v)", got, cells[1].InMonth)
	}
	if got := cells[32].Date.Format("2006-01-02"); got != "2024-08-01" || cells[32].InMonth {
		t.Errorf("expected cell 32 to be 2024-08-01 outside month, got %s (%v)", got, cells[32].InMonth)
	}
	if got := cells[41].Date.Format("2006-01-02"); got != "2024-08-10" {
		t.Errorf("expected last cell 2024-08-10, got %s", got)
	}
}

func TestBuild_MonthStartingOnWeekStart(t *testing.T) {
	// September 2024 starts on a Sunday: no leading padding, 12 trailing days.
	cells := calgrid.Build(2024, time.September)
	if !cells[0].InMonth || cells[0].Date.Day() != 1 {
		t.Fatalf("expected grid to open on Sep 1, got %s", cells[0].Date.Format("2006-01-02"))
	}
	if got := cells[41].Date.Format("2006-01-02"); got != "2024-10-12" {
		t.Errorf("expected last cell 2024-10-12, got %s", got)
	}
}

func TestBuildFrom_MondayStart(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		first string
	}{
		{name: "July 2024 starts on Monday", year: 2024, month: time.July, first: "2024-07-01"},
		{name: "September 2024 starts on Sunday", year: 2024, month: time.September, first: "2024-08-26"},
		{name: "February 2026", year: 2026, month: time.February, first: "2026-01-26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := calgrid.BuildFrom(tt.year, tt.month, time.Monday)
			if len(cells) != calgrid.Cells {
				t.Fatalf("expected %d cells, got %d", calgrid.Cells, len(cells))
			}
			if cells[0].Date.Weekday() != time.Monday {
				t.Errorf("expected Monday, got %v", cells[0].Date.Weekday())
			}
			if got := cells[0].Date.Format("2006-01-02"); got != tt.first {
				t.Errorf("expected first cell %s, got %s", tt.first, got)
			}
		})
	}
}

func TestBuild_NormalisesMonth(t *testing.T) {
	a := calgrid.Build(2024, 13)
	b := calgrid.Build(2025, time.January)
	for i := range a {
		if !a[i].Date.Equal(b[i].Date) || a[i].InMonth != b[i].InMonth {
			t.Fatalf("cell %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := calgrid.Build(2024, time.February)
	b := calgrid.Build(2024, time.February)
	for i := range a {
		if !a[i].Date.Equal(b[i].Date) || a[i].InMonth != b[i].InMonth {
			t.Fatalf("cell %d differs between calls", i)
		}
	}
}
