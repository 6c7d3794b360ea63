package entity

import (
	"testing"
	"time"
)

func TestParseDaysOfWeek(t *testing.T) {
	t.Run("parses comma-separated abbreviations", func(t *testing.T) {
		days := ParseDaysOfWeek("Mon,Wed,Fri")

		if len(days) != 3 {
			t.Fatalf("expected 3 days, got %d", len(days))
		}
		for _, d := range []time.Weekday{time.Monday, time.Wednesday, time.Friday} {
			if !days[d] {
				t.Errorf("expected %s to be scheduled", d)
			}
		}
		if days[time.Tuesday] {
			t.Error("expected Tuesday to be unscheduled")
		}
	})

	t.Run("ignores whitespace around tokens", func(t *testing.T) {
		days := ParseDaysOfWeek(" Mon , Wed ,Fri ")

		if len(days) != 3 {
			t.Fatalf("expected 3 days, got %d", len(days))
		}
	})

	t.Run("collapses duplicate tokens", func(t *testing.T) {
		days := ParseDaysOfWeek("Mon,Mon,Mon")

		if len(days) != 1 {
			t.Fatalf("expected 1 day, got %d", len(days))
		}
		if !days[time.Monday] {
			t.Error("expected Monday to be scheduled")
		}
	})

	t.Run("drops unrecognized tokens", func(t *testing.T) {
		days := ParseDaysOfWeek("Mon,Funday,Tue")

		if len(days) != 2 {
			t.Fatalf("expected 2 days, got %d", len(days))
		}
		if !days[time.Monday] || !days[time.Tuesday] {
			t.Error("expected Monday and Tuesday to be scheduled")
		}
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		if days := ParseDaysOfWeek(""); len(days) != 0 {
			t.Errorf("expected empty set, got %v", days)
		}
	})

	t.Run("entirely unrecognized input yields empty set", func(t *testing.T) {
		if days := ParseDaysOfWeek("MONDAY,TUESDAY"); len(days) != 0 {
			t.Errorf("expected empty set, got %v", days)
		}
	})
}

func TestDay(t *testing.T) {
	ts := time.Date(2025, 10, 20, 17, 45, 12, 999, time.UTC)
	day := Day(ts)

	expected := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	if !day.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, day)
	}
}
