package calendar

import "testing"

func TestEventWindow(t *testing.T) {
	t.Run("derives window from first and last slot", func(t *testing.T) {
		start, end, err := EventWindow([]string{
			"15:00-15:10", "15:10-15:20", "15:20-15:30",
			"15:30-15:40", "15:40-15:50", "15:50-16:00",
		})
		if err != nil {
			t.Fatalf("EventWindow: %v", err)
		}
		if start != (ClockTime{Hour: 15}) {
			t.Fatalf("start = %+v, want 15:00", start)
		}
		if end != (ClockTime{Hour: 16}) {
			t.Fatalf("end = %+v, want 16:00", end)
		}
	})

	t.Run("single slot window", func(t *testing.T) {
		start, end, err := EventWindow([]string{"09:30-09:45"})
		if err != nil {
			t.Fatalf("EventWindow: %v", err)
		}
		if start != (ClockTime{Hour: 9, Minute: 30}) || end != (ClockTime{Hour: 9, Minute: 45}) {
			t.Fatalf("window = %+v..%+v", start, end)
		}
	})

	t.Run("empty catalog errors", func(t *testing.T) {
		if _, _, err := EventWindow(nil); err == nil {
			t.Fatal("expected error for empty catalog")
		}
	})

	t.Run("malformed labels error", func(t *testing.T) {
		for _, label := range []string{"15:00", "15-16", "aa:bb-cc:dd", "25:00-26:00"} {
			if _, _, err := EventWindow([]string{label}); err == nil {
				t.Fatalf("expected error for label %q", label)
			}
		}
	})
}
