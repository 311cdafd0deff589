package signup

import "time"

// DateLayout is the occurrence date format used in the spreadsheet and in all
// user-facing messages.
const DateLayout = "2006-01-02"

// NextOccurrence returns the date of the next occurrence of weekday strictly
// after now. When now already falls on the event weekday the result is seven
// days out, never today: signing up on the event's own day books next week's
// session. This is deliberate, since same-day signups would land after the
// reminder digest has already gone out.
func NextOccurrence(now time.Time, weekday time.Weekday) time.Time {
	daysAhead := (int(weekday) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	next := now.AddDate(0, 0, daysAhead)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, now.Location())
}

// NextOccurrenceDate is NextOccurrence formatted with DateLayout.
func NextOccurrenceDate(now time.Time, weekday time.Weekday) string {
	return NextOccurrence(now, weekday).Format(DateLayout)
}
