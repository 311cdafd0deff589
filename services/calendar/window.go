package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day inside the event window.
type ClockTime struct {
	Hour   int
	Minute int
}

// EventWindow derives the start and end of the whole event from the slot
// catalog: the start of the first slot and the end of the last. Labels look
// like "15:00-15:10".
func EventWindow(slots []string) (start, end ClockTime, err error) {
	if len(slots) == 0 {
		return ClockTime{}, ClockTime{}, fmt.Errorf("empty slot catalog")
	}
	start, _, err = parseSlotLabel(slots[0])
	if err != nil {
		return ClockTime{}, ClockTime{}, err
	}
	_, end, err = parseSlotLabel(slots[len(slots)-1])
	if err != nil {
		return ClockTime{}, ClockTime{}, err
	}
	return start, end, nil
}

func parseSlotLabel(label string) (ClockTime, ClockTime, error) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return ClockTime{}, ClockTime{}, fmt.Errorf("malformed slot label %q", label)
	}
	start, err := parseClock(parts[0])
	if err != nil {
		return ClockTime{}, ClockTime{}, fmt.Errorf("malformed slot label %q: %w", label, err)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return ClockTime{}, ClockTime{}, fmt.Errorf("malformed slot label %q: %w", label, err)
	}
	return start, end, nil
}

func parseClock(s string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("expected HH:MM, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, fmt.Errorf("bad hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("bad minute in %q", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}
